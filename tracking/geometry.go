package tracking

import (
	"math"

	"github.com/lifeline-bd/lifeline-api/schema"
)

const earthRadiusMeters = 6371000.0

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great circle distance between two points in meters
func Haversine(a, b schema.Coordinate) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	dlat := lat2 - lat1
	dlng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ApproxDistance is the equirectangular approximation of the distance between
// two points in meters. Longitude is scaled by the cosine of the mean latitude.
// It is only accurate over short distances.
func ApproxDistance(a, b schema.Coordinate) float64 {
	x, y := planar(a, b)
	return math.Sqrt(x*x+y*y) * earthRadiusMeters
}

// planar returns the offset of b from a on a local plane, in radians
func planar(a, b schema.Coordinate) (float64, float64) {
	meanLat := degreesToRadians((a.Lat + b.Lat) / 2)
	x := degreesToRadians(b.Lng-a.Lng) * math.Cos(meanLat)
	y := degreesToRadians(b.Lat - a.Lat)
	return x, y
}

// PathLength returns the length of a path in meters
func PathLength(path schema.Path) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Haversine(path[i-1], path[i])
	}
	return total
}

// Projection describes where a point falls relative to a path
type Projection struct {
	// Segment is the index of the first vertex of the nearest segment
	Segment int
	// Point is the nearest point on the path
	Point schema.Coordinate
	// Distance is the perpendicular distance from the point to the path in meters
	Distance float64
	// Along is the distance along the path from its start to Point in meters
	Along float64
}

// Project finds the point of the path nearest to p. A path of a single vertex
// projects everything onto that vertex. An empty path returns a zero projection
// with an infinite distance.
func Project(path schema.Path, p schema.Coordinate) Projection {
	switch len(path) {
	case 0:
		return Projection{Distance: math.Inf(1)}
	case 1:
		return Projection{Point: path[0], Distance: Haversine(path[0], p)}
	}

	best := Projection{Distance: math.Inf(1)}
	var along float64
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		segLen := Haversine(a, b)

		// project on the local plane anchored at a
		bx, by := planar(a, b)
		px, py := planar(a, p)
		t := 0.0
		if l2 := bx*bx + by*by; l2 > 0 {
			t = (px*bx + py*by) / l2
		}
		t = math.Max(0, math.Min(1, t))

		q := schema.Coordinate{
			Lat: a.Lat + (b.Lat-a.Lat)*t,
			Lng: a.Lng + (b.Lng-a.Lng)*t,
		}
		if d := Haversine(q, p); d < best.Distance {
			best = Projection{
				Segment:  i,
				Point:    q,
				Distance: d,
				Along:    along + segLen*t,
			}
		}
		along += segLen
	}

	return best
}

// Remaining returns the distance left along the path from a projection to the
// end of the path
func Remaining(path schema.Path, proj Projection) float64 {
	remaining := PathLength(path) - proj.Along
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress is the travelled fraction of a path, clamped to [0,1]
func Progress(total, remaining float64) float64 {
	if total <= 0 {
		return 1
	}
	p := 1 - remaining/total
	return math.Max(0, math.Min(1, p))
}

// StraightPath builds a path from start through the waypoints to end
func StraightPath(start, end schema.Coordinate, waypoints []schema.Coordinate) schema.Path {
	path := make(schema.Path, 0, len(waypoints)+2)
	path = append(path, start)
	path = append(path, waypoints...)
	return append(path, end)
}
