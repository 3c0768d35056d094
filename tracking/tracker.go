package tracking

import (
	"errors"
	"math"
	"time"

	"github.com/lifeline-bd/lifeline-api/schema"
)

var ErrRouteCompleted = errors.New("route is already completed")

// Config holds the thresholds of live tracking, in meters and meters per second
type Config struct {
	RerouteThreshold float64
	ArrivalRadius    float64
	FallbackSpeed    float64
}

func DefaultConfig() Config {
	return Config{
		RerouteThreshold: 100,
		ArrivalRadius:    50,
		FallbackSpeed:    30 * 1000 / 3600.0, // 30 km/h
	}
}

// Sample is one GPS reading reported by the assignee
type Sample struct {
	Position schema.Coordinate
	Bearing  *float64
	Speed    *float64
	Accuracy *float64
}

// Update is the outcome of applying a sample to a route
type Update struct {
	OnRoute               bool      `json:"onRoute"`
	ShouldReroute         bool      `json:"shouldReroute"`
	DistanceFromRoute     float64   `json:"distanceFromRoute"`
	DistanceToDestination float64   `json:"distanceToDestination"`
	RemainingDistance     float64   `json:"remainingDistance"`
	RemainingDuration     float64   `json:"remainingDuration"`
	Progress              float64   `json:"progress"`
	ETA                   time.Time `json:"eta"`
	Arrived               bool      `json:"arrived"`

	// projection is kept for computing the remaining waypoints of a reroute
	projection Projection
}

type Tracker struct {
	config Config
}

func NewTracker(config Config) *Tracker {
	return &Tracker{config: config}
}

func (t *Tracker) Config() Config {
	return t.config
}

// geometry returns the path the route is measured against, which falls back to
// a straight line when no geometry was stored
func geometry(r *schema.Route) schema.Path {
	if len(r.Geometry) >= 2 {
		return r.Geometry
	}
	return StraightPath(r.StartLocation, r.EndLocation, r.Waypoints)
}

// Advance applies a position sample to the route in place. It detects
// deviation, start and arrival, and recomputes the remaining distance,
// duration, progress and eta.
func (t *Tracker) Advance(r *schema.Route, s Sample, now time.Time) (Update, error) {
	if r.Status == schema.RouteCompleted {
		return Update{}, ErrRouteCompleted
	}

	path := geometry(r)
	proj := Project(path, s.Position)
	total := PathLength(path)
	remaining := Remaining(path, proj)

	u := Update{
		DistanceFromRoute:     proj.Distance,
		DistanceToDestination: ApproxDistance(s.Position, r.EndLocation),
		RemainingDistance:     remaining,
		Progress:              Progress(total, remaining),
		projection:            proj,
	}
	u.RemainingDuration = t.remainingDuration(r, total, remaining, s.Speed)
	u.OnRoute = proj.Distance <= t.config.RerouteThreshold
	u.ShouldReroute = !u.OnRoute

	wasPending := r.Status == schema.RoutePending
	if wasPending {
		r.Status = schema.RouteActive
		r.StartedAt = &now
	}

	// arrival wins over a deviation of the same sample
	u.Arrived = u.DistanceToDestination < t.config.ArrivalRadius
	if u.Arrived {
		u.ShouldReroute = false
	}

	if u.ShouldReroute {
		r.DeviationCount++
		r.Status = schema.RouteDeviated
	}

	if u.Arrived {
		u.RemainingDistance = 0
		u.RemainingDuration = 0
		u.Progress = 1
		r.Status = schema.RouteCompleted
		r.CompletedAt = &now
	}

	u.ETA = now.Add(time.Duration(u.RemainingDuration * float64(time.Second)))

	position := s.Position
	r.LastPosition = &position
	r.CurrentETA = &u.ETA
	r.CurrentStepIndex = proj.Segment
	r.RemainingDistance = u.RemainingDistance
	r.RemainingDuration = u.RemainingDuration
	r.Progress = u.Progress

	return u, nil
}

func (t *Tracker) remainingDuration(r *schema.Route, total, remaining float64, speed *float64) float64 {
	if speed != nil && *speed > 0 {
		return remaining / *speed
	}
	if r.DurationSeconds > 0 && total > 0 {
		return r.DurationSeconds * remaining / total
	}
	if t.config.FallbackSpeed > 0 {
		return remaining / t.config.FallbackSpeed
	}
	return 0
}

// RemainingWaypoints returns the waypoints of the route that lie ahead of the
// position of the update
func RemainingWaypoints(r *schema.Route, u Update) []schema.Coordinate {
	return waypointsAfter(r, geometry(r), u.projection.Along)
}

// WaypointsAhead returns the waypoints of the route that lie ahead of a position
func WaypointsAhead(r *schema.Route, position schema.Coordinate) []schema.Coordinate {
	path := geometry(r)
	return waypointsAfter(r, path, Project(path, position).Along)
}

func waypointsAfter(r *schema.Route, path schema.Path, along float64) []schema.Coordinate {
	ahead := make([]schema.Coordinate, 0, len(r.Waypoints))
	for _, w := range r.Waypoints {
		if Project(path, w).Along > along {
			ahead = append(ahead, w)
		}
	}
	return ahead
}

// Replan overwrites the planned path of a route. The route becomes active and
// is measured from its first step again.
func Replan(r *schema.Route, start schema.Coordinate, waypoints []schema.Coordinate, path schema.Path, distance, duration float64, now time.Time) {
	r.StartLocation = start
	r.Waypoints = waypoints
	r.Geometry = path
	r.DistanceMeters = distance
	r.DurationSeconds = duration
	r.RemainingDistance = distance
	r.RemainingDuration = duration
	r.Progress = 0
	r.CurrentStepIndex = 0
	r.Status = schema.RouteActive
	if r.StartedAt == nil {
		r.StartedAt = &now
	}
	eta := now.Add(time.Duration(duration * float64(time.Second)))
	r.CurrentETA = &eta
}

// EstimateDuration returns a travel time in seconds for a distance at the
// fallback speed
func (t *Tracker) EstimateDuration(distance float64) float64 {
	if t.config.FallbackSpeed <= 0 {
		return 0
	}
	return math.Ceil(distance / t.config.FallbackSpeed)
}
