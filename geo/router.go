package geo

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/tracking"
)

var ErrNoRouteFound = fmt.Errorf("no route found")

// Directions is a planned path with its length in meters and travel time in seconds
type Directions struct {
	Path     schema.Path `json:"path"`
	Distance float64     `json:"distance"`
	Duration float64     `json:"duration"`
}

// Router plans a driving path from an origin to a destination through waypoints
type Router interface {
	Route(ctx context.Context, origin, destination schema.Coordinate, waypoints []schema.Coordinate) (Directions, error)
}

type GoogleRouter struct {
	client *maps.Client
}

func NewGoogleRouter(client *maps.Client) *GoogleRouter {
	return &GoogleRouter{client: client}
}

func latLng(c schema.Coordinate) *maps.LatLng {
	return &maps.LatLng{Lat: c.Lat, Lng: c.Lng}
}

func (g *GoogleRouter) Route(ctx context.Context, origin, destination schema.Coordinate, waypoints []schema.Coordinate) (Directions, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req := &maps.DirectionsRequest{
		Origin:      latLng(origin).String(),
		Destination: latLng(destination).String(),
		Mode:        maps.TravelModeDriving,
		Region:      "bd",
	}
	for _, w := range waypoints {
		req.Waypoints = append(req.Waypoints, latLng(w).String())
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		log.WithField("prefix", "geo").WithError(err).Error("query directions")
		return Directions{}, err
	}

	if len(routes) == 0 {
		return Directions{}, ErrNoRouteFound
	}

	return directionsOf(routes[0])
}

func directionsOf(route maps.Route) (Directions, error) {
	points, err := route.OverviewPolyline.Decode()
	if err != nil {
		return Directions{}, err
	}

	var d Directions
	d.Path = make(schema.Path, 0, len(points))
	for _, p := range points {
		d.Path = append(d.Path, schema.Coordinate{Lat: p.Lat, Lng: p.Lng})
	}
	for _, leg := range route.Legs {
		d.Distance += float64(leg.Distance.Meters)
		d.Duration += leg.Duration.Seconds()
	}

	if len(d.Path) < 2 {
		return Directions{}, ErrNoRouteFound
	}

	return d, nil
}

// StraightRouter connects the origin, waypoints and destination with straight
// lines. It is used when no directions provider is configured.
type StraightRouter struct {
	tracker *tracking.Tracker
}

func NewStraightRouter(tracker *tracking.Tracker) *StraightRouter {
	return &StraightRouter{tracker: tracker}
}

func (s *StraightRouter) Route(_ context.Context, origin, destination schema.Coordinate, waypoints []schema.Coordinate) (Directions, error) {
	path := tracking.StraightPath(origin, destination, waypoints)
	distance := tracking.PathLength(path)
	return Directions{
		Path:     path,
		Distance: distance,
		Duration: s.tracker.EstimateDuration(distance),
	}, nil
}
