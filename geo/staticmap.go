package geo

import (
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"

	"github.com/lifeline-bd/lifeline-api/schema"
)

const staticMapURL = "https://maps.googleapis.com/maps/api/staticmap"

// StaticMapURL returns a preview image url of a route. The path is polyline
// encoded and the end points are marked.
func StaticMapURL(apiKey string, r *schema.Route) string {
	path := r.Geometry
	if len(path) < 2 {
		path = schema.Path{r.StartLocation, r.EndLocation}
	}

	points := make([]maps.LatLng, 0, len(path))
	for _, c := range path {
		points = append(points, maps.LatLng{Lat: c.Lat, Lng: c.Lng})
	}

	q := url.Values{}
	q.Set("size", "640x320")
	q.Set("path", "color:0xd32f2fff|weight:4|enc:"+maps.Encode(points))
	q.Add("markers", fmt.Sprintf("color:green|label:S|%s", latLng(r.StartLocation).String()))
	q.Add("markers", fmt.Sprintf("color:red|label:H|%s", latLng(r.EndLocation).String()))
	if r.LastPosition != nil {
		q.Add("markers", fmt.Sprintf("color:blue|%s", latLng(*r.LastPosition).String()))
	}
	if apiKey != "" {
		q.Set("key", apiKey)
	}

	return staticMapURL + "?" + q.Encode()
}
