package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/lifeline-bd/lifeline-api/consts"
	"github.com/lifeline-bd/lifeline-api/schema"
)

const defaultTimeout = 5 * time.Second

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
	ErrOutsideCountry = fmt.Errorf("location is outside bangladesh")
)

// District is the administrative area a coordinate belongs to
type District struct {
	District string `json:"district"`
	Division string `json:"division"`
	Address  string `json:"address"`
}

// DistrictResolver - interface for resolving the district of a location
type DistrictResolver interface {
	ResolveDistrict(ctx context.Context, loc schema.Coordinate) (District, error)
}

type GeocodingDistrictResolver struct {
	client *maps.Client
}

func NewGeocodingDistrictResolver(client *maps.Client) *GeocodingDistrictResolver {
	return &GeocodingDistrictResolver{
		client: client,
	}
}

func (g *GeocodingDistrictResolver) ResolveDistrict(ctx context.Context, loc schema.Coordinate) (District, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	log.WithFields(log.Fields{
		"prefix": "geo",
		"lat":    loc.Lat,
		"lng":    loc.Lng,
	}).Debug("reverse geocode")

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Lat,
			Lng: loc.Lng,
		},
		ResultType: []string{"administrative_area_level_2|administrative_area_level_1"},
		Language:   "en",
	})
	if nil != err {
		return District{}, err
	}

	return politicalDistrict(geos)
}

// politicalDistrict reads the district and division of the first geocoding
// result and normalizes them to the official names
func politicalDistrict(geos []maps.GeocodingResult) (District, error) {
	if len(geos) == 0 {
		return District{}, ErrNoGeoInfoFound
	}

	var level1, level2, country string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 {
			switch a.Types[0] {
			case "administrative_area_level_1":
				level1 = a.LongName
			case "administrative_area_level_2":
				level2 = a.LongName
			case "country":
				country = a.ShortName
			}
		}
	}

	if country != "" && !strings.EqualFold(country, "BD") {
		return District{}, ErrOutsideCountry
	}

	result := District{Address: geos[0].FormattedAddress}
	if district, division, err := consts.BdDistrict(level2); err == nil {
		result.District = district
		result.Division = division
		return result, nil
	}

	division, err := consts.BdDivision(level1)
	if err != nil {
		return District{}, ErrNoGeoInfoFound
	}
	result.Division = division

	return result, nil
}
