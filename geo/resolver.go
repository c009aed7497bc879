package geo

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/agrinet/cropguard-api/schema"
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

var (
	US = "United States"
)

// LocationResolver resolves the political region of a coordinate. It is
// used to enrich stored reports and alert text with a human-readable
// area; resolution failures are never fatal to the alert pipeline.
type LocationResolver interface {
	GetPoliticalInfo(schema.Location) (schema.Location, error)
}

type GeocodingLocationResolver struct {
	client *maps.Client
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

func (g *GeocodingLocationResolver) GetPoliticalInfo(loc schema.Location) (schema.Location, error) {
	if loc.Country != "" {
		return loc, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		ResultType: []string{"administrative_area_level_2|administrative_area_level_1"},
		Language:   "en",
	})
	if nil != err {
		return loc, err
	}

	if len(geos) == 0 {
		return loc, ErrNoGeoInfoFound
	}

	var level1, level2 string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 {
			switch a.Types[0] {
			case "administrative_area_level_1":
				level1 = a.LongName
			case "administrative_area_level_2":
				level2 = a.LongName
			case "country":
				loc.Country = a.LongName
			}
		}
	}

	loc.County = level2

	switch loc.Country {
	case US:
		loc.State = level1
	default:
		if loc.County == "" {
			loc.County = level1
		}
	}

	return loc, nil
}
