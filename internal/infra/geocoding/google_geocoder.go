// Package geocoding implements the Geocoder interface against the Google Maps API.
package geocoding

import (
	"context"
	"strconv"
	"strings"

	"sejour/config"
	"sejour/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// googleGeocoder resolves postal addresses through the Google Maps
// geocoding endpoint.
type googleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder is the constructor for googleGeocoder.
func NewGoogleGeocoder(cfg *config.Config) (service.Geocoder, error) {
	if cfg.Geocoding == nil || cfg.Geocoding.APIKey == "" {
		return nil, errors.New("geocoding API key must be provided")
	}

	client, err := maps.NewClient(maps.WithAPIKey(cfg.Geocoding.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Maps client")
	}

	return &googleGeocoder{client: client}, nil
}

// Geocode resolves street/city/state to coordinates. The result is rendered
// as decimal strings; property rows store the location verbatim.
func (g *googleGeocoder) Geocode(ctx context.Context, street, city, state string) (*service.Coordinates, error) {
	address := strings.Join([]string{street, city, state}, ", ")

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	if len(results) == 0 {
		return nil, errors.Errorf("no geocoding result for address: %s", address)
	}

	location := results[0].Geometry.Location

	return &service.Coordinates{
		Latitude:  strconv.FormatFloat(location.Lat, 'f', 7, 64),
		Longitude: strconv.FormatFloat(location.Lng, 'f', 7, 64),
	}, nil
}
