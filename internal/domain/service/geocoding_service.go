// Package service defines the interfaces for external capabilities consumed by the use cases.
package service

import "context"

// Coordinates is a geocoding result. Latitude and longitude are rendered as
// decimal strings so the values survive storage without floating-point drift.
type Coordinates struct {
	Latitude  string
	Longitude string
}

// Geocoder resolves a postal address to geographic coordinates.
// Property creation must fail when geocoding fails; a listing is never
// persisted with an empty location.
type Geocoder interface {
	Geocode(ctx context.Context, street, city, state string) (*Coordinates, error)
}
