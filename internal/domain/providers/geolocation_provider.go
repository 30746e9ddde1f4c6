package providers

import (
	"context"
)

// GeolocationProvider resolves positions for clients that cannot supply
// their own. It mirrors the platform location contract: a coordinate pair
// or an error, nothing else.
type GeolocationProvider interface {
	// Geocode converts an address to coordinates
	Geocode(ctx context.Context, address string) (*Coordinates, error)

	// ReverseGeocode converts coordinates to a display address
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
