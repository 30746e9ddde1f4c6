package geolocation

import (
	"context"
	"fmt"
	"strings"

	"github.com/medlocate/medlocate-backend/internal/domain/providers"
)

// MockGeolocationProvider implements a fixed-table geolocation provider for
// development and tests
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() providers.GeolocationProvider {
	return &MockGeolocationProvider{}
}

var mockCoordinates = map[string]providers.Coordinates{
	"Mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
	"Delhi":     {Latitude: 28.7041, Longitude: 77.1025},
	"Bengaluru": {Latitude: 12.9716, Longitude: 77.5946},
	"Chennai":   {Latitude: 13.0827, Longitude: 80.2707},
	"Lagos":     {Latitude: 6.5244, Longitude: 3.3792},
	"London":    {Latitude: 51.5074, Longitude: -0.1278},
}

// Geocode converts an address to coordinates (mock implementation)
func (m *MockGeolocationProvider) Geocode(ctx context.Context, address string) (*providers.Coordinates, error) {
	for city, coords := range mockCoordinates {
		if strings.Contains(address, city) {
			c := coords
			return &c, nil
		}
	}
	return nil, fmt.Errorf("address not found: %s", address)
}

// ReverseGeocode converts coordinates to a display address (mock implementation)
func (m *MockGeolocationProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return fmt.Sprintf("%f, %f", lat, lon), nil
}
