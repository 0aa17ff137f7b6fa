// Package routing supplies road-network travel times from the Google Maps
// Directions API. The provider is optional wiring: when no API key is
// configured the system falls back to straight-line estimates.
package routing

import (
	"context"
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/kernel"

	"googlemaps.github.io/maps"
)

// directionsClient is the slice of maps.Client the provider needs.
type directionsClient interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// GoogleMapsProvider implements ports.RoutingProvider over the Directions API.
type GoogleMapsProvider struct {
	client directionsClient
}

// NewGoogleMapsProvider creates a provider with its own maps client.
func NewGoogleMapsProvider(apiKey string) (*GoogleMapsProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleMapsProvider{client: client}, nil
}

// newProviderWithClient exists for tests.
func newProviderWithClient(client directionsClient) *GoogleMapsProvider {
	return &GoogleMapsProvider{client: client}
}

// TravelTimeMinutes returns the driving time between two coordinates in
// whole minutes, rounded up.
func (p *GoogleMapsProvider) TravelTimeMinutes(ctx context.Context, from kernel.GeoPoint, to kernel.GeoPoint) (int, error) {
	request := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", from.Latitude(), from.Longitude()),
		Destination: fmt.Sprintf("%f,%f", to.Latitude(), to.Longitude()),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := p.client.Directions(ctx, request)
	if err != nil {
		return 0, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, fmt.Errorf("no route between %s and %s", from.String(), to.String())
	}

	leg := routes[0].Legs[0]
	return int(math.Ceil(leg.Duration.Minutes())), nil
}
