package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// RoutingProvider supplies road-network travel times from an external
// routing service. It is optional: when absent or failing, callers fall
// back to the straight-line estimate from GeoService.
type RoutingProvider interface {
	// TravelTimeMinutes returns the road travel time between two
	// coordinates in whole minutes.
	TravelTimeMinutes(ctx context.Context, from kernel.GeoPoint, to kernel.GeoPoint) (int, error)
}
