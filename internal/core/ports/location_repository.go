package ports

import (
	"context"

	"dispatch/internal/core/domain/model/location"
)

// LocationRepository is the append-only store of worker position history.
// Samples are never updated or deleted.
type LocationRepository interface {
	// Append writes one immutable location sample.
	Append(ctx context.Context, sample location.Sample) error
}
