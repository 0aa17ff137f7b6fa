// Package redis backs the hot read paths with Redis: the latest worker
// positions for dashboard reads and the per-booking event channels customers
// subscribe to for live updates.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// liveLocationKeyPrefix namespaces the per-worker position keys.
const liveLocationKeyPrefix = "dispatch:worker:location:"

// DefaultLiveLocationTTL expires positions of workers that stopped
// reporting, so dashboards never show stale dots.
const DefaultLiveLocationTTL = 5 * time.Minute

// LiveLocationCache implements ports.LocationCache on a Redis client.
type LiveLocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLiveLocationCache creates a cache over the given client. A non-positive
// ttl falls back to DefaultLiveLocationTTL.
func NewLiveLocationCache(client *redis.Client, ttl time.Duration) *LiveLocationCache {
	if ttl <= 0 {
		ttl = DefaultLiveLocationTTL
	}
	return &LiveLocationCache{client: client, ttl: ttl}
}

// liveLocationDTO is the stored JSON form of a live position.
type liveLocationDTO struct {
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Set stores the worker's latest position under its own key with a TTL.
func (c *LiveLocationCache) Set(ctx context.Context, live ports.LiveLocation) error {
	if err := live.WorkerID.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(liveLocationDTO{
		Latitude:   live.Point.Latitude(),
		Longitude:  live.Point.Longitude(),
		RecordedAt: live.RecordedAt,
	})
	if err != nil {
		return fmt.Errorf("encode live location: %w", err)
	}

	return c.client.Set(ctx, liveLocationKeyPrefix+live.WorkerID.String(), value, c.ttl).Err()
}

// Get returns the worker's latest cached position.
func (c *LiveLocationCache) Get(ctx context.Context, workerID kernel.UUID) (ports.LiveLocation, error) {
	if err := workerID.Validate(); err != nil {
		return ports.LiveLocation{}, err
	}

	value, err := c.client.Get(ctx, liveLocationKeyPrefix+workerID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.LiveLocation{}, errs.NewObjectNotFoundError("liveLocation", workerID.String())
		}
		return ports.LiveLocation{}, err
	}

	var dto liveLocationDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return ports.LiveLocation{}, fmt.Errorf("decode live location: %w", err)
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return ports.LiveLocation{}, err
	}

	return ports.LiveLocation{
		WorkerID:   workerID,
		Point:      point,
		RecordedAt: dto.RecordedAt,
	}, nil
}
