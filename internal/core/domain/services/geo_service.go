package services

import (
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// GeoService answers geospatial questions for the dispatch domain: distance
// between coordinates, service-area membership and straight-line arrival
// estimates. It is a pure service with no I/O and is safe for concurrent use.
//
// Road-network travel times, when a routing provider is configured, are an
// adapter concern; every caller must keep working with the straight-line
// estimates this service produces.
type GeoService struct {
	serviceCenter   kernel.GeoPoint
	radiusMiles     float64
	averageSpeedMph float64
}

// NewGeoService creates a GeoService for the disc of radiusMiles around
// serviceCenter. averageSpeedMph is the assumed worker travel speed used by
// EstimateETA; both numbers must be positive.
func NewGeoService(serviceCenter kernel.GeoPoint, radiusMiles float64, averageSpeedMph float64) (GeoService, error) {
	if err := serviceCenter.Validate(); err != nil {
		return GeoService{}, err
	}
	if radiusMiles <= 0 {
		return GeoService{}, errs.NewValueIsOutOfRangeError("radiusMiles", radiusMiles, 0, "unbounded")
	}
	if averageSpeedMph <= 0 {
		return GeoService{}, errs.NewValueIsOutOfRangeError("averageSpeedMph", averageSpeedMph, 0, "unbounded")
	}

	return GeoService{
		serviceCenter:   serviceCenter,
		radiusMiles:     radiusMiles,
		averageSpeedMph: averageSpeedMph,
	}, nil
}

// ServiceCenter returns the center of the service area.
func (g GeoService) ServiceCenter() kernel.GeoPoint {
	return g.serviceCenter
}

// RadiusMiles returns the service-area radius.
func (g GeoService) RadiusMiles() float64 {
	return g.radiusMiles
}

// AverageSpeedMph returns the assumed travel speed.
func (g GeoService) AverageSpeedMph() float64 {
	return g.averageSpeedMph
}

// Distance returns the great-circle distance between a and b in miles.
// Distance(a, a) is exactly zero.
func (g GeoService) Distance(a kernel.GeoPoint, b kernel.GeoPoint) (float64, error) {
	return a.DistanceMiles(b)
}

// DistanceFromCenter returns the great-circle distance from point to the
// service-area center in miles.
func (g GeoService) DistanceFromCenter(point kernel.GeoPoint) (float64, error) {
	return point.DistanceMiles(g.serviceCenter)
}

// IsWithinServiceArea reports whether point lies inside the service disc.
// The boundary is inclusive.
func (g GeoService) IsWithinServiceArea(point kernel.GeoPoint) (bool, error) {
	distance, err := g.DistanceFromCenter(point)
	if err != nil {
		return false, err
	}

	return distance <= g.radiusMiles, nil
}

// EnsureWithinServiceArea returns an OutOfServiceAreaError carrying the
// measured distance when point lies outside the service disc, nil otherwise.
func (g GeoService) EnsureWithinServiceArea(point kernel.GeoPoint) error {
	distance, err := g.DistanceFromCenter(point)
	if err != nil {
		return err
	}

	if distance > g.radiusMiles {
		return errs.NewOutOfServiceAreaError(distance, g.radiusMiles)
	}

	return nil
}

// EstimateETA returns the whole minutes a worker needs to travel from one
// coordinate to the other at the configured average speed, rounded up.
func (g GeoService) EstimateETA(from kernel.GeoPoint, to kernel.GeoPoint) (int, error) {
	distance, err := from.DistanceMiles(to)
	if err != nil {
		return 0, err
	}

	return int(math.Ceil(distance / g.averageSpeedMph * 60)), nil
}
