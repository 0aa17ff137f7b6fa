package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in decimal degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in decimal degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in decimal degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in decimal degrees.
	MaxLongitude = 180.0

	// earthRadiusMiles is the mean Earth radius used by the haversine formula.
	earthRadiusMiles = 3958.8
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. Points must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object representing a geographic coordinate
// in decimal degrees. The zero value is invalid; use NewGeoPoint, which
// validates latitude against ±90 and longitude against ±180.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(37.7749, -122.4194)
//	if err != nil {
//	    // out-of-range coordinate
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal
// degrees. Returns a ValueIsOutOfRangeError if either component is outside
// its valid range.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(lat), point.setLongitude(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
// The zero value fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// IsEqual compares two points for exact coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceMiles returns the great-circle (haversine) distance to another
// point in miles. The distance from a point to itself is exactly zero.
// Both points must be properly constructed.
func (p GeoPoint) DistanceMiles(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := degreesToRadians(other.lat - p.lat)
	dLng := degreesToRadians(other.lng - p.lng)

	rLat1 := degreesToRadians(p.lat)
	rLat2 := degreesToRadians(other.lat)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c, nil
}

// setLatitude sets the latitude with range validation.
// Pointer receiver is intentional: private setters carry the validation of
// business requirements during construction, as elsewhere in the kernel.
func (p *GeoPoint) setLatitude(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLongitude sets the longitude with range validation.
func (p *GeoPoint) setLongitude(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}

	p.lng = lng
	return nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
