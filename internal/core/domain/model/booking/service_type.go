package booking

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ServiceType identifies the kind of cleaning service booked. The pricing
// catalog is keyed by service type; a type missing from the catalog yields
// an UnknownServiceTypeError at pricing time.
type ServiceType string

const (
	ServiceRegular    ServiceType = "regular"
	ServiceDeep       ServiceType = "deep"
	ServiceMoveInOut  ServiceType = "move_in_out"
	ServiceAirbnb     ServiceType = "airbnb"
	ServiceOffice     ServiceType = "office"
	ServiceCommercial ServiceType = "commercial"
)

// AllServiceTypes lists the supported service types in catalog order.
func AllServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceRegular,
		ServiceDeep,
		ServiceMoveInOut,
		ServiceAirbnb,
		ServiceOffice,
		ServiceCommercial,
	}
}

// Validate checks that the service type is one of the supported values.
func (t ServiceType) Validate() error {
	switch t {
	case ServiceRegular, ServiceDeep, ServiceMoveInOut, ServiceAirbnb, ServiceOffice, ServiceCommercial:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("serviceType",
		fmt.Errorf("%q is not a valid service type", string(t)))
}

// String returns the wire representation of the service type.
func (t ServiceType) String() string {
	return string(t)
}
