package services

import (
	"fmt"
	"math"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/pkg/errs"
)

// TimeMultipliers holds the per-service price multipliers applied for
// time-sensitive scheduling. A multiplier of 1 means no adjustment.
type TimeMultipliers struct {
	Rush    float64
	Weekend float64
	Holiday float64
}

// ServiceRate is the catalog entry for one service type.
type ServiceRate struct {
	BasePrice       float64
	DurationMinutes int
	PricePerMile    float64
	Multipliers     TimeMultipliers
}

// RushWindow is a daily [StartHour, EndHour) interval, in the booking's
// local hours, during which the rush multiplier applies.
type RushWindow struct {
	StartHour int
	EndHour   int
}

// Contains reports whether hour falls inside the window.
func (w RushWindow) Contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// PricingConfig is the injected business configuration of the PricingEngine.
// Nothing here is hardcoded in the engine so that rates stay regionally
// configurable and tests can supply their own catalogs.
type PricingConfig struct {
	// Rates maps each supported service type to its catalog entry.
	Rates map[booking.ServiceType]ServiceRate

	// AddOns maps add-on identifiers to their flat price.
	AddOns map[string]float64

	// FreeRadiusMiles is the distance from the service center within which
	// no travel surcharge applies.
	FreeRadiusMiles float64

	// MinimumCharge is the floor below which no total may fall.
	MinimumCharge float64

	// RecurringDiscountRate is the fraction (0..1) taken off the subtotal
	// for recurring bookings.
	RecurringDiscountRate float64

	// RushWindows are the daily rush-hour intervals.
	RushWindows []RushWindow

	// Holidays is the set of holiday dates in "2006-01-02" form.
	Holidays map[string]struct{}
}

// Validate checks the configuration for values the engine cannot price with.
func (c PricingConfig) Validate() error {
	if len(c.Rates) == 0 {
		return errs.NewValueIsRequiredError("rates")
	}
	if c.FreeRadiusMiles < 0 {
		return errs.NewValueIsOutOfRangeError("freeRadiusMiles", c.FreeRadiusMiles, 0, "unbounded")
	}
	if c.MinimumCharge < 0 {
		return errs.NewValueIsOutOfRangeError("minimumCharge", c.MinimumCharge, 0, "unbounded")
	}
	if c.RecurringDiscountRate < 0 || c.RecurringDiscountRate > 1 {
		return errs.NewValueIsOutOfRangeError("recurringDiscountRate", c.RecurringDiscountRate, 0, 1)
	}
	for _, w := range c.RushWindows {
		if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
			return errs.NewValueIsInvalidErrorWithCause("rushWindows",
				fmt.Errorf("window [%d, %d) is not a valid hour range", w.StartHour, w.EndHour))
		}
	}

	return nil
}

// PriceRequest carries everything ComputePrice needs about one booking.
type PriceRequest struct {
	ServiceType             booking.ServiceType
	ScheduledAt             time.Time
	DistanceMiles           float64
	AddOnIDs                []string
	Recurring               bool
	SubscriptionDiscountPct float64
}

// PriceBreakdown itemizes a computed price for display. Each entry is
// rounded to cents independently, so the entries may not re-sum to the
// exact rounded total.
type PriceBreakdown struct {
	ServiceTotal   float64
	DistanceCharge float64
	TimeAdjustment float64
	AddOnsTotal    float64
	TotalDiscounts float64
}

// PricingResult is the outcome of a price computation.
type PricingResult struct {
	TotalPrice float64
	Breakdown  PriceBreakdown
}

// PricingEngine computes booking prices deterministically from a PricingConfig.
// It is pure and safe for concurrent use.
type PricingEngine struct {
	config PricingConfig
}

// NewPricingEngine creates a PricingEngine over the given configuration.
func NewPricingEngine(config PricingConfig) (PricingEngine, error) {
	if err := config.Validate(); err != nil {
		return PricingEngine{}, err
	}

	return PricingEngine{config: config}, nil
}

// ComputePrice prices one booking request.
//
// The computation runs unrounded end to end; rounding to cents happens once,
// on the values placed into the result. Exactly one time multiplier applies,
// chosen by priority holiday, then weekend, then rush hour. Recurring and
// subscription discounts both apply to the subtotal additively, never
// compounded. The total never falls below the configured minimum charge.
func (p PricingEngine) ComputePrice(request PriceRequest) (PricingResult, error) {
	rate, ok := p.config.Rates[request.ServiceType]
	if !ok {
		return PricingResult{}, errs.NewUnknownServiceTypeError(request.ServiceType.String())
	}

	if request.DistanceMiles < 0 {
		return PricingResult{}, errs.NewValueIsOutOfRangeError("distanceMiles", request.DistanceMiles, 0, "unbounded")
	}
	if request.SubscriptionDiscountPct < 0 || request.SubscriptionDiscountPct > 100 {
		return PricingResult{}, errs.NewValueIsOutOfRangeError("subscriptionDiscountPct", request.SubscriptionDiscountPct, 0, 100)
	}
	if request.ScheduledAt.IsZero() {
		return PricingResult{}, errs.NewValueIsRequiredError("scheduledAt")
	}

	distanceCharge := math.Max(0, request.DistanceMiles-p.config.FreeRadiusMiles) * rate.PricePerMile

	multiplier := p.timeMultiplier(request.ScheduledAt, rate.Multipliers)
	serviceTotal := rate.BasePrice * multiplier

	addOnsTotal := 0.0
	for _, id := range request.AddOnIDs {
		// Unknown add-on ids are ignored.
		addOnsTotal += p.config.AddOns[id]
	}

	subtotal := serviceTotal + distanceCharge + addOnsTotal

	discounts := 0.0
	if request.Recurring {
		discounts += subtotal * p.config.RecurringDiscountRate
	}
	discounts += subtotal * (request.SubscriptionDiscountPct / 100)

	total := math.Max(subtotal-discounts, p.config.MinimumCharge)

	return PricingResult{
		TotalPrice: roundCents(total),
		Breakdown: PriceBreakdown{
			ServiceTotal:   roundCents(serviceTotal),
			DistanceCharge: roundCents(distanceCharge),
			TimeAdjustment: roundCents(serviceTotal - rate.BasePrice),
			AddOnsTotal:    roundCents(addOnsTotal),
			TotalDiscounts: roundCents(discounts),
		},
	}, nil
}

// timeMultiplier picks the single multiplier for the scheduled moment.
// Zero-valued multipliers in the catalog mean "no adjustment".
func (p PricingEngine) timeMultiplier(at time.Time, multipliers TimeMultipliers) float64 {
	if _, holiday := p.config.Holidays[at.Format("2006-01-02")]; holiday {
		return orOne(multipliers.Holiday)
	}

	if weekday := at.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		return orOne(multipliers.Weekend)
	}

	for _, window := range p.config.RushWindows {
		if window.Contains(at.Hour()) {
			return orOne(multipliers.Rush)
		}
	}

	return 1
}

func orOne(multiplier float64) float64 {
	if multiplier == 0 {
		return 1
	}

	return multiplier
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
