// Package services provides domain services that implement business logic
// spanning multiple aggregates of the dispatch system.
//
// The package includes:
//   - GeoService: distance, service-area membership and straight-line ETA
//   - PricingEngine: deterministic booking price computation from an
//     injected catalog and business-rule configuration
//   - WorkerDispatcher: selection of the best worker for a pending booking
//
// All services here are pure: no I/O, no shared mutable state, safe for
// unlimited concurrent use.
package services
