// Package worker contains the Worker aggregate: a service provider with a
// caller-directed availability status, a last known position, and a
// concurrent-job counter bounded by a configurable limit.
//
// Worker status transitions carry no ordering rules; assignment eligibility
// is governed solely by the offline status and the capacity counter.
package worker
