// Package booking contains the Booking aggregate and its lifecycle state
// machine.
//
// A booking is created in pending status by the intake use case with its
// price fixed, is assigned to exactly one worker by the dispatch
// coordinator, progresses through en_route and in_progress, and terminates
// in completed or cancelled. Terminal bookings are retained for history;
// nothing deletes a booking.
package booking
