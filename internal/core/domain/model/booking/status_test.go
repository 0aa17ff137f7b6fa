package booking_test

import (
	"testing"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.Pending,
			booking.Assigned,
			booking.EnRoute,
			booking.InProgress,
			booking.Completed,
			booking.Cancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, booking.Unknown.Validate())
		require.Error(t, booking.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", booking.Pending.String())
	assert.Equal(t, "en_route", booking.EnRoute.String())
	assert.Equal(t, "in_progress", booking.InProgress.String())
	assert.Equal(t, "unknown", booking.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	s, err := booking.StatusFromString("en_route")
	require.NoError(t, err)
	assert.Equal(t, booking.EnRoute, s)

	_, err = booking.StatusFromString("teleported")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = booking.StatusFromString("unknown")
	require.Error(t, err)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[booking.Status][]booking.Status{
		booking.Pending:    {booking.Assigned, booking.Cancelled},
		booking.Assigned:   {booking.EnRoute, booking.Cancelled},
		booking.EnRoute:    {booking.InProgress, booking.Cancelled},
		booking.InProgress: {booking.Completed},
		booking.Completed:  {},
		booking.Cancelled:  {},
	}

	all := []booking.Status{
		booking.Pending, booking.Assigned, booking.EnRoute,
		booking.InProgress, booking.Completed, booking.Cancelled,
	}

	for from, targets := range allowed {
		legal := make(map[booking.Status]bool, len(targets))
		for _, to := range targets {
			legal[to] = true
		}
		for _, to := range all {
			assert.Equalf(t, legal[to], from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal_transition", func(t *testing.T) {
		s, err := booking.EnRoute.TransitionTo(booking.InProgress)
		require.NoError(t, err)
		assert.Equal(t, booking.InProgress, s)
	})

	t.Run("illegal_transition_returns_state_conflict", func(t *testing.T) {
		_, err := booking.InProgress.TransitionTo(booking.Assigned)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("cancel_not_reachable_from_in_progress", func(t *testing.T) {
		_, err := booking.InProgress.TransitionTo(booking.Cancelled)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("terminal_statuses_allow_nothing", func(t *testing.T) {
		assert.True(t, booking.Completed.IsTerminal())
		assert.True(t, booking.Cancelled.IsTerminal())

		_, err := booking.Completed.TransitionTo(booking.Pending)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
