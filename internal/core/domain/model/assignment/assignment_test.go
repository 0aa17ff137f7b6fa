package assignment_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	t.Run("creates_assignment_in_assigned_phase", func(t *testing.T) {
		// Given
		eta := time.Now().UTC().Add(25 * time.Minute)

		// When
		a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC(), &eta)

		// Then
		require.NoError(t, err)
		assert.Equal(t, booking.Assigned, a.Status())
		assert.True(t, a.IsActive())
		require.NotNil(t, a.ETA())
		require.NoError(t, a.Validate())
	})

	t.Run("eta_is_optional", func(t *testing.T) {
		a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC(), nil)
		require.NoError(t, err)
		assert.Nil(t, a.ETA())
	})

	t.Run("rejects_missing_references", func(t *testing.T) {
		_, err := assignment.NewAssignment(kernel.UUID{}, kernel.NewUUID(), time.Now(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAssignment_Mirror(t *testing.T) {
	newAssigned := func(t *testing.T) *assignment.Assignment {
		t.Helper()
		a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC(), nil)
		require.NoError(t, err)
		return a
	}

	t.Run("follows_booking_phases", func(t *testing.T) {
		// Given
		a := newAssigned(t)

		// When / Then
		require.NoError(t, a.Mirror(booking.EnRoute))
		require.NoError(t, a.Mirror(booking.InProgress))
		require.NoError(t, a.Mirror(booking.Completed))
		assert.False(t, a.IsActive())
	})

	t.Run("rejects_phase_skips", func(t *testing.T) {
		a := newAssigned(t)
		require.ErrorIs(t, a.Mirror(booking.InProgress), errs.ErrStateConflict)
		assert.Equal(t, booking.Assigned, a.Status())
	})

	t.Run("cancellation_ends_the_assignment", func(t *testing.T) {
		a := newAssigned(t)
		require.NoError(t, a.Mirror(booking.Cancelled))
		assert.False(t, a.IsActive())
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("restores_en_route_assignment", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), booking.EnRoute, time.Now().UTC(), nil)

		require.NoError(t, err)
		assert.Equal(t, booking.EnRoute, a.Status())
		assert.True(t, a.IsActive())
	})

	t.Run("rejects_pending_phase", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), booking.Pending, time.Now().UTC(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
