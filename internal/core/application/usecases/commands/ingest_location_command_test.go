package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestNewIngestLocationCommand_Valid(t *testing.T) {
	workerID := kernel.NewUUID()
	heading := 45.0
	speed := 28.5
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewIngestLocationCommand(workerID, 40.7128, -74.0060, &heading, &speed, at)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.WorkerID().IsEqual(workerID))
	assert.Equal(t, 40.7128, cmd.Point().Latitude())
	assert.Equal(t, at, cmd.RecordedAt())
}

func TestNewIngestLocationCommand_DefaultsTimestamp(t *testing.T) {
	cmd, err := commands.NewIngestLocationCommand(kernel.NewUUID(), 40.7, -74.0, nil, nil, time.Time{})

	require.NoError(t, err)
	assert.False(t, cmd.RecordedAt().IsZero())
}

func TestNewIngestLocationCommand_Invalid(t *testing.T) {
	t.Run("latitude out of range", func(t *testing.T) {
		_, err := commands.NewIngestLocationCommand(kernel.NewUUID(), 200, -74.0, nil, nil, time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := commands.NewIngestLocationCommand(kernel.NewUUID(), 40.7, -200, nil, nil, time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("heading out of range", func(t *testing.T) {
		heading := 361.0
		_, err := commands.NewIngestLocationCommand(kernel.NewUUID(), 40.7, -74.0, &heading, nil, time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative speed", func(t *testing.T) {
		speed := -3.0
		_, err := commands.NewIngestLocationCommand(kernel.NewUUID(), 40.7, -74.0, nil, &speed, time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
