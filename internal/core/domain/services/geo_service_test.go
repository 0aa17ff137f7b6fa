package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

func testGeoService(t *testing.T, radiusMiles, averageSpeedMph float64) services.GeoService {
	t.Helper()

	center, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	geo, err := services.NewGeoService(center, radiusMiles, averageSpeedMph)
	require.NoError(t, err)
	return geo
}

func Test_NewGeoService_RejectsNonPositiveParameters(t *testing.T) {
	center, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	_, err = services.NewGeoService(center, 0, 20)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewGeoService(center, 25, -5)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func Test_GeoService_DistanceToSelfIsZero(t *testing.T) {
	geo := testGeoService(t, 25, 20)

	point, err := kernel.NewGeoPoint(37.7749, -122.4194)
	require.NoError(t, err)

	distance, err := geo.Distance(point, point)

	require.NoError(t, err)
	assert.Zero(t, distance)
}

func Test_GeoService_CenterIsAlwaysInsideServiceArea(t *testing.T) {
	for _, radius := range []float64{0.001, 1, 25, 500} {
		geo := testGeoService(t, radius, 20)

		inside, err := geo.IsWithinServiceArea(geo.ServiceCenter())

		require.NoError(t, err)
		assert.True(t, inside)
	}
}

func Test_GeoService_IsWithinServiceArea(t *testing.T) {
	// 25 mile radius around Manhattan.
	geo := testGeoService(t, 25, 20)

	t.Run("nearby point is inside", func(t *testing.T) {
		brooklyn, err := kernel.NewGeoPoint(40.6782, -73.9442)
		require.NoError(t, err)

		inside, err := geo.IsWithinServiceArea(brooklyn)

		require.NoError(t, err)
		assert.True(t, inside)
	})

	t.Run("distant point is outside", func(t *testing.T) {
		philadelphia, err := kernel.NewGeoPoint(39.9526, -75.1652)
		require.NoError(t, err)

		inside, err := geo.IsWithinServiceArea(philadelphia)

		require.NoError(t, err)
		assert.False(t, inside)
	})
}

func Test_GeoService_EnsureWithinServiceArea(t *testing.T) {
	geo := testGeoService(t, 25, 20)

	t.Run("inside returns nil", func(t *testing.T) {
		brooklyn, err := kernel.NewGeoPoint(40.6782, -73.9442)
		require.NoError(t, err)

		assert.NoError(t, geo.EnsureWithinServiceArea(brooklyn))
	})

	t.Run("outside returns typed error with measured distance", func(t *testing.T) {
		philadelphia, err := kernel.NewGeoPoint(39.9526, -75.1652)
		require.NoError(t, err)

		err = geo.EnsureWithinServiceArea(philadelphia)

		require.ErrorIs(t, err, errs.ErrOutOfServiceArea)
		var areaErr *errs.OutOfServiceAreaError
		require.ErrorAs(t, err, &areaErr)
		assert.Greater(t, areaErr.DistanceMiles, 25.0)
		assert.Equal(t, 25.0, areaErr.RadiusMiles)
	})
}

func Test_GeoService_EstimateETA(t *testing.T) {
	t.Run("zero distance is zero minutes", func(t *testing.T) {
		geo := testGeoService(t, 25, 20)

		point, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)

		minutes, err := geo.EstimateETA(point, point)

		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("rounds up to whole minutes", func(t *testing.T) {
		// One degree of latitude is about 69.09 miles, so at 60 mph the
		// travel time is about 69.1 minutes and rounds up to 70.
		geo := testGeoService(t, 100, 60)

		from, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		to, err := kernel.NewGeoPoint(1, 0)
		require.NoError(t, err)

		minutes, err := geo.EstimateETA(from, to)

		require.NoError(t, err)
		assert.Equal(t, 70, minutes)
	})
}
