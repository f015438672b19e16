package kernel_test

import (
	"fmt"
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metersPerDegreeLat is the great-circle length of one degree of latitude on the
// spherical Earth model used by GeoPoint (R * pi / 180).
const metersPerDegreeLat = 111194.92664455873

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		testCases := []struct {
			lat float64
			lng float64
		}{
			{0, 0},
			{24.7136, 46.6753},
			{-90, -180},
			{90, 180},
			{-33.8688, 151.2093},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("lat=%v lng=%v", tc.lat, tc.lng), func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.NoError(t, err)
				require.NoError(t, point.Validate())
				assert.Equal(t, tc.lat, point.Latitude())
				assert.Equal(t, tc.lng, point.Longitude())
			})
		}
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		for _, lat := range []float64{-90.0001, 91, 100000} {
			_, err := kernel.NewGeoPoint(lat, 0)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "latitude")
		}
	})

	t.Run("should reject out of range longitude", func(t *testing.T) {
		for _, lng := range []float64{-180.0001, 181, 360} {
			_, err := kernel.NewGeoPoint(0, lng)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "longitude")
		}
	})

	t.Run("should reject both coordinates out of range with joined error", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(95, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})

	t.Run("constructed point is valid", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(10, 20)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("points with same coordinates are equal", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(24.7136, 46.6753)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(24.7136, 46.6753)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("points with different coordinates are not equal", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(24.7136, 46.6753)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(24.7137, 46.6753)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)
		var b kernel.GeoPoint

		_, err = a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(24.7136, 46.6753)
		require.NoError(t, err)

		distance, err := point.DistanceTo(point)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 0.001)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(1, 0)
		require.NoError(t, err)

		distance, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, metersPerDegreeLat, distance, 0.01)
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(0, 10)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(0, 11)
		require.NoError(t, err)

		distance, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, metersPerDegreeLat, distance, 0.01)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(24.7136, 46.6753)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(24.6, 46.7)
		require.NoError(t, err)

		ab, err := a.DistanceTo(b)
		require.NoError(t, err)
		ba, err := b.DistanceTo(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 0.000001)
	})

	t.Run("sub kilometer distances resolve to meters", func(t *testing.T) {
		// 500 m north of the reference point.
		a, err := kernel.NewGeoPoint(24.7136, 46.6753)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(24.7136+500/metersPerDegreeLat, 46.6753)
		require.NoError(t, err)

		distance, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, 500, distance, 0.5)
	})

	t.Run("distance from zero value fails", func(t *testing.T) {
		var a kernel.GeoPoint
		b, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)

		_, err = a.DistanceTo(b)

		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	t.Run("formats coordinates with six decimals", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(24.7136, 46.6753)

		require.NoError(t, err)
		assert.Equal(t, "GeoPoint(24.713600,46.675300)", point.String())
	})
}
