package kernel_test

import (
	"testing"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.1, 71.4)
		require.NoError(t, err)
		assert.InDelta(t, 51.1, point.Latitude(), 1e-9)
		assert.InDelta(t, 71.4, point.Longitude(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		for _, pair := range [][2]float64{
			{kernel.MinLatitude, kernel.MinLongitude},
			{kernel.MaxLatitude, kernel.MaxLongitude},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(pair[0], pair[1])
			require.NoError(t, err)
		}
	})

	t.Run("out_of_range_coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"latitude too small", -90.01, 0},
			{"latitude too large", 90.01, 0},
			{"longitude too small", 0, -180.01},
			{"longitude too large", 0, 180.01},
			{"both out of range", 120, 250},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var point kernel.GeoPoint
		require.Error(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(51.1, 71.4)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(51.1, 71.4)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(51.2, 71.4)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	var zero kernel.GeoPoint
	_, err = a.IsEqual(zero)
	require.Error(t, err)
}

func TestGeoPoint_Cell(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.1, 71.4)
		require.NoError(t, err)

		first, err := point.Cell(kernel.DefaultCellResolution)
		require.NoError(t, err)

		for range 10 {
			again, cellErr := point.Cell(kernel.DefaultCellResolution)
			require.NoError(t, cellErr)
			assert.True(t, first.IsEqual(again))
			assert.Equal(t, first.String(), again.String())
		}
	})

	t.Run("carries_requested_resolution", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(-33.87, 151.21)
		require.NoError(t, err)

		cell, err := point.Cell(kernel.DefaultCellResolution)
		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultCellResolution, cell.Resolution())
	})

	t.Run("distinct_regions_map_to_distinct_cells", func(t *testing.T) {
		astana, err := kernel.NewGeoPoint(51.1, 71.4)
		require.NoError(t, err)
		almaty, err := kernel.NewGeoPoint(43.24, 76.89)
		require.NoError(t, err)

		cellA, err := astana.Cell(kernel.DefaultCellResolution)
		require.NoError(t, err)
		cellB, err := almaty.Cell(kernel.DefaultCellResolution)
		require.NoError(t, err)

		assert.False(t, cellA.IsEqual(cellB))
	})

	t.Run("resolution_out_of_range", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.1, 71.4)
		require.NoError(t, err)

		_, err = point.Cell(-1)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = point.Cell(16)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unconstructed_point_fails", func(t *testing.T) {
		var point kernel.GeoPoint
		_, err := point.Cell(kernel.DefaultCellResolution)
		require.Error(t, err)
	})
}

func TestCellIDFromString(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.1, 71.4)
		require.NoError(t, err)
		cell, err := point.Cell(kernel.DefaultCellResolution)
		require.NoError(t, err)

		parsed, err := kernel.CellIDFromString(cell.String())
		require.NoError(t, err)
		assert.True(t, cell.IsEqual(parsed))
		assert.Equal(t, cell.String(), parsed.String())
	})

	t.Run("parses_known_index", func(t *testing.T) {
		parsed, err := kernel.CellIDFromString("872153831ffffff")
		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultCellResolution, parsed.Resolution())

		point, err := kernel.NewGeoPoint(51.1, 71.4)
		require.NoError(t, err)
		cell, err := point.Cell(kernel.DefaultCellResolution)
		require.NoError(t, err)
		assert.True(t, cell.IsEqual(parsed))
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		for _, s := range []string{"", "not-a-cell", "zzzzzzzzzzzzzzz"} {
			_, err := kernel.CellIDFromString(s)
			require.Error(t, err, "input %q", s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var cell kernel.CellID
		require.Error(t, cell.Validate())
	})
}
