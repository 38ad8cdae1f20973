package optimization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnsMatrix_Validation(t *testing.T) {
	valid := [][]float64{
		{0.01, 0.02},
		{-0.01, 0.01},
	}

	t.Run("too few assets", func(t *testing.T) {
		_, err := NewReturnsMatrix([]string{"A"}, [][]float64{{0.01}, {0.02}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("too few periods", func(t *testing.T) {
		_, err := NewReturnsMatrix([]string{"A", "B"}, [][]float64{{0.01, 0.02}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := NewReturnsMatrix([]string{"A", "B"}, [][]float64{
			{0.01, 0.02},
			{-0.01},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("duplicate asset names", func(t *testing.T) {
		_, err := NewReturnsMatrix([]string{"A", "A"}, valid)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("empty asset name", func(t *testing.T) {
		_, err := NewReturnsMatrix([]string{"A", ""}, valid)
		require.Error(t, err)
	})

	t.Run("NaN entry", func(t *testing.T) {
		_, err := NewReturnsMatrix([]string{"A", "B"}, [][]float64{
			{0.01, math.NaN()},
			{-0.01, 0.01},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-finite")
	})

	t.Run("Inf entry", func(t *testing.T) {
		_, err := NewReturnsMatrix([]string{"A", "B"}, [][]float64{
			{0.01, 0.02},
			{math.Inf(1), 0.01},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-finite")
	})

	t.Run("valid", func(t *testing.T) {
		rm, err := NewReturnsMatrix([]string{"A", "B"}, valid)
		require.NoError(t, err)
		assert.Equal(t, 2, rm.NumAssets())
		assert.Equal(t, 2, rm.Periods())
		assert.Equal(t, []string{"A", "B"}, rm.Assets())
	})
}

func TestNewReturnsMatrixFromSeries(t *testing.T) {
	series := map[string][]float64{
		"A": {0.01, -0.01, 0.02, 0.00},
		"B": {0.02, 0.01, -0.01, 0.03},
	}

	rm, err := NewReturnsMatrixFromSeries([]string{"A", "B"}, series)
	require.NoError(t, err)
	assert.Equal(t, 4, rm.Periods())
	assert.Equal(t, []string{"A", "B"}, rm.Assets())

	t.Run("missing series", func(t *testing.T) {
		_, err := NewReturnsMatrixFromSeries([]string{"A", "C"}, series)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing return series")
	})

	t.Run("inconsistent lengths", func(t *testing.T) {
		_, err := NewReturnsMatrixFromSeries([]string{"A", "B"}, map[string][]float64{
			"A": {0.01, -0.01},
			"B": {0.02, 0.01, -0.01},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inconsistent")
	})
}

func TestReturnsMatrix_AssetsIsACopy(t *testing.T) {
	rm, err := NewReturnsMatrix([]string{"A", "B"}, [][]float64{
		{0.01, 0.02},
		{-0.01, 0.01},
	})
	require.NoError(t, err)

	assets := rm.Assets()
	assets[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, rm.Assets())
}
