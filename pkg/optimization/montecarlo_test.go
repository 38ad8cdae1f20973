package optimization

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPortfolios_Deterministic(t *testing.T) {
	rm := threeAssetMatrix(t)
	opt := NewOptimizer(zerolog.Nop())
	cfg := MonteCarloConfig{NumPortfolios: 500, Seed: 42}

	first := opt.RandomPortfolios(rm, cfg)
	second := opt.RandomPortfolios(rm, cfg)

	require.Len(t, second.Portfolios, len(first.Portfolios))
	assert.Equal(t, first.MaxSharpe.Weights, second.MaxSharpe.Weights)
	assert.Equal(t, first.MinVolatility.Volatility, second.MinVolatility.Volatility)
}

func TestRandomPortfolios_WeightNormalization(t *testing.T) {
	rm := threeAssetMatrix(t)
	opt := NewOptimizer(zerolog.Nop())

	result := opt.RandomPortfolios(rm, MonteCarloConfig{NumPortfolios: 200, Seed: 1})
	require.Len(t, result.Portfolios, 200)

	for _, sp := range result.Portfolios {
		sum := 0.0
		for _, w := range sp.Weights {
			assert.GreaterOrEqual(t, w, 0.0, "simulated portfolios are long-only")
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestRandomPortfolios_BestPicks(t *testing.T) {
	rm := threeAssetMatrix(t)
	opt := NewOptimizer(zerolog.Nop())

	result := opt.RandomPortfolios(rm, MonteCarloConfig{NumPortfolios: 300, Seed: 3})

	for _, sp := range result.Portfolios {
		assert.LessOrEqual(t, sp.Sharpe, result.MaxSharpe.Sharpe)
		assert.GreaterOrEqual(t, sp.Volatility, result.MinVolatility.Volatility)
	}
}

func TestRandomPortfolios_CloudInsideFrontier(t *testing.T) {
	rm := threeAssetMatrix(t)
	opt := NewOptimizer(zerolog.Nop())

	mvp, err := opt.MinimumVariancePortfolio(rm)
	require.NoError(t, err)

	result := opt.RandomPortfolios(rm, MonteCarloConfig{
		NumPortfolios:  1000,
		PeriodsPerYear: 252,
		Seed:           9,
	})

	// The MVP is the global variance minimum over all full-investment
	// portfolios, so no simulated portfolio can undercut it.
	annualizedMVPVol := mvp.Volatility * math.Sqrt(252)
	for _, sp := range result.Portfolios {
		assert.GreaterOrEqual(t, sp.Volatility, annualizedMVPVol-1e-12)
	}
}
