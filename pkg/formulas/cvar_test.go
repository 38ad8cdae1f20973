package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCVaR(t *testing.T) {
	returns := []float64{-0.10, -0.05, -0.02, 0.00, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06}

	// 90% confidence keeps the worst 10% of ten observations: one value.
	assert.InDelta(t, -0.10, CalculateCVaR(returns, 0.90), 1e-12)

	// 80% confidence averages the worst two.
	assert.InDelta(t, (-0.10-0.05)/2, CalculateCVaR(returns, 0.80), 1e-12)

	assert.Equal(t, 0.0, CalculateCVaR(nil, 0.95))
	assert.Equal(t, -0.03, CalculateCVaR([]float64{-0.03}, 0.95))
}

func TestCalculatePortfolioCVaR(t *testing.T) {
	weights := []float64{0.6, 0.4}
	returns := [][]float64{
		{-0.10, -0.05, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06, 0.07, 0.08},
		{-0.02, -0.01, 0.00, 0.01, 0.01, 0.02, 0.02, 0.03, 0.03, 0.04},
	}

	expected := 0.6*CalculateCVaR(returns[0], 0.90) + 0.4*CalculateCVaR(returns[1], 0.90)
	assert.InDelta(t, expected, CalculatePortfolioCVaR(weights, returns, 0.90), 1e-12)

	assert.Equal(t, 0.0, CalculatePortfolioCVaR(nil, returns, 0.90))
	assert.Equal(t, 0.0, CalculatePortfolioCVaR([]float64{1}, returns, 0.90))
}

func TestMonteCarloCVaR(t *testing.T) {
	// Expected shortfall of N(0, 0.01) at 95%: -sigma * phi(1.645)/0.05,
	// roughly -0.0206. Sampling noise stays well inside the tolerance at
	// this simulation count.
	cvar := MonteCarloCVaR(0.0, 0.01, 50000, 0.95)
	assert.InDelta(t, -0.0206, cvar, 0.003)
	assert.Less(t, cvar, 0.0)

	assert.Equal(t, 0.0, MonteCarloCVaR(0.0, 0.01, 0, 0.95))
	assert.Equal(t, 0.0, MonteCarloCVaR(0.0, -0.01, 100, 0.95))
}

func TestMonteCarloCVaRFromCovariance(t *testing.T) {
	cov := [][]float64{
		{0.0004, 0.0001},
		{0.0001, 0.0003},
	}
	mu := []float64{0.001, 0.0005}
	weights := []float64{0.5, 0.5}

	cvar := MonteCarloCVaRFromCovariance(cov, mu, weights, 50000, 0.95)
	require.Less(t, cvar, 0.0)

	// The tail average sits below the portfolio mean by construction.
	portfolioMu := 0.5*mu[0] + 0.5*mu[1]
	assert.Less(t, cvar, portfolioMu)

	assert.Equal(t, 0.0, MonteCarloCVaRFromCovariance(cov, mu, nil, 100, 0.95))
	assert.Equal(t, 0.0, MonteCarloCVaRFromCovariance(cov, []float64{0.001}, weights, 100, 0.95))
}
