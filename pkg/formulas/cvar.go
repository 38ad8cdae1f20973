package formulas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// CalculateCVaR calculates Conditional Value at Risk at the given confidence
// level: the mean of the worst (1-confidence) fraction of returns. For 95%
// confidence that is the average of the worst 5%. Negative values are losses.
func CalculateCVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}
	if len(returns) == 1 {
		return returns[0]
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	tailProbability := 1.0 - confidence
	tailCount := int(math.Ceil(float64(len(sorted)) * tailProbability))
	if tailCount == 0 {
		tailCount = 1
	}
	if tailCount > len(sorted) {
		tailCount = len(sorted)
	}

	sum := 0.0
	for _, r := range sorted[:tailCount] {
		sum += r
	}
	return sum / float64(tailCount)
}

// CalculatePortfolioCVaR aggregates per-asset historical CVaRs into a
// portfolio-level figure as the weight-weighted average. A simplification:
// for joint tail behavior use MonteCarloCVaR with the portfolio's moments.
func CalculatePortfolioCVaR(weights []float64, returns [][]float64, confidence float64) float64 {
	if len(weights) == 0 || len(weights) != len(returns) {
		return 0.0
	}

	portfolioCVaR := 0.0
	for i, w := range weights {
		portfolioCVaR += w * CalculateCVaR(returns[i], confidence)
	}
	return portfolioCVaR
}

// MonteCarloCVaR estimates portfolio CVaR by sampling portfolio returns from
// a normal distribution with the portfolio's expected return and volatility.
// More useful than historical CVaR when the observation window is short.
func MonteCarloCVaR(expectedReturn, volatility float64, numSimulations int, confidence float64) float64 {
	if numSimulations <= 0 || volatility < 0 {
		return 0.0
	}

	normal := distuv.Normal{
		Mu:    expectedReturn,
		Sigma: math.Max(volatility, 1e-10),
	}

	simulated := make([]float64, numSimulations)
	for i := range simulated {
		simulated[i] = normal.Rand()
	}
	return CalculateCVaR(simulated, confidence)
}

// MonteCarloCVaRFromCovariance estimates portfolio CVaR from asset-level
// moments: the portfolio's expected return w'mu and variance w'Sigma*w are
// collapsed to a univariate normal which is then sampled.
func MonteCarloCVaRFromCovariance(
	covMatrix [][]float64,
	expectedReturns []float64,
	weights []float64,
	numSimulations int,
	confidence float64,
) float64 {
	n := len(weights)
	if n == 0 || len(expectedReturns) != n || len(covMatrix) != n {
		return 0.0
	}

	portfolioMu := 0.0
	for i := 0; i < n; i++ {
		portfolioMu += weights[i] * expectedReturns[i]
	}

	portfolioVariance := 0.0
	for i := 0; i < n; i++ {
		if len(covMatrix[i]) != n {
			return 0.0
		}
		for j := 0; j < n; j++ {
			portfolioVariance += weights[i] * weights[j] * covMatrix[i][j]
		}
	}

	return MonteCarloCVaR(portfolioMu, math.Sqrt(math.Max(portfolioVariance, 0)), numSimulations, confidence)
}
