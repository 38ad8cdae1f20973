package optimization

import (
	"math"
	"math/rand"
)

// SimulatedPortfolio is one random long-only portfolio with its annualized
// statistics.
type SimulatedPortfolio struct {
	Weights    []float64 `json:"weights"`
	Return     float64   `json:"return"`
	Volatility float64   `json:"volatility"`
	Sharpe     float64   `json:"sharpe"`
}

// MonteCarloConfig controls the random-portfolio simulation.
type MonteCarloConfig struct {
	NumPortfolios  int
	PeriodsPerYear int
	RiskFreeRate   float64 // annual, as a decimal
	Seed           int64
}

// MonteCarloResult holds the simulated cloud together with the best
// portfolios found in it. The cloud is what gets plotted against the analytic
// frontier: every simulated point must lie on or inside the curve.
type MonteCarloResult struct {
	Portfolios    []SimulatedPortfolio `json:"portfolios"`
	MaxSharpe     SimulatedPortfolio   `json:"max_sharpe"`
	MinVolatility SimulatedPortfolio   `json:"min_volatility"`
}

// RandomPortfolios simulates long-only portfolios with random weights drawn
// from normalized exponential variates. Deterministic for a fixed seed.
//
// Only the sample moments are needed, so this works even when the covariance
// matrix is singular and the closed-form solutions are unavailable.
func (o *Optimizer) RandomPortfolios(returns *ReturnsMatrix, cfg MonteCarloConfig) *MonteCarloResult {
	if cfg.NumPortfolios <= 0 {
		cfg.NumPortfolios = 1000
	}
	if cfg.PeriodsPerYear <= 0 {
		cfg.PeriodsPerYear = DefaultPeriodsPerYear
	}

	m := estimateMoments(returns)
	rng := rand.New(rand.NewSource(cfg.Seed))
	n := returns.NumAssets()
	annualize := float64(cfg.PeriodsPerYear)

	result := &MonteCarloResult{
		Portfolios:    make([]SimulatedPortfolio, 0, cfg.NumPortfolios),
		MaxSharpe:     SimulatedPortfolio{Sharpe: math.Inf(-1)},
		MinVolatility: SimulatedPortfolio{Volatility: math.Inf(1)},
	}

	for s := 0; s < cfg.NumPortfolios; s++ {
		w := randomWeights(n, rng)

		annReturn := annualize * m.portfolioReturn(w)
		annVol := math.Sqrt(annualize) * math.Sqrt(m.portfolioVariance(w))

		sharpe := math.Inf(-1)
		if annVol > 0 {
			sharpe = (annReturn - cfg.RiskFreeRate) / annVol
		}

		sp := SimulatedPortfolio{
			Weights:    w,
			Return:     annReturn,
			Volatility: annVol,
			Sharpe:     sharpe,
		}
		result.Portfolios = append(result.Portfolios, sp)

		if sp.Sharpe > result.MaxSharpe.Sharpe {
			result.MaxSharpe = sp
		}
		if sp.Volatility < result.MinVolatility.Volatility {
			result.MinVolatility = sp
		}
	}

	o.log.Debug().
		Int("num_portfolios", cfg.NumPortfolios).
		Float64("max_sharpe", result.MaxSharpe.Sharpe).
		Float64("min_volatility", result.MinVolatility.Volatility).
		Msg("Simulated random portfolios")

	return result
}

// randomWeights draws n positive weights summing to 1.
func randomWeights(n int, rng *rand.Rand) []float64 {
	w := make([]float64, n)
	sum := 0.0
	for i := range w {
		w[i] = rng.ExpFloat64()
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}
