package optimization

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// frontierDenomTol is the threshold below which e - d²/c is treated as zero,
// i.e. the frontier has collapsed to a single point.
const frontierDenomTol = 1e-12

// Optimizer computes closed-form mean-variance portfolios. The zero cost of
// construction is intentional: all state lives in the per-call estimates.
type Optimizer struct {
	log zerolog.Logger
}

// NewOptimizer creates a new optimizer. Pass zerolog.Nop() for a silent one.
func NewOptimizer(log zerolog.Logger) *Optimizer {
	return &Optimizer{
		log: log.With().Str("component", "optimizer").Logger(),
	}
}

// MinimumVariancePortfolio computes the unique full-investment portfolio with
// minimal variance: w = inv(Sigma)*1 / (1'inv(Sigma)1). This is the
// closed-form solution of the Lagrangian first-order conditions for
// minimizing w'Sigma*w subject to 1'w = 1.
func (o *Optimizer) MinimumVariancePortfolio(returns *ReturnsMatrix) (*Portfolio, error) {
	est, err := estimate(returns)
	if err != nil {
		return nil, err
	}

	p := o.buildPortfolio(returns, est, minimumVarianceWeights(est))

	o.log.Debug().
		Int("num_assets", returns.NumAssets()).
		Int("num_periods", returns.Periods()).
		Float64("expected_return", p.ExpectedReturn).
		Float64("volatility", p.Volatility).
		Msg("Computed minimum-variance portfolio")

	return p, nil
}

// EfficientPortfolio computes the minimum-variance portfolio among all
// portfolios with expected return equal to targetReturn.
//
// With c = 1'inv(Sigma)1, d = 1'inv(Sigma)mu and e = mu'inv(Sigma)mu, the
// solution is w = w_mvp + (lambda/2)*(inv(Sigma)mu - d*w_mvp) where
// lambda = 2*(target - d/c) / (e - d²/c). Because mu'w_mvp = d/c, a target
// equal to the MVP's own return yields lambda = 0 and the MVP itself.
func (o *Optimizer) EfficientPortfolio(returns *ReturnsMatrix, targetReturn float64) (*Portfolio, error) {
	est, err := estimate(returns)
	if err != nil {
		return nil, err
	}

	w, lambda, err := efficientWeights(est, targetReturn)
	if err != nil {
		return nil, err
	}

	p := o.buildPortfolio(returns, est, w)

	o.log.Debug().
		Int("num_assets", returns.NumAssets()).
		Float64("target_return", targetReturn).
		Float64("lambda", lambda).
		Float64("volatility", p.Volatility).
		Msg("Computed efficient portfolio")

	return p, nil
}

// minimumVarianceWeights returns inv(Sigma)*1 normalized to sum to 1. The
// normalizer is c = 1'inv(Sigma)1, which is strictly positive for a positive
// definite Sigma.
func minimumVarianceWeights(est *estimates) []float64 {
	n := est.invOnes.Len()
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = est.invOnes.AtVec(i) / est.c
	}
	return w
}

// efficientWeights solves for the target-return portfolio. The denominator
// e - d²/c is zero exactly when all assets share one expected return, which
// collapses the frontier to a point.
func efficientWeights(est *estimates, targetReturn float64) ([]float64, float64, error) {
	denom := est.e - est.d*est.d/est.c
	if math.Abs(denom) < frontierDenomTol {
		return nil, 0, fmt.Errorf("%w: expected returns are indistinguishable (e - d^2/c = %g)",
			ErrDegenerateFrontier, denom)
	}

	mvp := minimumVarianceWeights(est)
	lambda := 2 * (targetReturn - est.d/est.c) / denom

	w := make([]float64, len(mvp))
	for i := range w {
		w[i] = mvp[i] + (lambda/2)*(est.invMu.AtVec(i)-est.d*mvp[i])
	}
	return w, lambda, nil
}

// buildPortfolio assembles the result with its derived per-period statistics.
func (o *Optimizer) buildPortfolio(returns *ReturnsMatrix, est *estimates, w []float64) *Portfolio {
	return &Portfolio{
		Assets:         returns.Assets(),
		Weights:        w,
		ExpectedReturn: est.portfolioReturn(w),
		Volatility:     math.Sqrt(est.portfolioVariance(w)),
	}
}
