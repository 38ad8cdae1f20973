package optimization

import (
	"fmt"
	"math"
)

// Defaults for the frontier sweep. The mixing range brackets the
// minimum-variance fund (a=0) and the reference efficient fund (a=1) with
// room on both sides so the inefficient lower branch is visible too.
const (
	DefaultPeriodsPerYear = 252
	DefaultMixStart       = -0.4
	DefaultMixEnd         = 1.9
	DefaultMixStep        = 0.01
	DefaultTargetMultiple = 2.0
)

// MixRange is an ordered sweep of mixing coefficients: Start, Start+Step, ...
// up to and including End (within floating-point tolerance).
type MixRange struct {
	Start float64
	End   float64
	Step  float64
}

// Validate checks that the range produces at least one value.
func (r MixRange) Validate() error {
	if r.Step <= 0 {
		return fmt.Errorf("mix range step must be positive, got %g", r.Step)
	}
	if r.End < r.Start {
		return fmt.Errorf("mix range end %g is before start %g", r.End, r.Start)
	}
	return nil
}

// Values materializes the sweep. The half-step tolerance keeps End included
// when (End-Start)/Step is a whole number up to rounding.
func (r MixRange) Values() []float64 {
	count := int(math.Floor((r.End-r.Start)/r.Step+0.5)) + 1
	out := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, r.Start+float64(i)*r.Step)
	}
	return out
}

// FrontierConfig controls the efficient-frontier sweep.
//
// The second fund is the efficient portfolio for a reference target return:
// either TargetReturn when set, or TargetMultiple times the MVP's own
// expected return. Zero values fall back to the package defaults.
type FrontierConfig struct {
	Mix            MixRange
	PeriodsPerYear int
	TargetReturn   *float64 // explicit reference target, overrides TargetMultiple
	TargetMultiple float64  // multiple of the MVP return, default 2.0
}

func (cfg *FrontierConfig) applyDefaults() {
	if cfg.Mix == (MixRange{}) {
		cfg.Mix = MixRange{Start: DefaultMixStart, End: DefaultMixEnd, Step: DefaultMixStep}
	}
	if cfg.PeriodsPerYear <= 0 {
		cfg.PeriodsPerYear = DefaultPeriodsPerYear
	}
	if cfg.TargetMultiple == 0 {
		cfg.TargetMultiple = DefaultTargetMultiple
	}
}

// EfficientFrontier sweeps a family of frontier portfolios by linear
// interpolation between the minimum-variance fund and a reference efficient
// fund: w(a) = (1-a)*w_mvp + a*w_ref. Any linear combination of two frontier
// portfolios is itself on the frontier (two-fund separation), so the sweep
// characterizes the whole curve. Returns one annualized point per mix value.
func (o *Optimizer) EfficientFrontier(returns *ReturnsMatrix, cfg FrontierConfig) ([]FrontierPoint, error) {
	cfg.applyDefaults()
	if err := cfg.Mix.Validate(); err != nil {
		return nil, err
	}

	est, err := estimate(returns)
	if err != nil {
		return nil, err
	}

	mvp := minimumVarianceWeights(est)

	target := est.d / est.c * cfg.TargetMultiple
	if cfg.TargetReturn != nil {
		target = *cfg.TargetReturn
	}

	ref, _, err := efficientWeights(est, target)
	if err != nil {
		return nil, err
	}

	mixes := cfg.Mix.Values()
	annualize := float64(cfg.PeriodsPerYear)
	n := len(mvp)

	points := make([]FrontierPoint, 0, len(mixes))
	for _, a := range mixes {
		w := make([]float64, n)
		for i := range w {
			w[i] = (1-a)*mvp[i] + a*ref[i]
		}
		points = append(points, FrontierPoint{
			Mix:        a,
			Return:     annualize * est.portfolioReturn(w),
			Volatility: math.Sqrt(annualize) * math.Sqrt(est.portfolioVariance(w)),
			Weights:    w,
		})
	}

	o.log.Debug().
		Int("num_points", len(points)).
		Float64("reference_target", target).
		Int("periods_per_year", cfg.PeriodsPerYear).
		Msg("Computed efficient frontier")

	return points, nil
}
