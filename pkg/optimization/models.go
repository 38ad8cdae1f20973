// Package optimization solves the classical mean-variance portfolio problem
// in closed form: minimum-variance weights, efficient weights for a target
// return, and an efficient-frontier sweep built from two frontier portfolios.
//
// All operations are pure functions of their inputs. The sample mean vector
// and covariance matrix are derived per call and never shared, so an
// Optimizer is safe to use from multiple goroutines.
package optimization

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReturnsMatrix holds periodic net returns for a set of assets: one row per
// time period (chronological order), one column per asset. Column order
// defines asset order in every weight vector produced from it.
type ReturnsMatrix struct {
	assets []string
	data   *mat.Dense // T x N
}

// NewReturnsMatrix builds a validated returns matrix from row-major
// observations: observations[t][i] is the period-t return of assets[i].
//
// Validation is strict because every downstream computation assumes a clean
// matrix: at least 2 assets and 2 periods (ErrInsufficientData otherwise),
// rectangular rows, unique asset names, and no NaN/Inf entries. Missing
// values must be dropped or imputed by the caller before this point.
func NewReturnsMatrix(assets []string, observations [][]float64) (*ReturnsMatrix, error) {
	n := len(assets)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 assets, got %d", ErrInsufficientData, n)
	}
	t := len(observations)
	if t < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observation periods, got %d", ErrInsufficientData, t)
	}

	seen := make(map[string]struct{}, n)
	for _, asset := range assets {
		if asset == "" {
			return nil, fmt.Errorf("asset name cannot be empty")
		}
		if _, dup := seen[asset]; dup {
			return nil, fmt.Errorf("duplicate asset name %q", asset)
		}
		seen[asset] = struct{}{}
	}

	data := mat.NewDense(t, n, nil)
	for row, obs := range observations {
		if len(obs) != n {
			return nil, fmt.Errorf("observation row %d has %d values, expected %d", row, len(obs), n)
		}
		for col, v := range obs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("non-finite return %v at period %d for asset %s", v, row, assets[col])
			}
			data.Set(row, col, v)
		}
	}

	ordered := make([]string, n)
	copy(ordered, assets)

	return &ReturnsMatrix{assets: ordered, data: data}, nil
}

// NewReturnsMatrixFromSeries builds a returns matrix from per-asset return
// series. The assets slice fixes the column order; every series must have the
// same length.
func NewReturnsMatrixFromSeries(assets []string, series map[string][]float64) (*ReturnsMatrix, error) {
	if len(assets) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 assets, got %d", ErrInsufficientData, len(assets))
	}

	var periods int
	for i, asset := range assets {
		s, ok := series[asset]
		if !ok {
			return nil, fmt.Errorf("missing return series for asset %s", asset)
		}
		if i == 0 {
			periods = len(s)
			continue
		}
		if len(s) != periods {
			return nil, fmt.Errorf("inconsistent series lengths: asset %s has %d periods, expected %d", asset, len(s), periods)
		}
	}

	observations := make([][]float64, periods)
	for row := range observations {
		observations[row] = make([]float64, len(assets))
		for col, asset := range assets {
			observations[row][col] = series[asset][row]
		}
	}

	return NewReturnsMatrix(assets, observations)
}

// Assets returns the ordered asset names.
func (rm *ReturnsMatrix) Assets() []string {
	out := make([]string, len(rm.assets))
	copy(out, rm.assets)
	return out
}

// Periods returns T, the number of observation rows.
func (rm *ReturnsMatrix) Periods() int {
	t, _ := rm.data.Dims()
	return t
}

// NumAssets returns N, the number of asset columns.
func (rm *ReturnsMatrix) NumAssets() int {
	_, n := rm.data.Dims()
	return n
}

// Portfolio is a computed weight allocation together with its derived
// per-period statistics. Weights follow the asset order of the returns matrix
// they were computed from and sum to 1; negative entries are short positions.
type Portfolio struct {
	Assets         []string  `json:"assets"`
	Weights        []float64 `json:"weights"`
	ExpectedReturn float64   `json:"expected_return"`
	Volatility     float64   `json:"volatility"`
}

// WeightsByAsset returns the weights keyed by asset name.
func (p *Portfolio) WeightsByAsset() map[string]float64 {
	out := make(map[string]float64, len(p.Assets))
	for i, asset := range p.Assets {
		out[asset] = p.Weights[i]
	}
	return out
}

// FrontierPoint is one portfolio on the efficient frontier, identified by the
// mixing coefficient used to interpolate it from the two reference funds.
// Return and volatility are annualized.
type FrontierPoint struct {
	Mix        float64   `json:"mix"`
	Return     float64   `json:"return"`
	Volatility float64   `json:"volatility"`
	Weights    []float64 `json:"weights"`
}
