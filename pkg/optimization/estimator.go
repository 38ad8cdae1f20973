package optimization

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// moments holds the sample statistics derived from one returns matrix:
// column means and the sample covariance matrix (T-1 denominator).
type moments struct {
	mu    *mat.VecDense
	sigma *mat.SymDense
}

// estimates extends moments with the Cholesky factorization of sigma and the
// solved systems and scalar constants every closed-form solution is built
// from: invOnes = inv(sigma)*1, invMu = inv(sigma)*mu, c = 1'inv(sigma)1,
// d = 1'inv(sigma)mu, e = mu'inv(sigma)mu.
type estimates struct {
	moments
	invOnes *mat.VecDense
	invMu   *mat.VecDense
	c, d, e float64
}

// estimateMoments computes mu and sigma from the returns matrix.
func estimateMoments(rm *ReturnsMatrix) *moments {
	t, n := rm.data.Dims()

	mu := mat.NewVecDense(n, nil)
	col := make([]float64, t)
	for j := 0; j < n; j++ {
		mat.Col(col, j, rm.data)
		mu.SetVec(j, stat.Mean(col, nil))
	}

	var sigma mat.SymDense
	stat.CovarianceMatrix(&sigma, rm.data, nil)

	return &moments{mu: mu, sigma: &sigma}
}

// estimate factorizes the covariance matrix and precomputes the solved
// systems and scalars. A covariance matrix that is not positive definite
// (T <= N, duplicated or collinear columns) fails the Cholesky factorization
// and surfaces ErrSingularCovariance.
func estimate(rm *ReturnsMatrix) (*estimates, error) {
	m := estimateMoments(rm)
	n := m.mu.Len()

	var chol mat.Cholesky
	if ok := chol.Factorize(m.sigma); !ok {
		return nil, fmt.Errorf("%w: Cholesky factorization failed for %dx%d matrix (T=%d observations)",
			ErrSingularCovariance, n, n, rm.Periods())
	}

	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}

	invOnes := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(invOnes, ones); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}

	invMu := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(invMu, m.mu); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}

	return &estimates{
		moments: *m,
		invOnes: invOnes,
		invMu:   invMu,
		c:       mat.Dot(ones, invOnes),
		d:       mat.Dot(m.mu, invOnes),
		e:       mat.Dot(m.mu, invMu),
	}, nil
}

// portfolioReturn computes w'mu for a weight slice.
func (m *moments) portfolioReturn(w []float64) float64 {
	return mat.Dot(mat.NewVecDense(len(w), w), m.mu)
}

// portfolioVariance computes w'Sigma*w for a weight slice.
func (m *moments) portfolioVariance(w []float64) float64 {
	v := mat.NewVecDense(len(w), w)
	return mat.Inner(v, m.sigma, v)
}
