package optimization

import "errors"

// Sentinel errors returned by the optimizer. All of them indicate a problem
// with the inputs, not a transient condition: retrying the same call with the
// same returns matrix will fail identically. Callers are expected to fix the
// inputs (drop collinear assets, supply more observations, spread expected
// returns) rather than retry.
var (
	// ErrInsufficientData is returned when the returns matrix has fewer than
	// two assets or fewer than two observation periods.
	ErrInsufficientData = errors.New("optimization: insufficient data")

	// ErrSingularCovariance is returned when the sample covariance matrix is
	// not positive definite and cannot be factorized, e.g. when T <= N or the
	// matrix contains duplicated or collinear asset return series.
	ErrSingularCovariance = errors.New("optimization: covariance matrix is singular")

	// ErrDegenerateFrontier is returned when the efficient frontier collapses
	// to a single point because all assets carry the same expected return.
	ErrDegenerateFrontier = errors.New("optimization: efficient frontier is degenerate")
)
