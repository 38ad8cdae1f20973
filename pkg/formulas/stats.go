// Package formulas provides the scalar and series statistics used around the
// portfolio optimizer: returns from prices, distribution moments, risk and
// performance ratios. Everything here is a pure function over float slices.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultTradingDays is the conventional number of trading days per year.
const DefaultTradingDays = 252

// Mean calculates the arithmetic mean of a slice of float64 values.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values.
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Skewness calculates the sample skewness of a return distribution.
// Negative skew means the left tail (losses) dominates.
func Skewness(data []float64) float64 {
	if len(data) < 3 {
		return 0
	}
	return stat.Skew(data, nil)
}

// Kurtosis calculates the excess kurtosis of a return distribution.
// Positive values indicate fatter tails than a normal distribution.
func Kurtosis(data []float64) float64 {
	if len(data) < 4 {
		return 0
	}
	return stat.ExKurtosis(data, nil)
}

// Covariance calculates the sample covariance between two datasets.
func Covariance(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// Correlation calculates the Pearson correlation coefficient between two datasets.
func Correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}

// CalculateReturns converts a price series to periodic net returns:
// Returns[i] = (Price[i+1] - Price[i]) / Price[i].
func CalculateReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return returns
}

// CalculateLogReturns converts a price series to continuously compounded
// returns: Returns[i] = ln(Price[i+1] / Price[i]). Non-positive prices yield
// a zero entry.
func CalculateLogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] > 0 && prices[i] > 0 {
			returns[i-1] = math.Log(prices[i] / prices[i-1])
		}
	}
	return returns
}

// AnnualizedReturn scales a mean periodic return to an annual figure.
func AnnualizedReturn(meanPeriodicReturn float64, periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultTradingDays
	}
	return meanPeriodicReturn * float64(periodsPerYear)
}

// AnnualizedVolatility calculates annualized volatility from periodic
// returns: StdDev * sqrt(periodsPerYear).
func AnnualizedVolatility(returns []float64, periodsPerYear int) float64 {
	if len(returns) < 2 {
		return 0
	}
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultTradingDays
	}
	return StdDev(returns) * math.Sqrt(float64(periodsPerYear))
}
