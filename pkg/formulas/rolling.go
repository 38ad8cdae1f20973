package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// CalculateSMA calculates the simple moving average of the closing prices
// and returns the most recent value, or nil if there is not enough data.
func CalculateSMA(closes []float64, length int) *float64 {
	if length <= 0 || len(closes) < length {
		return nil
	}

	sma := talib.Sma(closes, length)
	if len(sma) == 0 || isNaN(sma[len(sma)-1]) {
		return nil
	}

	result := sma[len(sma)-1]
	return &result
}

// CalculateEMA calculates the exponential moving average of the closing
// prices and returns the most recent value, or nil if there is not enough
// data.
func CalculateEMA(closes []float64, length int) *float64 {
	if length <= 0 || len(closes) < length {
		return nil
	}

	ema := talib.Ema(closes, length)
	if len(ema) == 0 || isNaN(ema[len(ema)-1]) {
		return nil
	}

	result := ema[len(ema)-1]
	return &result
}

// RollingVolatility computes the annualized rolling standard deviation of
// periodic returns over the given window. The first window-1 entries are the
// library's zero warm-up values and should be ignored by callers.
func RollingVolatility(returns []float64, window, periodsPerYear int) []float64 {
	if window <= 1 || len(returns) < window {
		return []float64{}
	}
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultTradingDays
	}

	// nbDev=1 leaves the deviation unscaled.
	rolling := talib.StdDev(returns, window, 1)

	scale := math.Sqrt(float64(periodsPerYear))
	out := make([]float64, len(rolling))
	for i, v := range rolling {
		if isNaN(v) {
			out[i] = v
			continue
		}
		out[i] = v * scale
	}
	return out
}

// isNaN checks if a float64 is NaN.
func isNaN(f float64) bool {
	return f != f
}
