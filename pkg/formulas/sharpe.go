package formulas

import (
	"math"
)

// CalculateSharpeRatio calculates the annualized Sharpe ratio:
// (mean periodic return - periodic risk-free rate) / periodic std dev,
// scaled by sqrt(periodsPerYear). riskFreeRate is annual, as a decimal.
// Returns nil on insufficient data or zero volatility.
func CalculateSharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) *float64 {
	if len(returns) < 2 {
		return nil
	}
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultTradingDays
	}

	stdDev := StdDev(returns)
	if stdDev == 0 {
		return nil
	}

	periodicRiskFree := riskFreeRate / float64(periodsPerYear)
	sharpe := (Mean(returns) - periodicRiskFree) / stdDev

	annualized := sharpe * math.Sqrt(float64(periodsPerYear))
	return &annualized
}

// CalculateSortinoRatio calculates the annualized Sortino ratio, which
// penalizes only downside volatility: deviations below the periodic minimum
// acceptable return (targetReturn, annual). Returns nil when there are no
// observations below the MAR.
func CalculateSortinoRatio(returns []float64, riskFreeRate, targetReturn float64, periodsPerYear int) *float64 {
	if len(returns) < 2 {
		return nil
	}
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultTradingDays
	}

	periodicMAR := targetReturn / float64(periodsPerYear)

	var downsideSquaredSum float64
	downsideCount := 0
	for _, ret := range returns {
		if ret < periodicMAR {
			deviation := ret - periodicMAR
			downsideSquaredSum += deviation * deviation
			downsideCount++
		}
	}
	if downsideCount == 0 {
		return nil
	}

	downsideDeviation := math.Sqrt(downsideSquaredSum / float64(downsideCount))
	if downsideDeviation == 0 {
		return nil
	}

	periodicRiskFree := riskFreeRate / float64(periodsPerYear)
	sortino := (Mean(returns) - periodicRiskFree) / downsideDeviation

	annualized := sortino * math.Sqrt(float64(periodsPerYear))
	return &annualized
}
