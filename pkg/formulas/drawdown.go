package formulas

// DrawdownMetrics represents drawdown analysis results for a price series.
type DrawdownMetrics struct {
	MaxDrawdown     float64 `json:"max_drawdown"`     // deepest peak-to-trough loss, as positive fraction
	CurrentDrawdown float64 `json:"current_drawdown"` // drawdown of the last observation from the peak
	PeriodsOffPeak  int     `json:"periods_off_peak"` // observations since the peak
	PeakValue       float64 `json:"peak_value"`
	CurrentValue    float64 `json:"current_value"`
}

// CalculateMaxDrawdown calculates the maximum drawdown from a price series:
// the largest (peak - price) / peak over the series. 0.25 means a 25% loss
// from the running peak. Returns nil on insufficient data.
func CalculateMaxDrawdown(prices []float64) *float64 {
	if len(prices) < 2 {
		return nil
	}

	maxDrawdown := 0.0
	peak := prices[0]
	for _, price := range prices {
		if price > peak {
			peak = price
		}
		if peak > 0 {
			drawdown := (peak - price) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return &maxDrawdown
}

// CalculateDrawdownMetrics calculates full drawdown metrics, including the
// current drawdown and how long the series has been off its peak.
func CalculateDrawdownMetrics(prices []float64) *DrawdownMetrics {
	if len(prices) < 2 {
		return nil
	}

	maxDrawdown := 0.0
	peak := prices[0]
	peakIndex := 0
	currentValue := prices[len(prices)-1]

	for i, price := range prices {
		if price > peak {
			peak = price
			peakIndex = i
		}
		if peak > 0 {
			drawdown := (peak - price) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	currentDrawdown := 0.0
	if peak > 0 {
		currentDrawdown = (peak - currentValue) / peak
	}

	return &DrawdownMetrics{
		MaxDrawdown:     maxDrawdown,
		CurrentDrawdown: currentDrawdown,
		PeriodsOffPeak:  len(prices) - 1 - peakIndex,
		PeakValue:       peak,
		CurrentValue:    currentValue,
	}
}
