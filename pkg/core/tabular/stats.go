package tabular

import "math"

// Trend labels for the last-three-values classification.
const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendVolatile         = "volatile"
	TrendInsufficientData = "insufficient_data"
)

// buildStats computes the column summary from the retained series.
func buildStats(values []float64) ColumnStats {
	latest := values[len(values)-1]
	previous := latest
	if len(values) > 1 {
		previous = values[len(values)-2]
	}

	return ColumnStats{
		LatestValue:   latest,
		PreviousValue: previous,
		GrowthRate:    growthRate(latest, previous),
		Trend:         identifyTrend(values),
		Volatility:    sampleStdDev(values),
	}
}

// growthRate is the latest-over-previous percentage change; 0 when the
// previous value is 0.
func growthRate(latest, previous float64) float64 {
	if previous == 0 {
		return 0.0
	}
	return (latest - previous) / previous * 100
}

// identifyTrend classifies the last three values. Non-decreasing wins over
// non-increasing, so a flat series reads as increasing.
func identifyTrend(values []float64) string {
	if len(values) < 3 {
		return TrendInsufficientData
	}
	recent := values[len(values)-3:]

	nonDecreasing := recent[0] <= recent[1] && recent[1] <= recent[2]
	nonIncreasing := recent[0] >= recent[1] && recent[1] >= recent[2]

	switch {
	case nonDecreasing:
		return TrendIncreasing
	case nonIncreasing:
		return TrendDecreasing
	default:
		return TrendVolatile
	}
}

// sampleStdDev is the n-1 standard deviation of the full retained series;
// 0 for fewer than two values.
func sampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}
