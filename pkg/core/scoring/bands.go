// Package scoring maps computed ratios into category scores, an overall
// grade, insight strings, risk flags and recommendations. The whole engine
// is state-free and rule-driven; every threshold lives in a data table.
package scoring

// band pairs an exclusive threshold with the score it earns. Bands are
// evaluated top-down; the first band cleared wins, otherwise the fallback
// applies.
type band struct {
	Threshold float64
	Score     float64
}

// Higher-is-better categories: score the first band the ratio exceeds.
var (
	profitabilityBands = []band{{15, 90}, {10, 80}, {5, 65}}
	liquidityBands     = []band{{0.5, 85}, {0.2, 70}}
	efficiencyBands    = []band{{20, 95}, {15, 85}, {10, 70}}
)

// Leverage is inverted: lower debt-to-equity is better, so bands are the
// first threshold the ratio stays under.
var leverageBands = []band{{0.5, 90}, {1.0, 75}, {1.5, 60}}

const (
	profitabilityFallback = 40
	liquidityFallback     = 50
	leverageFallback      = 40
	efficiencyFallback    = 50
)

func scoreAbove(value float64, bands []band, fallback float64) float64 {
	for _, b := range bands {
		if value > b.Threshold {
			return b.Score
		}
	}
	return fallback
}

func scoreBelow(value float64, bands []band, fallback float64) float64 {
	for _, b := range bands {
		if value < b.Threshold {
			return b.Score
		}
	}
	return fallback
}
