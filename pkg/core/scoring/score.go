package scoring

import "finsight/pkg/core/calc"

// Performance holds the four category scores, the overall score and the
// letter grade. A nil score means the category had no contributing ratio;
// unset categories are excluded from the overall average rather than
// counted as zero.
type Performance struct {
	ProfitabilityScore *float64 `json:"profitability_score,omitempty"`
	LiquidityScore     *float64 `json:"liquidity_score,omitempty"`
	LeverageScore      *float64 `json:"leverage_score,omitempty"`
	EfficiencyScore    *float64 `json:"efficiency_score,omitempty"`
	OverallScore       *float64 `json:"overall_score,omitempty"`
	Grade              string   `json:"grade"`
}

// AssessPerformance scores each category from its ratio when available and
// derives the overall score as the mean of only the categories actually set.
func AssessPerformance(ratios calc.Ratios) Performance {
	perf := Performance{Grade: "N/A"}
	var scores []float64

	set := func(dst **float64, s float64) {
		v := s
		*dst = &v
		scores = append(scores, s)
	}

	if margin, ok := ratios["net_margin"]; ok {
		set(&perf.ProfitabilityScore, scoreAbove(margin, profitabilityBands, profitabilityFallback))
	}
	if cashRatio, ok := ratios["cash_to_debt"]; ok {
		set(&perf.LiquidityScore, scoreAbove(cashRatio, liquidityBands, liquidityFallback))
	}
	if de, ok := ratios["debt_to_equity"]; ok {
		set(&perf.LeverageScore, scoreBelow(de, leverageBands, leverageFallback))
	}
	if roe, ok := ratios["roe"]; ok {
		set(&perf.EfficiencyScore, scoreAbove(roe, efficiencyBands, efficiencyFallback))
	}

	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		overall := sum / float64(len(scores))
		perf.OverallScore = &overall
		perf.Grade = gradeFor(overall)
	}

	return perf
}

// gradeFor applies the fixed closed-open breakpoints: a score of exactly 85
// is an A, 84.999 a B.
func gradeFor(score float64) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
