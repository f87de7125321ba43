package scoring

import "finsight/pkg/core/calc"

// GenerateRecommendations derives action items from the aggregate state.
// Score-based rules fire only when the category was actually scored: an
// unset category means insufficient data, not poor performance. When no
// rule fires, exactly one default recommendation is emitted.
func GenerateRecommendations(perf Performance, ratios calc.Ratios, flags []RiskFlag, documentType string) []string {
	var recs []string

	below := func(score *float64, threshold float64) bool {
		return score != nil && *score < threshold
	}

	if below(perf.OverallScore, 60) {
		recs = append(recs, "PRIORITY: Comprehensive financial restructuring required")
	}
	if below(perf.ProfitabilityScore, 70) {
		recs = append(recs, "Focus on cost optimization and revenue enhancement strategies")
	}
	if below(perf.LiquidityScore, 70) {
		recs = append(recs, "Improve cash flow management and reduce short-term debt")
	}
	if de, ok := ratios["debt_to_equity"]; ok && de > 1.0 {
		recs = append(recs, "Consider debt reduction or equity infusion to improve leverage")
	}
	if below(perf.EfficiencyScore, 70) {
		recs = append(recs, "Enhance operational efficiency and asset utilization")
	}
	if hasRisk(flags, RiskLiquidity) {
		recs = append(recs, "URGENT: Arrange additional credit facilities or sell non-core assets")
	}
	if hasRisk(flags, RiskLeverage) {
		recs = append(recs, "URGENT: Implement debt restructuring plan")
	}
	if documentType == "quarterly_results" {
		recs = append(recs, "Monitor quarterly trends and seasonal variations")
	}

	if len(recs) == 0 {
		recs = append(recs, "Maintain current performance and explore growth opportunities")
	}

	return recs
}
