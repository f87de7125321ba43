package scoring

import "finsight/pkg/core/calc"

// RiskFlag is the canonical identifier of a risk condition. Rendered text is
// derived from the identifier, and downstream rules match on the identifier
// rather than the rendered string.
type RiskFlag string

const (
	RiskLiquidity        RiskFlag = "HIGH LIQUIDITY RISK"
	RiskLeverage         RiskFlag = "HIGH LEVERAGE RISK"
	RiskProfitability    RiskFlag = "PROFITABILITY RISK"
	RiskEfficiency       RiskFlag = "EFFICIENCY RISK"
	RiskAssetUtilization RiskFlag = "ASSET UTILIZATION RISK"
	RiskWorkingCapital   RiskFlag = "WORKING CAPITAL RISK"
)

var riskText = map[RiskFlag]string{
	RiskLiquidity:        "HIGH LIQUIDITY RISK: Low cash relative to debt obligations",
	RiskLeverage:         "HIGH LEVERAGE RISK: Excessive debt relative to equity",
	RiskProfitability:    "PROFITABILITY RISK: Very low profit margins",
	RiskEfficiency:       "EFFICIENCY RISK: Low return on equity",
	RiskAssetUtilization: "ASSET UTILIZATION RISK: Poor asset productivity",
	RiskWorkingCapital:   "WORKING CAPITAL RISK: Negative working capital",
}

// IdentifyRisks evaluates each condition independently, in fixed check
// order. Multiple flags can co-occur.
func IdentifyRisks(figures calc.Figures, ratios calc.Ratios) []RiskFlag {
	var flags []RiskFlag

	if v, ok := ratios["cash_to_debt"]; ok && v < 0.2 {
		flags = append(flags, RiskLiquidity)
	}
	if v, ok := ratios["debt_to_equity"]; ok && v > 1.5 {
		flags = append(flags, RiskLeverage)
	}
	if v, ok := ratios["net_margin"]; ok && v < 3 {
		flags = append(flags, RiskProfitability)
	}
	if v, ok := ratios["roe"]; ok && v < 8 {
		flags = append(flags, RiskEfficiency)
	}
	if v, ok := ratios["roa"]; ok && v < 5 {
		flags = append(flags, RiskAssetUtilization)
	}
	if wc, ok := figures["working_capital"]; ok && wc < 0 {
		flags = append(flags, RiskWorkingCapital)
	}

	return flags
}

// RenderRisks turns flags into their fixed output text, preserving order.
func RenderRisks(flags []RiskFlag) []string {
	rendered := make([]string, 0, len(flags))
	for _, f := range flags {
		rendered = append(rendered, riskText[f])
	}
	return rendered
}

func hasRisk(flags []RiskFlag, flag RiskFlag) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
