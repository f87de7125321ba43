package scoring

import (
	"fmt"

	"finsight/pkg/core/calc"
)

// GenerateInsights emits one templated line per available signal, in the
// fixed order: revenue, margin tier, leverage tier, liquidity tier, ROE tier.
func GenerateInsights(figures calc.Figures, ratios calc.Ratios) []string {
	var insights []string

	if revenue, ok := figures["revenue"]; ok {
		insights = append(insights, fmt.Sprintf("Revenue: ₹%.2f crores", revenue/1e7))
	}

	if margin, ok := ratios["net_margin"]; ok {
		switch {
		case margin > 15:
			insights = append(insights, fmt.Sprintf("Strong profitability with %.1f%% net margin", margin))
		case margin > 5:
			insights = append(insights, fmt.Sprintf("Moderate profitability with %.1f%% net margin", margin))
		default:
			insights = append(insights, fmt.Sprintf("Low profitability with %.1f%% net margin", margin))
		}
	}

	if de, ok := ratios["debt_to_equity"]; ok {
		switch {
		case de > 1.5:
			insights = append(insights, fmt.Sprintf("High leverage with D/E ratio of %.2f", de))
		case de > 0.5:
			insights = append(insights, fmt.Sprintf("Moderate leverage with D/E ratio of %.2f", de))
		default:
			insights = append(insights, fmt.Sprintf("Conservative leverage with D/E ratio of %.2f", de))
		}
	}

	if cashRatio, ok := ratios["cash_to_debt"]; ok {
		if cashRatio > 0.5 {
			insights = append(insights, fmt.Sprintf("Strong liquidity position with cash-to-debt ratio of %.2f", cashRatio))
		} else {
			insights = append(insights, fmt.Sprintf("Tight liquidity with cash-to-debt ratio of %.2f", cashRatio))
		}
	}

	if roe, ok := ratios["roe"]; ok {
		switch {
		case roe > 20:
			insights = append(insights, fmt.Sprintf("Excellent ROE of %.1f%%", roe))
		case roe > 10:
			insights = append(insights, fmt.Sprintf("Good ROE of %.1f%%", roe))
		default:
			insights = append(insights, fmt.Sprintf("Below average ROE of %.1f%%", roe))
		}
	}

	return insights
}
