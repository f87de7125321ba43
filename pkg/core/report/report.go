// Package report renders an AnalysisResult as a fixed-layout markdown
// document, with an HTML variant for the dashboard.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"finsight/pkg/core/calc"
	"finsight/pkg/core/pipeline"
)

// md renders GFM pipe tables in addition to core markdown.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown builds the analysis report. Section order is fixed; ratios render
// in their declaration order so the report is deterministic.
func Markdown(res *pipeline.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# Financial Analysis Report\n\n")

	if res.Status == pipeline.StatusError {
		fmt.Fprintf(&b, "**Status:** error (%s)\n\n%s\n", res.ErrorType, res.ErrorMessage)
		return b.String()
	}

	fmt.Fprintf(&b, "**Company:** %s\n", orUnknown(res.CompanyName))
	fmt.Fprintf(&b, "**Period:** %s\n", orUnknown(res.TimePeriod))
	fmt.Fprintf(&b, "**Document Type:** %s\n\n", orUnknown(res.DocumentType))

	b.WriteString("## Key Insights\n\n")
	if len(res.KeyInsights) == 0 {
		b.WriteString("No insights available.\n")
	}
	for _, insight := range res.KeyInsights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}

	b.WriteString("\n## Performance Summary\n\n")
	perf := res.PerformanceSummary
	if perf != nil {
		fmt.Fprintf(&b, "**Overall Grade:** %s\n", perf.Grade)
		if perf.OverallScore != nil {
			fmt.Fprintf(&b, "**Overall Score:** %.1f/100\n", *perf.OverallScore)
		}
		b.WriteString("\n")
		writeScore(&b, "Profitability", perf.ProfitabilityScore)
		writeScore(&b, "Liquidity", perf.LiquidityScore)
		writeScore(&b, "Leverage", perf.LeverageScore)
		writeScore(&b, "Efficiency", perf.EfficiencyScore)
	} else {
		b.WriteString("Not available.\n")
	}

	b.WriteString("\n## Financial Ratios\n\n")
	if len(res.FinancialRatios) == 0 {
		b.WriteString("No ratios computable from the extracted figures.\n")
	} else {
		b.WriteString("| Ratio | Value |\n|---|---|\n")
		for _, name := range calc.RatioNames() {
			if v, ok := res.FinancialRatios[name]; ok {
				fmt.Fprintf(&b, "| %s | %.2f |\n", titleCase(name), v)
			}
		}
	}

	b.WriteString("\n## Risk Indicators\n\n")
	if len(res.RiskIndicators) == 0 {
		b.WriteString("No significant risks identified.\n")
	}
	for _, risk := range res.RiskIndicators {
		fmt.Fprintf(&b, "- %s\n", risk)
	}

	b.WriteString("\n## Recommendations\n\n")
	for i, rec := range res.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	return b.String()
}

// HTML renders the markdown report through goldmark.
func HTML(res *pipeline.AnalysisResult) (string, error) {
	var out bytes.Buffer
	if err := md.Convert([]byte(Markdown(res)), &out); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out.String(), nil
}

func writeScore(b *strings.Builder, label string, score *float64) {
	if score == nil {
		fmt.Fprintf(b, "- %s Score: n/a\n", label)
		return
	}
	fmt.Fprintf(b, "- %s Score: %.1f/100\n", label, *score)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// titleCase renders a snake_case ratio name as a heading, keeping the
// initialisms upper-cased.
func titleCase(name string) string {
	switch name {
	case "roe":
		return "ROE"
	case "roa":
		return "ROA"
	case "roce":
		return "ROCE"
	case "ebitda_margin":
		return "EBITDA Margin"
	}
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
