package report

import (
	"strings"
	"testing"

	"finsight/pkg/core/calc"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/scoring"
)

func sampleResult() *pipeline.AnalysisResult {
	ratios := calc.Ratios{
		"net_margin":     12.0,
		"debt_to_equity": 0.5,
		"cash_to_debt":   0.5,
		"roe":            15.0,
	}
	perf := scoring.AssessPerformance(ratios)
	flags := scoring.IdentifyRisks(calc.Figures{}, ratios)

	return &pipeline.AnalysisResult{
		Status:             pipeline.StatusSuccess,
		FileType:           "pdf",
		DocumentType:       "balance_sheet",
		CompanyName:        "Acme Widgets Limited",
		TimePeriod:         "2023-24",
		FinancialRatios:    ratios,
		PerformanceSummary: &perf,
		KeyInsights:        scoring.GenerateInsights(calc.Figures{"revenue": 120e7}, ratios),
		RiskIndicators:     scoring.RenderRisks(flags),
		Recommendations:    scoring.GenerateRecommendations(perf, ratios, flags, "balance_sheet"),
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sampleResult())

	for _, want := range []string{
		"# Financial Analysis Report",
		"**Company:** Acme Widgets Limited",
		"**Period:** 2023-24",
		"## Key Insights",
		"Revenue: ₹120.00 crores",
		"## Performance Summary",
		"**Overall Grade:**",
		"## Financial Ratios",
		"| Net Margin | 12.00 |",
		"| Debt To Equity | 0.50 |",
		"| ROE | 15.00 |",
		"## Risk Indicators",
		"## Recommendations",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownRatioOrderIsDeclarationOrder(t *testing.T) {
	md := Markdown(sampleResult())
	if strings.Index(md, "Net Margin") > strings.Index(md, "Debt To Equity") {
		t.Error("net_margin must render before debt_to_equity")
	}
	if strings.Index(md, "Cash To Debt") > strings.Index(md, "ROE |") {
		t.Error("cash_to_debt must render before roe")
	}
}

func TestMarkdownUnknownEntities(t *testing.T) {
	res := sampleResult()
	res.CompanyName = ""
	res.TimePeriod = ""
	md := Markdown(res)
	if !strings.Contains(md, "**Company:** Unknown") {
		t.Error("missing Unknown company fallback")
	}
	if !strings.Contains(md, "**Period:** Unknown") {
		t.Error("missing Unknown period fallback")
	}
}

func TestMarkdownErrorResult(t *testing.T) {
	res := &pipeline.AnalysisResult{
		Status:       pipeline.StatusError,
		ErrorType:    "ExtractionError",
		ErrorMessage: "no text content found in PDF",
	}
	md := Markdown(res)
	if !strings.Contains(md, "ExtractionError") || !strings.Contains(md, "no text content") {
		t.Errorf("error report incomplete:\n%s", md)
	}
	if strings.Contains(md, "## Key Insights") {
		t.Error("error report must not carry analysis sections")
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(sampleResult())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<h1>Financial Analysis Report</h1>") {
		t.Errorf("missing h1 in rendered html:\n%s", html)
	}
	if !strings.Contains(html, "<table>") {
		t.Error("ratio table did not render")
	}
}
