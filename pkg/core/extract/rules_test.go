package extract

import (
	"math"
	"testing"
)

const sampleStatement = `Tata Widgets Limited
Statement of Profit and Loss for FY 2023-24

Revenue: ₹1,250.50 crore
Profit after tax: 150 crore
EBITDA: 300 crore
Total Assets: 2,000 crore
Total Liabilities: 1,000 crore
Shareholders' Equity: 1,000 crore
Total Debt: 500 crore
Cash and cash equivalents: 250 crore
Working Capital: 100 crore
`

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6*math.Max(1, math.Abs(b))
}

func TestExtractFigures(t *testing.T) {
	figures := ExtractFigures(sampleStatement)

	want := map[string]float64{
		MetricRevenue:          1250.50 * 1e7,
		MetricNetIncome:        150 * 1e7,
		MetricEBITDA:           300 * 1e7,
		MetricTotalAssets:      2000 * 1e7,
		MetricTotalLiabilities: 1000 * 1e7,
		MetricEquity:           1000 * 1e7,
		MetricDebt:             500 * 1e7,
		MetricCash:             250 * 1e7,
		MetricWorkingCapital:   100 * 1e7,
	}

	if len(figures) != len(want) {
		t.Fatalf("extracted %d figures, want %d: %v", len(figures), len(want), figures)
	}
	for key, expected := range want {
		got, ok := figures[key]
		if !ok {
			t.Errorf("figure %q missing", key)
			continue
		}
		if !approxEqual(got, expected) {
			t.Errorf("figure %q = %v, want %v", key, got, expected)
		}
	}
}

func TestExtractFiguresDefaultScale(t *testing.T) {
	// No scale word anywhere: every figure is multiplied by the lakh default.
	figures := ExtractFigures("Revenue: 1,000\nProfit after tax: 100")

	if got := figures[MetricRevenue]; !approxEqual(got, 1000*1e5) {
		t.Errorf("revenue = %v, want %v", got, 1000*1e5)
	}
	if got := figures[MetricNetIncome]; !approxEqual(got, 100*1e5) {
		t.Errorf("net_income = %v, want %v", got, 100*1e5)
	}
}

func TestExtractFiguresFirstMatchWins(t *testing.T) {
	// Current-year figure appears before the prior-year restatement; only the
	// first match per rule is used. Known precision limit, kept on purpose.
	text := "Revenue: 1,200 crore\nRevenue: 900 crore (prior year)"
	figures := ExtractFigures(text)
	if got := figures[MetricRevenue]; !approxEqual(got, 1200*1e7) {
		t.Errorf("revenue = %v, want %v", got, 1200*1e7)
	}
}

func TestExtractFiguresAbsentKeys(t *testing.T) {
	figures := ExtractFigures("Total Assets: 500 crore")
	if _, ok := figures[MetricRevenue]; ok {
		t.Error("revenue should be absent, not defaulted")
	}
	if _, ok := figures[MetricDebt]; ok {
		t.Error("debt should be absent, not defaulted")
	}
	if len(figures) != 1 {
		t.Errorf("extracted %d figures, want 1", len(figures))
	}
}

func TestExtractCompanyName(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Reliance Industries Limited Annual Report", "Reliance Industries Limited"},
		{"report of Acme Widgets Pvt. for the year", "Acme Widgets Pvt."},
		{"no company here", ""},
	}
	for _, c := range cases {
		if got := ExtractCompanyName(c.text); got != c.want {
			t.Errorf("ExtractCompanyName(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractTimePeriod(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"fiscal year", "for the Financial Year 2023-24", "2023-24"},
		{"slash separator", "year ended 2023/2024", "2023/2024"},
		{"quarter fallback", "Q3 2023-24 investor update", "Q3 2023-24"},
		{"absent", "no period stated", ""},
	}
	for _, c := range cases {
		if got := ExtractTimePeriod(c.text); got != c.want {
			t.Errorf("%s: ExtractTimePeriod = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestExtractPDFMissingFile(t *testing.T) {
	if _, err := ExtractPDF("/nonexistent/statement.pdf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCapturePageTables(t *testing.T) {
	page := "Balance Sheet\nParticulars  FY24  FY23\nTotal Assets  2000  1800\nTotal Liabilities  1000  900\nnotes follow here"
	tables := capturePageTables(1, page)
	if len(tables) != 1 {
		t.Fatalf("captured %d tables, want 1", len(tables))
	}
	if len(tables[0].Rows) != 3 {
		t.Fatalf("captured %d rows, want 3", len(tables[0].Rows))
	}
	if tables[0].Rows[1][0] != "Total Assets" || tables[0].Rows[1][2] != "1800" {
		t.Errorf("unexpected row: %v", tables[0].Rows[1])
	}
}
