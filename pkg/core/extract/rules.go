package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Metric keys produced by the figure rules.
const (
	MetricRevenue          = "revenue"
	MetricNetIncome        = "net_income"
	MetricEBITDA           = "ebitda"
	MetricTotalAssets      = "total_assets"
	MetricTotalLiabilities = "total_liabilities"
	MetricEquity           = "equity"
	MetricDebt             = "debt"
	MetricCash             = "cash"
	MetricWorkingCapital   = "working_capital"
)

// ExtractionRule binds one metric key to the label pattern that captures its
// figure. Rules are evaluated independently, first match per pattern only:
// when a label recurs (current vs prior year), the first occurrence is taken.
type ExtractionRule struct {
	Metric  string
	Pattern *regexp.Regexp
}

// figureRules cover IndAS terminology: "turnover", "PAT", "borrowings" and
// friends. Each pattern allows an optional rupee glyph and a trailing scale
// word after the captured numeral.
var figureRules = []ExtractionRule{
	{MetricRevenue, figureRe(`revenue|sales|turnover|income from operations`)},
	{MetricNetIncome, figureRe(`net (?:income|profit)|profit (?:after|for the) (?:tax|year)|pat`)},
	{MetricEBITDA, figureRe(`ebitda|earnings before`)},
	{MetricTotalAssets, figureRe(`total assets`)},
	{MetricTotalLiabilities, figureRe(`total liabilities`)},
	{MetricEquity, figureRe(`shareholders['’]*\s*equity|total equity`)},
	{MetricDebt, figureRe(`total debt|borrowings|loans`)},
	{MetricCash, figureRe(`cash and cash equivalents|cash and bank`)},
	{MetricWorkingCapital, figureRe(`working capital`)},
}

// figureRe builds the shared label-figure pattern: label, separator, optional
// currency glyph, captured numeral with thousands separators, optional scale
// word.
func figureRe(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + label + `)[:\s]+[₹\s]*([\d,]+\.?\d*)\s*(?:crore|lakh|thousand|million)?`)
}

var (
	companyRe    = regexp.MustCompile(`([A-Z][a-zA-Z\s&]+(?:Limited|Ltd\.?|Private|Pvt\.?))`)
	fiscalYearRe = regexp.MustCompile(`(?i)(?:fy|financial year|year ended|period ended)\s*[-:]?\s*(\d{4}[-/]?\d{2,4})`)
	quarterRe    = regexp.MustCompile(`(?i)(q[1-4]|quarter [1-4])\s*[-:]?\s*(\d{4}[-/]?\d{2,4})`)
)

// ExtractFigures runs every rule against the full text and returns normalized
// absolute values. The document-wide scale factor is resolved once and
// applied to every matched figure. Keys with no match are simply absent.
func ExtractFigures(text string) map[string]float64 {
	figures := make(map[string]float64)
	factor, _ := DetectScaleFactor(text)

	for _, rule := range figureRules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		figures[rule.Metric] = value * factor
	}
	return figures
}

// ExtractCompanyName returns the first company-style name in the text, or ""
// when none is found. Indian suffixes only (Limited/Ltd/Private/Pvt).
func ExtractCompanyName(text string) string {
	if m := companyRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractTimePeriod locates a fiscal-year label, falling back to a quarter
// label. Returns "" when neither pattern matches.
func ExtractTimePeriod(text string) string {
	if m := fiscalYearRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := quarterRe.FindStringSubmatch(text); m != nil {
		return m[1] + " " + m[2]
	}
	return ""
}
