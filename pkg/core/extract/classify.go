package extract

import "strings"

// Document type categories.
const (
	DocBalanceSheet     = "balance_sheet"
	DocProfitLoss       = "profit_loss"
	DocCashFlow         = "cash_flow"
	DocQuarterlyResults = "quarterly_results"
	DocAnnualReport     = "annual_report"
	DocFinancial        = "financial_document"
	DocCSVData          = "csv_data"
)

// documentTypeRules are evaluated in order; the first category with any
// keyword hit wins. A document mentioning both "balance sheet" and
// "cash flow" is therefore a balance sheet.
var documentTypeRules = []struct {
	DocType  string
	Keywords []string
}{
	{DocBalanceSheet, []string{"balance sheet", "statement of financial position", "assets and liabilities"}},
	{DocProfitLoss, []string{"profit and loss", "p&l", "income statement", "statement of profit and loss"}},
	{DocCashFlow, []string{"cash flow", "statement of cash flows", "cash flow statement"}},
	{DocQuarterlyResults, []string{"quarterly results", "quarterly report", "q1", "q2", "q3", "q4"}},
	{DocAnnualReport, []string{"annual report", "annual accounts", "director's report"}},
}

// ClassifyDocument maps full document text to one of the fixed categories.
func ClassifyDocument(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range documentTypeRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.DocType
			}
		}
	}
	return DocFinancial
}
