package pipeline

import (
	"finsight/pkg/core/calc"
	"finsight/pkg/core/scoring"
)

// Result status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AnalysisResult is the single unified output of one analysis run. It is
// created fresh per invocation, never mutated after return, and carries
// either the full analysis or a typed error, tagged by Status.
type AnalysisResult struct {
	Status   string `json:"status"`
	FileType string `json:"file_type,omitempty"`

	DocumentType       string               `json:"document_type,omitempty"`
	CompanyName        string               `json:"company_name,omitempty"`
	TimePeriod         string               `json:"time_period,omitempty"`
	FinancialFigures   map[string]any       `json:"financial_figures,omitempty"`
	FinancialRatios    calc.Ratios          `json:"financial_ratios,omitempty"`
	PerformanceSummary *scoring.Performance `json:"performance_summary,omitempty"`
	KeyInsights        []string             `json:"key_insights,omitempty"`
	RiskIndicators     []string             `json:"risk_indicators,omitempty"`
	Recommendations    []string             `json:"recommendations,omitempty"`

	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
