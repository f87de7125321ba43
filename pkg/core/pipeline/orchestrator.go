// Package pipeline sequences format detection, extraction, ratio computation
// and scoring into a single analysis run per file. The orchestrator never
// raises past its boundary: callers always receive exactly one
// AnalysisResult, success or failure.
package pipeline

import (
	"fmt"

	"finsight/pkg/core/calc"
	"finsight/pkg/core/extract"
	"finsight/pkg/core/scoring"
	"finsight/pkg/core/tabular"
)

// Analyzer runs the extraction-and-scoring pipeline. It holds no state
// between invocations; concurrent Analyze calls need no coordination.
type Analyzer struct{}

// NewAnalyzer creates a new pipeline analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze runs the full pipeline for one file. fileType is "auto", "pdf" or
// "csv"; "auto" resolves by extension. Every failure mode is folded into the
// returned result, including panics from the analysis stages.
func (a *Analyzer) Analyze(path string, fileType string) (result *AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = errorResult(ErrAnalysis, fileType, fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	if fileType == "" || fileType == extract.FileTypeAuto {
		fileType = extract.DetectFileType(path)
	}

	switch fileType {
	case extract.FileTypePDF:
		return a.analyzePDF(path)
	case extract.FileTypeCSV:
		return a.analyzeTabular(path)
	default:
		return errorResult(ErrUnsupportedFormat, fileType,
			fmt.Sprintf("unsupported file type: %s", fileType))
	}
}

func (a *Analyzer) analyzePDF(path string) *AnalysisResult {
	raw, err := extract.ExtractPDF(path)
	if err != nil {
		return errorResult(ErrExtraction, extract.FileTypePDF, err.Error())
	}

	figures := calc.Figures(raw.Figures)
	ratios := calc.ComputeRatios(figures)
	perf := scoring.AssessPerformance(ratios)
	flags := scoring.IdentifyRisks(figures, ratios)

	figuresOut := make(map[string]any, len(raw.Figures))
	for k, v := range raw.Figures {
		figuresOut[k] = v
	}

	return &AnalysisResult{
		Status:             StatusSuccess,
		FileType:           extract.FileTypePDF,
		DocumentType:       raw.DocumentType,
		CompanyName:        raw.CompanyName,
		TimePeriod:         raw.TimePeriod,
		FinancialFigures:   figuresOut,
		FinancialRatios:    ratios,
		PerformanceSummary: ptr(perf),
		KeyInsights:        scoring.GenerateInsights(figures, ratios),
		RiskIndicators:     scoring.RenderRisks(flags),
		Recommendations:    scoring.GenerateRecommendations(perf, ratios, flags, raw.DocumentType),
	}
}

// analyzeTabular carries per-column statistics instead of the fixed metric
// vocabulary, so no ratios are computable on this path; scoring degrades to
// its insufficient-data output rather than erroring.
func (a *Analyzer) analyzeTabular(path string) *AnalysisResult {
	ext, err := tabular.Extract(path)
	if err != nil {
		return errorResult(ErrExtraction, extract.FileTypeCSV, err.Error())
	}

	ratios := calc.Ratios{}
	perf := scoring.AssessPerformance(ratios)

	figuresOut := make(map[string]any, len(ext.Figures))
	for k, v := range ext.Figures {
		figuresOut[k] = v
	}

	return &AnalysisResult{
		Status:             StatusSuccess,
		FileType:           extract.FileTypeCSV,
		DocumentType:       ext.DocumentType,
		FinancialFigures:   figuresOut,
		FinancialRatios:    ratios,
		PerformanceSummary: ptr(perf),
		KeyInsights:        scoring.GenerateInsights(calc.Figures{}, ratios),
		RiskIndicators:     scoring.RenderRisks(nil),
		Recommendations:    scoring.GenerateRecommendations(perf, ratios, nil, ext.DocumentType),
	}
}

func ptr[T any](v T) *T { return &v }
