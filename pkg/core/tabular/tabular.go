// Package tabular loads CSV and spreadsheet exports, identifies financial
// columns by header keyword, and summarizes each column's recent movement:
// latest/previous value, growth rate, trend direction and volatility.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// financialKeywords mark a column as financial when its header contains any
// of them (case-insensitive). Non-numeric columns are skipped even on a hit.
var financialKeywords = []string{
	"revenue", "income", "profit", "assets", "liabilities",
	"cash", "debt", "equity", "ebitda",
}

// timeSeriesHeaders flag the file as a time series when a header equals one
// of them exactly (case-insensitive).
var timeSeriesHeaders = []string{"date", "year", "quarter", "month"}

// ColumnStats summarizes one financial column.
type ColumnStats struct {
	LatestValue   float64 `json:"latest_value"`
	PreviousValue float64 `json:"previous_value"`
	GrowthRate    float64 `json:"growth_rate"`
	Trend         string  `json:"trend"`
	Volatility    float64 `json:"volatility"`
}

// Extraction is the tabular-path intermediate result.
type Extraction struct {
	Columns      []string               `json:"columns"`
	Figures      map[string]ColumnStats `json:"financial_figures"`
	TimeSeries   bool                   `json:"time_series"`
	DocumentType string                 `json:"document_type"`
}

// Extract loads a tabular file and computes per-column statistics. The
// spreadsheet formats route through excelize, everything else through
// encoding/csv.
func Extract(path string) (*Extraction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return extractWorkbook(path)
	default:
		return extractCSV(path)
	}
}

func extractCSV(path string) (*Extraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	return fromRecords(records[0], records[1:])
}

// fromRecords builds the extraction from a header row and data rows. Shared
// by the CSV and workbook paths.
func fromRecords(header []string, rows [][]string) (*Extraction, error) {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	ext := &Extraction{
		Columns:      columns,
		Figures:      make(map[string]ColumnStats),
		TimeSeries:   hasTimeSeriesHeader(columns),
		DocumentType: "csv_data",
	}

	for idx, name := range columns {
		if !isFinancialHeader(name) {
			continue
		}
		values, numeric := numericColumn(rows, idx)
		if !numeric || len(values) == 0 {
			continue
		}
		ext.Figures[name] = buildStats(values)
	}

	return ext, nil
}

func isFinancialHeader(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range financialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasTimeSeriesHeader(columns []string) bool {
	for _, col := range columns {
		lower := strings.ToLower(strings.TrimSpace(col))
		for _, h := range timeSeriesHeaders {
			if lower == h {
				return true
			}
		}
	}
	return false
}

// numericColumn collects the column's values in row order, dropping missing
// cells. A column is numeric only if every retained cell parses as a float;
// one unparseable cell disqualifies the whole column.
func numericColumn(rows [][]string, idx int) ([]float64, bool) {
	var values []float64
	for _, row := range rows {
		if idx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[idx])
		if isMissing(cell) {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

func isMissing(cell string) bool {
	switch strings.ToLower(cell) {
	case "", "na", "n/a", "nan", "null":
		return true
	}
	return false
}
