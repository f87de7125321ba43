package tabular

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestExtractCSV(t *testing.T) {
	path := writeTempCSV(t, "Year,Revenue,Net_Income,Notes\n2022,1000,100,good\n2023,1200,150,better\n")

	ext, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if !ext.TimeSeries {
		t.Error("expected time_series = true for a Year column")
	}
	if ext.DocumentType != "csv_data" {
		t.Errorf("document type = %q, want csv_data", ext.DocumentType)
	}

	rev, ok := ext.Figures["Revenue"]
	if !ok {
		t.Fatalf("Revenue column missing: %v", ext.Figures)
	}
	if rev.LatestValue != 1200 || rev.PreviousValue != 1000 {
		t.Errorf("Revenue latest/previous = %v/%v, want 1200/1000", rev.LatestValue, rev.PreviousValue)
	}
	if math.Abs(rev.GrowthRate-20.0) > 1e-9 {
		t.Errorf("Revenue growth rate = %v, want 20.0", rev.GrowthRate)
	}
	if rev.Trend != TrendInsufficientData {
		t.Errorf("Revenue trend = %q, want %q for a 2-point series", rev.Trend, TrendInsufficientData)
	}

	if _, ok := ext.Figures["Notes"]; ok {
		t.Error("non-financial column Notes should be excluded")
	}
	// Year is not a financial keyword column either.
	if _, ok := ext.Figures["Year"]; ok {
		t.Error("Year column should be excluded")
	}
}

func TestExtractCSVSkipsNonNumericFinancialColumn(t *testing.T) {
	path := writeTempCSV(t, "Revenue,Profit\nhigh,100\nlow,200\n")

	ext, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if _, ok := ext.Figures["Revenue"]; ok {
		t.Error("textual Revenue column should be excluded")
	}
	if _, ok := ext.Figures["Profit"]; !ok {
		t.Error("numeric Profit column should be included")
	}
}

func TestExtractCSVDropsMissingValues(t *testing.T) {
	path := writeTempCSV(t, "Quarter,Cash\nQ1,100\nQ2,\nQ3,NA\nQ4,300\n")

	ext, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	cash := ext.Figures["Cash"]
	if cash.LatestValue != 300 || cash.PreviousValue != 100 {
		t.Errorf("Cash latest/previous = %v/%v, want 300/100 after dropping blanks", cash.LatestValue, cash.PreviousValue)
	}
	if cash.GrowthRate != 200 {
		t.Errorf("Cash growth rate = %v, want 200", cash.GrowthRate)
	}
}

func TestExtractEmptyCSV(t *testing.T) {
	path := writeTempCSV(t, "")
	if _, err := Extract(path); err == nil {
		t.Fatal("expected error for empty csv")
	}
}

func TestIdentifyTrend(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		want   string
	}{
		{"increasing", []float64{1, 2, 3}, TrendIncreasing},
		{"decreasing", []float64{3, 2, 1}, TrendDecreasing},
		{"volatile", []float64{1, 3, 2}, TrendVolatile},
		{"two points", []float64{1, 2}, TrendInsufficientData},
		{"flat reads increasing", []float64{2, 2, 2}, TrendIncreasing},
		{"only last three considered", []float64{9, 1, 2, 3}, TrendIncreasing},
	}
	for _, c := range cases {
		if got := identifyTrend(c.series); got != c.want {
			t.Errorf("%s: identifyTrend(%v) = %q, want %q", c.name, c.series, got, c.want)
		}
	}
}

func TestGrowthRate(t *testing.T) {
	if got := growthRate(1200, 1000); math.Abs(got-20.0) > 1e-9 {
		t.Errorf("growthRate = %v, want 20.0", got)
	}
	if got := growthRate(100, 0); got != 0.0 {
		t.Errorf("growthRate with zero previous = %v, want 0.0", got)
	}
}

func TestSampleStdDev(t *testing.T) {
	// Sample (n-1) std dev of {2,4,4,4,5,5,7,9} is ~2.138.
	got := sampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2.13809) > 1e-4 {
		t.Errorf("sampleStdDev = %v, want ~2.138", got)
	}
	if got := sampleStdDev([]float64{5}); got != 0 {
		t.Errorf("sampleStdDev of single value = %v, want 0", got)
	}
}

func TestExtractWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Year", "Revenue"},
		{2021, 900},
		{2022, 1000},
		{2023, 1200},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close workbook: %v", err)
	}

	ext, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	rev, ok := ext.Figures["Revenue"]
	if !ok {
		t.Fatalf("Revenue column missing: %v", ext.Figures)
	}
	if rev.LatestValue != 1200 {
		t.Errorf("Revenue latest = %v, want 1200", rev.LatestValue)
	}
	if rev.Trend != TrendIncreasing {
		t.Errorf("Revenue trend = %q, want %q", rev.Trend, TrendIncreasing)
	}
	if !ext.TimeSeries {
		t.Error("expected time_series = true")
	}
}
