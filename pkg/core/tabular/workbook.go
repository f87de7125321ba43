package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// extractWorkbook reads the first sheet of an XLSX/XLS workbook and feeds it
// through the same column pipeline as CSV.
func extractWorkbook(path string) (*Extraction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return fromRecords(rows[0], rows[1:])
}
