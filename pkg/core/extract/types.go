// Package extract pulls text, tables and labeled financial figures out of
// PDF statements. Figures are normalized to absolute rupee values before
// they leave this package; no raw scale words (lakh/crore) survive past it.
package extract

// File type labels returned by DetectFileType.
const (
	FileTypeAuto    = "auto"
	FileTypePDF     = "pdf"
	FileTypeCSV     = "csv"
	FileTypeUnknown = "unknown"
)

// Table is an ordered group of rows captured from one PDF page.
type Table struct {
	Page int        `json:"page"`
	Rows [][]string `json:"rows"`
}

// RawExtraction is the intermediate result of one PDF extraction run.
// It is produced once per analysis and not mutated afterwards.
type RawExtraction struct {
	TextContent  string             `json:"text_content"`
	Tables       []Table            `json:"tables,omitempty"`
	DocumentType string             `json:"document_type"`
	TimePeriod   string             `json:"time_period,omitempty"`
	CompanyName  string             `json:"company_name,omitempty"`
	Figures      map[string]float64 `json:"financial_figures"`
}
