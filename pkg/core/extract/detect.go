package extract

import (
	"path/filepath"
	"strings"
)

// DetectFileType classifies an input file by extension alone. Spreadsheet
// formats share the tabular path with CSV.
func DetectFileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FileTypePDF
	case ".csv", ".xlsx", ".xls":
		return FileTypeCSV
	default:
		return FileTypeUnknown
	}
}
