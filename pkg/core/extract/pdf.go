package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ExtractPDF opens a PDF statement, walks its pages and assembles the full
// RawExtraction: page text joined with newlines, naive table capture, document
// classification, entity extraction and normalized figures. Any open or parse
// failure is terminal; there is no partial result.
func ExtractPDF(path string) (*RawExtraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	var sb strings.Builder
	var tables []Table
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteByte('\n')
		if t := capturePageTables(pageNr, pageText); len(t) > 0 {
			tables = append(tables, t...)
		}
	}

	fullText := sb.String()
	if strings.TrimSpace(fullText) == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &RawExtraction{
		TextContent:  fullText,
		Tables:       tables,
		DocumentType: ClassifyDocument(fullText),
		TimePeriod:   ExtractTimePeriod(fullText),
		CompanyName:  ExtractCompanyName(fullText),
		Figures:      ExtractFigures(fullText),
	}, nil
}

// extractPageText pulls the content stream for one page and decodes its text
// operators. Empty string on any per-page failure; a page without text is not
// an error.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return decodeContentStream(data)
}

// pdfLiteralRe matches PDF string literals: (text here)
var pdfLiteralRe = regexp.MustCompile(`\(([^)]*)\)`)

// decodeContentStream walks the content stream operators that carry or
// position text. Tj/TJ emit text, ' and T* break lines, Td/TD separate runs.
// Line structure is preserved so that table rows survive.
func decodeContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return normalizePageText(sb.String())
}

// decodePDFString resolves the basic PDF escape sequences, including octal
// escapes like \040.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// normalizePageText trims each line and collapses runs of blank lines, but
// keeps the line structure intact for table capture.
func normalizePageText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// capturePageTables groups consecutive multi-column lines into row blocks.
// A line splits into cells on tabs or runs of two-plus spaces; blocks of two
// or more rows with at least two cells each count as a table. This is a
// heuristic, not layout reconstruction.
func capturePageTables(pageNr int, pageText string) []Table {
	var tables []Table
	var rows [][]string

	flush := func() {
		if len(rows) >= 2 {
			tables = append(tables, Table{Page: pageNr, Rows: rows})
		}
		rows = nil
	}

	for _, line := range strings.Split(pageText, "\n") {
		cells := splitCells(line)
		if len(cells) >= 2 {
			rows = append(rows, cells)
		} else {
			flush()
		}
	}
	flush()

	return tables
}

var cellSplitRe = regexp.MustCompile(`\t+| {2,}`)

func splitCells(line string) []string {
	var cells []string
	for _, c := range cellSplitRe.Split(line, -1) {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}
