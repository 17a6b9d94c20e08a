package services

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// maxSheetNameLen is Excel's limit on worksheet names.
const maxSheetNameLen = 31

// Sheet is one worksheet of an export: a header row, the data rows beneath
// it and one width per column.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
	Widths  []float64
}

// NewSheet builds a sheet and sizes its columns from the content. Every row
// must have exactly one value per header.
func NewSheet(name string, headers []string, rows [][]any, opts ExportOptions) (Sheet, error) {
	if name == "" {
		return Sheet{}, errors.New("sheet name is required")
	}
	if len(headers) == 0 {
		return Sheet{}, fmt.Errorf("sheet %q: no columns", name)
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return Sheet{}, fmt.Errorf("sheet %q: row %d has %d values, want %d", name, i, len(row), len(headers))
		}
	}

	if utf8.RuneCountInString(name) > maxSheetNameLen {
		name = string([]rune(name)[:maxSheetNameLen])
	}

	return Sheet{
		Name:    name,
		Headers: headers,
		Rows:    rows,
		Widths:  AutoColumnWidths(headers, rows, opts),
	}, nil
}

// AutoColumnWidths returns one width per header: the longest rendered value
// in the column (header included), floored at MinColumnWidth, plus
// ColumnPadding, capped at MaxColumnWidth.
func AutoColumnWidths(headers []string, rows [][]any, opts ExportOptions) []float64 {
	widths := make([]float64, len(headers))
	for col, header := range headers {
		longest := opts.MinColumnWidth
		if n := float64(utf8.RuneCountInString(header)); n > longest {
			longest = n
		}
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			if n := float64(utf8.RuneCountInString(cellText(row[col]))); n > longest {
				longest = n
			}
		}
		widths[col] = min(longest+opts.ColumnPadding, opts.MaxColumnWidth)
	}
	return widths
}

// cellText is the text a spreadsheet shows for a cell value.
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}

// Workbook is an ordered set of uniquely named sheets. The first sheet added
// is the active one.
type Workbook struct {
	sheets []Sheet
	names  map[string]bool
}

func NewWorkbook() *Workbook {
	return &Workbook{names: make(map[string]bool)}
}

// AddSheet appends s. Sheet names must be unique within the workbook.
func (w *Workbook) AddSheet(s Sheet) error {
	if w.names[s.Name] {
		return fmt.Errorf("%w: %q", ErrDuplicateSheet, s.Name)
	}
	w.names[s.Name] = true
	w.sheets = append(w.sheets, s)
	return nil
}

// Sheets returns the sheets in the order they were added.
func (w *Workbook) Sheets() []Sheet {
	return w.sheets
}

// Bytes serializes the workbook to xlsx.
func (w *Workbook) Bytes() ([]byte, error) {
	if len(w.sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, s := range w.sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return nil, fmt.Errorf("set sheet name: %w", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", s.Name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s Sheet, headerStyle int) error {
	for i, width := range s.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.Name, col, col, width); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	header := make([]any, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(s.Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.Name, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for r, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for i, v := range row {
			if str, ok := v.(string); ok {
				v = sanitizeExcelCell(str)
			}
			values[i] = v
		}
		if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}

	return f.SetPanes(s.Name, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas. Negative amounts rendered as text are left alone.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '-':
		if isFormattedNumber(s[1:]) {
			return s
		}
		return "'" + s
	case '=', '+', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// isFormattedNumber reports whether s looks like a grouped amount such as
// "1,23,456.50" or "₹1,000".
func isFormattedNumber(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ',' || r == '.' || r == '₹' || r == '%':
		default:
			return false
		}
	}
	return digits > 0
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
