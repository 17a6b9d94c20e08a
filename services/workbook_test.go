package services

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestAutoColumnWidths(t *testing.T) {
	opts := DefaultExportOptions()

	tests := []struct {
		name    string
		headers []string
		rows    [][]any
		want    []float64
	}{
		{
			name:    "short content floors at min width",
			headers: []string{"ID"},
			rows:    [][]any{{"a"}, {"bb"}},
			want:    []float64{12},
		},
		{
			name:    "header longer than values",
			headers: []string{"Customer Name Column"},
			rows:    [][]any{{"x"}},
			want:    []float64{22},
		},
		{
			name:    "value longer than header",
			headers: []string{"Name"},
			rows:    [][]any{{"Sri Lakshmi Traders Pvt"}},
			want:    []float64{25},
		},
		{
			name:    "numbers measured by rendered text",
			headers: []string{"Qty"},
			rows:    [][]any{{123456789012.5}},
			want:    []float64{16},
		},
		{
			name:    "capped at max width",
			headers: []string{"Description"},
			rows:    [][]any{{"this value is considerably longer than fifty characters in total"}},
			want:    []float64{50},
		},
		{
			name:    "rupee sign counts as one character",
			headers: []string{"Unit Price (₹)"},
			rows:    nil,
			want:    []float64{16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoColumnWidths(tt.headers, tt.rows, opts)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d widths, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("width[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAutoColumnWidths_Bounds(t *testing.T) {
	opts := DefaultExportOptions()
	headers := []string{"A", "B", "C"}
	rows := [][]any{
		{"", 1, nil},
		{"a much longer string that goes on and on and on and on forever", 3.25, true},
	}
	for i, w := range AutoColumnWidths(headers, rows, opts) {
		if w < opts.MinColumnWidth+opts.ColumnPadding || w > opts.MaxColumnWidth {
			t.Errorf("width[%d] = %v out of bounds", i, w)
		}
	}
}

func TestNewSheet_RowLengthMismatch(t *testing.T) {
	_, err := NewSheet("Bad", []string{"A", "B"}, [][]any{{"only one"}}, DefaultExportOptions())
	if err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestNewSheet_TruncatesLongName(t *testing.T) {
	s, err := NewSheet("A Sheet Name That Is Far Too Long For Excel", []string{"A"}, nil, DefaultExportOptions())
	if err != nil {
		t.Fatalf("NewSheet() error = %v", err)
	}
	if len([]rune(s.Name)) != maxSheetNameLen {
		t.Errorf("sheet name %q has %d runes, want %d", s.Name, len([]rune(s.Name)), maxSheetNameLen)
	}
}

func TestWorkbook_DuplicateSheet(t *testing.T) {
	wb := NewWorkbook()
	s, _ := NewSheet("Summary", []string{"Metric"}, nil, DefaultExportOptions())
	if err := wb.AddSheet(s); err != nil {
		t.Fatalf("first AddSheet() error = %v", err)
	}
	if err := wb.AddSheet(s); !errors.Is(err, ErrDuplicateSheet) {
		t.Errorf("second AddSheet() error = %v, want ErrDuplicateSheet", err)
	}
}

func TestWorkbook_NoSheets(t *testing.T) {
	if _, err := NewWorkbook().Bytes(); err == nil {
		t.Error("expected error for workbook without sheets")
	}
}

func TestWorkbook_Bytes(t *testing.T) {
	opts := DefaultExportOptions()
	wb := NewWorkbook()
	first, _ := NewSheet("First", []string{"Name", "Amount"}, [][]any{{"Widget", 150.5}, {"=SUM(A1)", 2}}, opts)
	second, _ := NewSheet("Second", []string{"Only"}, [][]any{{"x"}}, opts)
	_ = wb.AddSheet(first)
	_ = wb.AddSheet(second)

	result, err := wb.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "First" || sheets[1] != "Second" {
		t.Fatalf("sheets = %v, want [First Second]", sheets)
	}
	if f.GetActiveSheetIndex() != 0 {
		t.Errorf("active sheet = %d, want 0", f.GetActiveSheetIndex())
	}

	header, _ := f.GetCellValue("First", "B1")
	if header != "Amount" {
		t.Errorf("B1 = %q, want %q", header, "Amount")
	}
	amount, _ := f.GetCellValue("First", "B2")
	if amount != "150.5" {
		t.Errorf("B2 = %q, want %q", amount, "150.5")
	}
	formula, _ := f.GetCellFormula("First", "A3")
	if formula != "" {
		t.Errorf("A3 should not hold a formula, got %q", formula)
	}

	width, _ := f.GetColWidth("First", "A")
	if width != first.Widths[0] {
		t.Errorf("column A width = %v, want %v", width, first.Widths[0])
	}

	panes, err := f.GetPanes("First")
	if err != nil {
		t.Fatalf("GetPanes() error = %v", err)
	}
	if !panes.Freeze || panes.YSplit != 1 {
		t.Errorf("header row not frozen: %+v", panes)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Widget", "Widget"},
		{"=HYPERLINK(\"x\")", "'=HYPERLINK(\"x\")"},
		{"+91 98480", "'+91 98480"},
		{"@cmd", "'@cmd"},
		{"-cmd", "'-cmd"},
		{"-1,250.5", "-1,250.5"},
		{"-75.00%", "-75.00%"},
		{"|pipe", "'|pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Fatalf("expected 4 borders, got %d", len(borders))
	}
	for _, b := range borders {
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1", b.Type, b.Style)
		}
	}
}
