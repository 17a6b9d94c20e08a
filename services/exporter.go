package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ContentTypeXLSX is the MIME type of every workbook the exporter produces.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContentTypePDF is the MIME type of the sales summary document.
const ContentTypePDF = "application/pdf"

// ExportOptions tunes the report exporters.
type ExportOptions struct {
	// LowStockThreshold is the stock level below which a product is
	// reported as LOW STOCK.
	LowStockThreshold int
	// TopProducts is how many products the summary ranks.
	TopProducts int

	MinColumnWidth float64
	ColumnPadding  float64
	MaxColumnWidth float64

	// Location is the zone dates and times are displayed in.
	Location *time.Location
	// Now supplies the date stamp of generated filenames.
	Now func() time.Time
}

// DefaultExportOptions returns the options used when no configuration file
// is present.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		LowStockThreshold: 10,
		TopProducts:       10,
		MinColumnWidth:    10,
		ColumnPadding:     2,
		MaxColumnWidth:    50,
		Location:          time.FixedZone("IST", 330*60),
		Now:               time.Now,
	}
}

// ExportFile is a generated report ready to be downloaded or written to disk.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Exporter turns report rows into spreadsheet workbooks. It holds no state
// between calls and is safe for concurrent use.
type Exporter struct {
	opts ExportOptions
}

func NewExporter(opts ExportOptions) *Exporter {
	defaults := DefaultExportOptions()
	if opts.Location == nil {
		opts.Location = defaults.Location
	}
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	if opts.TopProducts <= 0 {
		opts.TopProducts = defaults.TopProducts
	}
	if opts.MaxColumnWidth <= 0 {
		opts.MaxColumnWidth = defaults.MaxColumnWidth
	}
	return &Exporter{opts: opts}
}

// Options returns the effective options of the exporter.
func (x *Exporter) Options() ExportOptions {
	return x.opts
}

func (x *Exporter) today() string {
	return isoDate(x.opts.Now())
}

// localTime parses s into the display zone. A date without a time names a
// calendar day and stays on that day in every zone.
func (x *Exporter) localTime(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), x.opts.Location); err == nil {
		return d, nil
	}
	t, err := parseReportDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(x.opts.Location), nil
}

func (x *Exporter) shortDate(s string) (string, error) {
	t, err := x.localTime(s)
	if err != nil {
		return "", err
	}
	return formatShortDate(t, x.opts.Location), nil
}

// mustShortDate formats a date that has already passed row validation.
func (x *Exporter) mustShortDate(s string) string {
	d, err := x.shortDate(s)
	if err != nil {
		return s
	}
	return d
}

func (x *Exporter) workbookFile(wb *Workbook, filename string) (*ExportFile, error) {
	content, err := wb.Bytes()
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    filename,
		ContentType: ContentTypeXLSX,
		Content:     content,
	}, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// sanitizeFilenamePart replaces runs of whitespace with underscores and
// characters that are unsafe in filenames with hyphens.
func sanitizeFilenamePart(s string) string {
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.NewReplacer("/", "-", "\\", "-", ":", "-", `"`, "-").Replace(s)
}

// DateRange is an inclusive reporting window, as yyyy-mm-dd strings.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (d DateRange) filenamePart() string {
	return fmt.Sprintf("%s_to_%s", sanitizeFilenamePart(d.StartDate), sanitizeFilenamePart(d.EndDate))
}
