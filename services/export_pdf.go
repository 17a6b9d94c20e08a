package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateSalesSummaryPDF renders the facts of a detailed sales summary as
// a one-page A4 document and returns the raw PDF bytes.
func GenerateSalesSummaryPDF(s SalesSummary, period DateRange) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addSummaryHeader(m, period)
	for _, sec := range summaryPDFSections(s) {
		addSection(m, sec.title)
		for _, r := range sec.rows {
			if r.label == "" {
				addWordsRow(m, r.value)
				continue
			}
			addMetricRow(m, r.label, r.value)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

type pdfMetric struct {
	label string
	value string // a row without a label is rendered as a words line
}

type pdfSection struct {
	title string
	rows  []pdfMetric
}

// summaryPDFSections lays out the summary facts. Amounts use "Rs." since the
// built-in PDF fonts have no rupee glyph.
func summaryPDFSections(s SalesSummary) []pdfSection {
	overview := pdfSection{title: "Overview", rows: []pdfMetric{
		{"Total Orders", fmt.Sprintf("%d", s.TotalOrders)},
		{"Total Revenue", FormatRupees(s.TotalRevenue)},
		{"", AmountToWords(s.TotalRevenue)},
		{"Total Quantity Sold", formatQty(s.TotalQuantity)},
		{"Unique Customers", fmt.Sprintf("%d", s.UniqueCustomers)},
		{"Unique Products", fmt.Sprintf("%d", s.UniqueProducts)},
	}}

	status := pdfSection{title: "Order Status Breakdown"}
	for _, st := range s.StatusBreakdown {
		status.rows = append(status.rows, pdfMetric{
			strings.ToUpper(st.Status),
			fmt.Sprintf("%d orders (%s)", st.Orders, FormatRupees(st.Revenue)),
		})
	}

	top := pdfSection{title: fmt.Sprintf("Top %d Products by Quantity", s.TopN)}
	for i, p := range s.TopProducts {
		top.rows = append(top.rows, pdfMetric{
			fmt.Sprintf("%d. %s", i+1, p.Product),
			fmt.Sprintf("%s units (%s)", formatQty(p.Quantity), FormatRupees(p.Revenue)),
		})
	}

	return []pdfSection{overview, status, top}
}

// addSummaryHeader adds the title and reporting window.
func addSummaryHeader(m core.Maroto, period DateRange) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Sales Summary", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Period: %s to %s", period.StartDate, period.EndDate), props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addSection adds a dark section heading bar.
func addSection(m core.Maroto, title string) {
	m.AddRows(row.New(4))

	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(&headerCell),
		),
	)
}

// addMetricRow adds one label/value line.
func addMetricRow(m core.Maroto, label, value string) {
	m.AddRows(
		row.New(7).Add(
			col.New(7).Add(text.New(label, props.Text{Size: 8, Align: align.Left})),
			col.New(5).Add(text.New(value, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		),
	)
}

// addWordsRow adds a full-width italic line under the revenue figure.
func addWordsRow(m core.Maroto, words string) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(words, props.Text{
				Size:  7,
				Style: fontstyle.Italic,
				Align: align.Right,
				Color: &props.Color{Red: 80, Green: 80, Blue: 80},
			})),
		),
	)
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
