package services

import "fmt"

const reportDetailedSales = "detailed sales"

var detailedSalesHeaders = []string{
	"Order Number",
	"Order Date",
	"Order Status",
	"Customer Name",
	"Salesman Name",
	"Product Name",
	"Product SKU",
	"Quantity Sold",
	"Unit Price (₹)",
	"Line Total (₹)",
}

// DetailedSales builds the two-sheet detailed sales workbook: one row per
// line item plus a Summary sheet. startDate and endDate only name the file.
func (x *Exporter) DetailedSales(rows []DetailedSalesRow, startDate, endDate string) (*ExportFile, error) {
	if len(rows) == 0 {
		return nil, emptyInput(reportDetailedSales)
	}
	if err := validateRows(reportDetailedSales, rows); err != nil {
		return nil, err
	}

	data := make([][]any, len(rows))
	for i, r := range rows {
		salesman := r.SalesmanName
		if salesman == "" {
			salesman = "N/A"
		}
		data[i] = []any{
			r.OrderNumber,
			x.mustShortDate(r.OrderDate),
			r.OrderStatus,
			r.CustomerName,
			salesman,
			r.ProductName,
			r.ProductSKU,
			r.QuantitySold,
			r.UnitPrice,
			r.LineItemTotal,
		}
	}

	wb := NewWorkbook()
	detail, err := NewSheet("Detailed Sales Report", detailedSalesHeaders, data, x.opts)
	if err != nil {
		return nil, err
	}
	if err := wb.AddSheet(detail); err != nil {
		return nil, err
	}

	summary := AggregateSales(rows, x.opts.TopProducts)
	summarySheet, err := NewSheet("Summary", []string{"Metric", "Value"}, RenderSummary(summary), x.opts)
	if err != nil {
		return nil, err
	}
	if err := wb.AddSheet(summarySheet); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("Detailed_Sales_Report_%s.xlsx", DateRange{StartDate: startDate, EndDate: endDate}.filenamePart())
	return x.workbookFile(wb, filename)
}

// SalesSummaryPDF renders the summary facts of rows as a one-page PDF.
func (x *Exporter) SalesSummaryPDF(rows []DetailedSalesRow, startDate, endDate string) (*ExportFile, error) {
	if len(rows) == 0 {
		return nil, emptyInput(reportDetailedSales)
	}
	if err := validateRows(reportDetailedSales, rows); err != nil {
		return nil, err
	}

	period := DateRange{StartDate: startDate, EndDate: endDate}
	content, err := GenerateSalesSummaryPDF(AggregateSales(rows, x.opts.TopProducts), period)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("Sales_Summary_%s.pdf", period.filenamePart()),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}
