package services

import (
	"fmt"
	"strings"
)

// ReportType selects the shape of a generic export.
type ReportType string

const (
	ReportSales     ReportType = "sales"
	ReportPayments  ReportType = "payments"
	ReportInventory ReportType = "inventory"
)

// ParseReportType maps a discriminator from a URL or flag to a ReportType.
func ParseReportType(s string) (ReportType, error) {
	switch t := ReportType(strings.ToLower(strings.TrimSpace(s))); t {
	case ReportSales, ReportPayments, ReportInventory:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
}

// title is the sheet name and filename prefix of the report type.
func (t ReportType) title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// GenericReport carries the rows of one generic export. Only the collection
// matching Type is read.
type GenericReport struct {
	Type     ReportType
	Orders   []OrderReportRow
	Payments []PaymentReportRow
	Products []InventoryReportRow
}

// Generic builds the single-sheet sales, payments or inventory workbook.
func (x *Exporter) Generic(report GenericReport) (*ExportFile, error) {
	var (
		headers []string
		data    [][]any
		err     error
	)
	switch report.Type {
	case ReportSales:
		headers = []string{"Order ID", "Customer Name", "Salesman", "Total Amount (₹)", "Status", "Order Date", "Order Time"}
		data, err = x.orderCells(report.Orders)
	case ReportPayments:
		headers = []string{"Payment ID", "Customer Name", "Payment Method", "Amount (₹)", "Status", "Payment Date", "Payment Time"}
		data, err = x.paymentCells(report.Payments)
	case ReportInventory:
		headers = []string{"Product Name", "SKU", "Description", "Stock Quantity", "Unit", "Price (₹)", "Status"}
		data, err = x.inventoryCells(report.Products)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, report.Type)
	}
	if err != nil {
		return nil, err
	}

	wb := NewWorkbook()
	sheet, err := NewSheet(report.Type.title(), headers, data, x.opts)
	if err != nil {
		return nil, err
	}
	if err := wb.AddSheet(sheet); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s_Report_%s.xlsx", report.Type.title(), x.today())
	return x.workbookFile(wb, filename)
}

func (x *Exporter) orderCells(rows []OrderReportRow) ([][]any, error) {
	if len(rows) == 0 {
		return nil, emptyInput("sales")
	}
	if err := validateRows("sales", rows); err != nil {
		return nil, err
	}
	data := make([][]any, len(rows))
	for i, r := range rows {
		customer, salesman := "N/A", "N/A"
		if r.Customer != nil && r.Customer.Name != "" {
			customer = r.Customer.Name
		}
		if r.Salesman != nil && r.Salesman.FullName != "" {
			salesman = r.Salesman.FullName
		}
		created, _ := x.localTime(r.CreatedAt)
		data[i] = []any{
			r.ID,
			customer,
			salesman,
			r.TotalAmount,
			r.Status,
			formatShortDate(created, x.opts.Location),
			formatShortTime(created, x.opts.Location),
		}
	}
	return data, nil
}

func (x *Exporter) paymentCells(rows []PaymentReportRow) ([][]any, error) {
	if len(rows) == 0 {
		return nil, emptyInput("payments")
	}
	if err := validateRows("payments", rows); err != nil {
		return nil, err
	}
	data := make([][]any, len(rows))
	for i, r := range rows {
		customer := "N/A"
		if r.Customer != nil && r.Customer.Name != "" {
			customer = r.Customer.Name
		}
		created, _ := x.localTime(r.CreatedAt)
		data[i] = []any{
			r.ID,
			customer,
			r.PaymentMethod,
			r.Amount,
			r.Status,
			formatShortDate(created, x.opts.Location),
			formatShortTime(created, x.opts.Location),
		}
	}
	return data, nil
}

func (x *Exporter) inventoryCells(rows []InventoryReportRow) ([][]any, error) {
	if len(rows) == 0 {
		return nil, emptyInput("inventory")
	}
	if err := validateRows("inventory", rows); err != nil {
		return nil, err
	}
	data := make([][]any, len(rows))
	for i, r := range rows {
		data[i] = []any{
			r.Name,
			orNA(r.SKU),
			orNA(r.Description),
			r.StockQuantity,
			orNA(r.Unit),
			r.Price,
			StockStatus(r.StockQuantity, x.opts.LowStockThreshold),
		}
	}
	return data, nil
}

// StockStatus classifies a stock level against the low-stock threshold. A
// level equal to the threshold is in stock.
func StockStatus(quantity, threshold int) string {
	if quantity < threshold {
		return "LOW STOCK"
	}
	return "IN STOCK"
}
