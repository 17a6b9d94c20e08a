package services

import "fmt"

const reportPurchaseHistory = "purchase history"

var purchaseHistoryHeaders = []string{
	"Order Date",
	"Order Number",
	"Product Name",
	"Quantity",
	"Unit Price (₹)",
	"Item Total (₹)",
	"Order Status",
}

// CustomerPurchaseHistory builds a single-sheet workbook of everything one
// customer bought.
func (x *Exporter) CustomerPurchaseHistory(rows []PurchaseHistoryRow, customerName string) (*ExportFile, error) {
	if len(rows) == 0 {
		return nil, emptyInput(reportPurchaseHistory)
	}
	if err := validateRows(reportPurchaseHistory, rows); err != nil {
		return nil, err
	}

	data := make([][]any, len(rows))
	for i, r := range rows {
		data[i] = []any{
			x.mustShortDate(r.OrderDate),
			r.OrderNumber,
			r.ProductName,
			r.Quantity,
			FormatIndianNumber(r.UnitPrice),
			FormatIndianNumber(r.ItemTotal),
			r.OrderStatus,
		}
	}

	wb := NewWorkbook()
	sheet, err := NewSheet("Purchase History", purchaseHistoryHeaders, data, x.opts)
	if err != nil {
		return nil, err
	}
	if err := wb.AddSheet(sheet); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("Customer_Purchase_History_%s_%s.xlsx", sanitizeFilenamePart(customerName), x.today())
	return x.workbookFile(wb, filename)
}
