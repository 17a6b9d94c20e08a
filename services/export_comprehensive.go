package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ComprehensiveReport bundles the optional collections of the multi-tab
// sales analysis. Each non-empty collection becomes one sheet.
type ComprehensiveReport struct {
	SalesVsTarget       []SalesVsTargetRow       `json:"sales_vs_target,omitempty"`
	SalesmanPerformance []SalesmanPerformanceRow `json:"salesman_performance,omitempty"`
	ProductPerformance  []ProductPerformanceRow  `json:"product_performance,omitempty"`
	CustomerPerformance []CustomerPerformanceRow `json:"customer_performance,omitempty"`
	DistrictPerformance []DistrictPerformanceRow `json:"district_performance,omitempty"`
	SalesTrendDaily     []SalesTrendRow          `json:"sales_trend_daily,omitempty"`
	SalesTrendWeekly    []SalesTrendRow          `json:"sales_trend_weekly,omitempty"`
	SalesTrendMonthly   []SalesTrendRow          `json:"sales_trend_monthly,omitempty"`
	TopCustomers        []TopCustomerRow         `json:"top_customers,omitempty"`
	CustomerDues        []CustomerDuesRow        `json:"customer_dues,omitempty"`
	NewVsExisting       []NewVsExistingRow       `json:"new_vs_existing,omitempty"`
}

// ComprehensiveBundle is the request shape of a comprehensive export, as
// posted to the HTTP endpoint or read from a file by the CLI.
type ComprehensiveBundle struct {
	PeriodName string              `json:"period_name"`
	DateRange  *DateRange          `json:"date_range,omitempty"`
	Reports    ComprehensiveReport `json:"reports"`
}

func (b ComprehensiveBundle) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.PeriodName, validation.Required),
		validation.Field(&b.DateRange, validation.By(func(value any) error {
			r, _ := value.(*DateRange)
			if r == nil {
				return nil
			}
			if r.StartDate == "" || r.EndDate == "" {
				return errors.New("needs start_date and end_date")
			}
			return nil
		})),
	)
}

var figureHeaders = []string{
	"Target Amount (₹)",
	"Actual Amount (₹)",
	"Variance Amount (₹)",
	"Target Quantity",
	"Actual Quantity",
	"Variance Quantity",
	"Achievement %",
}

func figureCells(f TargetFigures) []any {
	return []any{
		FormatIndianNumber(f.TargetAmount),
		FormatIndianNumber(f.ActualAmount),
		FormatIndianNumber(f.VarianceAmount),
		f.TargetQuantity,
		f.ActualQuantity,
		f.VarianceQuantity,
		FormatAchievement(f.ActualAmount, f.TargetAmount),
	}
}

// sheetBuilder produces one sheet of the comprehensive workbook. ok is false
// when the collection is empty and contributes no sheet.
type sheetBuilder func() (sheet Sheet, ok bool, err error)

// Comprehensive builds the multi-tab sales analysis workbook. dateRange is
// optional; without it the filename carries today's date.
func (x *Exporter) Comprehensive(report ComprehensiveReport, periodName string, dateRange *DateRange) (*ExportFile, error) {
	builders := []sheetBuilder{
		x.salesVsTargetSheet(report.SalesVsTarget),
		performanceSheet(x, "Salesman Performance", "Salesman Name", report.SalesmanPerformance,
			func(r SalesmanPerformanceRow) (string, TargetFigures) { return r.SalesmanName, r.TargetFigures }),
		performanceSheet(x, "Product Performance", "Product Name", report.ProductPerformance,
			func(r ProductPerformanceRow) (string, TargetFigures) { return r.ProductName, r.TargetFigures }),
		performanceSheet(x, "Customer Performance", "Customer Name", report.CustomerPerformance,
			func(r CustomerPerformanceRow) (string, TargetFigures) { return r.CustomerName, r.TargetFigures }),
		performanceSheet(x, "District Performance", "District", report.DistrictPerformance,
			func(r DistrictPerformanceRow) (string, TargetFigures) { return r.District, r.TargetFigures }),
		x.trendSheet("Daily Sales Trend", "Date", "sales_date", report.SalesTrendDaily,
			func(r SalesTrendRow) string { return r.SalesDate }),
		x.trendSheet("Weekly Sales Trend", "Week Starting", "week_start_date", report.SalesTrendWeekly,
			func(r SalesTrendRow) string { return r.WeekStartDate }),
		x.trendSheet("Monthly Sales Trend", "Month Starting", "month_start_date", report.SalesTrendMonthly,
			func(r SalesTrendRow) string { return r.MonthStartDate }),
		x.topCustomersSheet(report.TopCustomers),
		x.customerDuesSheet(report.CustomerDues),
		x.newVsExistingSheet(report.NewVsExisting),
	}

	wb := NewWorkbook()
	for _, build := range builders {
		sheet, ok, err := build()
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := wb.AddSheet(sheet); err != nil {
			return nil, err
		}
	}
	if len(wb.Sheets()) == 0 {
		return nil, emptyInput("comprehensive sales")
	}

	dateStr := x.today()
	if dateRange != nil {
		dateStr = dateRange.filenamePart()
	}
	filename := fmt.Sprintf("Comprehensive_Sales_Report_%s_%s.xlsx", sanitizeFilenamePart(periodName), dateStr)
	return x.workbookFile(wb, filename)
}

func (x *Exporter) salesVsTargetSheet(rows []SalesVsTargetRow) sheetBuilder {
	return func() (Sheet, bool, error) {
		if len(rows) == 0 {
			return Sheet{}, false, nil
		}
		if err := validateRows("sales vs target", rows); err != nil {
			return Sheet{}, false, err
		}
		headers := append([]string{"Period Name", "Start Date", "End Date"}, figureHeaders...)
		data := make([][]any, len(rows))
		for i, r := range rows {
			data[i] = append([]any{r.PeriodName, x.mustShortDate(r.StartDate), x.mustShortDate(r.EndDate)}, figureCells(r.TargetFigures)...)
		}
		sheet, err := NewSheet("Sales vs Target", headers, data, x.opts)
		return sheet, err == nil, err
	}
}

func performanceSheet[T interface{ Validate() error }](x *Exporter, name, nameHeader string, rows []T, split func(T) (string, TargetFigures)) sheetBuilder {
	return func() (Sheet, bool, error) {
		if len(rows) == 0 {
			return Sheet{}, false, nil
		}
		if err := validateRows(name, rows); err != nil {
			return Sheet{}, false, err
		}
		headers := append([]string{nameHeader}, figureHeaders...)
		data := make([][]any, len(rows))
		for i, r := range rows {
			label, figures := split(r)
			data[i] = append([]any{label}, figureCells(figures)...)
		}
		sheet, err := NewSheet(name, headers, data, x.opts)
		return sheet, err == nil, err
	}
}

func (x *Exporter) trendSheet(name, dateHeader, dateField string, rows []SalesTrendRow, bucket func(SalesTrendRow) string) sheetBuilder {
	return func() (Sheet, bool, error) {
		if len(rows) == 0 {
			return Sheet{}, false, nil
		}
		if err := validateRows(name, rows); err != nil {
			return Sheet{}, false, err
		}
		data := make([][]any, len(rows))
		for i, r := range rows {
			date := bucket(r)
			if date == "" {
				return Sheet{}, false, &MalformedRowError{Report: name, Index: i, Field: dateField, Err: fmt.Errorf("cannot be blank")}
			}
			data[i] = []any{x.mustShortDate(date), FormatIndianNumber(r.TotalSales), r.NumberOfOrders}
		}
		sheet, err := NewSheet(name, []string{dateHeader, "Total Sales (₹)", "Number of Orders"}, data, x.opts)
		return sheet, err == nil, err
	}
}

// topCustomersSheet ranks customers by their position in rows; callers pass
// them already sorted by sales value.
func (x *Exporter) topCustomersSheet(rows []TopCustomerRow) sheetBuilder {
	return func() (Sheet, bool, error) {
		if len(rows) == 0 {
			return Sheet{}, false, nil
		}
		if err := validateRows("top customers", rows); err != nil {
			return Sheet{}, false, err
		}
		data := make([][]any, len(rows))
		for i, r := range rows {
			data[i] = []any{i + 1, r.CustomerName, FormatIndianNumber(r.TotalSalesValue), r.TotalItemsPurchased}
		}
		headers := []string{"Rank", "Customer Name", "Total Sales Value (₹)", "Total Items Purchased"}
		sheet, err := NewSheet("Top Customers", headers, data, x.opts)
		return sheet, err == nil, err
	}
}

func (x *Exporter) customerDuesSheet(rows []CustomerDuesRow) sheetBuilder {
	return func() (Sheet, bool, error) {
		if len(rows) == 0 {
			return Sheet{}, false, nil
		}
		if err := validateRows("customer dues", rows); err != nil {
			return Sheet{}, false, err
		}
		data := make([][]any, len(rows))
		for i, r := range rows {
			data[i] = []any{
				r.CustomerName,
				orNA(r.ContactPerson),
				orNA(r.PhoneNumber),
				orNA(r.CustomerType),
				FormatIndianNumber(r.TotalSales),
				FormatIndianNumber(r.TotalPaid),
				FormatIndianNumber(r.DueAmount),
			}
		}
		headers := []string{"Customer Name", "Contact Person", "Phone Number", "Customer Type", "Total Sales (₹)", "Total Paid (₹)", "Due Amount (₹)"}
		sheet, err := NewSheet("Customer Dues", headers, data, x.opts)
		return sheet, err == nil, err
	}
}

func (x *Exporter) newVsExistingSheet(rows []NewVsExistingRow) sheetBuilder {
	return func() (Sheet, bool, error) {
		if len(rows) == 0 {
			return Sheet{}, false, nil
		}
		if err := validateRows("new vs existing", rows); err != nil {
			return Sheet{}, false, err
		}
		data := make([][]any, len(rows))
		for i, r := range rows {
			data[i] = []any{r.CustomerCategory, FormatIndianNumber(r.TotalSales)}
		}
		sheet, err := NewSheet("New vs Existing", []string{"Customer Category", "Total Sales (₹)"}, data, x.opts)
		return sheet, err == nil, err
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
