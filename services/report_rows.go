package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DetailedSalesRow is one sold order line item.
type DetailedSalesRow struct {
	OrderNumber   string  `json:"order_number"`
	OrderDate     string  `json:"order_date"`
	OrderStatus   string  `json:"order_status"`
	CustomerName  string  `json:"customer_name"`
	SalesmanName  string  `json:"salesman_name"`
	ProductName   string  `json:"product_name"`
	ProductSKU    string  `json:"product_sku"`
	QuantitySold  float64 `json:"quantity_sold"`
	UnitPrice     float64 `json:"unit_price"`
	LineItemTotal float64 `json:"line_item_total"`
}

func (r DetailedSalesRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderNumber, validation.Required),
		validation.Field(&r.OrderDate, validation.Required, reportDate),
		validation.Field(&r.OrderStatus, validation.Required),
		validation.Field(&r.CustomerName, validation.Required),
		validation.Field(&r.ProductName, validation.Required),
		validation.Field(&r.QuantitySold, finite),
		validation.Field(&r.UnitPrice, finite),
		validation.Field(&r.LineItemTotal, finite),
	)
}

// TargetFigures are the target/actual/variance columns shared by every
// performance report.
type TargetFigures struct {
	TargetAmount     float64 `json:"target_amount"`
	ActualAmount     float64 `json:"actual_amount"`
	VarianceAmount   float64 `json:"variance_amount"`
	TargetQuantity   float64 `json:"target_quantity"`
	ActualQuantity   float64 `json:"actual_quantity"`
	VarianceQuantity float64 `json:"variance_quantity"`
}

func (f *TargetFigures) fieldRules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&f.TargetAmount, finite),
		validation.Field(&f.ActualAmount, finite),
		validation.Field(&f.VarianceAmount, finite),
		validation.Field(&f.TargetQuantity, finite),
		validation.Field(&f.ActualQuantity, finite),
		validation.Field(&f.VarianceQuantity, finite),
	}
}

// SalesVsTargetRow compares a target period against actual sales.
type SalesVsTargetRow struct {
	PeriodName string `json:"period_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TargetFigures
}

func (r SalesVsTargetRow) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&r.PeriodName, validation.Required),
		validation.Field(&r.StartDate, validation.Required, reportDate),
		validation.Field(&r.EndDate, validation.Required, reportDate),
	}
	return validation.ValidateStruct(&r, append(rules, r.TargetFigures.fieldRules()...)...)
}

type SalesmanPerformanceRow struct {
	SalesmanName string `json:"salesman_name"`
	TargetFigures
}

func (r SalesmanPerformanceRow) Validate() error {
	return validateNamedFigures(&r, &r.SalesmanName, &r.TargetFigures)
}

type ProductPerformanceRow struct {
	ProductName string `json:"product_name"`
	TargetFigures
}

func (r ProductPerformanceRow) Validate() error {
	return validateNamedFigures(&r, &r.ProductName, &r.TargetFigures)
}

type CustomerPerformanceRow struct {
	CustomerName string `json:"customer_name"`
	TargetFigures
}

func (r CustomerPerformanceRow) Validate() error {
	return validateNamedFigures(&r, &r.CustomerName, &r.TargetFigures)
}

type DistrictPerformanceRow struct {
	District string `json:"district"`
	TargetFigures
}

func (r DistrictPerformanceRow) Validate() error {
	return validateNamedFigures(&r, &r.District, &r.TargetFigures)
}

func validateNamedFigures(row any, name *string, figures *TargetFigures) error {
	rules := []*validation.FieldRules{validation.Field(name, validation.Required)}
	return validation.ValidateStruct(row, append(rules, figures.fieldRules()...)...)
}

// SalesTrendRow is one bucket of a daily, weekly or monthly trend. Exactly
// one of the date fields is set, depending on the bucket size.
type SalesTrendRow struct {
	SalesDate      string  `json:"sales_date,omitempty"`
	WeekStartDate  string  `json:"week_start_date,omitempty"`
	MonthStartDate string  `json:"month_start_date,omitempty"`
	TotalSales     float64 `json:"total_sales"`
	NumberOfOrders int     `json:"number_of_orders"`
}

func (r SalesTrendRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SalesDate, reportDate),
		validation.Field(&r.WeekStartDate, reportDate),
		validation.Field(&r.MonthStartDate, reportDate),
		validation.Field(&r.TotalSales, finite),
	)
}

type TopCustomerRow struct {
	CustomerName        string  `json:"customer_name"`
	TotalSalesValue     float64 `json:"total_sales_value"`
	TotalItemsPurchased float64 `json:"total_items_purchased"`
}

func (r TopCustomerRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerName, validation.Required),
		validation.Field(&r.TotalSalesValue, finite),
		validation.Field(&r.TotalItemsPurchased, finite),
	)
}

// CustomerDuesRow is a customer's sales, payments and outstanding balance.
type CustomerDuesRow struct {
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	ContactPerson string  `json:"contact_person"`
	PhoneNumber   string  `json:"phone_number"`
	Address       string  `json:"address"`
	CustomerType  string  `json:"customer_type"`
	TotalSales    float64 `json:"total_sales"`
	TotalPaid     float64 `json:"total_paid"`
	DueAmount     float64 `json:"due_amount"`
}

func (r CustomerDuesRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerName, validation.Required),
		validation.Field(&r.TotalSales, finite),
		validation.Field(&r.TotalPaid, finite),
		validation.Field(&r.DueAmount, finite),
	)
}

type NewVsExistingRow struct {
	CustomerCategory string  `json:"customer_category"`
	TotalSales       float64 `json:"total_sales"`
}

func (r NewVsExistingRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerCategory, validation.Required),
		validation.Field(&r.TotalSales, finite),
	)
}

// PurchaseHistoryRow is one line item bought by a single customer.
type PurchaseHistoryRow struct {
	OrderDate   string  `json:"order_date"`
	OrderNumber string  `json:"order_number"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ItemTotal   float64 `json:"item_total"`
	OrderStatus string  `json:"order_status"`
}

func (r PurchaseHistoryRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderDate, validation.Required, reportDate),
		validation.Field(&r.OrderNumber, validation.Required),
		validation.Field(&r.ProductName, validation.Required),
		validation.Field(&r.Quantity, finite),
		validation.Field(&r.UnitPrice, finite),
		validation.Field(&r.ItemTotal, finite),
	)
}

// CustomerRef is the embedded customer relation of an order or payment.
type CustomerRef struct {
	Name string `json:"name"`
}

// SalesmanRef is the embedded salesman profile of an order.
type SalesmanRef struct {
	FullName string `json:"full_name"`
}

// OrderReportRow is an order header for the generic sales export.
type OrderReportRow struct {
	ID          string       `json:"id"`
	Customer    *CustomerRef `json:"customers,omitempty"`
	Salesman    *SalesmanRef `json:"profiles,omitempty"`
	TotalAmount float64      `json:"total_amount"`
	Status      string       `json:"status"`
	CreatedAt   string       `json:"created_at"`
}

func (r OrderReportRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.TotalAmount, finite),
		validation.Field(&r.CreatedAt, validation.Required, reportDate),
	)
}

// PaymentReportRow is a payment for the generic payments export.
type PaymentReportRow struct {
	ID            string       `json:"id"`
	Customer      *CustomerRef `json:"customers,omitempty"`
	PaymentMethod string       `json:"payment_method"`
	Amount        float64      `json:"amount"`
	Status        string       `json:"status"`
	CreatedAt     string       `json:"created_at"`
}

func (r PaymentReportRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Amount, finite),
		validation.Field(&r.CreatedAt, validation.Required, reportDate),
	)
}

// InventoryReportRow is a product with its stock level.
type InventoryReportRow struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stock_quantity"`
	Unit          string  `json:"unit"`
	Price         float64 `json:"price"`
}

func (r InventoryReportRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, finite),
	)
}

var reportDate = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := parseReportDate(s)
	return err
})

var finite = validation.By(func(value any) error {
	f, _ := value.(float64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a finite number")
	}
	return nil
})

// validateRows checks every row and reports the first failure as a
// *MalformedRowError.
func validateRows[T validation.Validatable](report string, rows []T) error {
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return malformedRow(report, i, err)
		}
	}
	return nil
}

func malformedRow(report string, index int, err error) error {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%s row %d: %w", report, index, err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for name := range fieldErrs {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return &MalformedRowError{
		Report: report,
		Index:  index,
		Field:  fields[0],
		Err:    fieldErrs[fields[0]],
	}
}
