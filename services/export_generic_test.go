package services

import (
	"errors"
	"testing"
)

func TestParseReportType(t *testing.T) {
	tests := []struct {
		input   string
		want    ReportType
		wantErr bool
	}{
		{"sales", ReportSales, false},
		{"Payments", ReportPayments, false},
		{" inventory ", ReportInventory, false},
		{"customers", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReportType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownReportType) {
					t.Errorf("error = %v, want ErrUnknownReportType", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseReportType(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestGeneric_Sales(t *testing.T) {
	report := GenericReport{
		Type: ReportSales,
		Orders: []OrderReportRow{
			{ID: "ORD-1", Customer: &CustomerRef{Name: "Alpha"}, Salesman: &SalesmanRef{FullName: "Ravi Kumar"}, TotalAmount: 34400, Status: "delivered", CreatedAt: "2025-01-05T20:15:09Z"},
			{ID: "ORD-2", TotalAmount: 10, Status: "pending", CreatedAt: "2025-01-06T04:00:00Z"},
		},
	}

	file, err := testExporter().Generic(report)
	if err != nil {
		t.Fatalf("Generic() error = %v", err)
	}
	if file.Filename != "Sales_Report_2025-03-14.xlsx" {
		t.Errorf("filename = %q", file.Filename)
	}

	sheet := openExport(t, file)["Sales"]
	if len(sheet) != 3 {
		t.Fatalf("got %d rows, want 3", len(sheet))
	}
	if sheet[0][0] != "Order ID" {
		t.Errorf("header = %v", sheet[0])
	}
	want := []string{"ORD-1", "Alpha", "Ravi Kumar", "34400", "delivered", "6/1/2025", "1:45:09 am"}
	for i, w := range want {
		if sheet[1][i] != w {
			t.Errorf("row 1 col %d = %q, want %q", i, sheet[1][i], w)
		}
	}
	if sheet[2][1] != "N/A" || sheet[2][2] != "N/A" {
		t.Errorf("missing relations = %v, want N/A", sheet[2][1:3])
	}
}

func TestGeneric_Payments(t *testing.T) {
	report := GenericReport{
		Type: ReportPayments,
		Payments: []PaymentReportRow{
			{ID: "pay1", Customer: &CustomerRef{Name: "Beta"}, PaymentMethod: "upi", Amount: 30000, Status: "completed", CreatedAt: "2025-01-15T07:30:00Z"},
		},
	}

	file, err := testExporter().Generic(report)
	if err != nil {
		t.Fatalf("Generic() error = %v", err)
	}
	if file.Filename != "Payments_Report_2025-03-14.xlsx" {
		t.Errorf("filename = %q", file.Filename)
	}
	sheet := openExport(t, file)["Payments"]
	want := []string{"pay1", "Beta", "upi", "30000", "completed", "15/1/2025", "1:00:00 pm"}
	for i, w := range want {
		if sheet[1][i] != w {
			t.Errorf("row 1 col %d = %q, want %q", i, sheet[1][i], w)
		}
	}
}

func TestGeneric_InventoryStockStatus(t *testing.T) {
	report := GenericReport{
		Type: ReportInventory,
		Products: []InventoryReportRow{
			{Name: "Low", SKU: "L-1", StockQuantity: 9, Unit: "bag", Price: 100},
			{Name: "Edge", StockQuantity: 10, Price: 200},
		},
	}

	file, err := testExporter().Generic(report)
	if err != nil {
		t.Fatalf("Generic() error = %v", err)
	}
	sheet := openExport(t, file)["Inventory"]
	if sheet[1][6] != "LOW STOCK" {
		t.Errorf("stock 9 status = %q, want LOW STOCK", sheet[1][6])
	}
	if sheet[2][6] != "IN STOCK" {
		t.Errorf("stock 10 status = %q, want IN STOCK", sheet[2][6])
	}
	if sheet[2][1] != "N/A" || sheet[2][2] != "N/A" || sheet[2][4] != "N/A" {
		t.Errorf("missing text fields = %v, want N/A", sheet[2])
	}
}

func TestGeneric_UnknownType(t *testing.T) {
	_, err := testExporter().Generic(GenericReport{Type: "refunds"})
	if !errors.Is(err, ErrUnknownReportType) {
		t.Errorf("error = %v, want ErrUnknownReportType", err)
	}
}

func TestGeneric_Empty(t *testing.T) {
	for _, typ := range []ReportType{ReportSales, ReportPayments, ReportInventory} {
		_, err := testExporter().Generic(GenericReport{Type: typ})
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("%s: error = %v, want ErrEmptyInput", typ, err)
		}
	}
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		qty, threshold int
		want           string
	}{
		{0, 10, "LOW STOCK"},
		{9, 10, "LOW STOCK"},
		{10, 10, "IN STOCK"},
		{50, 10, "IN STOCK"},
		{3, 0, "IN STOCK"},
	}
	for _, tt := range tests {
		if got := StockStatus(tt.qty, tt.threshold); got != tt.want {
			t.Errorf("StockStatus(%d, %d) = %q, want %q", tt.qty, tt.threshold, got, tt.want)
		}
	}
}
