package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesdesk/testhelpers"
)

func TestBuildReportsPageData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	seedOrders(t, app)
	testhelpers.CreateTestCustomer(t, app, "Alpha Stores")

	data := BuildReportsPageData(app, 10)
	if data.OrderCount != 1 {
		t.Errorf("OrderCount = %d, want 1", data.OrderCount)
	}
	if data.ProductCount != 2 || data.LowStockCount != 1 {
		t.Errorf("products = %d low = %d, want 2 and 1", data.ProductCount, data.LowStockCount)
	}
	if len(data.Customers) != 2 || data.Customers[0].Name != "Alpha Stores" {
		t.Errorf("customers = %+v, want sorted by name", data.Customers)
	}
}

func TestHandleReportsPage(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cust := seedOrders(t, app)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := serve(t, app, HandleReportsPage(app, testExporter()), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<h1>Reports</h1>",
		`action="/reports/detailed-sales/export"`,
		`href="/reports/sales/export"`,
		`href="/reports/inventory/export"`,
		`href="/reports/customers/`+cust.Id+`/purchase-history/export"`,
		"Export Traders",
		"1 orders, 2 products (1 low on stock)",
	)
}

func TestHandleReportsPage_EscapesNames(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, `<b>Bold & Co</b>`)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := serve(t, app, HandleReportsPage(app, testExporter()), req)

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "&lt;b&gt;Bold &amp; Co&lt;/b&gt;")
}

func TestHandleReportsPage_NoCustomers(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := serve(t, app, HandleReportsPage(app, testExporter()), req)

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No customers yet.")
}

func TestReportsPage_ToastWiring(t *testing.T) {
	data := ReportsPageData{Customers: []CustomerLink{{ID: "abc123", Name: "Alpha Stores"}}}

	var buf bytes.Buffer
	if err := ReportsPage(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	testhelpers.AssertHTMLContains(t, buf.String(),
		`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`,
		`<div id="toast-container"`,
		`action="/reports/detailed-sales/export" data-export>`,
		`<a href="/reports/payments/export" data-export>payments</a>`,
		`<a href="/reports/customers/abc123/purchase-history/export" data-export>Alpha Stores</a>`,
		`addEventListener("showToast"`,
		`res.headers.get("HX-Trigger")`,
		`flash_toast=`,
	)
}
