// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"salesdesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

func createRecord(t *testing.T, app *pocketbase.PocketBase, collection string, fields map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		t.Fatalf("failed to find %s collection: %v", collection, err)
	}

	record := core.NewRecord(col)
	for k, v := range fields {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test %s record: %v", collection, err)
	}

	return record
}

// CreateTestCustomer creates a customer record with the given name and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	return createRecord(t, app, "customers", map[string]any{
		"name":           name,
		"phone":          "9876543210",
		"city":           "Guntur",
		"district":       "Guntur",
		"contact_person": "Test Contact",
		"customer_type":  "retailer",
	})
}

// CreateTestSalesman creates a salesman record and returns it.
func CreateTestSalesman(t *testing.T, app *pocketbase.PocketBase, firstName, lastName string) *core.Record {
	t.Helper()

	return createRecord(t, app, "salesmen", map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
	})
}

// CreateTestProduct creates a product record with the given stock level and price.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, name string, stock int, price float64) *core.Record {
	t.Helper()

	return createRecord(t, app, "products", map[string]any{
		"name":           name,
		"sku":            strings.ToUpper(strings.ReplaceAll(name, " ", "-")),
		"stock_quantity": stock,
		"price":          price,
		"unit":           "nos",
	})
}

// CreateTestOrder creates an order for a customer. salesmanID may be empty.
// orderDate uses PocketBase's datetime format, e.g. "2025-01-15 10:00:00.000Z".
func CreateTestOrder(t *testing.T, app *pocketbase.PocketBase, customerID, salesmanID, orderNumber, status, orderDate string) *core.Record {
	t.Helper()

	fields := map[string]any{
		"order_number": orderNumber,
		"customer":     customerID,
		"status":       status,
		"order_date":   orderDate,
	}
	if salesmanID != "" {
		fields["salesman"] = salesmanID
	}
	return createRecord(t, app, "orders", fields)
}

// CreateTestOrderItem adds a line item to an order; total_price is quantity * unitPrice.
func CreateTestOrderItem(t *testing.T, app *pocketbase.PocketBase, orderID, productID string, quantity, unitPrice float64) *core.Record {
	t.Helper()

	return createRecord(t, app, "order_items", map[string]any{
		"order":       orderID,
		"product":     productID,
		"quantity":    quantity,
		"unit_price":  unitPrice,
		"total_price": quantity * unitPrice,
	})
}

// CreateTestPayment creates a completed payment for a customer.
func CreateTestPayment(t *testing.T, app *pocketbase.PocketBase, customerID string, amount float64, method, paymentDate string) *core.Record {
	t.Helper()

	return createRecord(t, app, "payments", map[string]any{
		"customer":       customerID,
		"amount":         amount,
		"payment_method": method,
		"status":         "completed",
		"payment_date":   paymentDate,
	})
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
