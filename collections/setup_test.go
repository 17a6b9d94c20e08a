package collections_test

import (
	"testing"

	"salesdesk/collections"
	"salesdesk/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"customers",
	"salesmen",
	"products",
	"orders",
	"order_items",
	"payments",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_Fields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		collection string
		fields     []string
	}{
		{"customers", []string{"name", "email", "phone", "city", "district", "contact_person", "customer_type"}},
		{"salesmen", []string{"first_name", "last_name", "email", "phone"}},
		{"products", []string{"name", "sku", "description", "price", "stock_quantity", "unit"}},
		{"orders", []string{"order_number", "customer", "salesman", "total_amount", "status", "order_date"}},
		{"order_items", []string{"order", "product", "quantity", "unit_price", "total_price"}},
		{"payments", []string{"customer", "order", "amount", "payment_method", "status", "payment_date"}},
	}

	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			col, err := app.FindCollectionByNameOrId(tt.collection)
			if err != nil {
				t.Fatalf("collection %q not found: %v", tt.collection, err)
			}
			for _, f := range tt.fields {
				if col.Fields.GetByName(f) == nil {
					t.Errorf("%s: missing field %q", tt.collection, f)
				}
			}
		})
	}
}

func TestSetup_OrderRelations(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	customers, _ := app.FindCollectionByNameOrId("customers")
	salesmen, _ := app.FindCollectionByNameOrId("salesmen")
	orders, _ := app.FindCollectionByNameOrId("orders")
	items, _ := app.FindCollectionByNameOrId("order_items")

	customer, ok := orders.Fields.GetByName("customer").(*core.RelationField)
	if !ok {
		t.Fatal("orders.customer is not a relation field")
	}
	if customer.CollectionId != customers.Id || !customer.Required {
		t.Errorf("orders.customer: collection=%s required=%v, want %s required", customer.CollectionId, customer.Required, customers.Id)
	}

	salesman, ok := orders.Fields.GetByName("salesman").(*core.RelationField)
	if !ok {
		t.Fatal("orders.salesman is not a relation field")
	}
	if salesman.CollectionId != salesmen.Id || salesman.Required {
		t.Errorf("orders.salesman: collection=%s required=%v, want %s optional", salesman.CollectionId, salesman.Required, salesmen.Id)
	}

	order, ok := items.Fields.GetByName("order").(*core.RelationField)
	if !ok {
		t.Fatal("order_items.order is not a relation field")
	}
	if !order.CascadeDelete {
		t.Error("order_items.order should cascade delete")
	}
}

func TestSetup_OrderStatusValues(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("orders")

	status, ok := col.Fields.GetByName("status").(*core.SelectField)
	if !ok {
		t.Fatal("orders.status is not a select field")
	}
	if len(status.Values) != len(collections.OrderStatuses) {
		t.Fatalf("orders.status has %d values, want %d", len(status.Values), len(collections.OrderStatuses))
	}
	for i, v := range collections.OrderStatuses {
		if status.Values[i] != v {
			t.Errorf("status value[%d] = %q, want %q", i, status.Values[i], v)
		}
	}
}
