package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type customerDef struct {
	name          string
	email         string
	phone         string
	city          string
	district      string
	contactPerson string
	customerType  string
}

type salesmanDef struct {
	firstName string
	lastName  string
	email     string
}

type productDef struct {
	name          string
	sku           string
	description   string
	price         float64
	stockQuantity int
	unit          string
}

type lineDef struct {
	product  int // index into seedProducts
	quantity float64
}

type orderDef struct {
	number    string
	customer  int // index into seedCustomers
	salesman  int // index into seedSalesmen, -1 for none
	status    string
	orderDate string
	lines     []lineDef
}

type paymentDef struct {
	customer    int
	order       int // index into seedOrders, -1 for an advance payment
	amount      float64
	method      string
	status      string
	paymentDate string
}

// ── Seed data ────────────────────────────────────────────────────────────

var seedCustomers = []customerDef{
	{"Sri Lakshmi Traders", "accounts@srilakshmi.in", "9848012345", "Vijayawada", "Krishna", "K. Ramesh", "retailer"},
	{"Ganga Agencies", "ganga.agencies@gmail.com", "9866054321", "Guntur", "Guntur", "P. Suresh", "wholesaler"},
	{"Venkateswara Stores", "", "9440011223", "Eluru", "West Godavari", "", "retailer"},
	{"Coastal Distributors", "orders@coastaldist.com", "9989077665", "Visakhapatnam", "Visakhapatnam", "M. Anitha", "distributor"},
}

var seedSalesmen = []salesmanDef{
	{"Ravi", "Kumar", "ravi.kumar@salesdesk.local"},
	{"Priya", "Reddy", "priya.reddy@salesdesk.local"},
}

var seedProducts = []productDef{
	{"Basmati Rice 25kg", "RICE-BAS-25", "Premium aged basmati", 2450, 42, "bag"},
	{"Sunflower Oil 15L", "OIL-SUN-15", "Refined sunflower oil tin", 1980, 8, "tin"},
	{"Toor Dal 30kg", "DAL-TOOR-30", "Unpolished toor dal", 3600, 15, "bag"},
	{"Sugar 50kg", "SUG-50", "", 2150, 10, "bag"},
	{"Turmeric Powder 1kg", "SPC-TUR-1", "Salem turmeric", 240, 3, "pack"},
}

var seedOrders = []orderDef{
	{"ORD-2025-0001", 0, 0, "delivered", "2025-01-06 10:30:00.000Z", []lineDef{{0, 10}, {1, 5}}},
	{"ORD-2025-0002", 1, 1, "shipped", "2025-01-09 06:15:00.000Z", []lineDef{{2, 8}, {3, 12}, {4, 20}}},
	{"ORD-2025-0003", 2, -1, "pending", "2025-01-14 09:00:00.000Z", []lineDef{{0, 2}}},
	{"ORD-2025-0004", 3, 0, "delivered", "2025-01-21 11:45:00.000Z", []lineDef{{1, 25}, {3, 30}}},
	{"ORD-2025-0005", 0, 1, "cancelled", "2025-01-27 04:20:00.000Z", []lineDef{{4, 6}}},
}

var seedPayments = []paymentDef{
	{0, 0, 34400, "bank_transfer", "completed", "2025-01-10 05:00:00.000Z"},
	{1, 1, 30000, "upi", "completed", "2025-01-15 07:30:00.000Z"},
	{3, 3, 50000, "cheque", "pending", "2025-01-28 08:00:00.000Z"},
	{2, -1, 2000, "cash", "completed", "2025-01-14 09:30:00.000Z"},
}

// Seed populates the sales collections with a small demo dataset. It is
// idempotent: it returns early if any customer records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if customers already exist ─────────────────
	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("seed: could not find customers collection: %w", err)
	}
	existing, err := app.FindAllRecords(customersCol)
	if err != nil {
		return fmt.Errorf("seed: could not query customers: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: customers collection is empty – inserting seed data …")

	create := func(collection string, fields map[string]any) (*core.Record, error) {
		col, err := app.FindCollectionByNameOrId(collection)
		if err != nil {
			return nil, fmt.Errorf("seed: could not find %s collection: %w", collection, err)
		}
		rec := core.NewRecord(col)
		for k, v := range fields {
			rec.Set(k, v)
		}
		if err := app.Save(rec); err != nil {
			return nil, fmt.Errorf("seed: save %s: %w", collection, err)
		}
		return rec, nil
	}

	customerIDs := make([]string, len(seedCustomers))
	for i, c := range seedCustomers {
		rec, err := create("customers", map[string]any{
			"name":           c.name,
			"email":          c.email,
			"phone":          c.phone,
			"city":           c.city,
			"district":       c.district,
			"contact_person": c.contactPerson,
			"customer_type":  c.customerType,
		})
		if err != nil {
			return err
		}
		customerIDs[i] = rec.Id
	}

	salesmanIDs := make([]string, len(seedSalesmen))
	for i, s := range seedSalesmen {
		rec, err := create("salesmen", map[string]any{
			"first_name": s.firstName,
			"last_name":  s.lastName,
			"email":      s.email,
		})
		if err != nil {
			return err
		}
		salesmanIDs[i] = rec.Id
	}

	productIDs := make([]string, len(seedProducts))
	for i, p := range seedProducts {
		rec, err := create("products", map[string]any{
			"name":           p.name,
			"sku":            p.sku,
			"description":    p.description,
			"price":          p.price,
			"stock_quantity": p.stockQuantity,
			"unit":           p.unit,
		})
		if err != nil {
			return err
		}
		productIDs[i] = rec.Id
	}

	orderIDs := make([]string, len(seedOrders))
	for i, o := range seedOrders {
		var total float64
		for _, l := range o.lines {
			total += l.quantity * seedProducts[l.product].price
		}
		fields := map[string]any{
			"order_number": o.number,
			"customer":     customerIDs[o.customer],
			"status":       o.status,
			"order_date":   o.orderDate,
			"total_amount": total,
		}
		if o.salesman >= 0 {
			fields["salesman"] = salesmanIDs[o.salesman]
		}
		order, err := create("orders", fields)
		if err != nil {
			return err
		}
		orderIDs[i] = order.Id

		for _, l := range o.lines {
			price := seedProducts[l.product].price
			if _, err := create("order_items", map[string]any{
				"order":       order.Id,
				"product":     productIDs[l.product],
				"quantity":    l.quantity,
				"unit_price":  price,
				"total_price": l.quantity * price,
			}); err != nil {
				return err
			}
		}
	}

	for _, p := range seedPayments {
		fields := map[string]any{
			"customer":       customerIDs[p.customer],
			"amount":         p.amount,
			"payment_method": p.method,
			"status":         p.status,
			"payment_date":   p.paymentDate,
		}
		if p.order >= 0 {
			fields["order"] = orderIDs[p.order]
		}
		if _, err := create("payments", fields); err != nil {
			return err
		}
	}

	log.Printf("seed: inserted %d customers, %d products, %d orders, %d payments",
		len(seedCustomers), len(seedProducts), len(seedOrders), len(seedPayments))
	return nil
}
