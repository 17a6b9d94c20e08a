package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// Period is an optional inclusive date window for report queries. Either
// bound may be empty.
type Period struct {
	Start string
	End   string
}

// Validate reports whether both bounds, when set, are yyyy-mm-dd dates.
func (p Period) Validate() error {
	_, _, err := p.dateBounds()
	return err
}

// dateBounds converts yyyy-mm-dd bounds into PocketBase datetime strings.
func (p Period) dateBounds() (start, end string, err error) {
	if p.Start != "" {
		t, err := time.Parse("2006-01-02", p.Start)
		if err != nil {
			return "", "", fmt.Errorf("invalid start date %q: %w", p.Start, err)
		}
		start = t.Format("2006-01-02") + " 00:00:00.000Z"
	}
	if p.End != "" {
		t, err := time.Parse("2006-01-02", p.End)
		if err != nil {
			return "", "", fmt.Errorf("invalid end date %q: %w", p.End, err)
		}
		end = t.Format("2006-01-02") + " 23:59:59.999Z"
	}
	return start, end, nil
}

// filterBuilder joins optional PocketBase filter clauses with &&.
type filterBuilder struct {
	clauses []string
	params  map[string]any
}

func (b *filterBuilder) add(clause, param string, value any) {
	if b.params == nil {
		b.params = make(map[string]any)
	}
	b.clauses = append(b.clauses, clause)
	b.params[param] = value
}

func (b *filterBuilder) addPeriod(field string, p Period) error {
	start, end, err := p.dateBounds()
	if err != nil {
		return err
	}
	if start != "" {
		b.add(field+" >= {:start}", "start", start)
	}
	if end != "" {
		b.add(field+" <= {:end}", "end", end)
	}
	return nil
}

func (b *filterBuilder) String() string {
	if len(b.clauses) == 0 {
		return "id != ''"
	}
	return strings.Join(b.clauses, " && ")
}

// LoadDetailedSalesRows returns one row per order line item whose order
// falls inside p, ordered by order date and order number.
func LoadDetailedSalesRows(app core.App, p Period) ([]DetailedSalesRow, error) {
	var fb filterBuilder
	if err := fb.addPeriod("order.order_date", p); err != nil {
		return nil, err
	}

	items, err := app.FindRecordsByFilter("order_items", fb.String(), "", 0, 0, fb.params)
	if err != nil {
		return nil, fmt.Errorf("find order items: %w", err)
	}
	if err := expand(app, items, "order.customer", "order.salesman", "product"); err != nil {
		return nil, err
	}

	rows := make([]DetailedSalesRow, 0, len(items))
	for _, item := range items {
		order := item.ExpandedOne("order")
		if order == nil {
			return nil, fmt.Errorf("order item %s: order not found", item.Id)
		}
		row := DetailedSalesRow{
			OrderNumber:   order.GetString("order_number"),
			OrderDate:     recordDate(order, "order_date"),
			OrderStatus:   order.GetString("status"),
			CustomerName:  expandedString(order, "customer", "name"),
			SalesmanName:  salesmanName(order.ExpandedOne("salesman")),
			QuantitySold:  item.GetFloat("quantity"),
			UnitPrice:     item.GetFloat("unit_price"),
			LineItemTotal: item.GetFloat("total_price"),
		}
		if product := item.ExpandedOne("product"); product != nil {
			row.ProductName = product.GetString("name")
			row.ProductSKU = product.GetString("sku")
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OrderDate != rows[j].OrderDate {
			return rows[i].OrderDate < rows[j].OrderDate
		}
		return rows[i].OrderNumber < rows[j].OrderNumber
	})
	return rows, nil
}

// LoadOrderRows returns order headers inside p, newest first.
func LoadOrderRows(app core.App, p Period) ([]OrderReportRow, error) {
	var fb filterBuilder
	if err := fb.addPeriod("order_date", p); err != nil {
		return nil, err
	}

	orders, err := app.FindRecordsByFilter("orders", fb.String(), "-order_date", 0, 0, fb.params)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	if err := expand(app, orders, "customer", "salesman"); err != nil {
		return nil, err
	}

	rows := make([]OrderReportRow, 0, len(orders))
	for _, o := range orders {
		row := OrderReportRow{
			ID:          orderLabel(o),
			TotalAmount: o.GetFloat("total_amount"),
			Status:      o.GetString("status"),
			CreatedAt:   recordDate(o, "order_date"),
		}
		if c := o.ExpandedOne("customer"); c != nil {
			row.Customer = &CustomerRef{Name: c.GetString("name")}
		}
		if s := o.ExpandedOne("salesman"); s != nil {
			row.Salesman = &SalesmanRef{FullName: salesmanName(s)}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadPaymentRows returns payments inside p, newest first, optionally
// restricted to one customer.
func LoadPaymentRows(app core.App, p Period, customerID string) ([]PaymentReportRow, error) {
	var fb filterBuilder
	if err := fb.addPeriod("payment_date", p); err != nil {
		return nil, err
	}
	if customerID != "" {
		fb.add("customer = {:customerId}", "customerId", customerID)
	}

	payments, err := app.FindRecordsByFilter("payments", fb.String(), "-payment_date", 0, 0, fb.params)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	if err := expand(app, payments, "customer"); err != nil {
		return nil, err
	}

	rows := make([]PaymentReportRow, 0, len(payments))
	for _, pay := range payments {
		row := PaymentReportRow{
			ID:            pay.Id,
			PaymentMethod: pay.GetString("payment_method"),
			Amount:        pay.GetFloat("amount"),
			Status:        pay.GetString("status"),
			CreatedAt:     recordDate(pay, "payment_date"),
		}
		if c := pay.ExpandedOne("customer"); c != nil {
			row.Customer = &CustomerRef{Name: c.GetString("name")}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadInventoryRows returns every product ordered by name.
func LoadInventoryRows(app core.App) ([]InventoryReportRow, error) {
	products, err := app.FindRecordsByFilter("products", "id != ''", "name", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	rows := make([]InventoryReportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, InventoryReportRow{
			Name:          p.GetString("name"),
			SKU:           p.GetString("sku"),
			Description:   p.GetString("description"),
			StockQuantity: p.GetInt("stock_quantity"),
			Unit:          p.GetString("unit"),
			Price:         p.GetFloat("price"),
		})
	}
	return rows, nil
}

// LoadPurchaseHistoryRows returns every line item bought by the customer,
// newest order first. It also returns the customer's display name.
func LoadPurchaseHistoryRows(app core.App, customerID string) ([]PurchaseHistoryRow, string, error) {
	customer, err := app.FindRecordById("customers", customerID)
	if err != nil {
		return nil, "", fmt.Errorf("customer %s not found: %w", customerID, err)
	}

	items, err := app.FindRecordsByFilter(
		"order_items",
		"order.customer = {:customerId}",
		"", 0, 0,
		map[string]any{"customerId": customerID},
	)
	if err != nil {
		return nil, "", fmt.Errorf("find order items: %w", err)
	}
	if err := expand(app, items, "order", "product"); err != nil {
		return nil, "", err
	}

	rows := make([]PurchaseHistoryRow, 0, len(items))
	for _, item := range items {
		order := item.ExpandedOne("order")
		if order == nil {
			return nil, "", fmt.Errorf("order item %s: order not found", item.Id)
		}
		rows = append(rows, PurchaseHistoryRow{
			OrderDate:   recordDate(order, "order_date"),
			OrderNumber: order.GetString("order_number"),
			ProductName: expandedString(item, "product", "name"),
			Quantity:    item.GetFloat("quantity"),
			UnitPrice:   item.GetFloat("unit_price"),
			ItemTotal:   item.GetFloat("total_price"),
			OrderStatus: order.GetString("status"),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OrderDate > rows[j].OrderDate
	})
	return rows, customer.GetString("name"), nil
}

func expand(app core.App, records []*core.Record, paths ...string) error {
	if len(records) == 0 {
		return nil
	}
	for path, err := range app.ExpandRecords(records, paths, nil) {
		return fmt.Errorf("expand %s: %w", path, err)
	}
	return nil
}

// recordDate returns a datetime field as RFC 3339, or "" when unset.
func recordDate(r *core.Record, field string) string {
	dt := r.GetDateTime(field)
	if dt.IsZero() {
		return ""
	}
	return dt.Time().UTC().Format(time.RFC3339)
}

func expandedString(r *core.Record, relation, field string) string {
	if rel := r.ExpandedOne(relation); rel != nil {
		return rel.GetString(field)
	}
	return ""
}

func salesmanName(r *core.Record) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.GetString("first_name") + " " + r.GetString("last_name"))
}

func orderLabel(r *core.Record) string {
	if n := r.GetString("order_number"); n != "" {
		return n
	}
	return r.Id
}
