package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"salesdesk/services"
)

// ReportsPageData is everything the reports index renders.
type ReportsPageData struct {
	OrderCount    int
	ProductCount  int
	LowStockCount int
	Customers     []CustomerLink
}

// CustomerLink is one entry of the purchase history list.
type CustomerLink struct {
	ID   string
	Name string
}

// BuildReportsPageData counts the exportable records and lists customers by
// name. Missing collections leave their counts at zero.
func BuildReportsPageData(app *pocketbase.PocketBase, lowStockThreshold int) ReportsPageData {
	var data ReportsPageData

	if orders, err := app.FindRecordsByFilter("orders", "id != ''", "", 0, 0); err == nil {
		data.OrderCount = len(orders)
	}

	if products, err := app.FindRecordsByFilter("products", "id != ''", "", 0, 0); err == nil {
		data.ProductCount = len(products)
		for _, p := range products {
			if services.StockStatus(p.GetInt("stock_quantity"), lowStockThreshold) == "LOW STOCK" {
				data.LowStockCount++
			}
		}
	}

	if customers, err := app.FindRecordsByFilter("customers", "id != ''", "name", 0, 0); err == nil {
		for _, c := range customers {
			data.Customers = append(data.Customers, CustomerLink{ID: c.Id, Name: c.GetString("name")})
		}
	}

	return data
}

// HandleReportsPage returns a handler that renders the reports index.
func HandleReportsPage(app *pocketbase.PocketBase, x *services.Exporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := BuildReportsPageData(app, x.Options().LowStockThreshold)
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ReportsPage(data).Render(e.Request.Context(), e.Response); err != nil {
			log.Printf("reports_page: render failed: %v", err)
			return err
		}
		return nil
	}
}
