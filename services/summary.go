package services

import (
	"fmt"
	"sort"
	"strings"
)

// SalesSummary is the numeric rollup of a detailed sales export.
type SalesSummary struct {
	TotalOrders     int
	TotalRevenue    float64
	TotalQuantity   float64
	UniqueCustomers int
	UniqueProducts  int
	// StatusBreakdown lists statuses in the order they first appear.
	StatusBreakdown []StatusTotal
	// TopProducts is ranked by quantity, descending; ties keep input order.
	TopProducts []ProductTotal
	// TopN is the ranking size TopProducts was cut to.
	TopN int
}

type StatusTotal struct {
	Status  string
	Orders  int
	Revenue float64
}

type ProductTotal struct {
	Product  string
	Quantity float64
	Revenue  float64
}

// AggregateSales computes the summary facts of rows. Orders are counted by
// distinct order number, both overall and per status.
func AggregateSales(rows []DetailedSalesRow, topN int) SalesSummary {
	s := SalesSummary{TopN: topN}

	orders := make(map[string]bool)
	customers := make(map[string]bool)

	statusIdx := make(map[string]int)
	statusOrders := make(map[string]map[string]bool)

	productIdx := make(map[string]int)
	var products []ProductTotal

	for _, r := range rows {
		orders[r.OrderNumber] = true
		customers[r.CustomerName] = true
		s.TotalRevenue += r.LineItemTotal
		s.TotalQuantity += r.QuantitySold

		i, ok := statusIdx[r.OrderStatus]
		if !ok {
			i = len(s.StatusBreakdown)
			statusIdx[r.OrderStatus] = i
			statusOrders[r.OrderStatus] = make(map[string]bool)
			s.StatusBreakdown = append(s.StatusBreakdown, StatusTotal{Status: r.OrderStatus})
		}
		s.StatusBreakdown[i].Revenue += r.LineItemTotal
		statusOrders[r.OrderStatus][r.OrderNumber] = true

		j, ok := productIdx[r.ProductName]
		if !ok {
			j = len(products)
			productIdx[r.ProductName] = j
			products = append(products, ProductTotal{Product: r.ProductName})
		}
		products[j].Quantity += r.QuantitySold
		products[j].Revenue += r.LineItemTotal
	}

	s.TotalOrders = len(orders)
	s.UniqueCustomers = len(customers)
	s.UniqueProducts = len(products)
	for i := range s.StatusBreakdown {
		s.StatusBreakdown[i].Orders = len(statusOrders[s.StatusBreakdown[i].Status])
	}

	sort.SliceStable(products, func(a, b int) bool {
		return products[a].Quantity > products[b].Quantity
	})
	if topN >= 0 && len(products) > topN {
		products = products[:topN]
	}
	s.TopProducts = products

	return s
}

// RenderSummary lays the summary out as Metric/Value rows, with literal
// section header rows and blank separators between sections.
func RenderSummary(s SalesSummary) [][]any {
	rows := [][]any{
		{"Total Orders", s.TotalOrders},
		{"Total Revenue (₹)", FormatIndianNumber(s.TotalRevenue)},
		{"Total Quantity Sold", s.TotalQuantity},
		{"Unique Customers", s.UniqueCustomers},
		{"Unique Products", s.UniqueProducts},
		{"", ""},
		{"ORDER STATUS BREAKDOWN", ""},
	}
	for _, st := range s.StatusBreakdown {
		rows = append(rows, []any{
			strings.ToUpper(st.Status) + " Orders",
			fmt.Sprintf("%d orders (₹%s)", st.Orders, FormatIndianNumber(st.Revenue)),
		})
	}

	rows = append(rows,
		[]any{"", ""},
		[]any{fmt.Sprintf("TOP %d PRODUCTS BY QUANTITY", s.TopN), ""},
	)
	for _, p := range s.TopProducts {
		rows = append(rows, []any{
			p.Product,
			fmt.Sprintf("%s units (₹%s)", FormatIndianNumber(p.Quantity), FormatIndianNumber(p.Revenue)),
		})
	}
	return rows
}
