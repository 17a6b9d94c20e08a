package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateOrderTotals backfills orders.total_amount from the sum of their
// line items for orders that were saved without a total. Orders with a
// non-zero total are left untouched. Safe to run on every startup.
func MigrateOrderTotals(app *pocketbase.PocketBase) error {
	orders, err := app.FindRecordsByFilter("orders", "total_amount = 0", "", 0, 0)
	if err != nil {
		return fmt.Errorf("migrate: could not query orders without totals: %w", err)
	}
	if len(orders) == 0 {
		return nil
	}

	fixed := 0
	for _, order := range orders {
		items, err := app.FindRecordsByFilter(
			"order_items",
			"order = {:orderId}",
			"", 0, 0,
			map[string]any{"orderId": order.Id},
		)
		if err != nil {
			log.Printf("migrate: failed to load items for order %s: %v\n", order.Id, err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		var total float64
		for _, item := range items {
			total += item.GetFloat("total_price")
		}
		if total == 0 {
			continue
		}

		order.Set("total_amount", total)
		if err := app.Save(order); err != nil {
			log.Printf("migrate: failed to update total for order %q: %v\n", order.GetString("order_number"), err)
			continue
		}
		fixed++
	}

	if fixed > 0 {
		log.Printf("migrate: backfilled totals on %d order(s).\n", fixed)
	}
	return nil
}
