package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"salesdesk/services"
	"salesdesk/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// testExporter pins the filename clock to 2025-03-14.
func testExporter() *services.Exporter {
	opts := services.DefaultExportOptions()
	opts.Now = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) }
	return services.NewExporter(opts)
}

// serve runs handler against req and returns the recorder.
func serve(t *testing.T, app *pocketbase.PocketBase, handler func(*core.RequestEvent) error, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

// seedOrders creates one customer with a January order of two line items and
// returns the customer record.
func seedOrders(t *testing.T, app *pocketbase.PocketBase) *core.Record {
	t.Helper()
	cust := testhelpers.CreateTestCustomer(t, app, "Export Traders")
	sm := testhelpers.CreateTestSalesman(t, app, "Ravi", "Kumar")
	rice := testhelpers.CreateTestProduct(t, app, "Rice", 40, 100)
	oil := testhelpers.CreateTestProduct(t, app, "Oil", 4, 500)
	order := testhelpers.CreateTestOrder(t, app, cust.Id, sm.Id, "ORD-100", "delivered", "2025-01-10 10:00:00.000Z")
	testhelpers.CreateTestOrderItem(t, app, order.Id, rice.Id, 10, 100)
	testhelpers.CreateTestOrderItem(t, app, order.Id, oil.Id, 2, 500)
	testhelpers.CreateTestPayment(t, app, cust.Id, 1500, "upi", "2025-01-12 10:00:00.000Z")
	return cust
}
