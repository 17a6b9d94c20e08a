package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"salesdesk/services"
)

// writeDownload sends an export as a file attachment.
func writeDownload(e *core.RequestEvent, file *services.ExportFile) error {
	e.Response.Header().Set("Content-Type", file.ContentType)
	e.Response.Header().Set("Content-Disposition", contentDisposition(file.Filename))
	_, err := e.Response.Write(file.Content)
	return err
}

// contentDisposition builds an attachment header. Names outside printable
// ASCII get an ASCII fallback plus an RFC 5987 filename* parameter.
func contentDisposition(name string) string {
	fallback := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, name)
	if fallback == name {
		return fmt.Sprintf(`attachment; filename="%s"`, name)
	}

	var b strings.Builder
	for _, c := range []byte(name) {
		if isAttrChar(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, b.String())
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}

// exportError maps an exporter error onto a status code and toast message.
func exportError(e *core.RequestEvent, prefix string, err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyInput):
		return ErrorToast(e, http.StatusNotFound, "No data available to export")
	case errors.Is(err, services.ErrMalformedRow), errors.Is(err, services.ErrUnknownReportType):
		log.Printf("%s: rejected: %v", prefix, err)
		return ErrorToast(e, http.StatusBadRequest, err.Error())
	}
	log.Printf("%s: failed to generate: %v", prefix, err)
	return ErrorToast(e, http.StatusInternalServerError, "Failed to generate export")
}

// periodFromQuery reads the optional start/end query parameters.
func periodFromQuery(e *core.RequestEvent) (services.Period, error) {
	q := e.Request.URL.Query()
	p := services.Period{
		Start: strings.TrimSpace(q.Get("start")),
		End:   strings.TrimSpace(q.Get("end")),
	}
	return p, p.Validate()
}

// requiredPeriod is periodFromQuery with both bounds mandatory.
func requiredPeriod(e *core.RequestEvent) (services.Period, error) {
	p, err := periodFromQuery(e)
	if err != nil {
		return p, err
	}
	if p.Start == "" || p.End == "" {
		return p, errors.New("start and end dates are required")
	}
	return p, nil
}

// HandleDetailedSalesExport returns a handler that downloads the detailed
// sales workbook for the start/end window.
func HandleDetailedSalesExport(app *pocketbase.PocketBase, x *services.Exporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, err := requiredPeriod(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		rows, err := services.LoadDetailedSalesRows(app, p)
		if err != nil {
			log.Printf("detailed_sales: failed to load rows: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load sales data")
		}

		file, err := x.DetailedSales(rows, p.Start, p.End)
		if err != nil {
			return exportError(e, "detailed_sales", err)
		}
		log.Printf("detailed_sales: exported %d line items (%s to %s)", len(rows), p.Start, p.End)
		return writeDownload(e, file)
	}
}

// HandleDetailedSalesPDF returns a handler that downloads the one-page sales
// summary PDF for the start/end window.
func HandleDetailedSalesPDF(app *pocketbase.PocketBase, x *services.Exporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, err := requiredPeriod(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		rows, err := services.LoadDetailedSalesRows(app, p)
		if err != nil {
			log.Printf("sales_summary_pdf: failed to load rows: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load sales data")
		}

		file, err := x.SalesSummaryPDF(rows, p.Start, p.End)
		if err != nil {
			return exportError(e, "sales_summary_pdf", err)
		}
		return writeDownload(e, file)
	}
}

// HandleGenericReportExport returns a handler for /reports/{type}/export
// covering the sales, payments and inventory workbooks.
func HandleGenericReportExport(app *pocketbase.PocketBase, x *services.Exporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		reportType, err := services.ParseReportType(e.Request.PathValue("type"))
		if err != nil {
			return exportError(e, "generic_export", err)
		}

		p, err := periodFromQuery(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		report := services.GenericReport{Type: reportType}
		switch reportType {
		case services.ReportSales:
			report.Orders, err = services.LoadOrderRows(app, p)
		case services.ReportPayments:
			report.Payments, err = services.LoadPaymentRows(app, p, e.Request.URL.Query().Get("customer"))
		case services.ReportInventory:
			report.Products, err = services.LoadInventoryRows(app)
		}
		if err != nil {
			log.Printf("generic_export: failed to load %s rows: %v", reportType, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load report data")
		}

		file, err := x.Generic(report)
		if err != nil {
			return exportError(e, "generic_export", err)
		}
		return writeDownload(e, file)
	}
}

// HandleCustomerPurchaseHistoryExport returns a handler that downloads every
// line item bought by the customer in the {id} path segment.
func HandleCustomerPurchaseHistoryExport(app *pocketbase.PocketBase, x *services.Exporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		if customerID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing customer ID")
		}

		rows, name, err := services.LoadPurchaseHistoryRows(app, customerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrorToast(e, http.StatusNotFound, "Customer not found")
			}
			log.Printf("purchase_history: failed to load rows for %s: %v", customerID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to load purchase history")
		}

		file, err := x.CustomerPurchaseHistory(rows, name)
		if err != nil {
			return exportError(e, "purchase_history", err)
		}
		return writeDownload(e, file)
	}
}

// HandleComprehensiveExport returns a handler that turns a posted bundle of
// pre-aggregated report collections into the multi-tab workbook.
func HandleComprehensiveExport(x *services.Exporter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var bundle services.ComprehensiveBundle
		if err := json.NewDecoder(e.Request.Body).Decode(&bundle); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid JSON body")
		}
		if err := bundle.Validate(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		file, err := x.Comprehensive(bundle.Reports, bundle.PeriodName, bundle.DateRange)
		if err != nil {
			return exportError(e, "comprehensive_export", err)
		}
		return writeDownload(e, file)
	}
}
