package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/pflag"

	"salesdesk/collections"
	"salesdesk/commands"
	"salesdesk/config"
	"salesdesk/handlers"
	"salesdesk/services"
)

func main() {
	app := pocketbase.New()

	var configPath string
	app.RootCmd.PersistentFlags().StringVar(
		&configPath,
		"reports-config",
		config.DefaultPath,
		"the report export settings file",
	)
	// The exporter is built before cobra runs, so read the flag ahead of it.
	early := pflag.NewFlagSet("early", pflag.ContinueOnError)
	early.ParseErrorsWhitelist.UnknownFlags = true
	early.Usage = func() {}
	early.StringVar(&configPath, "reports-config", config.DefaultPath, "")
	_ = early.Parse(os.Args[1:])

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	exporter := services.NewExporter(cfg.ExportOptions())

	app.RootCmd.AddCommand(commands.NewExportCommand(app, exporter))

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateOrderTotals(app); err != nil {
			log.Printf("Warning: order totals migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/reports", handlers.HandleReportsPage(app, exporter))

		// ── Detailed sales ───────────────────────────────────────
		se.Router.GET("/reports/detailed-sales/export", handlers.HandleDetailedSalesExport(app, exporter))
		se.Router.GET("/reports/detailed-sales/export/pdf", handlers.HandleDetailedSalesPDF(app, exporter))

		// ── Customer purchase history ────────────────────────────
		se.Router.GET("/reports/customers/{id}/purchase-history/export",
			handlers.HandleCustomerPurchaseHistoryExport(app, exporter))

		// ── Comprehensive (pre-aggregated bundle) ────────────────
		se.Router.POST("/reports/comprehensive/export", handlers.HandleComprehensiveExport(exporter))

		// ── Generic sales / payments / inventory ─────────────────
		se.Router.GET("/reports/{type}/export", handlers.HandleGenericReportExport(app, exporter))

		// Redirect home to the reports index
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/reports")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
