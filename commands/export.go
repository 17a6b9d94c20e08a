// Package commands holds the salesdesk CLI subcommands registered on the
// PocketBase root command.
package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"

	"salesdesk/collections"
	"salesdesk/services"
)

type exportFlags struct {
	start    string
	end      string
	customer string
	input    string
	period   string
	out      string
}

// NewExportCommand returns `export <report>`, which writes one report file
// into --out using the same exporter the HTTP routes use.
func NewExportCommand(app *pocketbase.PocketBase, x *services.Exporter) *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export <detailed-sales|sales-summary-pdf|sales|payments|inventory|purchase-history|comprehensive>",
		Short: "Export a sales report to an Excel or PDF file",
		Long: `export builds one report from the local database (or, for the
comprehensive report, from a JSON bundle given with --input) and writes it
into the --out directory under its generated filename.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collections.Setup(app)

			file, err := buildExport(app, x, args[0], flags)
			if err != nil {
				return err
			}

			path, err := writeExport(flags.out, file)
			if err != nil {
				return err
			}
			log.Printf("export: wrote %s (%d bytes)", path, len(file.Content))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", "Start date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&flags.end, "end", "", "End date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&flags.customer, "customer", "", "Customer ID (purchase-history, payments)")
	cmd.Flags().StringVar(&flags.input, "input", "", "JSON bundle for the comprehensive report")
	cmd.Flags().StringVar(&flags.period, "period", "", "Period name, overrides period_name from --input")
	cmd.Flags().StringVarP(&flags.out, "out", "o", ".", "Output directory")

	return cmd
}

func buildExport(app *pocketbase.PocketBase, x *services.Exporter, report string, flags exportFlags) (*services.ExportFile, error) {
	period := services.Period{Start: flags.start, End: flags.end}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	switch report {
	case "detailed-sales", "sales-summary-pdf":
		if period.Start == "" || period.End == "" {
			return nil, fmt.Errorf("%s needs --start and --end", report)
		}
		rows, err := services.LoadDetailedSalesRows(app, period)
		if err != nil {
			return nil, fmt.Errorf("load sales rows: %w", err)
		}
		if report == "sales-summary-pdf" {
			return x.SalesSummaryPDF(rows, period.Start, period.End)
		}
		return x.DetailedSales(rows, period.Start, period.End)

	case "purchase-history":
		if flags.customer == "" {
			return nil, fmt.Errorf("purchase-history needs --customer")
		}
		rows, name, err := services.LoadPurchaseHistoryRows(app, flags.customer)
		if err != nil {
			return nil, err
		}
		return x.CustomerPurchaseHistory(rows, name)

	case "comprehensive":
		bundle, err := readBundle(flags.input)
		if err != nil {
			return nil, err
		}
		if flags.period != "" {
			bundle.PeriodName = flags.period
		}
		if err := bundle.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", flags.input, err)
		}
		return x.Comprehensive(bundle.Reports, bundle.PeriodName, bundle.DateRange)
	}

	reportType, err := services.ParseReportType(report)
	if err != nil {
		return nil, err
	}
	generic := services.GenericReport{Type: reportType}
	switch reportType {
	case services.ReportSales:
		generic.Orders, err = services.LoadOrderRows(app, period)
	case services.ReportPayments:
		generic.Payments, err = services.LoadPaymentRows(app, period, flags.customer)
	case services.ReportInventory:
		generic.Products, err = services.LoadInventoryRows(app)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s rows: %w", reportType, err)
	}
	return x.Generic(generic)
}

func readBundle(path string) (services.ComprehensiveBundle, error) {
	var bundle services.ComprehensiveBundle
	if path == "" {
		return bundle, fmt.Errorf("comprehensive needs --input")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return bundle, fmt.Errorf("read bundle: %w", err)
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		return bundle, fmt.Errorf("parse bundle %s: %w", path, err)
	}
	return bundle, nil
}

func writeExport(dir string, file *services.ExportFile) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, file.Filename)
	if err := os.WriteFile(path, file.Content, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
