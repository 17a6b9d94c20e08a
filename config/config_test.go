package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_OverridesSomeKeys(t *testing.T) {
	path := writeConfig(t, `
[export]
low_stock_threshold = 25
top_products = 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Export.LowStockThreshold != 25 {
		t.Errorf("LowStockThreshold = %d, want 25", cfg.Export.LowStockThreshold)
	}
	if cfg.Export.TopProducts != 5 {
		t.Errorf("TopProducts = %d, want 5", cfg.Export.TopProducts)
	}
	if cfg.Export.MaxColumnWidth != 50 || cfg.Export.UTCOffsetMinutes != 330 {
		t.Errorf("unset keys lost their defaults: %+v", cfg.Export)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed toml", "[export\nlow_stock_threshold = "},
		{"wrong type", "[export]\ntop_products = \"ten\""},
		{"zero top products", "[export]\ntop_products = 0"},
		{"negative threshold", "[export]\nlow_stock_threshold = -1"},
		{"max below min", "[export]\nmin_column_width = 40\nmax_column_width = 30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestExportOptions(t *testing.T) {
	cfg := Default()
	cfg.Export.LowStockThreshold = 3
	cfg.Export.UTCOffsetMinutes = -300

	opts := cfg.ExportOptions()
	if opts.LowStockThreshold != 3 {
		t.Errorf("LowStockThreshold = %d, want 3", opts.LowStockThreshold)
	}
	if opts.Now == nil {
		t.Error("Now should default to time.Now")
	}

	ts := time.Date(2025, 1, 5, 3, 0, 0, 0, time.UTC).In(opts.Location)
	if ts.Day() != 4 || ts.Hour() != 22 {
		t.Errorf("offset -300 renders %v, want 2025-01-04 22:00", ts)
	}
	if name, _ := ts.Zone(); name != "UTC-05:00" {
		t.Errorf("zone name = %q, want UTC-05:00", name)
	}
}

func TestExportOptions_DefaultZoneIsIST(t *testing.T) {
	opts := Default().ExportOptions()
	if _, offset := time.Now().In(opts.Location).Zone(); offset != 330*60 {
		t.Errorf("offset = %d, want %d", offset, 330*60)
	}
}
