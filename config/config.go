// Package config loads the report export settings from reports.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"salesdesk/services"
)

// DefaultPath is where the config is looked up when no path is given.
const DefaultPath = "reports.toml"

// Config is the root of reports.toml.
type Config struct {
	Export ExportConfig `toml:"export"`
}

// ExportConfig tunes the spreadsheet and PDF exporters.
type ExportConfig struct {
	LowStockThreshold int     `toml:"low_stock_threshold"`
	TopProducts       int     `toml:"top_products"`
	MinColumnWidth    float64 `toml:"min_column_width"`
	ColumnPadding     float64 `toml:"column_padding"`
	MaxColumnWidth    float64 `toml:"max_column_width"`
	// UTCOffsetMinutes is the display zone of dates and times; 330 is IST.
	UTCOffsetMinutes int `toml:"utc_offset_minutes"`
}

// Default returns the configuration used when reports.toml is absent.
func Default() *Config {
	d := services.DefaultExportOptions()
	return &Config{
		Export: ExportConfig{
			LowStockThreshold: d.LowStockThreshold,
			TopProducts:       d.TopProducts,
			MinColumnWidth:    d.MinColumnWidth,
			ColumnPadding:     d.ColumnPadding,
			MaxColumnWidth:    d.MaxColumnWidth,
			UTCOffsetMinutes:  330,
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	e := c.Export
	switch {
	case e.LowStockThreshold < 0:
		return errors.New("export.low_stock_threshold must not be negative")
	case e.TopProducts <= 0:
		return errors.New("export.top_products must be positive")
	case e.MinColumnWidth < 0 || e.ColumnPadding < 0:
		return errors.New("export column widths must not be negative")
	case e.MaxColumnWidth < e.MinColumnWidth+e.ColumnPadding:
		return errors.New("export.max_column_width is smaller than min_column_width + column_padding")
	}
	return nil
}

// ExportOptions converts the [export] table into exporter options.
func (c *Config) ExportOptions() services.ExportOptions {
	opts := services.DefaultExportOptions()
	opts.LowStockThreshold = c.Export.LowStockThreshold
	opts.TopProducts = c.Export.TopProducts
	opts.MinColumnWidth = c.Export.MinColumnWidth
	opts.ColumnPadding = c.Export.ColumnPadding
	opts.MaxColumnWidth = c.Export.MaxColumnWidth
	opts.Location = time.FixedZone(zoneName(c.Export.UTCOffsetMinutes), c.Export.UTCOffsetMinutes*60)
	return opts
}

func zoneName(offsetMinutes int) string {
	if offsetMinutes == 330 {
		return "IST"
	}
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}
