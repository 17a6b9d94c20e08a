package services

import (
	"testing"
	"time"
)

func TestFormatINR_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"with decimals", 42.50, "₹42.50"},
		{"thousands", 1234.56, "₹1,234.56"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"crores", 12345678.90, "₹1,23,45,678.90"},
		{"negative lakhs", -250000.50, "-₹2,50,000.50"},
		{"exact lakh boundary", 100000, "₹1,00,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatINR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatIndianNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "0"},
		{"integer", 1500, "1,500"},
		{"no grouping below a thousand", 999, "999"},
		{"one decimal", 1234567.5, "12,34,567.5"},
		{"rounds to three decimals", 1234.5678, "1,234.568"},
		{"trailing zeros dropped", 2500.10, "2,500.1"},
		{"crore", 10000000, "1,00,00,000"},
		{"negative", -45000, "-45,000"},
		{"negative rounding to zero", -0.0001, "0"},
		{"large with fraction", 123456789.123, "12,34,56,789.123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatIndianNumber(tt.input)
			if got != tt.expect {
				t.Errorf("FormatIndianNumber(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{0, "Rs. 0.00"},
		{5300, "Rs. 5,300.00"},
		{1234567.5, "Rs. 12,34,567.50"},
		{-250000.5, "-Rs. 2,50,000.50"},
	}

	for _, tt := range tests {
		if got := FormatRupees(tt.input); got != tt.expect {
			t.Errorf("FormatRupees(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestFormatAchievement(t *testing.T) {
	tests := []struct {
		name           string
		actual, target float64
		want           string
	}{
		{"three quarters", 150, 200, "75.00%"},
		{"over target", 300, 200, "150.00%"},
		{"zero target", 150, 0, "N/A"},
		{"negative target", 150, -10, "N/A"},
		{"nothing sold", 0, 500, "0.00%"},
		{"repeating fraction", 1, 3, "33.33%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAchievement(tt.actual, tt.target); got != tt.want {
				t.Errorf("FormatAchievement(%v, %v) = %q, want %q", tt.actual, tt.target, got, tt.want)
			}
		})
	}
}

func TestParseReportDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2025-01-15T10:30:00Z", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-01-15 10:30:00.000Z", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{" 2025-03-01 ", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseReportDate(tt.input)
			if err != nil {
				t.Fatalf("parseReportDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseReportDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := parseReportDate("15th January"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestFormatShortDateAndTime(t *testing.T) {
	ist := time.FixedZone("IST", 330*60)
	ts := time.Date(2025, 1, 5, 20, 15, 9, 0, time.UTC)

	if got := formatShortDate(ts, ist); got != "6/1/2025" {
		t.Errorf("formatShortDate = %q, want 6/1/2025", got)
	}
	if got := formatShortTime(ts, ist); got != "1:45:09 am" {
		t.Errorf("formatShortTime = %q, want 1:45:09 am", got)
	}
	if got := isoDate(ts.In(ist)); got != "2025-01-05" {
		t.Errorf("isoDate = %q, want 2025-01-05", got)
	}
}
