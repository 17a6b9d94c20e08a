package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// enIN prints numbers with Indian digit grouping (12,34,567).
var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR formats a float64 amount into Indian Rupee notation.
// It uses the Indian numbering system where, after the rightmost 3 digits,
// digits are grouped in pairs (e.g., ₹1,23,45,678.90).
// The result always includes exactly 2 decimal places.
func FormatINR(amount float64) string {
	return formatRupees("₹", amount)
}

// FormatRupees is FormatINR with an ASCII "Rs. " prefix, for output whose
// fonts cannot draw the rupee sign.
func FormatRupees(amount float64) string {
	return formatRupees("Rs. ", amount)
}

func formatRupees(symbol string, amount float64) string {
	sign := ""
	amount = math.Round(amount*100) / 100
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount == 0 {
		amount = 0
	}
	return sign + symbol + enIN.Sprint(number.Decimal(amount, number.Scale(2)))
}

// FormatIndianNumber renders a number the way the en-IN locale does by
// default: Indian digit grouping, at most three fraction digits and no
// trailing zeros (1234567.5 -> "12,34,567.5", 1500 -> "1,500").
func FormatIndianNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return enIN.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatAchievement returns actual/target as a percentage with two decimals.
// A target that is zero or negative yields "N/A".
func FormatAchievement(actual, target float64) string {
	if target <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", actual/target*100)
}

// dateLayouts are the timestamp shapes report rows arrive in: plain dates from
// the date pickers, RFC 3339 from JSON payloads and PocketBase's own
// datetime format.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.000Z07:00",
	"2006-01-02 15:04:05.000Z",
	"2006-01-02 15:04:05Z",
	"2006-01-02 15:04:05",
}

// parseReportDate parses a report date string. Values without a zone are
// treated as UTC.
func parseReportDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// formatShortDate renders t as an en-IN short date (d/m/yyyy) in loc.
func formatShortDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2/1/2006")
}

// formatShortTime renders t as an en-IN time of day (h:mm:ss am) in loc.
func formatShortTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04:05 pm")
}

// isoDate returns the UTC calendar date of t as yyyy-mm-dd.
func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
