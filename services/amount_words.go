package services

import (
	"math"
	"strings"
)

// AmountToWords spells a rupee amount in Indian English, rounded to the
// nearest rupee.
// Example: 913183.00 → "Nine Lakh Thirteen Thousand One Hundred and Eighty Three Rupees Only"
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Minus " + AmountToWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only"
	}
	if rupees == 1 {
		return "One Rupee Only"
	}
	return convertToIndianWords(rupees) + " Rupees Only"
}

// indianScales are the named groups of the Indian numbering system, largest
// first.
var indianScales = []struct {
	size int64
	name string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
}

func convertToIndianWords(n int64) string {
	var parts []string

	for _, scale := range indianScales {
		if n < scale.size {
			continue
		}
		count := n / scale.size
		n %= scale.size
		// Crores can exceed 99, so the count is spelled recursively.
		parts = append(parts, convertToIndianWords(count)+" "+scale.name)
	}

	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
