package services

import "testing"

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"one", 1, "One Rupee Only"},
		{"single_digit", 5, "Five Rupees Only"},
		{"teens", 15, "Fifteen Rupees Only"},
		{"tens", 40, "Forty Rupees Only"},
		{"hundreds", 500, "Five Hundred Rupees Only"},
		{"thousands", 5000, "Five Thousand Rupees Only"},
		{"rounds", 99.6, "One Hundred Rupees Only"},
		{"lakhs", 913183, "Nine Lakh Thirteen Thousand One Hundred and Eighty Three Rupees Only"},
		{"crores", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight Rupees Only"},
		{"hundreds of crores", 1250000000, "One Hundred and Twenty Five Crore Rupees Only"},
		{"negative", -2500, "Minus Two Thousand Five Hundred Rupees Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmountToWords(tt.amount); got != tt.expect {
				t.Errorf("AmountToWords(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}
