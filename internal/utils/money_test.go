package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatRupees(t *testing.T) {
	cases := map[string]string{
		"0":         "Rs 0.00",
		"950":       "Rs 950.00",
		"5000":      "Rs 5,000.00",
		"1234567.5": "Rs 1,234,567.50",
		"-2000":     "-Rs 2,000.00",
	}
	for in, want := range cases {
		if got := FormatRupees(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatRupees(%s) = %q, want %q", in, got, want)
		}
	}
}
