package utils

import (
	"math"
	"testing"
)

func TestFormatAmountNGN(t *testing.T) {
	if got := FormatAmount(1234.5, "NGN"); got != "₦1,234.50" {
		t.Fatalf("got %q, want ₦1,234.50", got)
	}
}

func TestFormatAmountDefaultsToDollar(t *testing.T) {
	if got := FormatAmount(20, "XYZ"); got != "$20.00" {
		t.Fatalf("got %q, want $20.00", got)
	}
}

func TestFormatAmountSymbols(t *testing.T) {
	cases := map[string]string{
		"USD": "$1,000,000.00",
		"EUR": "€1,000,000.00",
		"GBP": "£1,000,000.00",
		"NGN": "₦1,000,000.00",
	}
	for code, want := range cases {
		if got := FormatAmount(1_000_000, code); got != want {
			t.Fatalf("%s: got %q, want %q", code, got, want)
		}
	}
}

func TestFormatAmountNegative(t *testing.T) {
	if got := FormatAmount(-250.75, "USD"); got != "-$250.75" {
		t.Fatalf("got %q, want -$250.75", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 1234.5, 99.99, 1_000_000, 0.1} {
		for _, code := range []string{"NGN", "USD", "EUR", "GBP"} {
			s := FormatAmount(amount, code)
			back, err := ParseAmount(s)
			if err != nil {
				t.Fatalf("parse %q: %v", s, err)
			}
			if math.Abs(back-amount) > 0.005 {
				t.Fatalf("round trip %v -> %q -> %v", amount, s, back)
			}
		}
	}
}

func TestParseAmountRejectsEmpty(t *testing.T) {
	if _, err := ParseAmount("₦ "); err == nil {
		t.Fatalf("expected error for empty amount")
	}
}
