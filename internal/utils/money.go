package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencySymbol maps an ISO currency code to its display symbol.
// Unknown codes fall back to "$" to match existing UI expectations.
func CurrencySymbol(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "NGN":
		return "₦"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return "$"
	}
}

// FormatAmount renders an amount with currency symbol, thousands
// separators and two decimals, e.g. 1234.5 NGN -> "₦1,234.50".
func FormatAmount(amount float64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%s%s%s.%02d", sign, CurrencySymbol(currency), formatThousand(whole), frac)
}

// ParseAmount parses a formatted amount ("₦1,234.50", "$ 20") back into
// its numeric value.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, sym := range []string{"₦", "€", "£", "$"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	replacer := strings.NewReplacer(",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	return strconv.ParseFloat(s, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
