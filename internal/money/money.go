// Package money formats rupee amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders v with exactly two decimals, e.g. 1234.5 -> "1234.50".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatINR renders v with the rupee sign and Indian digit grouping,
// e.g. 1234567.8 -> "₹12,34,567.80".
func FormatINR(v float64) string {
	s := Format(v)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "₹" + groupIndian(whole) + "." + frac
}

// groupIndian puts a comma after the last three digits and then after every
// two, as in 1,00,00,000.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
