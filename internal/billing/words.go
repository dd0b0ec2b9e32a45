package billing

import (
	"math"
	"strings"
)

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// Words spells n in the Indian numbering system, e.g.
// 123456 -> "One Lakh Twenty Three Thousand Four Hundred Fifty Six Only".
//
// n must be non-negative; callers round amounts first. Negative input
// returns "".
func Words(n int64) string {
	switch {
	case n < 0:
		return ""
	case n == 0:
		return "Zero"
	}
	return strings.Join(indianWords(n), " ") + " Only"
}

// AmountInWords rounds amount half away from zero and spells it.
func AmountInWords(amount float64) string {
	return Words(int64(math.Round(amount)))
}

// indianWords groups n as hundreds, then two-digit Thousand and Lakh groups,
// with everything above a lakh counted in crores.
func indianWords(n int64) []string {
	var parts []string
	if crores := n / 10000000; crores > 0 {
		parts = append(parts, indianWords(crores)...)
		parts = append(parts, "Crore")
	}
	if lakhs := n / 100000 % 100; lakhs > 0 {
		parts = append(parts, groupWords(lakhs)...)
		parts = append(parts, "Lakh")
	}
	if thousands := n / 1000 % 100; thousands > 0 {
		parts = append(parts, groupWords(thousands)...)
		parts = append(parts, "Thousand")
	}
	return append(parts, groupWords(n%1000)...)
}

// groupWords spells 0..999; zero yields no words.
func groupWords(n int64) []string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tensWords[n/10])
		n %= 10
	case n >= 10:
		return append(parts, teenWords[n-10])
	}
	if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return parts
}
