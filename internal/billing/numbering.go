package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vijay-heerarajan/billing-app/internal/models"
)

// NumberPrefix returns the invoice number prefix for the month of now,
// e.g. "INV202503".
func NumberPrefix(now time.Time) string {
	return fmt.Sprintf("INV%04d%02d", now.Year(), int(now.Month()))
}

// NextInvoiceNumber returns the next number in the monthly series of now.
// Format: INVYYYYMMNNNN (e.g., INV2025030001)
//
// Only numbers carrying the current prefix are considered; a suffix that does
// not parse as a non-negative integer counts as zero. The result is only
// unique if existing holds every invoice number of the scope at call time.
func NextInvoiceNumber(existing []string, now time.Time) string {
	prefix := NumberPrefix(now)
	var last int
	for _, no := range existing {
		if !strings.HasPrefix(no, prefix) {
			continue
		}
		n, err := strconv.Atoi(no[len(prefix):])
		if err != nil || n < 0 {
			n = 0
		}
		if n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, last+1)
}

// NextInvoiceNumberFor is NextInvoiceNumber over a list of invoices.
func NextInvoiceNumberFor(invoices []models.Invoice, now time.Time) string {
	numbers := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		numbers = append(numbers, inv.InvoiceNo)
	}
	return NextInvoiceNumber(numbers, now)
}
