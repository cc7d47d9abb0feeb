package utils

import "time"

// GenerateInvoiceNumber derives a human-readable invoice number from the
// given time at second granularity, e.g. "INV-20240131154502". Two sales
// completing within the same second collide on the unique constraint; the
// second one fails and the caller retries the sale.
func GenerateInvoiceNumber(t time.Time) string {
	return "INV-" + t.Format("20060102150405")
}
