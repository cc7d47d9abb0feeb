package receipt

import (
	"fmt"
	"strings"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
)

// RenderText renders a receipt as plain text for on-screen preview
func RenderText(r *entity.Receipt) string {
	var b strings.Builder

	b.WriteString(r.Header.StoreName + "\n")
	b.WriteString(strings.Repeat("=", len(r.Header.StoreName)) + "\n")
	b.WriteString("Invoice: " + r.InvoiceNumber + "\n")
	b.WriteString("Date: " + r.Date + "\n")
	b.WriteString("Customer: " + r.Customer + "\n")
	b.WriteString("Phone: " + r.Phone + "\n")
	b.WriteString("\nITEMS:\n")

	for _, item := range r.Items {
		fmt.Fprintf(&b, "%-20s %6.2fkg @ $%6.2f = $%8.2f\n",
			item.Name, item.WeightKg, item.PricePerKg, item.Total)
	}

	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "TOTAL: $%.2f\n", r.Total)
	b.WriteString("Payment: " + r.PaymentMethod + "\n")

	if r.Footer != "" {
		b.WriteString("\n" + r.Footer + "\n")
	}

	return b.String()
}
