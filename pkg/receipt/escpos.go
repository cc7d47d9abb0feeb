package receipt

import (
	"fmt"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/pkg/printer"
)

// RenderESCPOS renders a receipt as an ESC/POS byte stream for a 58mm
// thermal printer.
func RenderESCPOS(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal)
	if r.Header.Tagline != "" {
		doc.Text(r.Header.Tagline)
	}
	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Invoice", r.InvoiceNumber).
		KeyValue("Date", r.Date).
		KeyValue("Customer", r.Customer).
		KeyValue("Payment", r.PaymentMethod).
		Separator('-')

	for _, item := range r.Items {
		doc.WeighedItem(item.Name, item.WeightKg, item.PricePerKg, fmt.Sprintf("$%.2f", item.Total))
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("TOTAL", fmt.Sprintf("$%.2f", r.Total)).
		SetBold(false)

	if r.Footer != "" {
		doc.LineFeed().
			SetAlign(printer.AlignCenter).
			Text(r.Footer)
	}

	doc.FeedLines(3).Cut()
	return doc.Bytes()
}
