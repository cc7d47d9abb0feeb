package receipt

import (
	"bytes"
	"fmt"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/phpdave11/gofpdf"
)

// RenderPDF renders a receipt as an A4 PDF: shop header, invoice metadata,
// an itemized table with a total row, then the footer lines.
func RenderPDF(r *entity.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Shop header
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, r.Header.StoreName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if r.Header.Tagline != "" {
		pdf.CellFormat(0, 5, r.Header.Tagline, "", 1, "C", false, 0, "")
	}
	if r.Header.Address != "" {
		pdf.CellFormat(0, 5, r.Header.Address, "", 1, "C", false, 0, "")
	}
	if r.Header.Phone != "" {
		pdf.CellFormat(0, 5, "Phone: "+r.Header.Phone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	// Invoice details
	details := [][2]string{
		{"Invoice Number:", r.InvoiceNumber},
		{"Date:", r.Date},
		{"Customer:", r.Customer},
		{"Phone:", r.Phone},
		{"Payment Method:", r.PaymentMethod},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range details {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Items table
	colWidths := []float64{90, 30, 30, 30}
	headers := []string{"Product", "Weight (kg)", "Price/kg", "Total"}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, item := range r.Items {
		pdf.SetFillColor(245, 245, 220)
		pdf.CellFormat(colWidths[0], 7, item.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 7, fmt.Sprintf("%.2f", item.WeightKg), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("$%.2f", item.PricePerKg), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[3], 7, fmt.Sprintf("$%.2f", item.Total), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
		fill = !fill
	}

	// Total row
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(211, 211, 211)
	pdf.CellFormat(colWidths[0], 9, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[1], 9, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[2], 9, "TOTAL:", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[3], 9, fmt.Sprintf("$%.2f", r.Total), "1", 0, "C", true, 0, "")
	pdf.Ln(15)

	// Footer
	pdf.SetFont("Helvetica", "", 10)
	if r.Footer != "" {
		pdf.CellFormat(0, 5, r.Footer, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, "Please come again!", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
