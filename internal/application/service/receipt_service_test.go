package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	infraRepo "github.com/nyamari/meatpos-api/internal/infrastructure/repository"
	"github.com/nyamari/meatpos-api/pkg/printer"
	"gorm.io/gorm"
)

func newTestReceiptService(db *gorm.DB) *ReceiptService {
	return NewReceiptService(
		infraRepo.NewInvoiceRepository(db),
		infraRepo.NewSettingsRepository(db),
		printer.NewNullPrinter(),
		"none",
	)
}

func seedReceiptInvoice(t *testing.T, db *gorm.DB) entity.Invoice {
	t.Helper()
	customer := "Alice"
	invoice := entity.Invoice{
		InvoiceNumber: "INV-20260830143005",
		CustomerName:  &customer,
		TotalAmount:   23.00,
		PaymentMethod: enum.PaymentCash,
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	items := []entity.InvoiceItem{
		{InvoiceID: invoice.ID, ProductID: uuid.New(), ProductName: "Beef Ribeye", WeightKg: 1.5, PricePerKg: 10.00, TotalPrice: 15.00},
		{InvoiceID: invoice.ID, ProductID: uuid.New(), ProductName: "Chicken Breast", WeightKg: 2.0, PricePerKg: 4.00, TotalPrice: 8.00},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	return invoice
}

func TestBuildReceipt(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestReceiptService(db)
	ctx := context.Background()

	invoice := seedReceiptInvoice(t, db)

	r, err := svc.BuildReceipt(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if r.InvoiceNumber != "INV-20260830143005" {
		t.Errorf("invoice number = %s", r.InvoiceNumber)
	}
	if r.Customer != "Alice" {
		t.Errorf("customer = %s, want Alice", r.Customer)
	}
	if r.Phone != "N/A" {
		t.Errorf("phone = %s, want N/A fallback", r.Phone)
	}
	if r.PaymentMethod != "Cash" {
		t.Errorf("payment = %s, want Cash", r.PaymentMethod)
	}
	if len(r.Items) != 2 || r.Total != 23.00 {
		t.Errorf("items = %d, total = %v", len(r.Items), r.Total)
	}
	// Store identity falls back to defaults when no settings are saved
	if r.Header.StoreName != "Premium Meat Shop" {
		t.Errorf("store name = %s", r.Header.StoreName)
	}
}

func TestBuildReceiptWalkInFallback(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestReceiptService(db)
	ctx := context.Background()

	invoice := entity.Invoice{InvoiceNumber: "INV-1", TotalAmount: 5, PaymentMethod: enum.PaymentCard}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	r, err := svc.BuildReceipt(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if r.Customer != "Walk-in Customer" {
		t.Errorf("customer = %s, want Walk-in Customer", r.Customer)
	}
}

func TestGetReceiptText(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestReceiptService(db)
	ctx := context.Background()

	invoice := seedReceiptInvoice(t, db)

	text, err := svc.GetReceiptText(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	for _, want := range []string{"INV-20260830143005", "Beef Ribeye", "TOTAL: $23.00", "Payment: Cash"} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt text missing %q:\n%s", want, text)
		}
	}
}

func TestGetReceiptPDF(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestReceiptService(db)
	ctx := context.Background()

	invoice := seedReceiptInvoice(t, db)

	data, filename, err := svc.GetReceiptPDF(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not look like a PDF")
	}
	if filename != "invoice_INV-20260830143005.pdf" {
		t.Errorf("filename = %s", filename)
	}
}

func TestPrintReceiptWithNullPrinter(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestReceiptService(db)
	ctx := context.Background()

	invoice := seedReceiptInvoice(t, db)

	r, err := svc.PrintReceipt(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if r == nil || r.InvoiceNumber != "INV-20260830143005" {
		t.Errorf("receipt = %+v", r)
	}

	status := svc.GetPrinterStatus()
	if status.Configured || status.Connected {
		t.Errorf("status = %+v, want unconfigured", status)
	}
}

func TestReceiptForUnknownInvoice(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestReceiptService(db)

	if _, err := svc.BuildReceipt(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown invoice")
	}
}
