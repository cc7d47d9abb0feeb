package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	infraRepo "github.com/nyamari/meatpos-api/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func seedReportInvoice(t *testing.T, db *gorm.DB, number string, at time.Time, total float64) {
	t.Helper()
	invoice := entity.Invoice{InvoiceNumber: number, TotalAmount: total, PaymentMethod: enum.PaymentCash}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	if err := db.Create(&entity.InvoiceItem{
		InvoiceID: invoice.ID, ProductName: "Beef Ribeye", WeightKg: 1, PricePerKg: total, TotalPrice: total,
	}).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	if err := db.Model(&entity.Invoice{}).Where("id = ?", invoice.ID).
		Update("created_at", at).Error; err != nil {
		t.Fatalf("set created_at: %v", err)
	}
}

func TestReportServiceSummary(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReportService(infraRepo.NewReportRepository(db))
	ctx := context.Background()

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	seedReportInvoice(t, db, "INV-1", from.Add(9*time.Hour), 30.00)
	seedReportInvoice(t, db, "INV-2", from.AddDate(0, 0, 1).Add(10*time.Hour), 50.00)

	summary, err := svc.Summary(ctx, from, from.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.InvoiceCount != 2 || summary.TotalRevenue != 80.00 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.AverageSale != 40.00 {
		t.Errorf("average sale = %v, want 40.00", summary.AverageSale)
	}
	if summary.DailyAverage != 40.00 {
		t.Errorf("daily average = %v, want 40.00 over 2 days", summary.DailyAverage)
	}
}

func TestReportServiceRejectsInvertedRange(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReportService(infraRepo.NewReportRepository(db))

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Summary(context.Background(), from, from); err == nil {
		t.Error("expected error for empty range")
	}
	if _, err := svc.DailySales(context.Background(), from, from.AddDate(0, 0, -1)); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestExportXLSX(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReportService(infraRepo.NewReportRepository(db))
	ctx := context.Background()

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	seedReportInvoice(t, db, "INV-1", from.Add(9*time.Hour), 30.00)

	data, err := svc.ExportXLSX(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	// XLSX files are zip archives
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("export does not look like an XLSX file")
	}

	if name := svc.ExportFilename(from, from.AddDate(0, 0, 1)); name != "sales_20260810_20260811.xlsx" {
		t.Errorf("filename = %s", name)
	}
}
