package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	infraRepo "github.com/nyamari/meatpos-api/internal/infrastructure/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Product{}, &entity.Invoice{}, &entity.InvoiceItem{}, &entity.StoreSettings{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedServiceProduct(t *testing.T, db *gorm.DB, name string, pricePerKg, stockKg float64) entity.Product {
	t.Helper()
	product := entity.Product{Name: name, PricePerKg: pricePerKg, StockKg: stockKg, Category: "Beef"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func newTestSaleService(db *gorm.DB, at time.Time) *SaleService {
	s := NewSaleService(infraRepo.NewInvoiceRepository(db))
	s.now = func() time.Time { return at }
	return s
}

func TestCompleteSale(t *testing.T) {
	db := setupServiceDB(t)
	at := time.Date(2026, 8, 30, 14, 30, 5, 0, time.UTC)
	svc := newTestSaleService(db, at)
	ctx := context.Background()

	ribeye := seedServiceProduct(t, db, "Beef Ribeye", 5.00, 10.0)

	invoice, err := svc.CompleteSale(ctx, &CompleteSaleInput{
		PaymentMethod: enum.PaymentCash,
		Items: []SaleItemInput{
			{ProductID: ribeye.ID, ProductName: ribeye.Name, WeightKg: 3.0, PricePerKg: 5.00, TotalPrice: 15.00},
		},
	})
	if err != nil {
		t.Fatalf("complete sale: %v", err)
	}

	if invoice.InvoiceNumber != "INV-20260830143005" {
		t.Errorf("invoice number = %s, want INV-20260830143005", invoice.InvoiceNumber)
	}
	if invoice.TotalAmount != 15.00 {
		t.Errorf("total = %v, want 15.00", invoice.TotalAmount)
	}
	if len(invoice.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(invoice.Items))
	}

	var product entity.Product
	if err := db.First(&product, "id = ?", ribeye.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if product.StockKg != 7.0 {
		t.Errorf("stock = %v, want 7.0", product.StockKg)
	}
}

func TestCompleteSaleTotalIsSumOfLineTotals(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestSaleService(db, time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))
	ctx := context.Background()

	ribeye := seedServiceProduct(t, db, "Beef Ribeye", 5.00, 10.0)
	chicken := seedServiceProduct(t, db, "Chicken Breast", 3.00, 10.0)

	// Line totals are carried through as submitted, not recomputed
	invoice, err := svc.CompleteSale(ctx, &CompleteSaleInput{
		PaymentMethod: enum.PaymentCard,
		Items: []SaleItemInput{
			{ProductID: ribeye.ID, ProductName: ribeye.Name, WeightKg: 1.0, PricePerKg: 5.00, TotalPrice: 4.50},
			{ProductID: chicken.ID, ProductName: chicken.Name, WeightKg: 2.0, PricePerKg: 3.00, TotalPrice: 6.00},
		},
	})
	if err != nil {
		t.Fatalf("complete sale: %v", err)
	}
	if invoice.TotalAmount != 10.50 {
		t.Errorf("total = %v, want 10.50", invoice.TotalAmount)
	}
}

func TestCompleteSaleInsufficientStock(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestSaleService(db, time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))
	ctx := context.Background()

	brisket := seedServiceProduct(t, db, "Brisket", 8.00, 2.0)

	_, err := svc.CompleteSale(ctx, &CompleteSaleInput{
		PaymentMethod: enum.PaymentCash,
		Items: []SaleItemInput{
			{ProductID: brisket.ID, ProductName: brisket.Name, WeightKg: 5.0, PricePerKg: 8.00, TotalPrice: 40.00},
		},
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want AppError", err)
	}
	if appErr.Code != http.StatusConflict {
		t.Errorf("code = %d, want 409", appErr.Code)
	}

	var product entity.Product
	if err := db.First(&product, "id = ?", brisket.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if product.StockKg != 2.0 {
		t.Errorf("stock = %v, want 2.0 after rejected sale", product.StockKg)
	}
}

func TestCompleteSaleMissingProduct(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestSaleService(db, time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))

	_, err := svc.CompleteSale(context.Background(), &CompleteSaleInput{
		PaymentMethod: enum.PaymentCash,
		Items: []SaleItemInput{
			{ProductID: uuid.New(), ProductName: "Ghost Cut", WeightKg: 1.0, PricePerKg: 5.00, TotalPrice: 5.00},
		},
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want AppError", err)
	}
	if appErr.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestCompleteSaleRejectsEmptyItems(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestSaleService(db, time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))

	_, err := svc.CompleteSale(context.Background(), &CompleteSaleInput{
		PaymentMethod: enum.PaymentCash,
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want AppError", err)
	}
	if appErr.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", appErr.Code)
	}
}

func TestCompleteSaleRejectsInvalidPaymentMethod(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestSaleService(db, time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC))

	ribeye := seedServiceProduct(t, db, "Beef Ribeye", 5.00, 10.0)

	_, err := svc.CompleteSale(context.Background(), &CompleteSaleInput{
		PaymentMethod: "barter",
		Items: []SaleItemInput{
			{ProductID: ribeye.ID, ProductName: ribeye.Name, WeightKg: 1.0, PricePerKg: 5.00, TotalPrice: 5.00},
		},
	})

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 AppError", err)
	}
}

func TestGetInvoiceNotFound(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestSaleService(db, time.Now())

	_, err := svc.GetInvoice(context.Background(), uuid.New())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 AppError", err)
	}
}
