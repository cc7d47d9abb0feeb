package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/repository"
	infraRepo "github.com/nyamari/meatpos-api/internal/infrastructure/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
	"github.com/nyamari/meatpos-api/pkg/pagination"
	"gorm.io/gorm"
)

func newTestCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(infraRepo.NewProductRepository(db), infraRepo.NewSettingsRepository(db))
}

func TestAddProductValidation(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestCatalogService(db)
	ctx := context.Background()

	cases := []struct {
		name  string
		input AddProductInput
	}{
		{"empty name", AddProductInput{PricePerKg: 5, StockKg: 1, Category: "Beef"}},
		{"zero price", AddProductInput{Name: "Ribeye", PricePerKg: 0, Category: "Beef"}},
		{"negative stock", AddProductInput{Name: "Ribeye", PricePerKg: 5, StockKg: -1, Category: "Beef"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddProduct(ctx, &tc.input)
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) || appErr.Code != http.StatusBadRequest {
				t.Fatalf("err = %v, want 400 AppError", err)
			}
		})
	}
}

func TestAddAndGetProduct(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestCatalogService(db)
	ctx := context.Background()

	created, err := svc.AddProduct(ctx, &AddProductInput{
		Name:       "Beef Ribeye",
		PricePerKg: 12.50,
		StockKg:    8.0,
		Category:   "Beef",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}

	got, err := svc.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Beef Ribeye" || got.PricePerKg != 12.50 || got.StockKg != 8.0 {
		t.Errorf("got %+v", got)
	}
}

func TestUpdateProductPartial(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestCatalogService(db)
	ctx := context.Background()

	created, err := svc.AddProduct(ctx, &AddProductInput{
		Name: "Brisket", PricePerKg: 8.00, StockKg: 5.0, Category: "Beef",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	newPrice := 9.50
	updated, err := svc.UpdateProduct(ctx, &UpdateProductInput{
		ProductID:  created.ID,
		PricePerKg: &newPrice,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// Only the named field changed
	if updated.PricePerKg != 9.50 {
		t.Errorf("price = %v, want 9.50", updated.PricePerKg)
	}
	if updated.Name != "Brisket" || updated.StockKg != 5.0 || updated.Category != "Beef" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestSetStock(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestCatalogService(db)
	ctx := context.Background()

	created, err := svc.AddProduct(ctx, &AddProductInput{
		Name: "Lamb Chops", PricePerKg: 15.00, StockKg: 2.0, Category: "Lamb",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := svc.SetStock(ctx, created.ID, 12.5)
	if err != nil {
		t.Fatalf("set stock: %v", err)
	}
	if updated.StockKg != 12.5 {
		t.Errorf("stock = %v, want 12.5", updated.StockKg)
	}

	if _, err := svc.SetStock(ctx, created.ID, -1); err == nil {
		t.Error("expected error for negative stock")
	}
	if _, err := svc.SetStock(ctx, uuid.New(), 3); err == nil {
		t.Error("expected error for unknown product")
	}
}

func TestLowStockProducts(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestCatalogService(db)
	ctx := context.Background()

	for _, p := range []struct {
		name  string
		stock float64
	}{
		{"Beef Ribeye", 1.0},
		{"Brisket", 4.5},
		{"Chicken Breast", 20.0},
	} {
		if _, err := svc.AddProduct(ctx, &AddProductInput{
			Name: p.name, PricePerKg: 5, StockKg: p.stock, Category: "Meat",
		}); err != nil {
			t.Fatalf("add %s: %v", p.name, err)
		}
	}

	// Default threshold of 5.0 kg flags two products, lowest stock first
	low, err := svc.LowStockProducts(ctx, 0)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("low = %d products, want 2", len(low))
	}
	if low[0].Name != "Beef Ribeye" || low[1].Name != "Brisket" {
		t.Errorf("order = %s, %s; want ascending by stock", low[0].Name, low[1].Name)
	}

	// Settings override tightens the threshold
	if err := db.Create(&entity.StoreSettings{StoreName: "Shop", LowStockThreshold: 2.0}).Error; err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	low, err = svc.LowStockProducts(ctx, 0)
	if err != nil {
		t.Fatalf("low stock with settings: %v", err)
	}
	if len(low) != 1 || low[0].Name != "Beef Ribeye" {
		t.Errorf("low = %+v, want only Beef Ribeye under 2.0", low)
	}

	// Explicit threshold wins over both
	low, err = svc.LowStockProducts(ctx, 25.0)
	if err != nil {
		t.Fatalf("low stock explicit: %v", err)
	}
	if len(low) != 3 {
		t.Errorf("low = %d, want all 3 under 25.0", len(low))
	}
}

func TestListProductsSearchAndCategory(t *testing.T) {
	db := setupServiceDB(t)
	svc := newTestCatalogService(db)
	ctx := context.Background()

	seed := []AddProductInput{
		{Name: "Beef Ribeye", PricePerKg: 12, StockKg: 5, Category: "Beef"},
		{Name: "Beef Brisket", PricePerKg: 8, StockKg: 5, Category: "Beef"},
		{Name: "Chicken Breast", PricePerKg: 4, StockKg: 5, Category: "Poultry"},
	}
	for i := range seed {
		if _, err := svc.AddProduct(ctx, &seed[i]); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	result, err := svc.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: pagination.DefaultPagination(),
		Search:     "beef",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Pagination.Total != 2 {
		t.Errorf("search total = %d, want 2", result.Pagination.Total)
	}

	result, err = svc.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: pagination.DefaultPagination(),
		Category:   "Poultry",
	})
	if err != nil {
		t.Fatalf("list category: %v", err)
	}
	if result.Pagination.Total != 1 {
		t.Errorf("category total = %d, want 1", result.Pagination.Total)
	}

	categories, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("categories = %v, want 2 distinct", categories)
	}
}
