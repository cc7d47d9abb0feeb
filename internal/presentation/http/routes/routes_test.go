package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nyamari/meatpos-api/internal/application/service"
	"github.com/nyamari/meatpos-api/internal/config"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/infrastructure/database"
	infraRepo "github.com/nyamari/meatpos-api/internal/infrastructure/repository"
	"github.com/nyamari/meatpos-api/internal/presentation/http/handler"
	"github.com/nyamari/meatpos-api/pkg/printer"
	"github.com/nyamari/meatpos-api/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaultUsers(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := &config.Config{}
	cfg.App.Name = "meatpos-api-test"
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.Duration = 1

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	userRepo := infraRepo.NewUserRepository(db)
	productRepo := infraRepo.NewProductRepository(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)
	reportRepo := infraRepo.NewReportRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)
	maintenanceRepo := infraRepo.NewMaintenanceRepository(db)

	nullPrinter := printer.NewNullPrinter()
	handlers := &Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo, jwtManager)),
		Product:  handler.NewProductHandler(service.NewCatalogService(productRepo, settingsRepo)),
		Sale:     handler.NewSaleHandler(service.NewSaleService(invoiceRepo), service.NewReceiptService(invoiceRepo, settingsRepo, nullPrinter, "none")),
		Report:   handler.NewReportHandler(service.NewReportService(reportRepo)),
		Settings: handler.NewSettingsHandler(service.NewSettingsService(settingsRepo)),
		Admin:    handler.NewAdminHandler(service.NewAdminService(userRepo, maintenanceRepo)),
	}

	return Setup(handlers, &Deps{JWTManager: jwtManager, Cfg: cfg}), db
}

func do(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	w := do(t, router, http.MethodPost, "/api/v1/auth/login", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", username, w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Tokens struct {
				AccessToken string `json:"access_token"`
			} `json:"tokens"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if resp.Data.Tokens.AccessToken == "" {
		t.Fatalf("no access token in %s", w.Body.String())
	}
	return resp.Data.Tokens.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	w := do(t, router, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	router, _ := setupRouter(t)
	w := do(t, router, http.MethodGet, "/api/v1/products", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated products = %d, want 401", w.Code)
	}
}

func TestSaleFlow(t *testing.T) {
	router, db := setupRouter(t)
	admin := login(t, router, "admin", "admin123")

	// Create a product
	w := do(t, router, http.MethodPost, "/api/v1/products", admin,
		`{"name":"Beef Ribeye","price_per_kg":5.0,"stock_kg":10.0,"category":"Beef"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create product = %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Data entity.Product `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	// Cashier completes a sale
	cashier := login(t, router, "cashier", "cashier123")
	saleBody := fmt.Sprintf(`{
		"payment_method": "cash",
		"items": [{"product_id": %q, "product_name": "Beef Ribeye", "weight_kg": 3.0, "price_per_kg": 5.0, "total_price": 15.0}]
	}`, created.Data.ID)
	w = do(t, router, http.MethodPost, "/api/v1/sales", cashier, saleBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("complete sale = %d %s", w.Code, w.Body.String())
	}
	var sale struct {
		Data entity.Invoice `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sale); err != nil {
		t.Fatalf("decode sale: %v", err)
	}
	if sale.Data.TotalAmount != 15.0 {
		t.Errorf("total = %v, want 15.0", sale.Data.TotalAmount)
	}

	var product entity.Product
	if err := db.First(&product, "id = ?", created.Data.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if product.StockKg != 7.0 {
		t.Errorf("stock = %v, want 7.0", product.StockKg)
	}

	// Receipt endpoints work off the stored invoice
	w = do(t, router, http.MethodGet, "/api/v1/sales/"+sale.Data.ID.String()+"/receipt", cashier, "")
	if w.Code != http.StatusOK {
		t.Fatalf("receipt = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), sale.Data.InvoiceNumber) {
		t.Error("receipt missing invoice number")
	}

	w = do(t, router, http.MethodGet, "/api/v1/sales/"+sale.Data.ID.String()+"/receipt.pdf", cashier, "")
	if w.Code != http.StatusOK {
		t.Fatalf("receipt.pdf = %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("receipt.pdf is not a PDF")
	}
}

func TestSaleInsufficientStockReturns409(t *testing.T) {
	router, _ := setupRouter(t)
	admin := login(t, router, "admin", "admin123")

	w := do(t, router, http.MethodPost, "/api/v1/products", admin,
		`{"name":"Brisket","price_per_kg":8.0,"stock_kg":2.0,"category":"Beef"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create product = %d", w.Code)
	}
	var created struct {
		Data entity.Product `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	saleBody := fmt.Sprintf(`{
		"payment_method": "cash",
		"items": [{"product_id": %q, "product_name": "Brisket", "weight_kg": 5.0, "price_per_kg": 8.0, "total_price": 40.0}]
	}`, created.Data.ID)
	w = do(t, router, http.MethodPost, "/api/v1/sales", admin, saleBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("oversell = %d %s, want 409", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Insufficient stock") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSaleRejectsEmptyItems(t *testing.T) {
	router, _ := setupRouter(t)
	cashier := login(t, router, "cashier", "cashier123")

	w := do(t, router, http.MethodPost, "/api/v1/sales", cashier, `{"payment_method":"cash","items":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty sale = %d, want 400", w.Code)
	}
}

func TestRoleEnforcement(t *testing.T) {
	router, _ := setupRouter(t)
	cashier := login(t, router, "cashier", "cashier123")
	manager := login(t, router, "manager", "manager123")

	// Cashiers cannot touch the catalog, reports, or admin surfaces
	w := do(t, router, http.MethodPost, "/api/v1/products", cashier,
		`{"name":"Lamb","price_per_kg":15.0,"stock_kg":1.0,"category":"Lamb"}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("cashier create product = %d, want 403", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/api/v1/reports/summary", cashier, ""); w.Code != http.StatusForbidden {
		t.Errorf("cashier reports = %d, want 403", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/api/v1/settings", cashier, ""); w.Code != http.StatusForbidden {
		t.Errorf("cashier settings = %d, want 403", w.Code)
	}

	// Managers get catalog and reports but not settings or admin
	w = do(t, router, http.MethodPost, "/api/v1/products", manager,
		`{"name":"Lamb","price_per_kg":15.0,"stock_kg":1.0,"category":"Lamb"}`)
	if w.Code != http.StatusCreated {
		t.Errorf("manager create product = %d, want 201", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/api/v1/reports/summary", manager, ""); w.Code != http.StatusOK {
		t.Errorf("manager reports = %d, want 200", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/api/v1/settings", manager, ""); w.Code != http.StatusForbidden {
		t.Errorf("manager settings = %d, want 403", w.Code)
	}
	if w := do(t, router, http.MethodPost, "/api/v1/admin/reset", manager, ""); w.Code != http.StatusForbidden {
		t.Errorf("manager reset = %d, want 403", w.Code)
	}
}
