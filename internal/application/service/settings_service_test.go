package service

import (
	"context"
	"testing"

	infraRepo "github.com/nyamari/meatpos-api/internal/infrastructure/repository"
)

func TestGetSettingsCreatesDefaults(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewSettingsService(infraRepo.NewSettingsRepository(db))
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.StoreName != "Premium Meat Shop" {
		t.Errorf("store name = %q, want default", settings.StoreName)
	}
	if settings.LowStockThreshold != 5.0 {
		t.Errorf("threshold = %v, want 5.0", settings.LowStockThreshold)
	}

	// Second call returns the persisted row, not a fresh default
	again, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.ID != settings.ID {
		t.Error("expected the same settings row")
	}
}

func TestUpdateSettings(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewSettingsService(infraRepo.NewSettingsRepository(db))
	ctx := context.Background()

	updated, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
		StoreName:         "Corner Butchery",
		Currency:          "EUR",
		ReceiptFooter:     "See you soon",
		LowStockThreshold: 3.5,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.StoreName != "Corner Butchery" || updated.Currency != "EUR" {
		t.Errorf("updated = %+v", updated)
	}

	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LowStockThreshold != 3.5 || got.ReceiptFooter != "See you soon" {
		t.Errorf("persisted = %+v", got)
	}

	if _, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{StoreName: "  "}); err == nil {
		t.Error("expected error for blank store name")
	}
	if _, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{StoreName: "X", LowStockThreshold: -1}); err == nil {
		t.Error("expected error for negative threshold")
	}
}
