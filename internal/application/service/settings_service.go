package service

import (
	"context"
	"strings"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
)

// SettingsService manages the single-row store configuration
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the store settings, saving defaults first when none
// exist yet so every caller sees a complete row.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings()
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput holds the full replacement settings
type UpdateSettingsInput struct {
	StoreName         string
	Address           string
	Phone             string
	Email             string
	Currency          string
	ReceiptHeader     string
	ReceiptFooter     string
	LowStockThreshold float64
}

// UpdateSettings replaces the store settings with the given values
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	if strings.TrimSpace(input.StoreName) == "" {
		return nil, apperror.NewBadRequestError("Store name is required")
	}
	if input.LowStockThreshold < 0 {
		return nil, apperror.NewBadRequestError("Low stock threshold cannot be negative")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.StoreName = input.StoreName
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.Currency = input.Currency
	settings.ReceiptHeader = input.ReceiptHeader
	settings.ReceiptFooter = input.ReceiptFooter
	settings.LowStockThreshold = input.LowStockThreshold

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
