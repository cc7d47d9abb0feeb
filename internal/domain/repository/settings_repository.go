package repository

import (
	"context"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single-row store settings
type SettingsRepository interface {
	// Get returns the settings row, or nil when none has been saved yet
	Get(ctx context.Context) (*entity.StoreSettings, error)
	// Save creates or updates the settings row
	Save(ctx context.Context, settings *entity.StoreSettings) error
}

// MaintenanceRepository defines administrative data operations
type MaintenanceRepository interface {
	// ResetData deletes all invoices, invoice items, and products in one
	// transaction. User accounts are retained.
	ResetData(ctx context.Context) error
}
