package repository

import (
	"context"
	"errors"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
	domainRepo "github.com/nyamari/meatpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var settings entity.StoreSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.StoreSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) domainRepo.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// ResetData clears all sale and catalog data. User accounts and store
// settings are retained.
func (r *maintenanceRepository) ResetData(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.InvoiceItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entity.Invoice{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&entity.Product{}).Error
	})
}
