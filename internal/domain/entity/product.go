package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the shop catalog. Prices are per kilogram
// and stock is tracked by weight. Stock never goes negative: the only
// decrement path is the conditional update inside sale completion.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	PricePerKg  float64   `gorm:"not null" json:"price_per_kg"`
	StockKg     float64   `gorm:"default:0" json:"stock_kg"`
	Category    string    `gorm:"size:255" json:"category"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ImagePath   *string   `gorm:"size:255" json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
