package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice is the header record of a completed sale. It is created exactly
// once per sale and is immutable thereafter. TotalAmount is the sum of the
// line items' totals as supplied by the caller, not recomputed.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:100;unique;not null" json:"invoice_number"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone *string            `gorm:"size:50" json:"customer_phone,omitempty"`
	TotalAmount   float64            `gorm:"not null" json:"total_amount"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one product/weight/price entry within an invoice. It
// snapshots the product name and unit price at sale time, so later catalog
// edits do not rewrite sales history. The product reference carries no
// cascade: deleting a product does not touch past invoices.
type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	WeightKg    float64   `gorm:"not null" json:"weight_kg"`
	PricePerKg  float64   `gorm:"not null" json:"price_per_kg"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
