package entity

import "time"

// DefaultLowStockThreshold is the stock level (kg) below which a product is
// flagged as low, unless overridden in store settings.
const DefaultLowStockThreshold = 5.0

// StoreSettings holds the shop identity and receipt configuration. The table
// carries a single row; Get creates it with defaults when absent.
type StoreSettings struct {
	ID                uint      `gorm:"primary_key" json:"-"`
	StoreName         string    `gorm:"size:255" json:"store_name"`
	Address           string    `gorm:"type:text" json:"address"`
	Phone             string    `gorm:"size:50" json:"phone"`
	Email             string    `gorm:"size:255" json:"email"`
	Currency          string    `gorm:"size:10;default:'USD'" json:"currency"`
	ReceiptHeader     string    `gorm:"type:text" json:"receipt_header"`
	ReceiptFooter     string    `gorm:"type:text" json:"receipt_footer"`
	LowStockThreshold float64   `gorm:"default:5" json:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}

// DefaultStoreSettings returns the settings used before an admin saves any
func DefaultStoreSettings() *StoreSettings {
	return &StoreSettings{
		StoreName:         "Premium Meat Shop",
		Address:           "123 Main Street, City, State 12345",
		Phone:             "+1 (555) 123-4567",
		Email:             "info@meatshop.com",
		Currency:          "USD",
		ReceiptHeader:     "Fresh Quality Meats",
		ReceiptFooter:     "Thank you for your business!",
		LowStockThreshold: DefaultLowStockThreshold,
	}
}
