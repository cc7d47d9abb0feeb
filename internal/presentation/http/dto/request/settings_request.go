package request

// UpdateSettingsRequest replaces the store settings
type UpdateSettingsRequest struct {
	StoreName         string  `json:"store_name" binding:"required,min=2,max=255"`
	Address           string  `json:"address"`
	Phone             string  `json:"phone" binding:"max=50"`
	Email             string  `json:"email" binding:"omitempty,email"`
	Currency          string  `json:"currency" binding:"max=10"`
	ReceiptHeader     string  `json:"receipt_header"`
	ReceiptFooter     string  `json:"receipt_footer"`
	LowStockThreshold float64 `json:"low_stock_threshold" binding:"min=0"`
}
