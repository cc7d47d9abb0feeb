package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	PricePerKg  float64 `json:"price_per_kg" binding:"required,gt=0"`
	StockKg     float64 `json:"stock_kg" binding:"min=0"`
	Category    string  `json:"category" binding:"required,min=2,max=100"`
	Description *string `json:"description"`
	ImagePath   *string `json:"image_path"`
}

// UpdateProductRequest represents a partial product update request
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	PricePerKg  *float64 `json:"price_per_kg" binding:"omitempty,gt=0"`
	StockKg     *float64 `json:"stock_kg" binding:"omitempty,min=0"`
	Category    *string  `json:"category" binding:"omitempty,min=2,max=100"`
	Description *string  `json:"description"`
	ImagePath   *string  `json:"image_path"`
}

// SetStockRequest replaces a product's stock level outright
type SetStockRequest struct {
	StockKg float64 `json:"stock_kg" binding:"min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// LowStockRequest optionally overrides the configured low stock threshold
type LowStockRequest struct {
	Threshold float64 `form:"threshold"`
}
