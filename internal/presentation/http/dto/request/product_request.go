package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	SupplierID     *uuid.UUID `json:"supplier_id"`
	Name           string     `json:"name" binding:"required,min=2,max=255"`
	Code           string     `json:"code" binding:"omitempty,max=100"`
	Description    *string    `json:"description"`
	Unit           string     `json:"unit" binding:"omitempty,max=50"`
	PurchasePrice  float64    `json:"purchase_price" binding:"min=0"`
	SellingPrice   float64    `json:"selling_price" binding:"min=0"`
	TaxRate        float64    `json:"tax_rate" binding:"min=0,max=100"`
	TrackInventory *bool      `json:"track_inventory"`
	CurrentStock   float64    `json:"current_stock"`
	MinStock       float64    `json:"min_stock" binding:"min=0"`
	MaxStock       float64    `json:"max_stock" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	SupplierID     *uuid.UUID `json:"supplier_id"`
	Name           *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Description    *string    `json:"description"`
	Unit           *string    `json:"unit" binding:"omitempty,max=50"`
	PurchasePrice  *float64   `json:"purchase_price" binding:"omitempty,min=0"`
	SellingPrice   *float64   `json:"selling_price" binding:"omitempty,min=0"`
	TaxRate        *float64   `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	TrackInventory *bool      `json:"track_inventory"`
	MinStock       *float64   `json:"min_stock" binding:"omitempty,min=0"`
	MaxStock       *float64   `json:"max_stock" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	SupplierID string `form:"supplier_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
