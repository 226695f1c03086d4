package request

import (
	"time"

	"github.com/google/uuid"
)

// DocumentItemRequest represents one line item on a document
type DocumentItemRequest struct {
	ProductID     *uuid.UUID `json:"product_id"`
	Description   string     `json:"description" binding:"omitempty,max=500"`
	Quantity      float64    `json:"quantity" binding:"required,gt=0"`
	UnitPrice     *float64   `json:"unit_price" binding:"omitempty,min=0"`
	TaxRate       *float64   `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	DiscountValue float64    `json:"discount_value" binding:"min=0"`
	DiscountType  string     `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
}

// CreateDocumentRequest represents a document creation request
type CreateDocumentRequest struct {
	CustomerID    *uuid.UUID            `json:"customer_id"`
	Type          string                `json:"type" binding:"required,oneof=invoice quote"`
	Date          *time.Time            `json:"date"`
	DueDate       *time.Time            `json:"due_date"`
	Status        string                `json:"status" binding:"omitempty,oneof=draft sent"`
	DiscountValue float64               `json:"discount_value" binding:"min=0"`
	DiscountType  string                `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	Note          *string               `json:"note"`
	Items         []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateDocumentRequest represents a document update request
type UpdateDocumentRequest struct {
	CustomerID    *uuid.UUID            `json:"customer_id"`
	Date          *time.Time            `json:"date"`
	DueDate       *time.Time            `json:"due_date"`
	DiscountValue *float64              `json:"discount_value" binding:"omitempty,min=0"`
	DiscountType  *string               `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	Note          *string               `json:"note"`
	Items         []DocumentItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// UpdateDocumentStatusRequest represents a status change request
type UpdateDocumentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent"`
}

// DocumentFilterRequest represents document filter parameters
type DocumentFilterRequest struct {
	Search     string `form:"search"`
	Type       string `form:"type" binding:"omitempty,oneof=invoice quote"`
	Status     string `form:"status" binding:"omitempty,oneof=draft sent partial paid converted"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
