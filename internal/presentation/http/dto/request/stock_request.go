package request

import "github.com/google/uuid"

// CreateMovementRequest represents a manual stock movement request
type CreateMovementRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=in out adjustment"`
	Quantity  float64   `json:"quantity" binding:"min=0"`
	Reason    string    `json:"reason" binding:"required,oneof=purchase sale return damage inventory transfer production other"`
	Note      *string   `json:"note"`
}

// MovementFilterRequest represents movement filter parameters
type MovementFilterRequest struct {
	ProductID string `form:"product_id"`
	Type      string `form:"type" binding:"omitempty,oneof=in out adjustment"`
	Reason    string `form:"reason" binding:"omitempty,oneof=purchase sale return damage inventory transfer production other"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
