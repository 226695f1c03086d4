package entity

import (
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockMovement records a single inventory change for a product.
// Movements are created once and immutable thereafter; the product's
// CurrentStock is the sole mutable source of truth for on-hand quantity.
type StockMovement struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	Type      enum.MovementType   `gorm:"size:20;not null" json:"type"`
	Quantity  float64             `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Reason    enum.MovementReason `gorm:"size:20;default:'other'" json:"reason"`

	// Optional link back to the document that caused the movement
	DocumentID   *uuid.UUID         `gorm:"type:uuid;index" json:"document_id,omitempty"`
	DocumentType *enum.DocumentType `gorm:"size:20" json:"document_type,omitempty"`

	Note      *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
