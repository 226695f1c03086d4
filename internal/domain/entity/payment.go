package entity

import (
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment represents a payment recorded against a document.
// Payments are append-only: once written they are never updated.
type Payment struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	DocumentID uuid.UUID          `gorm:"type:uuid;not null;index" json:"document_id"`
	Amount     float64            `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method     enum.PaymentMethod `gorm:"size:20;default:'other'" json:"method"`
	Date       time.Time          `gorm:"type:date;not null" json:"date"`
	Status     enum.PaymentStatus `gorm:"size:20;default:'completed'" json:"status"`
	Reference  *string            `gorm:"size:100" json:"reference,omitempty"`
	Note       *string            `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
