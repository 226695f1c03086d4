package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentSettings holds per-user numbering formats and sequence counters.
// The counters are incremented by the document service after each successful
// create; the formatter itself never mutates them.
type DocumentSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	InvoiceFormat     string `gorm:"size:100;default:'FAC-{YEAR}-{SEQUENCE}'" json:"invoice_format"`
	QuoteFormat       string `gorm:"size:100;default:'DEV-{YEAR}-{SEQUENCE}'" json:"quote_format"`
	NextInvoiceNumber int    `gorm:"default:1" json:"next_invoice_number"`
	NextQuoteNumber   int    `gorm:"default:1" json:"next_quote_number"`

	Currency       string  `gorm:"size:10;default:'EUR'" json:"currency"`
	DefaultTaxRate float64 `gorm:"type:decimal(5,2);default:19" json:"default_tax_rate"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *DocumentSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentSettings model
func (DocumentSettings) TableName() string {
	return "document_settings"
}
