package entity

import (
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document represents a billing document, either an invoice or a quote.
// Monetary fields are recomputed by the totals calculator on every save;
// they are never written directly by callers.
type Document struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Type       enum.DocumentType   `gorm:"size:20;not null;index" json:"type"`
	Reference  string              `gorm:"size:100;not null;index" json:"reference"`
	Date       time.Time           `gorm:"type:date;not null" json:"date"`
	DueDate    *time.Time          `gorm:"type:date" json:"due_date,omitempty"`
	Status     enum.DocumentStatus `gorm:"size:20;default:'draft';index" json:"status"`

	// Document-level discount, applied on top of any per-line discounts
	DiscountValue float64           `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	DiscountType  enum.DiscountType `gorm:"size:20;default:'percentage'" json:"discount_type"`

	// Computed totals
	SubTotal      float64 `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountTotal float64 `gorm:"type:decimal(15,2);default:0" json:"discount_total"`
	TaxableAmount float64 `gorm:"type:decimal(15,2);default:0" json:"taxable_amount"`
	TaxTotal      float64 `gorm:"type:decimal(15,2);default:0" json:"tax_total"`
	GrandTotal    float64 `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	AmountPaid    float64 `gorm:"type:decimal(15,2);default:0" json:"amount_paid"`
	AmountDue     float64 `gorm:"type:decimal(15,2);default:0" json:"amount_due"`

	// Set on a quote once it has been converted to an invoice
	ConvertedToID *uuid.UUID `gorm:"type:uuid" json:"converted_to_id,omitempty"`

	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []DocumentItem `gorm:"foreignKey:DocumentID" json:"items,omitempty"`
	Payments []Payment      `gorm:"foreignKey:DocumentID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// IsDraft reports whether the document has not been finalized yet
func (d *Document) IsDraft() bool {
	return d.Status == enum.DocumentStatusDraft
}

// DocumentItem represents a line item in a document
type DocumentItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DocumentID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"document_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Description string     `gorm:"size:500" json:"description"`
	Quantity    float64    `gorm:"type:decimal(15,2);not null" json:"quantity"`
	UnitPrice   float64    `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TaxRate     float64    `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`

	// Optional per-line discount
	DiscountValue float64           `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	DiscountType  enum.DiscountType `gorm:"size:20;default:'percentage'" json:"discount_type"`

	// Computed per line
	SubTotal  float64 `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	TaxAmount float64 `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Total     float64 `gorm:"type:decimal(15,2);default:0" json:"total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
	Product  *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document item
func (di *DocumentItem) BeforeCreate(tx *gorm.DB) error {
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentItem model
func (DocumentItem) TableName() string {
	return "document_items"
}
