package entity

import (
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a product supplier
type Supplier struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	Email         *string           `gorm:"size:255" json:"email,omitempty"`
	Phone         *string           `gorm:"size:50" json:"phone,omitempty"`
	Address       *string           `gorm:"type:text" json:"address,omitempty"`
	TaxNumber     *string           `gorm:"size:50" json:"tax_number,omitempty"`
	Type          enum.SupplierType `gorm:"size:50;default:'distributor'" json:"type"`
	AccountHolder *string           `gorm:"size:255" json:"account_holder,omitempty"`
	AccountNumber *string           `gorm:"size:100" json:"account_number,omitempty"`
	BankName      *string           `gorm:"size:255" json:"bank_name,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Products []Product `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
