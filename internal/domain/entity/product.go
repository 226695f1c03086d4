package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the catalog
type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID  *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Code        string     `gorm:"size:100;not null;index" json:"code"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Unit        string     `gorm:"size:50;default:'unit'" json:"unit"`

	PurchasePrice float64 `gorm:"type:decimal(15,2);default:0" json:"purchase_price"`
	SellingPrice  float64 `gorm:"type:decimal(15,2);default:0" json:"selling_price"`
	TaxRate       float64 `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`

	// Stock is only meaningful while TrackInventory is set; movements for
	// untracked products are filtered out at the propagation stage.
	TrackInventory bool    `gorm:"default:true" json:"track_inventory"`
	CurrentStock   float64 `gorm:"type:decimal(15,2);default:0" json:"current_stock"`
	MinStock       float64 `gorm:"type:decimal(15,2);default:0" json:"min_stock"`
	MaxStock       float64 `gorm:"type:decimal(15,2);default:0" json:"max_stock"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the tracked stock dropped to the minimum threshold
func (p *Product) IsLowStock() bool {
	return p.TrackInventory && p.CurrentStock <= p.MinStock
}
