package repository

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error)
	GetByCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Product, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStock(ctx context.Context, userID, id uuid.UUID, quantity float64) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SupplierID *uuid.UUID
	LowStock   bool
	SortBy     string
	SortOrder  string
}
