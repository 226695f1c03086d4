package repository

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// StockMovementRepository defines the append-only stock movement log
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	List(ctx context.Context, userID uuid.UUID, params *MovementFilterParams) ([]entity.StockMovement, int64, error)
	ListByProduct(ctx context.Context, userID, productID uuid.UUID) ([]entity.StockMovement, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.StockMovement, error)
}

// MovementFilterParams contains filtering parameters for movement queries
type MovementFilterParams struct {
	Pagination *pagination.PaginationParams
	ProductID  *uuid.UUID
	Type       *enum.MovementType
	Reason     *enum.MovementReason
}
