package repository

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	domainRepo "github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a new stock movement repository
func NewStockMovementRepository(db *gorm.DB) domainRepo.StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (r *stockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *stockMovementRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	var movements []entity.StockMovement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockMovement{}).Where("user_id = ?", userID)

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.Reason != nil {
		query = query.Where("reason = ?", *params.Reason)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Find(&movements).Error

	return movements, total, err
}

func (r *stockMovementRepository) ListByProduct(ctx context.Context, userID, productID uuid.UUID) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}

func (r *stockMovementRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error
	return movements, err
}
