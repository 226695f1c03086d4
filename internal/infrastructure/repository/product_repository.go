package repository

import (
	"context"
	"errors"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	domainRepo "github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("user_id = ?", userID).
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) GetByCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&product, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.LowStock {
		query = query.Where("track_inventory AND current_stock <= min_stock")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.
		Preload("Supplier").
		Order(sortBy + " " + sortOrder).
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("track_inventory AND current_stock <= min_stock").
		Order("current_stock ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *productRepository) UpdateStock(ctx context.Context, userID, id uuid.UUID, quantity float64) error {
	return r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("current_stock", quantity).Error
}
