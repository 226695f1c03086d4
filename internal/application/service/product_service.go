package service

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/apperror"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/Malmeu/facturier-sub001/pkg/utils"
	"github.com/google/uuid"
)

// ProductService handles the product catalog
type ProductService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents the data needed to create a product
type CreateProductInput struct {
	UserID         uuid.UUID
	SupplierID     *uuid.UUID
	Name           string
	Code           string
	Description    *string
	Unit           string
	PurchasePrice  float64
	SellingPrice   float64
	TaxRate        float64
	TrackInventory *bool
	CurrentStock   float64
	MinStock       float64
	MaxStock       float64
}

// Create adds a product to the catalog. A missing code is generated; an
// explicit code must be unique within the user's catalog.
func (s *ProductService) Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.SellingPrice < 0 || input.PurchasePrice < 0 {
		return nil, apperror.NewBadRequestError("Prices must not be negative")
	}
	if input.TaxRate < 0 {
		return nil, apperror.NewBadRequestError("Tax rate must not be negative")
	}

	if input.Code == "" {
		input.Code = utils.GenerateProductCode()
	} else {
		existing, err := s.productRepo.GetByCode(ctx, input.UserID, input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this code already exists")
		}
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, input.UserID, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	trackInventory := true
	if input.TrackInventory != nil {
		trackInventory = *input.TrackInventory
	}
	unit := input.Unit
	if unit == "" {
		unit = "unit"
	}

	product := &entity.Product{
		UserID:         input.UserID,
		SupplierID:     input.SupplierID,
		Name:           input.Name,
		Code:           input.Code,
		Description:    input.Description,
		Unit:           unit,
		PurchasePrice:  input.PurchasePrice,
		SellingPrice:   input.SellingPrice,
		TaxRate:        input.TaxRate,
		TrackInventory: trackInventory,
		CurrentStock:   input.CurrentStock,
		MinStock:       input.MinStock,
		MaxStock:       input.MaxStock,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the editable product fields. CurrentStock is
// deliberately absent; stock only changes through movements.
type UpdateProductInput struct {
	SupplierID     *uuid.UUID
	Name           *string
	Description    *string
	Unit           *string
	PurchasePrice  *float64
	SellingPrice   *float64
	TaxRate        *float64
	TrackInventory *bool
	MinStock       *float64
	MaxStock       *float64
}

// Update modifies a product
func (s *ProductService) Update(ctx context.Context, userID, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, userID, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		product.SupplierID = input.SupplierID
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Product name is required")
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.PurchasePrice != nil {
		if *input.PurchasePrice < 0 {
			return nil, apperror.NewBadRequestError("Purchase price must not be negative")
		}
		product.PurchasePrice = *input.PurchasePrice
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Selling price must not be negative")
		}
		product.SellingPrice = *input.SellingPrice
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 {
			return nil, apperror.NewBadRequestError("Tax rate must not be negative")
		}
		product.TaxRate = *input.TaxRate
	}
	if input.TrackInventory != nil {
		product.TrackInventory = *input.TrackInventory
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.MaxStock != nil {
		product.MaxStock = *input.MaxStock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, userID, id)
}

// List lists products with filtering and pagination
func (s *ProductService) List(ctx context.Context, userID uuid.UUID, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListLowStock returns tracked products at or below their minimum stock
func (s *ProductService) ListLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, userID)
}
