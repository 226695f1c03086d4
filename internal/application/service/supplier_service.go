package service

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/apperror"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// SupplierService handles supplier management
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents the data needed to create or update a supplier
type SupplierInput struct {
	Name          string
	Email         *string
	Phone         *string
	Address       *string
	TaxNumber     *string
	Type          enum.SupplierType
	AccountHolder *string
	AccountNumber *string
	BankName      *string
}

func (in *SupplierInput) validate() error {
	if in.Name == "" {
		return apperror.NewBadRequestError("Supplier name is required")
	}
	if in.Type == "" {
		in.Type = enum.SupplierTypeDistributor
	}
	if !in.Type.IsValid() {
		return apperror.NewBadRequestError("Invalid supplier type")
	}
	return nil
}

// Create adds a new supplier
func (s *SupplierService) Create(ctx context.Context, userID uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supplier := &entity.Supplier{
		UserID:        userID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		TaxNumber:     input.TaxNumber,
		Type:          input.Type,
		AccountHolder: input.AccountHolder,
		AccountNumber: input.AccountNumber,
		BankName:      input.BankName,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetByID returns a single supplier
func (s *SupplierService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// Update modifies a supplier
func (s *SupplierService) Update(ctx context.Context, userID, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	supplier, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address
	supplier.TaxNumber = input.TaxNumber
	supplier.Type = input.Type
	supplier.AccountHolder = input.AccountHolder
	supplier.AccountNumber = input.AccountNumber
	supplier.BankName = input.BankName

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, userID, id)
}

// List lists suppliers with pagination and an optional name search
func (s *SupplierService) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}
