package service

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/apperror"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer management
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the data needed to create or update a customer
type CustomerInput struct {
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	TaxNumber *string
	Note      *string
}

// Create adds a new customer
func (s *CustomerService) Create(ctx context.Context, userID uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	customer := &entity.Customer{
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		TaxNumber: input.TaxNumber,
		Note:      input.Note,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetByID returns a single customer
func (s *CustomerService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// Update modifies a customer
func (s *CustomerService) Update(ctx context.Context, userID, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.TaxNumber = input.TaxNumber
	customer.Note = input.Note

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, userID, id)
}

// List lists customers with pagination and an optional name search
func (s *CustomerService) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}
