package service

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/apperror"
	"github.com/Malmeu/facturier-sub001/pkg/logger"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// StockService handles stock movements and their propagation from documents
type StockService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	log          zerolog.Logger
}

// NewStockService creates a new stock service
func NewStockService(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *StockService {
	return &StockService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		log:          logger.WithComponent("stock"),
	}
}

// NextStock computes the on-hand quantity a product would carry after a
// movement is applied: "in" adds, "out" subtracts, "adjustment" overwrites.
// Negative stock is permitted.
func NextStock(current float64, movementType enum.MovementType, quantity float64) float64 {
	cur := decimal.NewFromFloat(current)
	qty := decimal.NewFromFloat(quantity)

	var next decimal.Decimal
	switch movementType {
	case enum.MovementTypeIn:
		next = cur.Add(qty)
	case enum.MovementTypeOut:
		next = cur.Sub(qty)
	default: // adjustment
		next = qty
	}

	f, _ := next.Round(2).Float64()
	return f
}

// ApplyMovement persists a movement and updates the product's on-hand stock.
// The movement is written first; if the product update fails afterwards the
// movement is not rolled back.
func (s *StockService) ApplyMovement(ctx context.Context, movement *entity.StockMovement, product *entity.Product) error {
	if err := s.movementRepo.Create(ctx, movement); err != nil {
		return err
	}

	product.CurrentStock = NextStock(product.CurrentStock, movement.Type, movement.Quantity)
	return s.productRepo.UpdateStock(ctx, product.UserID, product.ID, product.CurrentStock)
}

// CreateMovementInput represents a manually recorded stock movement
type CreateMovementInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Type      enum.MovementType
	Quantity  float64
	Reason    enum.MovementReason
	Note      *string
}

// CreateMovement records a manual movement (goods received, damage,
// inventory count, ...) and applies it to the product
func (s *StockService) CreateMovement(ctx context.Context, input *CreateMovementInput) (*entity.StockMovement, error) {
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid movement type")
	}
	if !input.Reason.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid movement reason")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity must not be negative")
	}

	product, err := s.productRepo.GetByID(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	movement := &entity.StockMovement{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		Note:      input.Note,
	}

	if err := s.ApplyMovement(ctx, movement, product); err != nil {
		return nil, err
	}

	return movement, nil
}

// PropagateDocument records an "out" movement for every line item of a
// finalized document that references an inventory-tracked product. Draft
// documents are ignored. Failures are logged and never surfaced: the
// document save has already succeeded by the time propagation runs.
func (s *StockService) PropagateDocument(ctx context.Context, doc *entity.Document) {
	if doc.IsDraft() {
		return
	}

	for i := range doc.Items {
		item := &doc.Items[i]
		if item.ProductID == nil {
			continue
		}

		product, err := s.productRepo.GetByID(ctx, doc.UserID, *item.ProductID)
		if err != nil {
			s.log.Error().Err(err).
				Str("document_id", doc.ID.String()).
				Str("product_id", item.ProductID.String()).
				Msg("stock propagation: product lookup failed")
			continue
		}
		if product == nil || !product.TrackInventory {
			continue
		}

		docType := doc.Type
		movement := &entity.StockMovement{
			UserID:       doc.UserID,
			ProductID:    product.ID,
			Type:         enum.MovementTypeOut,
			Quantity:     item.Quantity,
			Reason:       enum.MovementReasonSale,
			DocumentID:   &doc.ID,
			DocumentType: &docType,
		}

		if err := s.ApplyMovement(ctx, movement, product); err != nil {
			s.log.Error().Err(err).
				Str("document_id", doc.ID.String()).
				Str("product_id", product.ID.String()).
				Msg("stock propagation: movement not applied")
		}
	}
}

// ListMovements lists stock movements with filtering
func (s *StockService) ListMovements(ctx context.Context, userID uuid.UUID, params *repository.MovementFilterParams) (*pagination.PaginatedResult[entity.StockMovement], error) {
	movements, total, err := s.movementRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}

// ListProductMovements returns the movement history of a single product
func (s *StockService) ListProductMovements(ctx context.Context, userID, productID uuid.UUID) ([]entity.StockMovement, error) {
	product, err := s.productRepo.GetByID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	return s.movementRepo.ListByProduct(ctx, userID, productID)
}
