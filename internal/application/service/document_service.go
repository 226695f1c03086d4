package service

import (
	"context"
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/apperror"
	"github.com/Malmeu/facturier-sub001/pkg/logger"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DocumentService handles invoice and quote lifecycle: creation with
// automatic numbering, totals computation, status transitions, quote to
// invoice conversion and stock propagation.
type DocumentService struct {
	documentRepo repository.DocumentRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	settings     *SettingsService
	stock        *StockService
	log          zerolog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	settings *SettingsService,
	stock *StockService,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		settings:     settings,
		stock:        stock,
		log:          logger.WithComponent("document"),
	}
}

// DocumentItemInput represents one line item on a document
type DocumentItemInput struct {
	ProductID     *uuid.UUID
	Description   string
	Quantity      float64
	UnitPrice     *float64
	TaxRate       *float64
	DiscountValue float64
	DiscountType  enum.DiscountType
}

// CreateDocumentInput represents the data needed to create a document
type CreateDocumentInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	Type          enum.DocumentType
	Date          *time.Time
	DueDate       *time.Time
	Status        enum.DocumentStatus
	DiscountValue float64
	DiscountType  enum.DiscountType
	Note          *string
	Items         []DocumentItemInput
}

// Create builds a new document: assigns the next reference from the user's
// numbering settings, resolves product-backed lines, computes totals and
// saves. A document created in a non-draft status immediately propagates
// stock movements for its tracked products.
func (s *DocumentService) Create(ctx context.Context, input *CreateDocumentInput) (*entity.Document, error) {
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid document type")
	}
	if input.Status == "" {
		input.Status = enum.DocumentStatusDraft
	}
	if input.Status != enum.DocumentStatusDraft && input.Status != enum.DocumentStatusSent {
		return nil, apperror.NewBadRequestError("A document can only be created as draft or sent")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A document needs at least one line item")
	}
	if input.DiscountType == "" {
		input.DiscountType = enum.DiscountTypePercentage
	}
	if !input.DiscountType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid discount type")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, input.UserID, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	settings, err := s.settings.GetOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	items, err := s.buildItems(ctx, input.UserID, settings, input.Items)
	if err != nil {
		return nil, err
	}

	doc := &entity.Document{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		Type:          input.Type,
		Reference:     s.nextReference(settings, input.Type, date),
		Date:          date,
		DueDate:       input.DueDate,
		Status:        input.Status,
		DiscountValue: input.DiscountValue,
		DiscountType:  input.DiscountType,
		Note:          input.Note,
		Items:         items,
	}
	ComputeDocumentTotals(doc)

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.advanceCounter(ctx, settings, input.Type)

	if !doc.IsDraft() {
		s.stock.PropagateDocument(ctx, doc)
	}

	return doc, nil
}

// nextReference formats the next document reference from the user's settings.
// A malformed or empty format falls back to a plain sequential reference.
func (s *DocumentService) nextReference(settings *entity.DocumentSettings, docType enum.DocumentType, date time.Time) string {
	format := settings.InvoiceFormat
	sequence := settings.NextInvoiceNumber
	if docType == enum.DocumentTypeQuote {
		format = settings.QuoteFormat
		sequence = settings.NextQuoteNumber
	}
	if format == "" {
		format = DefaultReferenceFormat
	}
	return FormatReference(format, sequence, date)
}

// advanceCounter bumps the sequence counter after a successful create. A
// failed bump is logged but does not fail the create; the document already
// exists with its reference.
func (s *DocumentService) advanceCounter(ctx context.Context, settings *entity.DocumentSettings, docType enum.DocumentType) {
	if docType == enum.DocumentTypeQuote {
		settings.NextQuoteNumber++
	} else {
		settings.NextInvoiceNumber++
	}
	if err := s.settings.settingsRepo.Update(ctx, settings); err != nil {
		s.log.Error().Err(err).
			Str("user_id", settings.UserID.String()).
			Msg("sequence counter not advanced")
	}
}

// buildItems resolves line inputs into document items, pulling description,
// price and tax rate from the referenced product when the line omits them
func (s *DocumentService) buildItems(ctx context.Context, userID uuid.UUID, settings *entity.DocumentSettings, inputs []DocumentItemInput) ([]entity.DocumentItem, error) {
	var productIDs []uuid.UUID
	for _, in := range inputs {
		if in.ProductID != nil {
			productIDs = append(productIDs, *in.ProductID)
		}
	}

	products := make(map[uuid.UUID]entity.Product)
	if len(productIDs) > 0 {
		found, err := s.productRepo.GetByIDs(ctx, userID, productIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			products[p.ID] = p
		}
	}

	items := make([]entity.DocumentItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
		if in.DiscountType == "" {
			in.DiscountType = enum.DiscountTypePercentage
		}
		if !in.DiscountType.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid line discount type")
		}

		item := entity.DocumentItem{
			ProductID:     in.ProductID,
			Description:   in.Description,
			Quantity:      in.Quantity,
			DiscountValue: in.DiscountValue,
			DiscountType:  in.DiscountType,
			TaxRate:       settings.DefaultTaxRate,
		}

		if in.ProductID != nil {
			product, ok := products[*in.ProductID]
			if !ok {
				return nil, apperror.NewNotFoundError("Product")
			}
			if item.Description == "" {
				item.Description = product.Name
			}
			item.UnitPrice = product.SellingPrice
			item.TaxRate = product.TaxRate
		}

		if in.UnitPrice != nil {
			item.UnitPrice = *in.UnitPrice
		}
		if in.TaxRate != nil {
			item.TaxRate = *in.TaxRate
		}
		if item.Description == "" {
			return nil, apperror.NewBadRequestError("Line description is required")
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Line unit price must not be negative")
		}

		items = append(items, item)
	}

	return items, nil
}

// GetByID returns a document with its items and payments
func (s *DocumentService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	doc, err := s.documentRepo.GetWithItems(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	return doc, nil
}

// UpdateDocumentInput represents the editable document fields. Items, when
// present, replace the existing lines entirely.
type UpdateDocumentInput struct {
	CustomerID    *uuid.UUID
	Date          *time.Time
	DueDate       *time.Time
	DiscountValue *float64
	DiscountType  *enum.DiscountType
	Note          *string
	Items         []DocumentItemInput
}

// Update modifies a draft document and recomputes its totals. Finalized
// documents are immutable except for their status and payments.
func (s *DocumentService) Update(ctx context.Context, userID, id uuid.UUID, input *UpdateDocumentInput) (*entity.Document, error) {
	doc, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !doc.IsDraft() {
		return nil, apperror.NewBadRequestError("Only draft documents can be edited")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, userID, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		doc.CustomerID = input.CustomerID
	}
	if input.Date != nil {
		doc.Date = *input.Date
	}
	if input.DueDate != nil {
		doc.DueDate = input.DueDate
	}
	if input.DiscountValue != nil {
		doc.DiscountValue = *input.DiscountValue
	}
	if input.DiscountType != nil {
		if !input.DiscountType.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid discount type")
		}
		doc.DiscountType = *input.DiscountType
	}
	if input.Note != nil {
		doc.Note = input.Note
	}

	if input.Items != nil {
		settings, err := s.settings.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}
		items, err := s.buildItems(ctx, userID, settings, input.Items)
		if err != nil {
			return nil, err
		}
		doc.Items = items
	}

	ComputeDocumentTotals(doc)

	if input.Items == nil {
		// only the header changed; leave the stored line items alone
		doc.Items = nil
	}
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, userID, id)
}

// UpdateStatus moves a document between draft and sent. Paid, partial and
// converted are derived states and cannot be set directly. Finalizing a
// draft triggers stock propagation.
func (s *DocumentService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status enum.DocumentStatus) (*entity.Document, error) {
	if status != enum.DocumentStatusDraft && status != enum.DocumentStatusSent {
		return nil, apperror.NewBadRequestError("Status can only be set to draft or sent")
	}

	doc, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if doc.Status == status {
		return doc, nil
	}
	if !doc.IsDraft() {
		return nil, apperror.NewBadRequestError("Only draft documents can change status directly")
	}

	if err := s.documentRepo.UpdateStatus(ctx, userID, id, status); err != nil {
		return nil, err
	}
	doc.Status = status

	// draft -> sent finalizes the document
	s.stock.PropagateDocument(ctx, doc)

	return doc, nil
}

// ConvertQuote creates a draft invoice from a quote, copying its lines and
// discount, and marks the quote as converted
func (s *DocumentService) ConvertQuote(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Document, error) {
	quote, err := s.GetByID(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Type != enum.DocumentTypeQuote {
		return nil, apperror.NewBadRequestError("Only quotes can be converted")
	}
	if quote.Status == enum.DocumentStatusConverted {
		return nil, apperror.NewConflictError("Quote has already been converted")
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]entity.DocumentItem, 0, len(quote.Items))
	for _, it := range quote.Items {
		items = append(items, entity.DocumentItem{
			ProductID:     it.ProductID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			TaxRate:       it.TaxRate,
			DiscountValue: it.DiscountValue,
			DiscountType:  it.DiscountType,
		})
	}

	invoice := &entity.Document{
		UserID:        userID,
		CustomerID:    quote.CustomerID,
		Type:          enum.DocumentTypeInvoice,
		Reference:     s.nextReference(settings, enum.DocumentTypeInvoice, now),
		Date:          now,
		Status:        enum.DocumentStatusDraft,
		DiscountValue: quote.DiscountValue,
		DiscountType:  quote.DiscountType,
		Note:          quote.Note,
		Items:         items,
	}
	ComputeDocumentTotals(invoice)

	if err := s.documentRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.advanceCounter(ctx, settings, enum.DocumentTypeInvoice)

	quote.Status = enum.DocumentStatusConverted
	quote.ConvertedToID = &invoice.ID
	quote.Items = nil
	if err := s.documentRepo.Update(ctx, quote); err != nil {
		s.log.Error().Err(err).
			Str("quote_id", quote.ID.String()).
			Str("invoice_id", invoice.ID.String()).
			Msg("quote not marked as converted")
	}

	return invoice, nil
}

// Delete removes a draft document. Finalized documents cannot be deleted;
// their stock movements and payments have already been recorded.
func (s *DocumentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	doc, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if !doc.IsDraft() {
		return apperror.NewBadRequestError("Only draft documents can be deleted")
	}
	return s.documentRepo.Delete(ctx, userID, id)
}

// List lists documents with filtering and pagination
func (s *DocumentService) List(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) (*pagination.PaginatedResult[entity.Document], error) {
	docs, total, err := s.documentRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(docs, pag), nil
}

// ListDue lists invoices that still carry an outstanding amount
func (s *DocumentService) ListDue(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Document], error) {
	docs, total, err := s.documentRepo.GetDueDocuments(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(docs, pag), nil
}
