package service

import (
	"context"
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/apperror"
	"github.com/google/uuid"
)

// PaymentService records payments against documents and keeps the document's
// paid amounts and status in sync
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	documentRepo repository.DocumentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	documentRepo repository.DocumentRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		documentRepo: documentRepo,
	}
}

// RecordPaymentInput represents the data needed to record a payment
type RecordPaymentInput struct {
	UserID     uuid.UUID
	DocumentID uuid.UUID
	Amount     float64
	Method     enum.PaymentMethod
	Date       *time.Time
	Status     enum.PaymentStatus
	Reference  *string
	Note       *string
}

// RecordPayment appends a payment to a document, recomputes the paid and due
// amounts and derives the document status. Overpayment is allowed; the due
// amount simply goes negative.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}
	if input.Method == "" {
		input.Method = enum.PaymentMethodOther
	}
	if !input.Method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	if input.Status == "" {
		input.Status = enum.PaymentStatusCompleted
	}
	if !input.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment status")
	}

	doc, err := s.documentRepo.GetWithItems(ctx, input.UserID, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	if doc.IsDraft() {
		return nil, apperror.NewBadRequestError("Cannot record a payment on a draft document")
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	payment := &entity.Payment{
		UserID:     input.UserID,
		DocumentID: doc.ID,
		Amount:     input.Amount,
		Method:     input.Method,
		Date:       date,
		Status:     input.Status,
		Reference:  input.Reference,
		Note:       input.Note,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	doc.Payments = append(doc.Payments, *payment)
	ComputeDocumentTotals(doc)
	doc.Status = DerivePaymentStatus(doc)

	// only the header changed; leave the stored line items alone
	doc.Items = nil
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListByDocument returns every payment recorded against a document
func (s *PaymentService) ListByDocument(ctx context.Context, userID, documentID uuid.UUID) ([]entity.Payment, error) {
	doc, err := s.documentRepo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Document")
	}

	return s.paymentRepo.GetByDocumentID(ctx, documentID)
}

// List returns all payments recorded by a user
func (s *PaymentService) List(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	return s.paymentRepo.List(ctx, userID)
}
