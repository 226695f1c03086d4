package repository

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// PaymentRepository defines the append-only payment log. Payments are never
// updated or deleted individually; the owning document carries the derived
// amount_paid and amount_due.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.Payment, error)
	List(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error)
}
