package repository

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	domainRepo "github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("date ASC, created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) List(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&payments).Error
	return payments, err
}
