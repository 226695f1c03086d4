package repository

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	domainRepo "github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE user_id = ?
	`, userID).Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) GetOutstandingAmount(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount_due), 0)
		FROM documents
		WHERE user_id = ?
		  AND deleted_at IS NULL
		  AND type = ?
		  AND status IN (?, ?)
	`, userID, enum.DocumentTypeInvoice, enum.DocumentStatusSent, enum.DocumentStatusPartial).Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context, userID uuid.UUID, months int) ([]domainRepo.MonthlyRevenuePoint, error) {
	var results []domainRepo.MonthlyRevenuePoint

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('month', date) as month,
			COALESCE(SUM(amount), 0) as revenue
		FROM payments
		WHERE user_id = ?
		  AND date >= date_trunc('month', now()) - (? * interval '1 month')
		GROUP BY month
		ORDER BY month ASC
	`, userID, months-1).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, userID uuid.UUID, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as customer_id,
			c.name as customer_name,
			COALESCE(SUM(d.grand_total), 0) as total_billed,
			COUNT(d.id) as document_count
		FROM documents d
		JOIN customers c ON c.id = d.customer_id
		WHERE d.user_id = ?
		  AND d.deleted_at IS NULL
		  AND d.type = ?
		  AND d.status <> ?
		GROUP BY c.id, c.name
		ORDER BY total_billed DESC
		LIMIT ?
	`, userID, enum.DocumentTypeInvoice, enum.DocumentStatusDraft, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}
