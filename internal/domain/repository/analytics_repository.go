package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MonthlyRevenuePoint represents revenue collected in a single month
type MonthlyRevenuePoint struct {
	Month   time.Time
	Revenue float64
}

// TopCustomerResult represents a customer's billing volume
type TopCustomerResult struct {
	CustomerID    uuid.UUID
	CustomerName  string
	TotalBilled   float64
	DocumentCount int
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetTotalRevenue returns the sum of payments received by the user
	GetTotalRevenue(ctx context.Context, userID uuid.UUID) (float64, error)

	// GetOutstandingAmount returns the sum of amount_due over open invoices
	GetOutstandingAmount(ctx context.Context, userID uuid.UUID) (float64, error)

	// GetMonthlyRevenue returns per-month revenue for the last N months
	GetMonthlyRevenue(ctx context.Context, userID uuid.UUID, months int) ([]MonthlyRevenuePoint, error)

	// GetTopCustomers returns top customers by total invoiced amount
	GetTopCustomers(ctx context.Context, userID uuid.UUID, limit int) ([]TopCustomerResult, error)
}
