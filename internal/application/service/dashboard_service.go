package service

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/google/uuid"
)

// DashboardSummary aggregates the key business figures for a user
type DashboardSummary struct {
	TotalRevenue      float64                          `json:"total_revenue"`
	OutstandingAmount float64                          `json:"outstanding_amount"`
	InvoiceCounts     map[string]int64                 `json:"invoice_counts"`
	QuoteCounts       map[string]int64                 `json:"quote_counts"`
	CustomerCount     int64                            `json:"customer_count"`
	ProductCount      int64                            `json:"product_count"`
	LowStockProducts  []entity.Product                 `json:"low_stock_products"`
	RecentMovements   []entity.StockMovement           `json:"recent_movements"`
	MonthlyRevenue    []repository.MonthlyRevenuePoint `json:"monthly_revenue"`
	TopCustomers      []repository.TopCustomerResult   `json:"top_customers"`
}

// DashboardService builds the dashboard summary from aggregation queries
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	documentRepo  repository.DocumentRepository
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
	movementRepo  repository.StockMovementRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	documentRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		documentRepo:  documentRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		movementRepo:  movementRepo,
	}
}

// monthsOfHistory is how far back the revenue chart reaches
const monthsOfHistory = 12

// recentMovementCount caps the movement feed on the dashboard
const recentMovementCount = 10

// GetSummary assembles the dashboard for a user
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx, userID)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.analyticsRepo.GetOutstandingAmount(ctx, userID)
	if err != nil {
		return nil, err
	}

	invoiceCounts, err := s.countByStatus(ctx, userID, enum.DocumentTypeInvoice,
		enum.DocumentStatusDraft, enum.DocumentStatusSent, enum.DocumentStatusPartial, enum.DocumentStatusPaid)
	if err != nil {
		return nil, err
	}

	quoteCounts, err := s.countByStatus(ctx, userID, enum.DocumentTypeQuote,
		enum.DocumentStatusDraft, enum.DocumentStatusSent, enum.DocumentStatusConverted)
	if err != nil {
		return nil, err
	}

	customerCount, err := s.customerRepo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	productCount, err := s.productRepo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.GetLowStock(ctx, userID)
	if err != nil {
		return nil, err
	}

	recentMovements, err := s.movementRepo.ListRecent(ctx, userID, recentMovementCount)
	if err != nil {
		return nil, err
	}

	monthly, err := s.analyticsRepo.GetMonthlyRevenue(ctx, userID, monthsOfHistory)
	if err != nil {
		return nil, err
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalRevenue:      totalRevenue,
		OutstandingAmount: outstanding,
		InvoiceCounts:     invoiceCounts,
		QuoteCounts:       quoteCounts,
		CustomerCount:     customerCount,
		ProductCount:      productCount,
		LowStockProducts:  lowStock,
		RecentMovements:   recentMovements,
		MonthlyRevenue:    monthly,
		TopCustomers:      topCustomers,
	}, nil
}

func (s *DashboardService) countByStatus(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, statuses ...enum.DocumentStatus) (map[string]int64, error) {
	counts := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		n, err := s.documentRepo.CountByStatus(ctx, userID, docType, status)
		if err != nil {
			return nil, err
		}
		counts[status.String()] = n
	}
	return counts, nil
}
