package repository

import (
	"context"
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// DocumentRepository defines the interface for document data operations
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error)
	GetWithItems(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error)
	Update(ctx context.Context, doc *entity.Document) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *DocumentFilterParams) ([]entity.Document, int64, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status enum.DocumentStatus) error
	GetDueDocuments(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Document, int64, error)
	CountByStatus(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, status enum.DocumentStatus) (int64, error)
}

// DocumentFilterParams contains filtering parameters for document queries
type DocumentFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.DocumentType
	Status     *enum.DocumentStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// DocumentItemRepository defines the interface for document item data operations
type DocumentItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.DocumentItem) error
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentItem, error)
	DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error
}
