package repository

import (
	"context"
	"errors"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	domainRepo "github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doc, err
}

func (r *documentRepository) GetWithItems(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Preload("Payments").
		Where("user_id = ?", userID).
		First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doc, err
}

// Update saves the document header and replaces its line items. Payments are
// never written through this path; the payment log is append-only and owned
// by the payment repository.
func (r *documentRepository) Update(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(doc).Error; err != nil {
			return err
		}

		if doc.Items != nil {
			if err := tx.Where("document_id = ?", doc.ID).Delete(&entity.DocumentItem{}).Error; err != nil {
				return err
			}
			for i := range doc.Items {
				doc.Items[i].ID = uuid.Nil
				doc.Items[i].DocumentID = doc.ID
			}
			if err := tx.Create(&doc.Items).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *documentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&entity.DocumentItem{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&entity.Document{}, "id = ?", id).Error
	})
}

func (r *documentRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.DocumentFilterParams) ([]entity.Document, int64, error) {
	var docs []entity.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Document{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("reference ILIKE ?", "%"+params.Search+"%")
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "date"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Find(&docs).Error

	return docs, total, err
}

func (r *documentRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status enum.DocumentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("status", status).Error
}

func (r *documentRepository) GetDueDocuments(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Document, int64, error) {
	var docs []entity.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ?", userID).
		Where("type = ?", enum.DocumentTypeInvoice).
		Where("status IN ?", []enum.DocumentStatus{enum.DocumentStatusSent, enum.DocumentStatusPartial}).
		Where("amount_due > 0")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Preload("Customer").
		Order("due_date ASC NULLS LAST").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&docs).Error

	return docs, total, err
}

func (r *documentRepository) CountByStatus(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, status enum.DocumentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND type = ? AND status = ?", userID, docType, status).
		Count(&count).Error
	return count, err
}
