package service

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/apperror"
	"github.com/google/uuid"
)

// SettingsService manages per-user document settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetOrCreate returns the user's settings, creating them with defaults on
// first access
func (s *SettingsService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.DocumentSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.DocumentSettings{
		UserID:            userID,
		InvoiceFormat:     "FAC-{YEAR}-{SEQUENCE}",
		QuoteFormat:       "DEV-{YEAR}-{SEQUENCE}",
		NextInvoiceNumber: 1,
		NextQuoteNumber:   1,
		Currency:          "EUR",
		DefaultTaxRate:    19,
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdateSettingsInput represents the editable settings fields
type UpdateSettingsInput struct {
	InvoiceFormat  *string
	QuoteFormat    *string
	Currency       *string
	DefaultTaxRate *float64
}

// Update modifies the user's settings. Sequence counters are not editable;
// they only move forward as documents are created.
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, input *UpdateSettingsInput) (*entity.DocumentSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.InvoiceFormat != nil {
		if *input.InvoiceFormat == "" {
			return nil, apperror.NewBadRequestError("Invoice format must not be empty")
		}
		settings.InvoiceFormat = *input.InvoiceFormat
	}
	if input.QuoteFormat != nil {
		if *input.QuoteFormat == "" {
			return nil, apperror.NewBadRequestError("Quote format must not be empty")
		}
		settings.QuoteFormat = *input.QuoteFormat
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.DefaultTaxRate != nil {
		if *input.DefaultTaxRate < 0 {
			return nil, apperror.NewBadRequestError("Default tax rate must not be negative")
		}
		settings.DefaultTaxRate = *input.DefaultTaxRate
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
