package repository

import (
	"context"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// SettingsRepository defines the interface for document settings data access
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.DocumentSettings, error)
	Create(ctx context.Context, settings *entity.DocumentSettings) error
	Update(ctx context.Context, settings *entity.DocumentSettings) error
}
