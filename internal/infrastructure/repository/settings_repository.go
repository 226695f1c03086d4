package repository

import (
	"context"
	"errors"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	domainRepo "github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.DocumentSettings, error) {
	var settings entity.DocumentSettings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Create(ctx context.Context, settings *entity.DocumentSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.DocumentSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
