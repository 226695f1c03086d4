package database

import (
	"fmt"

	"github.com/Malmeu/facturier-sub001/internal/config"
	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		&entity.User{},

		// Catalog
		&entity.Supplier{},
		&entity.Product{},
		&entity.StockMovement{},

		// Billing
		&entity.Customer{},
		&entity.Document{},
		&entity.DocumentItem{},
		&entity.Payment{},
		&entity.DocumentSettings{},

		// System
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// SeedDefaultData creates the initial user when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no account exists yet
func SeedDefaultData(db *gorm.DB) error {
	email := viper.GetString("ADMIN_EMAIL")
	password := viper.GetString("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := &entity.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Password:  hashed,
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to seed initial user: %w", err)
	}

	log.Info().Str("email", email).Msg("seeded initial user")
	return nil
}
