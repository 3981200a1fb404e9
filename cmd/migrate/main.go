package main

import (
	"context"

	"github.com/SakadaKry/CertVault/internal/config"
	"github.com/SakadaKry/CertVault/internal/database"
	"github.com/SakadaKry/CertVault/internal/env"
	"github.com/SakadaKry/CertVault/internal/model"
	"github.com/SakadaKry/CertVault/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.OAuthProvider{},
		&model.Organization{},
		&model.CertificateTemplate{},
		&model.Certificate{},
		&model.VerificationAttempt{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	// Seed the default templates and issuing organization. Safe to run
	// repeatedly, the seed writes are keyed on name.
	repo := repository.NewRepository(db, logger, nil, nil)
	ctx := context.Background()

	seedErr := db.Transaction(func(tx *gorm.DB) error {
		if err := repo.Template.EnsureDefaults(ctx, tx); err != nil {
			return err
		}

		return repo.Organization.EnsureDefault(ctx, tx)
	})
	if seedErr != nil {
		logger.Panic(seedErr)
	}

	logger.Info("Migration and seeding complete")
}
