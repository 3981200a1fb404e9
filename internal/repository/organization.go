package repository

import (
	"context"

	constant "github.com/SakadaKry/CertVault/internal/constant"
	"github.com/SakadaKry/CertVault/internal/model"
	"github.com/SakadaKry/CertVault/pkg/certvault"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrganizationRepository struct {
	*baseRepository
}

func (or OrganizationRepository) GetDefault(ctx context.Context, tx *gorm.DB) (*model.Organization, error) {
	or.logger.Debug("Get default organization")

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var organization model.Organization
	if err := db.WithContext(ctx).Model(&model.Organization{}).Where(model.Organization{
		IsDefault: true,
	}).First(&organization).Error; err != nil {
		return &organization, err
	}

	return &organization, nil
}

// EnsureDefault creates the default issuing organization if absent,
// keyed on the unique name so concurrent seeds cannot duplicate it.
func (or OrganizationRepository) EnsureDefault(ctx context.Context, tx *gorm.DB) error {
	or.logger.Debug("Ensure default organization")

	db := or.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	organization := model.Organization{
		Name:      certvault.DefaultOrganizationName,
		IsDefault: true,
	}

	if err := db.WithContext(ctx).Model(&model.Organization{}).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&organization).Error; err != nil {
		return err
	}

	return nil
}
