package repository

import (
	"context"

	constant "github.com/SakadaKry/CertVault/internal/constant"
	"github.com/SakadaKry/CertVault/internal/model"
	"github.com/SakadaKry/CertVault/pkg/certvault"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TemplateRepository struct {
	*baseRepository
}

func (tr TemplateRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	total := int64(0)
	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (tr TemplateRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.CertificateTemplate, error) {
	tr.logger.Debug("Get all certificate templates")

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var templates []model.CertificateTemplate
	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Order("name asc").Find(&templates).Error; err != nil {
		return templates, err
	}

	return templates, nil
}

func (tr TemplateRepository) GetByName(ctx context.Context, tx *gorm.DB, name string) (*model.CertificateTemplate, error) {
	tr.logger.Debugf("Get certificate template by name: %s", name)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var template model.CertificateTemplate
	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Where(model.CertificateTemplate{
		Name: name,
	}).First(&template).Error; err != nil {
		return &template, err
	}

	return &template, nil
}

// EnsureDefaults seeds the default template set. The insert is keyed on
// the unique template name with a do-nothing conflict clause, so losing
// a race or re-running the seed leaves existing rows untouched.
func (tr TemplateRepository) EnsureDefaults(ctx context.Context, tx *gorm.DB) error {
	tr.logger.Debug("Ensure default certificate templates")

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	defaults := certvault.DefaultTemplates()
	rows := make([]model.CertificateTemplate, len(defaults))
	for i, tmpl := range defaults {
		rows[i] = model.CertificateTemplate{
			Name:        tmpl.Name,
			DisplayName: tmpl.DisplayName,
			Description: tmpl.Description,
		}
	}

	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error; err != nil {
		return err
	}

	return nil
}

func (tr TemplateRepository) SetPreview(ctx context.Context, tx *gorm.DB, name, bucket, object string) error {
	tr.logger.Debugf("Set preview object for template: %s", name)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.CertificateTemplate{}).Where(model.CertificateTemplate{
		Name: name,
	}).Updates(map[string]any{
		"preview_bucket": bucket,
		"preview_object": object,
	}).Error; err != nil {
		return err
	}

	return nil
}
