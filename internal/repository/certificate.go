package repository

import (
	"context"
	"fmt"

	constant "github.com/SakadaKry/CertVault/internal/constant"
	"github.com/SakadaKry/CertVault/internal/model"
	"github.com/SakadaKry/CertVault/pkg/certvault"
	"gorm.io/gorm"
)

type CertificateRepository struct {
	*baseRepository
}

func (cr CertificateRepository) Create(ctx context.Context, tx *gorm.DB, certificate *model.Certificate) (*model.Certificate, error) {
	cr.logger.Debugf("Create certificate for recipient: %s", certificate.RecipientEmail)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Certificate{}).Create(certificate).Error; err != nil {
		return certificate, err
	}

	return certificate, nil
}

func (cr CertificateRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by id: %s", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).First(&certificate).Error; err != nil {
		return &certificate, err
	}

	return &certificate, nil
}

// GetByRecipientEmail returns the certificates owned by a recipient,
// newest issue first with id as tiebreak so pagination stays stable.
func (cr CertificateRepository) GetByRecipientEmail(ctx context.Context, tx *gorm.DB, email string, status certvault.CertificateStatus, page, pageSize uint) ([]model.Certificate, int64, error) {
	cr.logger.Debugf("Get certificates by recipient email: %s, status filter: %q", email, status)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	filter := map[string]any{"recipient_email": email}
	if status != "" {
		filter["status"] = status
	}

	var certificates []model.Certificate
	total := int64(0)

	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(filter).Count(&total).Error; err != nil {
		return certificates, total, err
	}

	query := db.WithContext(ctx).Model(&model.Certificate{}).Where(filter).Order("issue_date desc, id asc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&certificates).Error; err != nil {
		return certificates, total, err
	}

	return certificates, total, nil
}

// UpdateStatus applies a lifecycle transition. Illegal transitions are
// refused here so no caller can resurrect a terminal certificate.
func (cr CertificateRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, next certvault.CertificateStatus) (*model.Certificate, error) {
	cr.logger.Debugf("Update certificate %s status to %s", id, next)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate *model.Certificate
	txErr := cr.withTx(db, func(tx2 *gorm.DB) error {
		var err error
		certificate, err = cr.GetById(ctx, tx2, id)
		if err != nil {
			return err
		}

		if !certificate.Status.CanTransitionTo(next) {
			return fmt.Errorf("certificate %s cannot transition from %s to %s", id, certificate.Status, next)
		}

		if err := tx2.WithContext(ctx).Model(&model.Certificate{}).Where(model.Certificate{
			BaseModel: model.BaseModel{ID: id},
		}).Update("status", next).Error; err != nil {
			return err
		}

		certificate.Status = next
		return nil
	})

	return certificate, txErr
}
