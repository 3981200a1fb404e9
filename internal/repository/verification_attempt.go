package repository

import (
	"context"

	constant "github.com/SakadaKry/CertVault/internal/constant"
	"github.com/SakadaKry/CertVault/internal/model"
	"github.com/SakadaKry/CertVault/pkg/certvault"
	"gorm.io/gorm"
)

type VerificationAttemptRepository struct {
	*baseRepository
}

// Record appends one audit row. Callers treat this as best-effort: a
// failed append must never fail the verification that triggered it, so
// the error is logged here and returned only for tests that care.
func (vr VerificationAttemptRepository) Record(ctx context.Context, tx *gorm.DB, certificateId string, method certvault.VerificationMethod, clientOrigin string, result certvault.VerificationResult) error {
	vr.logger.Debugf("Record verification attempt for certificate: %s, method: %s", certificateId, method)

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	attempt := model.VerificationAttempt{
		CertificateID: certificateId,
		Method:        method,
		ClientOrigin:  clientOrigin,
		Valid:         result.Valid,
		Reason:        result.Reason,
	}

	if err := db.WithContext(ctx).Model(&model.VerificationAttempt{}).Create(&attempt).Error; err != nil {
		vr.logger.Errorf("Failed to record verification attempt for certificate %s: %v", certificateId, err)
		return err
	}

	return nil
}

func (vr VerificationAttemptRepository) GetByCertificateId(ctx context.Context, tx *gorm.DB, certificateId string, page, pageSize uint) ([]model.VerificationAttempt, int64, error) {
	vr.logger.Debugf("Get verification attempts for certificate: %s", certificateId)

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	filter := map[string]any{"certificate_id": certificateId}

	var attempts []model.VerificationAttempt
	total := int64(0)

	if err := db.WithContext(ctx).Model(&model.VerificationAttempt{}).Where(filter).Count(&total).Error; err != nil {
		return attempts, total, err
	}

	query := db.WithContext(ctx).Model(&model.VerificationAttempt{}).Where(filter).Order("created_at desc, id asc")
	if err := query.Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&attempts).Error; err != nil {
		return attempts, total, err
	}

	return attempts, total, nil
}
