package model

import (
	"context"
	"errors"
	"time"

	"github.com/minio/minio-go/v7"
)

type CertificateTemplate struct {
	BaseModel
	Name        string `gorm:"unique;not null;type:text" json:"name" form:"name" binding:"required"`
	DisplayName string `gorm:"type:text;not null" json:"displayName" form:"displayName" binding:"required"`
	Description string `gorm:"type:text" json:"description" form:"description"`

	// Object key of an optional preview image kept in object storage.
	PreviewBucket string `gorm:"type:text" json:"-"`
	PreviewObject string `gorm:"type:text" json:"-"`
}

func (ct CertificateTemplate) TableName() string {
	return "certificate_templates"
}

func (ct CertificateTemplate) HasPreview() bool {
	return ct.PreviewBucket != "" && ct.PreviewObject != ""
}

// PreviewPresignedUrl returns a short-lived download link for the
// template preview image.
func (ct CertificateTemplate) PreviewPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if !ct.HasPreview() {
		return "", errors.New("template has no preview object")
	}

	presignedURL, err := s3.PresignedGetObject(
		ctx,
		ct.PreviewBucket,
		ct.PreviewObject,
		// 60min expiration time
		time.Minute*60,
		nil,
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
