package model

import "github.com/SakadaKry/CertVault/pkg/certvault"

// VerificationAttempt is an append-only audit row. It never touches the
// certificate it references.
type VerificationAttempt struct {
	BaseModel
	CertificateID string                       `gorm:"type:text;not null;index" json:"certificateId" form:"certificateId"`
	Method        certvault.VerificationMethod `gorm:"type:varchar(10);not null" json:"method" form:"method"`
	ClientOrigin  string                       `gorm:"type:text;not null" json:"clientOrigin" form:"clientOrigin"`
	Valid         bool                         `gorm:"not null" json:"valid" form:"valid"`
	Reason        string                       `gorm:"type:text" json:"reason" form:"reason"`
}

func (va VerificationAttempt) TableName() string {
	return "verification_attempts"
}
