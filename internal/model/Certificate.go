package model

import (
	"time"

	"github.com/SakadaKry/CertVault/pkg/certvault"
)

type Certificate struct {
	BaseModel
	TemplateName   string                      `gorm:"type:text;not null" json:"templateName" form:"templateName" binding:"required"`
	RecipientName  string                      `gorm:"type:text;not null" json:"recipientName" form:"recipientName" binding:"required"`
	RecipientEmail string                      `gorm:"type:citext;not null;index" json:"recipientEmail" form:"recipientEmail" binding:"required"`
	OrganizationID string                      `gorm:"type:text;not null" json:"organizationId" form:"organizationId"`
	IssueDate      time.Time                   `gorm:"type:timestamptz;not null" json:"issueDate" form:"issueDate"`
	ExpiryDate     *time.Time                  `gorm:"type:timestamptz" json:"expiryDate" form:"expiryDate"`
	Status         certvault.CertificateStatus `gorm:"type:varchar(10);not null;default:'ACTIVE'" json:"status" form:"status"`
	IssuerName     string                      `gorm:"type:text;not null" json:"issuerName" form:"issuerName"`
	SecurityLevel  certvault.SecurityLevel     `gorm:"type:varchar(15);not null;default:'standard'" json:"securityLevel" form:"securityLevel"`
	Signature      string                      `gorm:"type:text" json:"-" form:"-"`

	Organization Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"organization,omitempty" form:"organization"`
}

func (c Certificate) TableName() string {
	return "certificates"
}

// ToRecord maps the row into the domain record the verification rules
// operate on.
func (c Certificate) ToRecord() certvault.Record {
	return certvault.Record{
		ID:             c.ID,
		TemplateName:   c.TemplateName,
		RecipientName:  c.RecipientName,
		RecipientEmail: c.RecipientEmail,
		OrganizationID: c.OrganizationID,
		IssuerName:     c.IssuerName,
		IssueDate:      c.IssueDate,
		ExpiryDate:     c.ExpiryDate,
		Status:         c.Status,
		SecurityLevel:  c.SecurityLevel,
		Signature:      c.Signature,
	}
}
