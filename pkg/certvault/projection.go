package certvault

import (
	"fmt"
	"net/url"
	"time"
)

// PublicCertificate is the caller-facing view of a certificate. The raw
// signature token never leaves the service.
type PublicCertificate struct {
	ID              string            `json:"id"`
	TemplateName    string            `json:"templateName"`
	RecipientName   string            `json:"recipientName"`
	OrganizationID  string            `json:"organizationId"`
	IssueDate       time.Time         `json:"issueDate"`
	ExpiryDate      *time.Time        `json:"expiryDate,omitempty"`
	Status          CertificateStatus `json:"status"`
	IssuerName      string            `json:"issuerName"`
	SecurityLevel   SecurityLevel     `json:"securityLevel"`
	VerificationURL string            `json:"verificationUrl"`
}

// VerificationURL builds the canonical public link for a certificate id.
func VerificationURL(baseURL, certificateId string) string {
	return fmt.Sprintf("%s/api/v1/certificates/verify?id=%s", baseURL, url.QueryEscape(certificateId))
}

// Project maps a record to its public view. Status is the effective
// status at `now`, not the stored field.
func Project(record Record, verifyBaseURL string, now time.Time) PublicCertificate {
	return PublicCertificate{
		ID:              record.ID,
		TemplateName:    record.TemplateName,
		RecipientName:   record.RecipientName,
		OrganizationID:  record.OrganizationID,
		IssueDate:       record.IssueDate,
		ExpiryDate:      record.ExpiryDate,
		Status:          EffectiveStatus(record.Status, record.ExpiryDate, now),
		IssuerName:      record.IssuerName,
		SecurityLevel:   record.SecurityLevel,
		VerificationURL: VerificationURL(verifyBaseURL, record.ID),
	}
}
