package certvault

import (
	"crypto/subtle"
	"time"
)

type VerificationMethod string

const (
	MethodWeb    VerificationMethod = "web"
	MethodManual VerificationMethod = "manual"
	MethodAPI    VerificationMethod = "api"
)

// ParseMethod falls back to web, the default channel, for anything it
// does not recognize.
func ParseMethod(raw string) VerificationMethod {
	switch VerificationMethod(raw) {
	case MethodManual:
		return MethodManual
	case MethodAPI:
		return MethodAPI
	}

	return MethodWeb
}

const (
	ReasonNotFound          = "certificate not found"
	ReasonExpired           = "certificate has expired"
	ReasonRevoked           = "certificate has been revoked"
	ReasonSignatureRequired = "signature required"
	ReasonSignatureMismatch = "signature mismatch"
)

// Record carries the certificate fields the verification rules read.
// Storage concerns live elsewhere; callers map their rows into this.
type Record struct {
	ID             string
	TemplateName   string
	RecipientName  string
	RecipientEmail string
	OrganizationID string
	IssuerName     string
	IssueDate      time.Time
	ExpiryDate     *time.Time
	Status         CertificateStatus
	SecurityLevel  SecurityLevel
	Signature      string
}

type VerificationResult struct {
	Valid       bool               `json:"valid"`
	Reason      string             `json:"reason,omitempty"`
	Certificate *PublicCertificate `json:"certificate,omitempty"`
}

func invalid(reason string) VerificationResult {
	return VerificationResult{Valid: false, Reason: reason}
}

// NotFoundResult is what a lookup miss turns into: verification failures
// are ordinary outcomes, never errors.
func NotFoundResult() VerificationResult {
	return invalid(ReasonNotFound)
}

// Evaluate applies the verification rules to a certificate record.
//
// Order matters: the effective status gate runs before the signature
// policy, so an expired or revoked certificate reports its state even
// when the caller supplied a correct signature.
func Evaluate(record Record, signature string, verifyBaseURL string, now time.Time) VerificationResult {
	switch EffectiveStatus(record.Status, record.ExpiryDate, now) {
	case StatusExpired:
		return invalid(ReasonExpired)
	case StatusRevoked:
		return invalid(ReasonRevoked)
	}

	if record.SecurityLevel.RequiresSignature() {
		if signature == "" {
			return invalid(ReasonSignatureRequired)
		}

		// The token is opaque, not secret-derived, but compare it in
		// constant time anyway.
		if subtle.ConstantTimeCompare([]byte(signature), []byte(record.Signature)) != 1 {
			return invalid(ReasonSignatureMismatch)
		}
	}

	projection := Project(record, verifyBaseURL, now)
	return VerificationResult{Valid: true, Certificate: &projection}
}
