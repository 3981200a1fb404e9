package certvault

import "time"

type CertificateStatus string

const (
	StatusActive  CertificateStatus = "ACTIVE"
	StatusRevoked CertificateStatus = "REVOKED"
	StatusExpired CertificateStatus = "EXPIRED"
)

// Expired and Revoked are terminal, nothing re-activates a certificate.
var validTransitions = map[CertificateStatus][]CertificateStatus{
	StatusActive: {StatusExpired, StatusRevoked},
}

func (s CertificateStatus) CanTransitionTo(next CertificateStatus) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}

	for _, valid := range allowed {
		if valid == next {
			return true
		}
	}

	return false
}

func (s CertificateStatus) IsTerminal() bool {
	return s == StatusRevoked || s == StatusExpired
}

// EffectiveStatus reconciles the stored status with the expiry window at
// read time. The stored field may lag behind the clock; a certificate past
// its expiry date is EXPIRED no matter what the row says.
func EffectiveStatus(status CertificateStatus, expiryDate *time.Time, now time.Time) CertificateStatus {
	if expiryDate != nil && now.After(*expiryDate) {
		return StatusExpired
	}

	return status
}
