package certvault

type SecurityLevel string

const (
	SecurityLevelStandard     SecurityLevel = "standard"
	SecurityLevelHigh         SecurityLevel = "high"
	SecurityLevelConfidential SecurityLevel = "confidential"
)

// RequiresSignature reports whether a certificate at this classification
// can only be verified with its signature token. Everything above the
// baseline standard tier demands one.
func (sl SecurityLevel) RequiresSignature() bool {
	switch sl {
	case SecurityLevelHigh, SecurityLevelConfidential:
		return true
	}

	return false
}
