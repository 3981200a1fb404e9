package certvault

import (
	"testing"
	"time"
)

const testBaseURL = "http://localhost:8080"

func testRecord(id string, status CertificateStatus, expiry *time.Time, level SecurityLevel, signature string) Record {
	return Record{
		ID:             id,
		TemplateName:   "completion",
		RecipientName:  "Sok Dara",
		RecipientEmail: "dara@example.org",
		OrganizationID: "org-1",
		IssuerName:     "Rev. Chan Vuthy",
		IssueDate:      time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:     expiry,
		Status:         status,
		SecurityLevel:  level,
		Signature:      signature,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestEvaluate(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	pastExpiry := timePtr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	futureExpiry := timePtr(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name       string
		record     Record
		signature  string
		wantValid  bool
		wantReason string
	}{
		{
			name:       "active with past expiry is reported expired even though the row says active",
			record:     testRecord("c1", StatusActive, pastExpiry, SecurityLevelStandard, ""),
			wantValid:  false,
			wantReason: ReasonExpired,
		},
		{
			name:      "active with no expiry and standard level needs no signature",
			record:    testRecord("c2", StatusActive, nil, SecurityLevelStandard, ""),
			wantValid: true,
		},
		{
			name:       "high level with wrong signature",
			record:     testRecord("c3", StatusActive, nil, SecurityLevelHigh, "abc123"),
			signature:  "wrong",
			wantValid:  false,
			wantReason: ReasonSignatureMismatch,
		},
		{
			name:      "high level with correct signature",
			record:    testRecord("c3", StatusActive, nil, SecurityLevelHigh, "abc123"),
			signature: "abc123",
			wantValid: true,
		},
		{
			name:       "high level with missing signature",
			record:     testRecord("c4", StatusActive, nil, SecurityLevelHigh, "abc123"),
			wantValid:  false,
			wantReason: ReasonSignatureRequired,
		},
		{
			name:       "revoked fails regardless of correct signature",
			record:     testRecord("c5", StatusRevoked, nil, SecurityLevelHigh, "abc123"),
			signature:  "abc123",
			wantValid:  false,
			wantReason: ReasonRevoked,
		},
		{
			name:       "expired wins over signature policy",
			record:     testRecord("c6", StatusActive, pastExpiry, SecurityLevelConfidential, "abc123"),
			signature:  "abc123",
			wantValid:  false,
			wantReason: ReasonExpired,
		},
		{
			name:      "active within its validity window",
			record:    testRecord("c7", StatusActive, futureExpiry, SecurityLevelStandard, ""),
			wantValid: true,
		},
		{
			name:       "stored expired status",
			record:     testRecord("c8", StatusExpired, nil, SecurityLevelStandard, ""),
			wantValid:  false,
			wantReason: ReasonExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.record, tt.signature, testBaseURL, now)

			if got.Valid != tt.wantValid {
				t.Errorf("Evaluate() valid = %v, want %v (reason %q)", got.Valid, tt.wantValid, got.Reason)
			}
			if !tt.wantValid && got.Reason != tt.wantReason {
				t.Errorf("Evaluate() reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if tt.wantValid && got.Certificate == nil {
				t.Error("Evaluate() valid result is missing the certificate projection")
			}
			if !tt.wantValid && got.Certificate != nil {
				t.Error("Evaluate() invalid result should not carry a certificate projection")
			}
		})
	}
}

func TestEvaluateProjectionHidesSignature(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	record := testRecord("c3", StatusActive, nil, SecurityLevelHigh, "abc123")

	got := Evaluate(record, "abc123", testBaseURL, now)
	if !got.Valid {
		t.Fatalf("Evaluate() valid = false, reason %q", got.Reason)
	}

	cert := got.Certificate
	if cert.ID != "c3" {
		t.Errorf("projection id = %q, want %q", cert.ID, "c3")
	}
	if cert.VerificationURL != VerificationURL(testBaseURL, "c3") {
		t.Errorf("projection verificationUrl = %q", cert.VerificationURL)
	}
	if cert.SecurityLevel != SecurityLevelHigh {
		t.Errorf("projection securityLevel = %q", cert.SecurityLevel)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		raw  string
		want VerificationMethod
	}{
		{"web", MethodWeb},
		{"manual", MethodManual},
		{"api", MethodAPI},
		{"", MethodWeb},
		{"carrier-pigeon", MethodWeb},
	}

	for _, tt := range tests {
		if got := ParseMethod(tt.raw); got != tt.want {
			t.Errorf("ParseMethod(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
