package certvault

import (
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from CertificateStatus
		to   CertificateStatus
		want bool
	}{
		{StatusActive, StatusExpired, true},
		{StatusActive, StatusRevoked, true},
		{StatusExpired, StatusActive, false},
		{StatusExpired, StatusRevoked, false},
		{StatusRevoked, StatusActive, false},
		{StatusRevoked, StatusExpired, false},
		{StatusActive, StatusActive, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if StatusActive.IsTerminal() {
		t.Error("ACTIVE must not be terminal")
	}
	if !StatusExpired.IsTerminal() {
		t.Error("EXPIRED must be terminal")
	}
	if !StatusRevoked.IsTerminal() {
		t.Error("REVOKED must be terminal")
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := timePtr(now.Add(-24 * time.Hour))
	future := timePtr(now.Add(24 * time.Hour))

	tests := []struct {
		name   string
		status CertificateStatus
		expiry *time.Time
		want   CertificateStatus
	}{
		{"active without expiry", StatusActive, nil, StatusActive},
		{"active before expiry", StatusActive, future, StatusActive},
		{"active past expiry", StatusActive, past, StatusExpired},
		{"revoked stays revoked", StatusRevoked, nil, StatusRevoked},
		{"revoked past expiry reads as expired", StatusRevoked, past, StatusExpired},
		{"stored expired", StatusExpired, nil, StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveStatus(tt.status, tt.expiry, now); got != tt.want {
				t.Errorf("EffectiveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRequiresSignature(t *testing.T) {
	tests := []struct {
		level SecurityLevel
		want  bool
	}{
		{SecurityLevelStandard, false},
		{SecurityLevelHigh, true},
		{SecurityLevelConfidential, true},
	}

	for _, tt := range tests {
		if got := tt.level.RequiresSignature(); got != tt.want {
			t.Errorf("%s.RequiresSignature() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestDefaultTemplatesHaveUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range DefaultTemplates() {
		if tmpl.Name == "" {
			t.Error("default template with empty name")
		}
		if seen[tmpl.Name] {
			t.Errorf("duplicate default template name %q", tmpl.Name)
		}
		seen[tmpl.Name] = true
	}
}
