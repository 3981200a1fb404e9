package util

import (
	"testing"
)

func TestGenerateNChar(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Generate 5 characters", 5, false},
		{"Generate 32 characters", 32, false},
		{"Generate 0 characters", 0, true},
		{"Generate negative characters", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateNChar(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateNChar() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && len(got) != tt.n {
				t.Errorf("GenerateNChar() got = %v, want length %v", got, tt.n)
			}
		})
	}
}

func TestGenerateSignatureTokenUnique(t *testing.T) {
	a, err := GenerateSignatureToken()
	if err != nil {
		t.Fatalf("GenerateSignatureToken() error = %v", err)
	}
	b, err := GenerateSignatureToken()
	if err != nil {
		t.Fatalf("GenerateSignatureToken() error = %v", err)
	}

	if a == b {
		t.Error("GenerateSignatureToken() produced the same token twice")
	}
	if len(a) != 32 {
		t.Errorf("GenerateSignatureToken() length = %d, want 32", len(a))
	}
}
