package util

import "testing"

func TestClientOriginFromHeader(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{"single forwarded entry", "203.0.113.7", "10.0.0.1", "203.0.113.7"},
		{"forwarded chain takes first", "203.0.113.7, 10.0.0.2, 10.0.0.3", "10.0.0.1", "203.0.113.7"},
		{"forwarded chain with spaces", " 203.0.113.7 ,10.0.0.2", "10.0.0.1", "203.0.113.7"},
		{"no forwarded header falls back to remote addr", "", "10.0.0.1", "10.0.0.1"},
		{"empty forwarded entry falls back", ",10.0.0.2", "10.0.0.1", "10.0.0.1"},
		{"nothing known", "", "", UnknownClientOrigin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClientOriginFromHeader(tt.forwardedFor, tt.remoteAddr); got != tt.want {
				t.Errorf("ClientOriginFromHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}
