package domain

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "example.com", "https://example.com"},
		{"already https", "https://example.com", "https://example.com"},
		{"already http", "http://example.com", "http://example.com"},
		{"scheme is case-insensitive", "HTTPS://example.com", "HTTPS://example.com"},
		{"mixed case http", "HtTp://example.com", "HtTp://example.com"},
		{"path without scheme", "example.com/a/b", "https://example.com/a/b"},
		{"other scheme gets prefixed", "ftp://example.com", "https://ftp://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
