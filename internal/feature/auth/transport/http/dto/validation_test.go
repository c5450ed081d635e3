package dto

import (
	"errors"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Test@Example.COM", "test@example.com"},
		{"trims surrounding whitespace", "  test@example.com  ", "test@example.com"},
		{"removes inner spaces", "te st@exa mple.com", "test@example.com"},
		{"already normalized", "test@example.com", "test@example.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.input); got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"all classes present", "Password1!", false},
		{"accented letter does not count as special", "Password1ç", true},
		{"symbol counts as special", "Password1§", false},
		{"missing uppercase", "password1!", true},
		{"missing lowercase", "PASSWORD1!", true},
		{"missing digit", "Password!!", true},
		{"missing special", "Password11", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr && !errors.Is(err, ErrWeakPassword) {
				t.Errorf("expected ErrWeakPassword, got: %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
