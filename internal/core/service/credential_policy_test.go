package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopsphere/user-system/internal/core/domain"
)

func TestCredentialPolicy_Accepts(t *testing.T) {
	p := NewCredentialPolicy()

	valid := [][2]string{
		{"alice@example.com", "Secret123"},
		{"a@bcde", "abcdefg1"},
		{"user@x.io", "12345678a"},
	}
	for _, pair := range valid {
		if err := p.Validate(pair[0], pair[1]); err != nil {
			t.Errorf("(%q, %q): unexpected error %v", pair[0], pair[1], err)
		}
	}
}

func TestCredentialPolicy_RejectsUsername(t *testing.T) {
	p := NewCredentialPolicy()

	for _, username := range []string{"", "bob", "bob@a", "bobby1"} {
		err := p.Validate(username, "Secret123")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("username %q: expected validation error, got %v", username, err)
			continue
		}
		if !strings.Contains(err.Error(), "username") {
			t.Errorf("username %q: reason should name the field, got %q", username, err)
		}
	}
}

func TestCredentialPolicy_RejectsPassword(t *testing.T) {
	p := NewCredentialPolicy()

	for _, pass := range []string{"", "Ab1", "lettersonly", "12345678"} {
		err := p.Validate("alice@example.com", pass)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("password %q: expected validation error, got %v", pass, err)
			continue
		}
		if !strings.Contains(err.Error(), "password") {
			t.Errorf("password %q: reason should name the field, got %q", pass, err)
		}
	}
}

func TestCredentialPolicy_ConfigurableThresholds(t *testing.T) {
	p := NewCredentialPolicy()
	p.MinUsernameLen = 3
	p.MinPasswordLen = 4

	if err := p.Validate("a@b", "ab1x"); err != nil {
		t.Fatalf("relaxed policy rejected valid pair: %v", err)
	}
	if err := p.Validate("a@", "ab1x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected rejection below relaxed minimum, got %v", err)
	}
}
