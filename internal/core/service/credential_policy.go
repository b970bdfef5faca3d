package service

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// Policy defaults. These reproduce the legacy rules; they are a policy
// choice, not a security proof, so the thresholds stay configurable.
const (
	DefaultMinUsernameLen = 6
	DefaultMinPasswordLen = 8
)

// CredentialPolicy is the stateless format checker run before any store
// mutation or hash computation.
type CredentialPolicy struct {
	MinUsernameLen int
	MinPasswordLen int

	validate *validator.Validate
}

// NewCredentialPolicy builds a policy with the default thresholds.
func NewCredentialPolicy() *CredentialPolicy {
	v := validator.New()
	// letter+digit rule for passwords; validator has no built-in for it.
	_ = v.RegisterValidation("letterdigit", func(fl validator.FieldLevel) bool {
		var hasLetter, hasDigit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		return hasLetter && hasDigit
	})

	return &CredentialPolicy{
		MinUsernameLen: DefaultMinUsernameLen,
		MinPasswordLen: DefaultMinPasswordLen,
		validate:       v,
	}
}

// Validate checks a credential pair against the policy. It either passes
// entirely or returns a *domain.ValidationError; it never partially applies.
func (p *CredentialPolicy) Validate(username, password string) error {
	userTag := fmt.Sprintf("required,min=%d,contains=@", p.MinUsernameLen)
	if err := p.validate.Var(username, userTag); err != nil {
		return domain.NewValidationError(fmt.Sprintf(
			"username must be at least %d characters long and contain '@'", p.MinUsernameLen))
	}

	passTag := fmt.Sprintf("required,min=%d,letterdigit", p.MinPasswordLen)
	if err := p.validate.Var(password, passTag); err != nil {
		return domain.NewValidationError(fmt.Sprintf(
			"password must be at least %d characters long and contain both letters and numbers", p.MinPasswordLen))
	}

	return nil
}
