// Package validation provides the custom jellydator/validation rules used by request DTOs
// and configuration.
package validation

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	apperrors "github.com/linguahub/linguahub/internal/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength validates that a password meets minimum requirements.
type PasswordStrength struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireNumber bool
}

// DefaultPasswordStrength is applied to account passwords.
var DefaultPasswordStrength = PasswordStrength{
	MinLength:     10,
	RequireUpper:  true,
	RequireLower:  true,
	RequireNumber: true,
}

// Validate implements validation.Rule.
func (p PasswordStrength) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_type", "password must be a string")
	}
	if s == "" {
		return nil // Required reports empty values
	}

	if len(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	}
	if p.RequireUpper && !strings.ContainsFunc(s, unicode.IsUpper) {
		return validation.NewError("validation_password_uppercase", "password must contain an uppercase letter")
	}
	if p.RequireLower && !strings.ContainsFunc(s, unicode.IsLower) {
		return validation.NewError("validation_password_lowercase", "password must contain a lowercase letter")
	}
	if p.RequireNumber && !strings.ContainsFunc(s, unicode.IsNumber) {
		return validation.NewError("validation_password_number", "password must contain a number")
	}

	return nil
}

// Email validates an email address.
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank rejects strings that are empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// AccountRole accepts only the enumerated account roles.
var AccountRole = validation.NewStringRuleWithError(
	func(s string) bool {
		return accountDomain.Role(s).Valid()
	},
	validation.NewError("validation_account_role", "must be one of student, teacher, admin"),
)

// AccountStatus accepts only the enumerated account statuses.
var AccountStatus = validation.NewStringRuleWithError(
	func(s string) bool {
		return accountDomain.Status(s).Valid()
	},
	validation.NewError(
		"validation_account_status",
		"must be one of active, suspended, banned, pending_verification, deleted",
	),
)

// Base64 accepts standard base64 data such as a KMS ciphertext.
var Base64 = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	},
	validation.NewError("validation_base64", "must be valid base64-encoded data"),
)
