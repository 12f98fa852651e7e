// Package dto provides the request and response bodies of the authentication endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/linguahub/linguahub/internal/validation"
)

// LoginRequest contains the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request body, compared against the stored hash
}

// Validate checks the shape of the request only. Password strength is not checked here
// so a policy change never locks existing accounts out.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 128),
		),
	)
}
