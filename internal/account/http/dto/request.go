// Package dto provides the request and response bodies of the account endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/linguahub/linguahub/internal/validation"
)

// CreateAccountRequest contains the parameters for registering an account.
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"` //nolint:gosec // request body, hashed before storage
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// Validate checks if the create account request is valid.
func (r *CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 128),
			customValidation.DefaultPasswordStrength,
		),
		validation.Field(&r.Role,
			validation.Required,
			customValidation.AccountRole,
		),
		validation.Field(&r.Status, customValidation.AccountStatus),
	)
}

// UpdateStatusRequest changes the lifecycle status of an account.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks if the update status request is valid.
func (r *UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.Required, customValidation.AccountStatus),
	)
}

// UpdateRoleRequest changes the role of an account.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate checks if the update role request is valid.
func (r *UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Role, validation.Required, customValidation.AccountRole),
	)
}
