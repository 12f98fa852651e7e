package domain

import (
	"fmt"

	apperrors "github.com/linguahub/linguahub/internal/errors"
)

// GateState is a step of the request gate. Evaluation walks the states strictly in
// declaration order and stops at Forwarded or Rejected.
type GateState string

const (
	StateStart                GateState = "start"
	StateExtractingCredential GateState = "extracting_credential"
	StateDecoding             GateState = "decoding"
	StateResolving            GateState = "resolving"
	StateAuthorizing          GateState = "authorizing"
	StateForwarded            GateState = "forwarded"
	StateRejected             GateState = "rejected"
)

// RejectionReason is the caller-visible class of a gate rejection.
type RejectionReason string

const (
	// ReasonNoCredential means the carrier was missing or malformed.
	ReasonNoCredential RejectionReason = "no_credential"

	// ReasonInvalidCredential means the token failed signature, expiry, or parsing.
	ReasonInvalidCredential RejectionReason = "invalid_credential"

	// ReasonUnauthenticated means the account is missing, not active, or could not be read in time.
	ReasonUnauthenticated RejectionReason = "unauthenticated"

	// ReasonForbidden means the identity's role is not in the required set.
	ReasonForbidden RejectionReason = "forbidden"

	// ReasonInternal means an infrastructure fault such as an unreachable account store.
	ReasonInternal RejectionReason = "internal"
)

// Rejection describes why the gate refused a request. It is an error so it can travel
// through ordinary error returns; Unwrap exposes the matching standard domain error.
type Rejection struct {
	Reason    RejectionReason
	State     GateState // State at which evaluation stopped
	SubjectID string    // Known once decoding succeeded
	Cause     error     // Underlying error, for operators only
	Decision  *Decision // Set for ReasonForbidden
}

// Error implements error. The text is meant for logs, not for callers.
func (r *Rejection) Error() string {
	if r.Cause != nil {
		return fmt.Sprintf("request rejected at %s: %s: %v", r.State, r.Reason, r.Cause)
	}
	return fmt.Sprintf("request rejected at %s: %s", r.State, r.Reason)
}

// Unwrap maps the reason onto the standard domain errors.
func (r *Rejection) Unwrap() error {
	switch r.Reason {
	case ReasonNoCredential, ReasonInvalidCredential:
		return apperrors.ErrUnauthorized
	case ReasonUnauthenticated:
		return apperrors.ErrLocked
	case ReasonForbidden:
		return apperrors.ErrForbidden
	default:
		return r.Cause
	}
}

// GateResult is the tagged outcome of one gate evaluation: exactly one of Identity
// (State == StateForwarded) or Rejection (State == StateRejected) is set.
type GateResult struct {
	State     GateState
	Identity  *IdentityContext
	Rejection *Rejection
}

// Forwarded builds a successful result.
func Forwarded(identity *IdentityContext) *GateResult {
	return &GateResult{State: StateForwarded, Identity: identity}
}

// Rejected builds a failed result.
func Rejected(rejection *Rejection) *GateResult {
	return &GateResult{State: StateRejected, Rejection: rejection}
}

// IsForwarded reports whether the request may proceed.
func (g *GateResult) IsForwarded() bool {
	return g != nil && g.State == StateForwarded && g.Identity != nil
}
