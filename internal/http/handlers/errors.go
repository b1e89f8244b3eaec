// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses (via the `fail()` helper in this package). These codes give
// clients a stable, machine-readable error taxonomy that supplements the
// human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, forbidden, not_found) mirror common
//     HTTP status semantics to aid interoperability.
//   - Domain-specific codes are reserved for business outcomes that cannot be
//     conveyed by status alone.
//   - All error responses include both an HTTP status and one of these codes.
//
// Note: a submission refused because the owner is not accepting messages is
// NOT an error and never produces one of these codes — it is a 200 response
// with success=false so clients can tell it apart from validation failure.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeSubmitFailed     = "submit_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeDeleteFailed     = "delete_failed"
	ErrCodeToggleFailed     = "toggle_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
