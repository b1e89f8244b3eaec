// Package services defines the business logic for the anonymous inbox:
// message intake, inbox retrieval/deletion, and the acceptance toggle.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer. Note that a submission refused because the target owner is
// not accepting messages is NOT an error — it is reported through
// SubmitResult.Accepted so clients can tell it apart from validation failure.
package services

import "errors"

var (
	// ErrUserNotFound indicates that the target username of a submission
	// does not resolve to any registered user.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidContent is returned when submitted content is empty or
	// exceeds the configured maximum rune length.
	ErrInvalidContent = errors.New("content is empty or too long")

	// ErrInvalidPurpose is returned when a submission carries a purpose
	// outside {feedback, suggestion, appreciation}.
	ErrInvalidPurpose = errors.New("purpose must be feedback, suggestion, or appreciation")

	// ErrMessageNotFound indicates that the requested message does not
	// exist, including a message that was already deleted.
	ErrMessageNotFound = errors.New("message not found")

	// ErrForbidden is returned when the caller is not the owner of the
	// resource being read or deleted.
	ErrForbidden = errors.New("caller does not own this resource")
)
