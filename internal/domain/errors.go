package domain

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEvidenceNotFound = errors.New("evidence not found")
)

var (
	ErrInvalidTransition     = errors.New("invalid booking transition")
	ErrInsufficientEvidence  = errors.New("insufficient evidence")
	ErrEvidenceLimitExceeded = errors.New("evidence limit exceeded")
	ErrUploadFailed          = errors.New("evidence upload failed")
)

var (
	ErrUnauthorized = errors.New("actor is not a party to the booking")
	ErrForbidden    = errors.New("action not permitted for this actor")
)

// ErrConcurrentTransitionLost means a conditional write found the pre-state already changed.
// Callers treat it as a successful no-op.
var ErrConcurrentTransitionLost = errors.New("concurrent transition lost")

var (
	ErrValidation = errors.New("validation error")
)
