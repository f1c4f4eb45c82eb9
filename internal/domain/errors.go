package domain

import "errors"

// Sentinel errors for the failure taxonomy. The HTTP adapter maps them to
// status codes: ErrValidation → 400, ErrModelUnavailable → 503,
// ErrUpstream → 500.
var (
	ErrValidation       = errors.New("invalid input")
	ErrModelUnavailable = errors.New("AI model client is not configured")
	ErrUpstream         = errors.New("AI model call failed")
)
