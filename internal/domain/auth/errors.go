package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrEmailNotVerified     = errors.New("google account email is not verified")
	ErrGoogleAccountUnknown = errors.New("no student is registered with this google account")
)
