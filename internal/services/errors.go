// internal/services/errors.go
package services

import "errors"

// Error classes the handlers map onto HTTP statuses. Anything else surfaces
// as a 500 with the raw message.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not authorized")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrOrderMismatch      = errors.New("order does not belong to this buyer")
	ErrDuplicateReview    = errors.New("order already reviewed")
)
