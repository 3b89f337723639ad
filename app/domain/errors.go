package domain

import "errors"

// Authentication and authorization errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid token")
	ErrPendingApproval = errors.New("account pending admin approval")
	ErrForbidden       = errors.New("forbidden")
	ErrAdminRequired   = errors.New("admin access required")
)

// Record errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrUserExists      = errors.New("user already exists")
)

// Validation errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")
)

// IdentityProviderError wraps an upstream identity-provider failure. The
// provider message is surfaced verbatim at registration and only there.
type IdentityProviderError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *IdentityProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "identity provider error"
}

func (e *IdentityProviderError) Unwrap() error {
	return e.Cause
}

// NewIdentityProviderError creates an identity provider error
func NewIdentityProviderError(operation, message string, cause error) *IdentityProviderError {
	return &IdentityProviderError{
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}
