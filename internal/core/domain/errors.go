package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNoToken is returned when a request carries no bearer token.
	ErrNoToken = errors.New("No token provided")
	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("Invalid or expired token")
	// ErrForbidden is returned when the caller's role or ownership is
	// insufficient for the operation.
	ErrForbidden = errors.New("Insufficient permissions")

	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrVacationNotFound   = errors.New("Vacation not found")

	// ErrMissingCredentials is returned by authenticate when username or
	// password is absent from the body.
	ErrMissingCredentials = errors.New("Username and password are required")
	// ErrMissingStatus is returned by the vacation status update when the
	// body carries no status_id at all.
	ErrMissingStatus = errors.New("status_id is required")
	// ErrInvalidStatus is returned when status_id is present but not a
	// known status value.
	ErrInvalidStatus = errors.New("Invalid status_id. Must be 1 (APPROVED), 2 (REJECTED), or 3 (PENDING)")
)

// ValidationErrors collects every violation found in a request body so they
// can be returned together rather than fail-fast.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
