package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrDataUnavailable covers any upstream failure (network, timeout,
	// non-2xx, malformed payload). The underlying cause is logged at the
	// call site and never carried in the error chain shown to clients.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
