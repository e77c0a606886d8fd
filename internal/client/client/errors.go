package client

import "errors"

var (
	// ErrUnavailable covers transport failures and timeouts.
	ErrUnavailable = errors.New("service unavailable")
	// ErrUnauthorized means the credential is missing, invalid or expired.
	// Callers must tear the session down when they see it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoAccess means the entity does not exist or the caller may not see it.
	ErrNoAccess = errors.New("not found or no access")
)

// AuthError carries the service's explanation of a failed login or
// registration, unchanged.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
