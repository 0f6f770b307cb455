// Package common defines shared constants and sentinel errors used across
// the storage, service and CLI layers of lifecalc. Callers should use
// errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrAuthentication is the parent of every authentication failure below.
	ErrAuthentication = errors.New("authentication error")

	ErrInvalidCredentials  = fmt.Errorf("%w: invalid email or password", ErrAuthentication)
	ErrEmailTaken          = fmt.Errorf("%w: user with this email already exists", ErrAuthentication)
	ErrPhoneTaken          = fmt.Errorf("%w: user with this phone number already exists", ErrAuthentication)
	ErrInvalidRegistration = fmt.Errorf("%w: invalid registration data", ErrAuthentication)

	// Session errors.
	ErrNotLoggedIn  = errors.New("no user is currently logged in")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Storage limits.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// CapacityExceededError is returned when a user already holds Limit saved
// calculations. errors.Is(err, ErrCapacityExceeded) reports true for it.
type CapacityExceededError struct {
	Limit int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("you can only save up to %d premium calculations, please delete some before saving more", e.Limit)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
