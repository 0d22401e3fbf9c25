package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMentorNotFound  = errors.New("mentor not found")
	ErrSessionNotFound = errors.New("session not found")

	ErrForbidden         = errors.New("access forbidden")
	ErrConflict          = errors.New("mentor not available at this time")
	ErrBusy              = errors.New("mentor calendar is busy, retry shortly")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTooEarly          = errors.New("session has not started yet")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotRatable        = errors.New("session cannot be rated")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrMentorNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}
