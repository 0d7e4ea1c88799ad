package service

import "errors"

// Sentinel errors the controllers map to HTTP statuses.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrQuizNotFound         = errors.New("quiz not found or not published")
	ErrAttemptsClosed       = errors.New("attempts are closed for this quiz")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrStudentNotFound      = errors.New("student profile not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPhoneTaken           = errors.New("phone number already registered")
	ErrUnauthorized         = errors.New("invalid credentials")
	ErrRateLimited          = errors.New("rate limited by upstream")
)
