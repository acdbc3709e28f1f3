package model

import "errors"

var (
	// ErrEmailTaken is returned when registration hits an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a login with a bad email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserNotFound indicates the referenced account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrQuizNotFound indicates the quiz does not exist or belongs to another user.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizCompleted is returned on a resubmission of an already completed quiz.
	ErrQuizCompleted = errors.New("quiz already completed")
)
