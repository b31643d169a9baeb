package services

import "errors"

var (
	// ErrEmailExists means the identity is already registered.
	ErrEmailExists = errors.New("user already exists")

	// ErrAccountNotFound covers both an unknown email and a role mismatch at
	// login. The two cases are intentionally indistinguishable to the caller.
	ErrAccountNotFound = errors.New("user does not exist or role mismatch")

	// ErrInvalidCredentials means the password did not match the stored hash.
	ErrInvalidCredentials = errors.New("incorrect password")

	// ErrUserNotFound means a profile lookup by id or email came up empty.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRole means the requested role is outside {User, Owner}.
	ErrInvalidRole = errors.New("invalid role")
)
