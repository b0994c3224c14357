package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyExists is returned by Register for a taken email.
	ErrAlreadyExists = errors.New("already exists")
)
