package login

import "errors"

var (
	// ErrInvalidCredentials is returned when the provided username and/or password are not valid.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInactiveUser is returned for accounts that are switched off.
	ErrInactiveUser = errors.New("user is inactive")
)
