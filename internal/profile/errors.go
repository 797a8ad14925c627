package profile

import "errors"

var (
	// ErrNotFound indicates a named profile has no file.
	ErrNotFound = errors.New("profile: not found")
	// ErrInvalidName indicates a profile name that cannot map to a file.
	ErrInvalidName = errors.New("profile: name must match [A-Za-z0-9_-]+")
	// ErrInvalid wraps semantic validation failures.
	ErrInvalid = errors.New("profile: validation failed")
)
