package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrWrongRole       = errors.New("profile type does not match user role")
)
