package listing

import "errors"

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrNotOwner         = errors.New("you do not own this listing")
	ErrValidation       = errors.New("validation error")
	ErrListingFinalized = errors.New("listing is completed or cancelled")
)
