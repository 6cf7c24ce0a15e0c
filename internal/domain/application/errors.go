package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrForbidden           = errors.New("you may not perform this transition")
	ErrAlreadyApplied      = errors.New("an active application for this listing already exists")
	ErrListingNotOpen      = errors.New("listing is not open for applications")
	ErrOwnListing          = errors.New("cannot apply to your own listing")
	ErrResponseNotAllowed  = errors.New("only the professional may attach a response message")
)
