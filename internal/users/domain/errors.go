package domain

import "errors"

var (
	// ErrMissingFields means a create request lacked one of email,
	// password, name or lastName. Detected before any remote call.
	ErrMissingFields = errors.New("missing required fields")

	// ErrEmailTaken and ErrPhoneTaken are translated from the identity
	// store's coded duplicate errors.
	ErrEmailTaken = errors.New("email already registered")
	ErrPhoneTaken = errors.New("phone number already registered")
)
