package domain

import "errors"

var (
	// ErrConnection covers a subscription that failed to establish or
	// dropped. The collection is left empty and no automatic retry is made.
	ErrConnection = errors.New("connection to backing store failed")

	// ErrWrite covers a rejected create, update or delete. Dialog state is
	// left unchanged so the user may retry manually.
	ErrWrite = errors.New("write to backing store rejected")

	// ErrAuth covers a failed sign-in. Session state is unchanged.
	ErrAuth = errors.New("invalid email or password")

	ErrListingNotFound = errors.New("listing not found")
)
