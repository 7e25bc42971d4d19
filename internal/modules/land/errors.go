package land

import "errors"

var (
	ErrNotFound = errors.New("land not found")
	// ErrNotOwner distinguishes an ownership mismatch from a missing
	// listing; handlers map it to 403, never 404.
	ErrNotOwner = errors.New("not the owner of this land")
)
