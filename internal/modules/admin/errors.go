package admin

import "errors"

var (
	ErrNotFound = errors.New("land not found")
	// ErrInvalidStatus means the requested moderation status is outside
	// {verified, rejected}; nothing is changed.
	ErrInvalidStatus  = errors.New("invalid moderation status")
	ErrReasonRequired = errors.New("rejection reason is required")
)
