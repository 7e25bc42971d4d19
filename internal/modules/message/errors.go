package message

import "errors"

var (
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrSelfMessage      = errors.New("cannot message yourself")
)
