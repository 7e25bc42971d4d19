package favorite

import "errors"

var (
	ErrAlreadyFavorited = errors.New("land already in favorites")
	ErrNotFound         = errors.New("favorite not found")
	ErrLandNotFound     = errors.New("land not found")
)
