package consultation

import "errors"

var ErrNotFound = errors.New("consultation request not found")
