package model

import "errors"

// Sentinel kinds for entity validation.
var (
	ErrInvalid = errors.New("invalid entity")
)
