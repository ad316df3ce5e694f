package role

import "errors"

// Sentinel kinds for role errors.
var (
	ErrUnknownRole = errors.New("unknown role")
)
