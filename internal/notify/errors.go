package notify

import "errors"

// Sentinel kinds for inbox errors.
var (
	ErrNotFound = errors.New("notification not found")
)
