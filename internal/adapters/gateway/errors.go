package gateway

import "errors"

// Sentinel kinds for gateway errors. Callers discriminate outcomes with
// errors.Is instead of guessing from nil results, so an empty collection is
// never confused with a failed call.
var (
	// ErrValidation marks caller-supplied data rejected before any
	// network call was attempted.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks a missing or rejected bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a targeted read/update/delete of a missing id.
	ErrNotFound = errors.New("not found")

	// ErrRemote marks any other unsuccessful backend response.
	ErrRemote = errors.New("remote request failed")

	// ErrTransport marks a request that could not be completed at all.
	ErrTransport = errors.New("transport failure")
)
