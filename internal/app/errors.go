package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrUnauthenticated marks a request with no live session.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden marks a principal below the required role.
	ErrForbidden = errors.New("insufficient role")
)
