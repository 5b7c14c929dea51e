// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across store/repository layers.
var (
	// ErrNotFound indicates the requested document does not exist or is not
	// owned by the caller. The two cases are intentionally merged so callers
	// cannot probe for other users' data.
	ErrNotFound = errors.New("not found")

	// ErrMissingField indicates a remote document failed the decode gate
	// (a required field, notably location, is absent).
	ErrMissingField = errors.New("missing required field")

	// ErrUnauthorized indicates a missing or invalid session token.
	ErrUnauthorized = errors.New("unauthorized")
)
