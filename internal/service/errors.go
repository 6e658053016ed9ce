package service

import "errors"

var (
	// ErrNotFound means the code is empty or has no public record.
	ErrNotFound = errors.New("short link not found")

	// ErrResolution means the store failed while resolving a redirect. The
	// visitor gets the same fallback redirect as a miss, but the two are
	// logged distinctly.
	ErrResolution = errors.New("short link resolution failed")
)
