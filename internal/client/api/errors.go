package api

import "errors"

var (
	// ErrUnavailable covers transport-level failures: the server could not
	// be reached or did not produce a response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for any 401 response. It is always fatal
	// to the session; callers must tear down and re-authenticate.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
)
