package services

import "errors"

// Error kinds returned by the service layer. Handlers map ErrNotFound and
// ErrBadRequest to their status codes; any other error is a data-layer fault.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
)
