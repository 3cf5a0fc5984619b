package binder

import (
	"errors"
	"net/http"
)

// Body parsing errors
var (
	ErrBodyTooLarge  = errors.New("request body too large")
	ErrInvalidJSON   = errors.New("invalid JSON")
	ErrInvalidForm   = errors.New("invalid form data")
	ErrTooManyFields = errors.New("too many form fields")
	ErrUpload        = errors.New("failed to store upload")
)

// StatusCode maps a Parse error to the HTTP status a handler should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBodyTooLarge), errors.Is(err, ErrTooManyFields):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrInvalidForm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
