package domain

import "errors"

var (
	// ErrNotFound: the requested identifier is absent.
	ErrNotFound = errors.New("not found")
	// ErrQueryFailure: the dataset could not be read. Surfaces as a server fault.
	ErrQueryFailure = errors.New("query failure")
	ErrUnknownField = errors.New("unknown field")
)
