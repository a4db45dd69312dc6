package domain

import "errors"

var (
	// ErrNotImplemented is returned for a part that has no solution.
	ErrNotImplemented = errors.New("part not implemented")
	// ErrNotRegistered is returned for a date with no solver.
	ErrNotRegistered = errors.New("puzzle not registered")
	// ErrPanic wraps a panic recovered while solving.
	ErrPanic = errors.New("panic")
)
