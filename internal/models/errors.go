package models

import "errors"

// Sentinel errors shared across packages. Callers match these with errors.Is.
var (
	// ErrInvalidInput marks locally recoverable bad input (e.g. an empty
	// word on add). Never fatal; the caller re-prompts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInterrupted marks a user-cancelled interactive session. It is a
	// normal termination path, not a failure.
	ErrInterrupted = errors.New("interrupted")

	// ErrNotFound marks a missing record in the history store.
	ErrNotFound = errors.New("not found")
)
