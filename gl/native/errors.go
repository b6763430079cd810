package native

import "errors"

// Package errors for the native loader.
var (
	// ErrLibraryNotFound is returned when no system OpenGL library can be
	// opened.
	ErrLibraryNotFound = errors.New("native: OpenGL library not found")

	// ErrMissingFunction is returned when a required entry point cannot be
	// resolved, usually because the context is older than OpenGL 4.5.
	ErrMissingFunction = errors.New("native: missing OpenGL function")
)
