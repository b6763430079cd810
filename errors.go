package lofx

import "errors"

// Errors returned by the context lifecycle and configuration functions.
// Resource and draw operations never return errors; they report through
// the diagnostics callback instead.
var (
	// ErrNoBackend is returned by Init when no surface backend is available.
	ErrNoBackend = errors.New("lofx: no backend available")

	// ErrUnsupportedVersion is returned by Init when the created context is
	// older than the requested OpenGL version.
	ErrUnsupportedVersion = errors.New("lofx: unsupported OpenGL version")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("lofx: invalid config")

	// ErrInvalidParams is returned when diagnostic params cannot be decoded.
	ErrInvalidParams = errors.New("lofx: invalid diagnostic params")
)
