package backend

import (
	"errors"

	"github.com/gogpu/lofx/gl"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrInvalidVersion is returned when Config.GLVersion cannot be parsed.
	ErrInvalidVersion = errors.New("backend: invalid OpenGL version")
)

// Surface is a window (or offscreen stand-in) owning an OpenGL context.
// It abstracts context creation and the event loop, allowing lofx to run
// on a real window or headless in tests.
//
// Surfaces must be registered via Register() and are selected via
// Get() or Default(). All methods must be called from the goroutine that
// called Init, locked to its OS thread.
type Surface interface {
	// Name returns the backend identifier (e.g., "glfw", "headless").
	Name() string

	// Init creates the window and its GL context and makes the context
	// current.
	Init(cfg Config) error

	// Functions returns the GL entry points of the current context.
	// It returns nil before Init.
	Functions() gl.Functions

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// PollEvents processes pending window events.
	PollEvents()

	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// Close destroys the window and its context.
	// The surface should not be used after Close is called.
	Close()
}
