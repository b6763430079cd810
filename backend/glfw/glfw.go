// Package glfw provides a windowed surface using GLFW 3.3. It requires cgo
// and a display.
//
// GLFW must be used from the main OS thread. Programs using this backend
// should lock it in an init function:
//
//	func init() { runtime.LockOSThread() }
//
// To use it, import the package:
//
//	import _ "github.com/gogpu/lofx/backend/glfw"
package glfw

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/lofx/backend"
	"github.com/gogpu/lofx/gl"
	"github.com/gogpu/lofx/gl/native"
)

// init registers the GLFW backend on package import.
func init() {
	backend.Register(backend.BackendGLFW, func() backend.Surface {
		return &Surface{}
	})
}

// Surface is a GLFW window with a current OpenGL core profile context.
type Surface struct {
	window *glfw.Window
	fns    *native.Functions
}

// Name returns the backend identifier.
func (s *Surface) Name() string {
	return backend.BackendGLFW
}

// Init initializes GLFW, opens the window, makes its context current and
// loads the GL entry points. Vsync is enabled.
func (s *Surface) Init(cfg backend.Config) error {
	major, minor, err := cfg.Version()
	if err != nil {
		return err
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: init: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, boolHint(cfg.Debug))
	glfw.WindowHint(glfw.Visible, boolHint(!cfg.Invisible))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("glfw: create %d.%d window: %w", major, minor, err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	fns, err := native.Load(glfw.GetProcAddress)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return err
	}
	s.window, s.fns = window, fns

	backend.Logger().Info("glfw window created",
		"width", cfg.Width, "height", cfg.Height, "gl", fmt.Sprintf("%d.%d", major, minor), "debug", cfg.Debug)
	return nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Functions returns the native entry points, or nil before Init.
func (s *Surface) Functions() gl.Functions {
	if s.fns == nil {
		return nil
	}
	return s.fns
}

// SwapBuffers presents the back buffer.
func (s *Surface) SwapBuffers() {
	if s.window != nil {
		s.window.SwapBuffers()
	}
}

// PollEvents processes pending window events.
func (s *Surface) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the window was asked to close.
func (s *Surface) ShouldClose() bool {
	return s.window == nil || s.window.ShouldClose()
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (s *Surface) FramebufferSize() (width, height int) {
	if s.window == nil {
		return 0, 0
	}
	return s.window.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (s *Surface) Close() {
	if s.window == nil {
		return
	}
	s.window.Destroy()
	s.window, s.fns = nil, nil
	glfw.Terminate()
}
