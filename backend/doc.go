// Package backend provides the pluggable window and context abstraction
// lofx runs on.
//
// A backend is a Surface factory: it owns a window (or an offscreen stand-in)
// and the OpenGL 4.5 context inside it, and hands lofx the context's entry
// points as a gl.Functions.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// Import the ones a program may use:
//
//	import (
//		_ "github.com/gogpu/lofx/backend/glfw"     // real window, needs cgo
//		_ "github.com/gogpu/lofx/backend/headless" // recorder, no GPU
//	)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	s := backend.Default()
//
//	// Or request a specific backend
//	s := backend.Get("headless")
//
// Priority order: glfw > headless.
//
// # Usage with Context
//
// lofx.Init selects and initializes a surface from a lofx.Config, so most
// programs never call this package directly:
//
//	ctx, err := lofx.Init(lofx.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Terminate()
package backend
