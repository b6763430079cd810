// Package native implements gl.Functions on a real OpenGL 4.5 context.
//
// Entry points are resolved once, either through the proc-address
// function of the window library that created the context:
//
//	fns, err := native.Load(glfw.GetProcAddress)
//
// or from the system OpenGL library:
//
//	fns, err := native.LoadSystem()
//
// and bound with purego, so the package needs no C toolchain. The
// resulting Functions must only be used while the context it was loaded
// for is current on the calling thread.
package native
