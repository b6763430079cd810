// Package gl declares the OpenGL surface lofx is written against.
//
// It contains no cgo and no loader: [Functions] is an interface so that the
// same resource and draw code runs against the real driver (gl/native), a
// recording fake (gl/gltest) or any other implementation a caller provides.
//
// Constant names are the GL names without the GL_ prefix, in Go case:
// GL_ELEMENT_ARRAY_BUFFER is [ElementArrayBuffer], GL_RGBA32F is [RGBA32F].
package gl
