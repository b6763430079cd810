package lofx

import "github.com/gogpu/lofx/gl"

// Renderbuffer is combined 24-bit depth and 8-bit stencil storage for a
// framebuffer.
type Renderbuffer struct {
	ctx    *Context
	id     uint32
	width  int
	height int
}

// CreateRenderbuffer allocates depth/stencil storage of the given size.
func (c *Context) CreateRenderbuffer(width, height int) *Renderbuffer {
	r := &Renderbuffer{ctx: c, width: width, height: height}
	r.id = c.gl.CreateRenderbuffer()
	c.state.bindRenderbuffer(c.gl, r.id)
	c.gl.RenderbufferStorage(gl.Renderbuffer, gl.Depth24Stencil8, width, height)
	return r
}

// ID returns the GL renderbuffer name, 0 once released.
func (r *Renderbuffer) ID() uint32 { return r.id }

// Valid reports whether the renderbuffer has not been released.
func (r *Renderbuffer) Valid() bool { return r != nil && r.id != 0 }

// Size returns the storage size in pixels.
func (r *Renderbuffer) Size() (width, height int) { return r.width, r.height }

// Release deletes the renderbuffer. Calling Release more than once is a
// no-op.
func (r *Renderbuffer) Release() {
	if r == nil || r.id == 0 {
		return
	}
	if r.ctx.gl.IsRenderbuffer(r.id) {
		r.ctx.gl.DeleteRenderbuffer(r.id)
	}
	r.ctx.state.forgetRenderbuffer(r.id)
	r.id = 0
}
