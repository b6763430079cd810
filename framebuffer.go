package lofx

import (
	"fmt"
	"image"

	"github.com/gogpu/lofx/gl"
)

// FramebufferStatus is the completeness of a framebuffer after Build.
type FramebufferStatus uint8

const (
	// StatusUnbuilt means Build has not run or returned early.
	StatusUnbuilt FramebufferStatus = iota
	StatusComplete                    // GL_FRAMEBUFFER_COMPLETE
	StatusUndefined                   // GL_FRAMEBUFFER_UNDEFINED
	StatusIncompleteAttachment        // GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	StatusIncompleteMissingAttachment // GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	StatusIncompleteDrawBuffer        // GL_FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER
	StatusIncompleteReadBuffer        // GL_FRAMEBUFFER_INCOMPLETE_READ_BUFFER
	StatusUnsupported                 // GL_FRAMEBUFFER_UNSUPPORTED
	StatusIncompleteMultisample       // GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
	StatusIncompleteLayerTargets      // GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS
	// StatusUnknown is any status the driver returns that is not listed above.
	StatusUnknown
)

// String returns a human-readable reason.
func (s FramebufferStatus) String() string {
	switch s {
	case StatusUnbuilt:
		return "framebuffer not built"
	case StatusComplete:
		return "framebuffer complete"
	case StatusUndefined:
		return "default framebuffer does not exist"
	case StatusIncompleteAttachment:
		return "an attachment is incomplete or no longer exists"
	case StatusIncompleteMissingAttachment:
		return "no image is attached"
	case StatusIncompleteDrawBuffer:
		return "a draw buffer names an attachment point with no image"
	case StatusIncompleteReadBuffer:
		return "the read buffer names an attachment point with no image"
	case StatusUnsupported:
		return "the combination of internal formats is not supported"
	case StatusIncompleteMultisample:
		return "attachments disagree on sample count"
	case StatusIncompleteLayerTargets:
		return "attachments disagree on layering"
	case StatusUnknown:
		return "unknown framebuffer status"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

func framebufferStatus(e gl.Enum) FramebufferStatus {
	switch e {
	case gl.FramebufferComplete:
		return StatusComplete
	case gl.FramebufferUndefined:
		return StatusUndefined
	case gl.FramebufferIncompleteAttachment:
		return StatusIncompleteAttachment
	case gl.FramebufferIncompleteMissingAttachment:
		return StatusIncompleteMissingAttachment
	case gl.FramebufferIncompleteDrawBuffer:
		return StatusIncompleteDrawBuffer
	case gl.FramebufferIncompleteReadBuffer:
		return StatusIncompleteReadBuffer
	case gl.FramebufferUnsupported:
		return StatusUnsupported
	case gl.FramebufferIncompleteMultisample:
		return StatusIncompleteMultisample
	case gl.FramebufferIncompleteLayerTargets:
		return StatusIncompleteLayerTargets
	default:
		return StatusUnknown
	}
}

// Framebuffer is an offscreen render target: ordered color attachments
// plus a depth/stencil renderbuffer. Assign Attachments and Renderbuffer,
// then call Build; fragment shader output n writes color slot n.
type Framebuffer struct {
	Attachments  []*Texture
	Renderbuffer *Renderbuffer

	ctx         *Context
	id          uint32
	status      FramebufferStatus
	drawBuffers []gl.Enum
	wired       int
}

// CreateFramebuffer allocates an empty, unbuilt framebuffer.
func (c *Context) CreateFramebuffer() *Framebuffer {
	return &Framebuffer{ctx: c, id: c.gl.CreateFramebuffer()}
}

// DefaultFramebuffer returns the on-screen target. Drawing with a nil
// framebuffer is equivalent.
func (c *Context) DefaultFramebuffer() *Framebuffer {
	return &Framebuffer{ctx: c, status: StatusComplete}
}

// ID returns the GL framebuffer name; 0 for the default framebuffer and
// after Release.
func (fb *Framebuffer) ID() uint32 { return fb.id }

// Status returns the result of the last Build.
func (fb *Framebuffer) Status() FramebufferStatus { return fb.status }

// Complete reports whether the last Build produced a complete framebuffer.
func (fb *Framebuffer) Complete() bool { return fb.status == StatusComplete }

// DrawBuffers returns the color attachment points wired by the last Build,
// in slot order.
func (fb *Framebuffer) DrawBuffers() []gl.Enum {
	out := make([]gl.Enum, len(fb.drawBuffers))
	copy(out, fb.drawBuffers)
	return out
}

// Build wires the renderbuffer and every attachment and validates the
// result. Array textures take one color slot per layer; every other target
// takes one. Slots are numbered in attachment order. Calling Build again
// after changing the attachments wires them from scratch.
//
// Build leaves the framebuffer bound.
func (fb *Framebuffer) Build() {
	c := fb.ctx
	rb := fb.Renderbuffer
	if !rb.Valid() || !c.gl.IsRenderbuffer(rb.id) {
		c.diag.warnf("framebuffer %d: build skipped, no valid depth/stencil renderbuffer", fb.id)
		return
	}

	c.state.bindFramebuffer(c.gl, fb.id)
	c.gl.FramebufferRenderbuffer(gl.Framebuffer, gl.DepthStencilAttachment, gl.Renderbuffer, rb.id)

	slot := 0
	for _, tex := range fb.Attachments {
		if tex == nil {
			continue
		}
		switch {
		case tex.target.IsArray():
			for layer := range tex.depth {
				c.gl.FramebufferTextureLayer(gl.Framebuffer, colorAttachment(slot), tex.id, 0, layer)
				slot++
			}
		case tex.target.IsCubeFace():
			c.gl.FramebufferTexture2D(gl.Framebuffer, colorAttachment(slot), tex.target.image(), tex.id, 0)
			slot++
		default:
			c.gl.FramebufferTexture(gl.Framebuffer, colorAttachment(slot), tex.id, 0)
			slot++
		}
	}
	for s := slot; s < fb.wired; s++ {
		c.gl.FramebufferTexture(gl.Framebuffer, colorAttachment(s), 0, 0)
	}
	fb.wired = slot

	if limit := c.limits.MaxColorAttachments; slot > limit {
		c.diag.warnf("framebuffer %d: %d color attachments exceed the limit of %d", fb.id, slot, limit)
	}

	fb.drawBuffers = make([]gl.Enum, slot)
	for s := range slot {
		fb.drawBuffers[s] = colorAttachment(s)
	}
	if slot == 0 {
		c.gl.DrawBuffers([]gl.Enum{gl.None})
	} else {
		c.gl.DrawBuffers(fb.drawBuffers)
	}

	fb.status = framebufferStatus(c.gl.CheckFramebufferStatus(gl.Framebuffer))
	if fb.status != StatusComplete {
		c.diag.errorf("framebuffer %d: incomplete: %s", fb.id, fb.status)
	}
}

func colorAttachment(slot int) gl.Enum {
	return gl.ColorAttachment0 + gl.Enum(slot)
}

// Read returns a width x height block of color slot attachment, bottom row
// first. On the default framebuffer the back buffer is read and attachment
// is ignored.
func (fb *Framebuffer) Read(attachment, width, height int, format ImageFormat, typ ImageType) []byte {
	c := fb.ctx
	data := make([]byte, width*height*PixelSize(format, typ))
	c.state.bindFramebuffer(c.gl, fb.id)
	if fb.id == 0 {
		c.gl.ReadBuffer(gl.Back)
	} else {
		c.gl.ReadBuffer(colorAttachment(attachment))
	}
	c.gl.ReadPixels(0, 0, width, height, format.glFormat(), typ.glType(), data)
	c.state.bindFramebuffer(c.gl, 0)
	return data
}

// ReadImage returns a color slot as 8-bit RGBA, flipped so that the top
// row of the rendered image is the first image row.
func (fb *Framebuffer) ReadImage(attachment, width, height int) *image.RGBA {
	data := fb.Read(attachment, width, height, ImageRGBA, ImageUnsignedByte)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := range height {
		copy(img.Pix[y*stride:(y+1)*stride], data[(height-1-y)*stride:])
	}
	return img
}

// Release deletes the framebuffer. Attachments and the renderbuffer are
// not released. Calling Release more than once is a no-op, as is releasing
// the default framebuffer.
func (fb *Framebuffer) Release() {
	if fb == nil || fb.id == 0 {
		return
	}
	if fb.ctx.gl.IsFramebuffer(fb.id) {
		fb.ctx.gl.DeleteFramebuffer(fb.id)
	}
	fb.ctx.state.forgetFramebuffer(fb.id)
	fb.id = 0
	fb.status = StatusUnbuilt
	fb.wired = 0
}
