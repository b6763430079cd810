package lofx

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/lofx/gl"
	"github.com/gogpu/lofx/gl/gltest"
)

func colorTarget(c *Context, target TextureTarget, w, h, depth int) *Texture {
	return c.CreateTexture(TextureDescriptor{
		Width:  w,
		Height: h,
		Depth:  depth,
		Target: target,
		Format: FormatRGBA8,
	})
}

func TestFramebufferBuildArrayLayers(t *testing.T) {
	c, rec, log := newTestContext(t)
	first := colorTarget(c, Texture2D, 4, 4, 1)
	layers := colorTarget(c, Texture2DArray, 4, 4, 3)
	last := colorTarget(c, Texture2D, 4, 4, 1)
	rb := c.CreateRenderbuffer(4, 4)

	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{first, layers, last}
	fb.Renderbuffer = rb
	fb.Build()

	require.True(t, fb.Complete(), "status: %s", fb.Status())
	assert.Empty(t, log.entries)

	want := map[gl.Enum]gltest.Attachment{
		gl.DepthStencilAttachment: {Renderbuffer: rb.ID(), Layer: -1},
		gl.ColorAttachment0:       {Texture: first.ID(), Layer: -1},
		gl.ColorAttachment0 + 1:   {Texture: layers.ID(), Layer: 0},
		gl.ColorAttachment0 + 2:   {Texture: layers.ID(), Layer: 1},
		gl.ColorAttachment0 + 3:   {Texture: layers.ID(), Layer: 2},
		gl.ColorAttachment0 + 4:   {Texture: last.ID(), Layer: -1},
	}
	assert.Equal(t, want, rec.Attachments(fb.ID()))

	slots := []gl.Enum{
		gl.ColorAttachment0,
		gl.ColorAttachment0 + 1,
		gl.ColorAttachment0 + 2,
		gl.ColorAttachment0 + 3,
		gl.ColorAttachment0 + 4,
	}
	assert.Equal(t, slots, rec.FramebufferDrawBuffers(fb.ID()))
	assert.Equal(t, slots, fb.DrawBuffers())
	assert.Equal(t, fb.ID(), rec.BoundFramebuffer(), "Build leaves the framebuffer bound")
}

func TestFramebufferBuildWithoutRenderbuffer(t *testing.T) {
	c, rec, log := newTestContext(t)
	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{colorTarget(c, Texture2D, 4, 4, 1)}
	rec.Reset()

	fb.Build()

	assert.Equal(t, 1, log.count(LevelWarn))
	assert.Len(t, log.entries, 1)
	assert.Equal(t, StatusUnbuilt, fb.Status())
	assert.False(t, fb.Complete())
	assert.Equal(t, 0, rec.Count("FramebufferTexture"))
	assert.Equal(t, 0, rec.Count("CheckFramebufferStatus"))
}

func TestFramebufferBuildWithReleasedRenderbuffer(t *testing.T) {
	c, _, log := newTestContext(t)
	rb := c.CreateRenderbuffer(4, 4)
	rb.Release()

	fb := c.CreateFramebuffer()
	fb.Renderbuffer = rb
	fb.Build()

	assert.Equal(t, 1, log.count(LevelWarn))
	assert.Equal(t, StatusUnbuilt, fb.Status())
}

func TestFramebufferAttachmentOverflow(t *testing.T) {
	rec := gltest.New()
	rec.MaxColorAttachments = 2
	c, _, log := newTestContextOn(t, rec)

	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{
		colorTarget(c, Texture2D, 4, 4, 1),
		colorTarget(c, Texture2DArray, 4, 4, 3),
	}
	fb.Renderbuffer = c.CreateRenderbuffer(4, 4)
	fb.Build()

	assert.Equal(t, 1, log.count(LevelWarn))
	e, ok := log.find("exceed")
	require.True(t, ok)
	assert.Contains(t, e.message, "4 color attachments")
	assert.Len(t, fb.DrawBuffers(), 4)
}

func TestFramebufferIncomplete(t *testing.T) {
	c, rec, log := newTestContext(t)
	rec.FramebufferStatus = gl.FramebufferUnsupported

	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{colorTarget(c, Texture2D, 4, 4, 1)}
	fb.Renderbuffer = c.CreateRenderbuffer(4, 4)
	fb.Build()

	assert.Equal(t, StatusUnsupported, fb.Status())
	require.Equal(t, 1, log.count(LevelError))
	e, _ := log.find("incomplete")
	assert.Contains(t, e.message, StatusUnsupported.String())
}

func TestFramebufferRebuildDetachesStaleSlots(t *testing.T) {
	c, rec, _ := newTestContext(t)
	a := colorTarget(c, Texture2D, 4, 4, 1)
	b := colorTarget(c, Texture2D, 4, 4, 1)

	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{a, b}
	fb.Renderbuffer = c.CreateRenderbuffer(4, 4)
	fb.Build()

	fb.Attachments = []*Texture{b}
	fb.Build()

	got := rec.Attachments(fb.ID())
	assert.Equal(t, b.ID(), got[gl.ColorAttachment0].Texture)
	assert.NotContains(t, got, gl.ColorAttachment0+1)
	assert.Equal(t, []gl.Enum{gl.ColorAttachment0}, fb.DrawBuffers())
	assert.True(t, fb.Complete())
}

func TestFramebufferDepthOnly(t *testing.T) {
	c, rec, log := newTestContext(t)

	fb := c.CreateFramebuffer()
	fb.Renderbuffer = c.CreateRenderbuffer(4, 4)
	fb.Build()

	calls := rec.CallsNamed("DrawBuffers")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{[]gl.Enum{gl.None}}, calls[0].Args)
	assert.Empty(t, fb.DrawBuffers())
	assert.True(t, fb.Complete())
	assert.Empty(t, log.entries)
}

func TestFramebufferCubeFace(t *testing.T) {
	c, rec, _ := newTestContext(t)
	face := colorTarget(c, TextureCubeMapNegativeY, 4, 4, 1)

	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{face}
	fb.Renderbuffer = c.CreateRenderbuffer(4, 4)
	fb.Build()

	a := rec.Attachments(fb.ID())[gl.ColorAttachment0]
	assert.Equal(t, face.ID(), a.Texture)
	assert.Equal(t, gl.TextureCubeMapNegativeY, a.TexTarget)
	assert.True(t, fb.Complete())
}

func TestFramebufferReadImageFlipsRows(t *testing.T) {
	c, rec, _ := newTestContext(t)
	tex := colorTarget(c, Texture2D, 1, 2, 1)
	// Row 0 (bottom in GL) is red, row 1 is blue.
	tex.Send([]byte{255, 0, 0, 255, 0, 0, 255, 255}, ImageRGBA, ImageUnsignedByte)

	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{tex}
	fb.Renderbuffer = c.CreateRenderbuffer(1, 2)
	fb.Build()

	img := fb.ReadImage(0, 1, 2)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
	assert.Equal(t, uint32(0), rec.BoundFramebuffer())
}

func TestDefaultFramebuffer(t *testing.T) {
	c, rec, _ := newTestContext(t)
	fb := c.DefaultFramebuffer()

	assert.Equal(t, uint32(0), fb.ID())
	assert.True(t, fb.Complete())

	fb.Release()
	assert.Equal(t, 0, rec.Count("DeleteFramebuffer"))
}

func TestFramebufferRelease(t *testing.T) {
	c, rec, _ := newTestContext(t)
	tex := colorTarget(c, Texture2D, 4, 4, 1)
	rb := c.CreateRenderbuffer(4, 4)
	fb := c.CreateFramebuffer()
	fb.Attachments = []*Texture{tex}
	fb.Renderbuffer = rb
	fb.Build()

	fb.Release()
	fb.Release()

	assert.Equal(t, 1, rec.Count("DeleteFramebuffer"))
	assert.Equal(t, StatusUnbuilt, fb.Status())
	assert.True(t, tex.Valid())
	assert.True(t, rb.Valid())
}

func TestFramebufferStatusString(t *testing.T) {
	assert.Equal(t, "framebuffer complete", StatusComplete.String())
	assert.Equal(t, "Unknown(99)", FramebufferStatus(99).String())
	assert.Equal(t, StatusIncompleteDrawBuffer, framebufferStatus(gl.FramebufferIncompleteDrawBuffer))
	assert.Equal(t, StatusUnknown, framebufferStatus(gl.Enum(1)))
}
