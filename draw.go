package lofx

import (
	"fmt"
	"image"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/lofx/gl"
)

// CullFace selects which faces are discarded when culling is enabled.
type CullFace uint8

const (
	// CullBack discards back faces.
	CullBack CullFace = iota
	// CullFront discards front faces.
	CullFront
	// CullBoth discards every polygon; points and lines are still drawn.
	CullBoth
)

// String returns the face name.
func (f CullFace) String() string {
	switch f {
	case CullBack:
		return "Back"
	case CullFront:
		return "Front"
	case CullBoth:
		return "Both"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

func (f CullFace) glMode() gl.Enum {
	switch f {
	case CullFront:
		return gl.Front
	case CullBoth:
		return gl.FrontAndBack
	default:
		return gl.Back
	}
}

// GraphicsProperties is the fixed-function state applied by every draw.
type GraphicsProperties struct {
	DepthTest   bool
	StencilTest bool
	Culling     bool
	CullFace    CullFace
	FrontFace   gputypes.FrontFace
}

// DefaultGraphicsProperties enables depth testing with counter-clockwise
// front faces and culling off.
func DefaultGraphicsProperties() GraphicsProperties {
	return GraphicsProperties{
		DepthTest: true,
		CullFace:  CullBack,
		FrontFace: gputypes.FrontFaceCCW,
	}
}

func frontFace(f gputypes.FrontFace) gl.Enum {
	if f == gputypes.FrontFaceCW {
		return gl.CW
	}
	return gl.CCW
}

// Primitive is the primitive assembly mode of a draw.
type Primitive uint8

const (
	Triangles     Primitive = iota // GL_TRIANGLES
	TriangleStrip                  // GL_TRIANGLE_STRIP
	TriangleFan                    // GL_TRIANGLE_FAN
	Points                         // GL_POINTS
	Lines                          // GL_LINES
	LineStrip                      // GL_LINE_STRIP
	LineLoop                       // GL_LINE_LOOP
	// Patches feeds tessellation stages; the pipeline needs a tessellation
	// control or evaluation program.
	Patches
)

// String returns the mode name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case LineLoop:
		return "LineLoop"
	case Patches:
		return "Patches"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

func (p Primitive) glMode() gl.Enum {
	switch p {
	case TriangleStrip:
		return gl.TriangleStrip
	case TriangleFan:
		return gl.TriangleFan
	case Points:
		return gl.Points
	case Lines:
		return gl.Lines
	case LineStrip:
		return gl.LineStrip
	case LineLoop:
		return gl.LineLoop
	case Patches:
		return gl.Patches
	default:
		return gl.Triangles
	}
}

// IndexRef selects the indices of a draw: Accessor.Count indices of
// Accessor.Type read from Accessor's buffer, starting Start bytes into it.
type IndexRef struct {
	Accessor BufferAccessor
	Start    int
}

// IndexFormat returns the gputypes index format of the accessor's type.
// Byte indices have no equivalent.
func (r IndexRef) IndexFormat() (gputypes.IndexFormat, bool) {
	switch r.Accessor.Type {
	case AttribUnsignedShort:
		return gputypes.IndexFormatUint16, true
	case AttribUnsignedInt:
		return gputypes.IndexFormatUint32, true
	}
	var zero gputypes.IndexFormat
	return zero, false
}

// DrawProperties describes one indexed draw.
type DrawProperties struct {
	// Target is the framebuffer drawn into; nil draws on screen.
	Target     *Framebuffer
	Pipeline   *Pipeline
	Attributes *AttributePack
	Indices    IndexRef
	// Textures maps sampler uniform names to textures. Names are assigned
	// texture units in ascending order starting at 0.
	Textures  map[string]*Texture
	Graphics  GraphicsProperties
	Primitive Primitive
	// Viewport is applied before drawing when not empty.
	Viewport image.Rectangle
}

// Draw binds everything p describes and issues one indexed draw call.
// Afterwards the default framebuffer is bound and texture unit 0 is active.
//
// Indices must be unsigned bytes, shorts or ints; any other type is reported
// and nothing is drawn. Draw does not validate the rest of p: a nil pipeline
// or a released buffer is passed through to GL.
func (c *Context) Draw(p *DrawProperties) {
	if _, ok := p.Indices.IndexFormat(); !ok && p.Indices.Accessor.Type != AttribUnsignedByte {
		c.diag.warnf("draw: %s is not an index type", p.Indices.Accessor.Type)
		return
	}
	f := c.gl

	var target uint32
	if p.Target != nil {
		target = p.Target.id
	}
	c.state.bindFramebuffer(f, target)
	if !p.Viewport.Empty() {
		c.state.setViewport(f, p.Viewport.Min.X, p.Viewport.Min.Y, p.Viewport.Dx(), p.Viewport.Dy())
	}

	g := p.Graphics
	c.state.set(f, gl.DepthTest, g.DepthTest)
	c.state.set(f, gl.CullFace, g.Culling)
	c.state.set(f, gl.StencilTest, g.StencilTest)
	c.state.setFrontFace(f, frontFace(g.FrontFace))
	c.state.setCullFace(f, g.CullFace.glMode())

	if p.Pipeline != nil {
		p.Pipeline.Use()
	}
	c.bindAttributes(p.Attributes)

	var elements uint32
	if b := p.Indices.Accessor.View.Buffer; b != nil {
		elements = b.id
	}
	c.state.bindBuffer(f, gl.ElementArrayBuffer, elements)

	c.bindTextures(p.Pipeline, p.Textures)

	f.DrawElements(p.Primitive.glMode(), p.Indices.Accessor.Count, p.Indices.Accessor.Type.glType(), p.Indices.Start)

	c.state.bindFramebuffer(f, 0)
	c.state.activeTexture(f, 0)
}

func (c *Context) bindTextures(pipeline *Pipeline, textures map[string]*Texture) {
	var unit uint32
	for _, name := range slices.Sorted(maps.Keys(textures)) {
		tex := textures[name]
		if tex == nil {
			continue
		}
		if units := c.limits.MaxTextureUnits; units > 0 && unit >= uint32(units) {
			c.diag.warnf("draw: %d textures exceed %d texture units, %q and later are not bound", len(textures), units, name)
			return
		}
		c.state.activeTexture(c.gl, unit)
		var sampler uint32
		if tex.sampler.Valid() {
			sampler = tex.sampler.id
		}
		c.state.bindSampler(c.gl, unit, sampler)
		if pipeline != nil {
			pipeline.broadcast(Int(name, int32(unit)))
		}
		c.state.bindTexture(c.gl, unit, tex.target.binding(), tex.id)
		unit++
	}
}

// ClearPlanes selects the buffers Clear resets.
type ClearPlanes uint8

const (
	PlaneColor   ClearPlanes = 1 << iota // color attachments
	PlaneDepth                           // depth buffer
	PlaneStencil                         // stencil buffer
)

func (p ClearPlanes) bits() gl.Bitfield {
	var b gl.Bitfield
	if p&PlaneColor != 0 {
		b |= gl.ColorBufferBit
	}
	if p&PlaneDepth != 0 {
		b |= gl.DepthBufferBit
	}
	if p&PlaneStencil != 0 {
		b |= gl.StencilBufferBit
	}
	return b
}

// ClearProperties are the values Clear writes.
type ClearProperties struct {
	Color   mgl32.Vec4
	Depth   float64
	Stencil int32
	Planes  ClearPlanes
}

// DefaultClearProperties clears color to transparent black and depth to 1.
func DefaultClearProperties() ClearProperties {
	return ClearProperties{Depth: 1, Planes: PlaneColor | PlaneDepth}
}

// Clear resets the selected planes of fb, or of the screen when fb is nil,
// then binds the default framebuffer.
func (c *Context) Clear(fb *Framebuffer, props ClearProperties) {
	f := c.gl
	var target uint32
	if fb != nil {
		target = fb.id
	}
	c.state.bindFramebuffer(f, target)
	f.ClearColor(props.Color[0], props.Color[1], props.Color[2], props.Color[3])
	f.ClearDepth(props.Depth)
	f.ClearStencil(props.Stencil)
	f.Clear(props.Planes.bits())
	c.state.bindFramebuffer(f, 0)
}
