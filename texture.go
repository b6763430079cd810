package lofx

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/lofx/gl"
)

// TextureDescriptor describes a texture to create.
type TextureDescriptor struct {
	Width  int
	Height int
	// Depth is the depth of a 3D texture or the layer count of an array
	// texture. Zero is treated as 1.
	Depth int
	// Levels is the number of mipmap levels. Zero is treated as 1.
	Levels int
	Target TextureTarget
	Format TextureFormat
	// Sampler is bound with the texture at draw time. Nil binds no sampler.
	Sampler *TextureSampler
}

// TextureRegion selects a box of one mipmap level.
type TextureRegion struct {
	Level   int
	X, Y, Z int
	Width   int
	Height  int
	Depth   int
}

// Texture is an image with immutable storage.
type Texture struct {
	ctx     *Context
	id      uint32
	width   int
	height  int
	depth   int
	levels  int
	target  TextureTarget
	format  TextureFormat
	sampler *TextureSampler
}

// CreateTexture allocates storage for every level of a texture. A texture
// created for a cube map face allocates the whole cube; its target selects
// the face Send writes and a framebuffer attaches.
func (c *Context) CreateTexture(desc TextureDescriptor) *Texture {
	t := &Texture{
		ctx:     c,
		width:   max(desc.Width, 1),
		height:  max(desc.Height, 1),
		depth:   max(desc.Depth, 1),
		levels:  max(desc.Levels, 1),
		target:  desc.Target,
		format:  desc.Format,
		sampler: desc.Sampler,
	}
	t.id = c.gl.CreateTexture()
	t.bind()

	target, format := t.target.binding(), t.format.glFormat()
	switch t.target {
	case Texture1D:
		c.gl.TexStorage1D(target, t.levels, format, t.width)
	case Texture1DArray:
		c.gl.TexStorage2D(target, t.levels, format, t.width, t.depth)
	case Texture3D, Texture2DArray:
		c.gl.TexStorage3D(target, t.levels, format, t.width, t.height, t.depth)
	default:
		c.gl.TexStorage2D(target, t.levels, format, t.width, t.height)
	}
	if t.levels == 1 {
		// The default minification filter expects mipmaps.
		c.gl.TexParameteri(target, gl.TextureMinFilter, int32(gl.Linear))
	}
	return t
}

// bind binds the texture on unit 0 for uploads and reads.
func (t *Texture) bind() {
	t.ctx.state.bindTexture(t.ctx.gl, 0, t.target.binding(), t.id)
}

// ID returns the GL texture name, 0 once released.
func (t *Texture) ID() uint32 { return t.id }

// Valid reports whether the texture has not been released.
func (t *Texture) Valid() bool { return t != nil && t.id != 0 }

// Width returns the width of level 0 in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the height of level 0, 1 for 1D targets.
func (t *Texture) Height() int { return t.height }

// Depth returns the depth of a 3D texture or the layer count of an array.
func (t *Texture) Depth() int { return t.depth }

// Levels returns the number of mip levels allocated.
func (t *Texture) Levels() int { return t.levels }

// Target returns the target the texture was created with.
func (t *Texture) Target() TextureTarget { return t.target }

// Format returns the internal format.
func (t *Texture) Format() TextureFormat { return t.format }

// Sampler returns the sampler bound with the texture at draw time, or nil.
func (t *Texture) Sampler() *TextureSampler { return t.sampler }

// SetSampler replaces the sampler bound with the texture at draw time.
func (t *Texture) SetSampler(s *TextureSampler) { t.sampler = s }

// Size returns the width, height and depth of level 0.
func (t *Texture) Size() (w, h, d int) { return t.width, t.height, t.depth }

// Region returns the whole of level 0 as a region.
func (t *Texture) Region() TextureRegion {
	return TextureRegion{Width: t.width, Height: t.height, Depth: t.depth}
}

// Send replaces level 0 with tightly packed pixels.
func (t *Texture) Send(data []byte, format ImageFormat, typ ImageType) {
	t.SendRegion(t.Region(), data, format, typ)
}

// SendRegion writes tightly packed pixels into region r. Data shorter than
// the region is dropped with a Warn diagnostic.
func (t *Texture) SendRegion(r TextureRegion, data []byte, format ImageFormat, typ ImageType) {
	if need := t.regionBytes(r, format, typ); len(data) < need {
		t.ctx.diag.warnf("texture %d: %d bytes of pixel data for a region of %d bytes", t.id, len(data), need)
		return
	}
	t.bind()
	f, ty := format.glFormat(), typ.glType()
	target := t.target.image()
	switch t.target {
	case Texture1D:
		t.ctx.gl.TexSubImage1D(target, r.Level, r.X, r.Width, f, ty, data)
	case Texture1DArray:
		t.ctx.gl.TexSubImage2D(target, r.Level, r.X, r.Z, r.Width, r.Depth, f, ty, data)
	case Texture3D, Texture2DArray:
		t.ctx.gl.TexSubImage3D(target, r.Level, r.X, r.Y, r.Z, r.Width, r.Height, r.Depth, f, ty, data)
	default:
		t.ctx.gl.TexSubImage2D(target, r.Level, r.X, r.Y, r.Width, r.Height, f, ty, data)
	}
}

func (t *Texture) regionBytes(r TextureRegion, format ImageFormat, typ ImageType) int {
	px := PixelSize(format, typ)
	switch t.target {
	case Texture1D:
		return r.Width * px
	case Texture1DArray:
		return r.Width * r.Depth * px
	case Texture3D, Texture2DArray:
		return r.Width * r.Height * r.Depth * px
	default:
		return r.Width * r.Height * px
	}
}

// SendImage uploads img to level 0 as 8-bit RGBA, scaling it to the texture
// size when the bounds differ. The first image row becomes texture row 0.
// Only 2D-shaped targets accept images.
func (t *Texture) SendImage(img image.Image) {
	if !t.planar() {
		t.ctx.diag.warnf("texture %d: cannot send an image to a %s texture", t.id, t.target)
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	if img.Bounds().Size() == dst.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	t.Send(dst.Pix, ImageRGBA, ImageUnsignedByte)
}

func (t *Texture) planar() bool {
	return t.target == Texture2D || t.target == TextureRectangle || t.target.IsCubeFace()
}

// Read returns level 0 as tightly packed pixels.
func (t *Texture) Read(format ImageFormat, typ ImageType) []byte {
	data := make([]byte, t.regionBytes(t.Region(), format, typ))
	t.bind()
	t.ctx.gl.GetTexImage(t.target.image(), 0, format.glFormat(), typ.glType(), data)
	return data
}

// ReadImage returns level 0 of a 2D-shaped texture as 8-bit RGBA, with
// texture row 0 as the first image row.
func (t *Texture) ReadImage() *image.RGBA {
	if !t.planar() {
		t.ctx.diag.warnf("texture %d: cannot read a %s texture as an image", t.id, t.target)
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	img.Pix = t.Read(ImageRGBA, ImageUnsignedByte)
	return img
}

// Release deletes the texture. Its sampler is not released. Calling Release
// more than once is a no-op.
func (t *Texture) Release() {
	if t == nil || t.id == 0 {
		return
	}
	if t.ctx.gl.IsTexture(t.id) {
		t.ctx.gl.DeleteTexture(t.id)
	}
	t.ctx.state.forgetTexture(t.id)
	t.id = 0
}
