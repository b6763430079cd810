package lofx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/lofx/gl"
)

// MipmapFilter selects how minification chooses between mipmap levels.
type MipmapFilter uint8

const (
	// MipmapNone samples level 0 only.
	MipmapNone MipmapFilter = iota
	// MipmapNearest samples the closest level.
	MipmapNearest
	// MipmapLinear blends the two closest levels.
	MipmapLinear
)

// String returns the filter name.
func (m MipmapFilter) String() string {
	switch m {
	case MipmapNone:
		return "None"
	case MipmapNearest:
		return "Nearest"
	case MipmapLinear:
		return "Linear"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// SamplerParameters configures a TextureSampler. Filter, address and
// compare modes use the gputypes vocabulary.
type SamplerParameters struct {
	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode
	MipmapFilter MipmapFilter

	// AddressModeU, V and W map to the S, T and R wrap modes.
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	AddressModeW gputypes.AddressMode

	// ClampToBorder overrides all address modes with clamping to
	// BorderColor.
	ClampToBorder bool
	BorderColor   mgl32.Vec4

	LodMinClamp float32
	LodMaxClamp float32

	// MaxAnisotropy above 1 enables anisotropic filtering.
	MaxAnisotropy uint16

	// CompareEnabled turns the sampler into a depth comparison sampler
	// using Compare.
	CompareEnabled bool
	Compare        gputypes.CompareFunction
}

// DefaultSamplerParameters returns bilinear filtering without mipmaps,
// clamped to the edge.
func DefaultSamplerParameters() SamplerParameters {
	return SamplerParameters{
		MagFilter:     gputypes.FilterModeLinear,
		MinFilter:     gputypes.FilterModeLinear,
		MipmapFilter:  MipmapNone,
		AddressModeU:  gputypes.AddressModeClampToEdge,
		AddressModeV:  gputypes.AddressModeClampToEdge,
		AddressModeW:  gputypes.AddressModeClampToEdge,
		LodMinClamp:   0,
		LodMaxClamp:   1000,
		MaxAnisotropy: 1,
		Compare:       gputypes.CompareFunctionAlways,
	}
}

// TextureSampler is a sampler object bound alongside a texture at draw
// time. One sampler may serve any number of textures.
type TextureSampler struct {
	ctx    *Context
	id     uint32
	params SamplerParameters
}

// CreateTextureSampler creates a sampler object from p.
func (c *Context) CreateTextureSampler(p SamplerParameters) *TextureSampler {
	s := &TextureSampler{ctx: c, id: c.gl.CreateSampler(), params: p}
	f := c.gl

	f.SamplerParameteri(s.id, gl.TextureMagFilter, int32(magFilter(p.MagFilter)))
	f.SamplerParameteri(s.id, gl.TextureMinFilter, int32(minFilter(p.MinFilter, p.MipmapFilter)))

	wrap := [3]gl.Enum{addressMode(p.AddressModeU), addressMode(p.AddressModeV), addressMode(p.AddressModeW)}
	if p.ClampToBorder {
		wrap = [3]gl.Enum{gl.ClampToBorder, gl.ClampToBorder, gl.ClampToBorder}
		f.SamplerParameterfv(s.id, gl.TextureBorderColor, p.BorderColor[:])
	}
	f.SamplerParameteri(s.id, gl.TextureWrapS, int32(wrap[0]))
	f.SamplerParameteri(s.id, gl.TextureWrapT, int32(wrap[1]))
	f.SamplerParameteri(s.id, gl.TextureWrapR, int32(wrap[2]))

	f.SamplerParameterf(s.id, gl.TextureMinLOD, p.LodMinClamp)
	f.SamplerParameterf(s.id, gl.TextureMaxLOD, p.LodMaxClamp)
	if p.MaxAnisotropy > 1 {
		f.SamplerParameterf(s.id, gl.TextureMaxAnisotropy, float32(p.MaxAnisotropy))
	}
	if p.CompareEnabled {
		f.SamplerParameteri(s.id, gl.TextureCompareMode, int32(gl.CompareRefToTexture))
		f.SamplerParameteri(s.id, gl.TextureCompareFunc, int32(compareFunction(p.Compare)))
	}
	return s
}

// ID returns the GL sampler name, 0 once released.
func (s *TextureSampler) ID() uint32 { return s.id }

// Valid reports whether the sampler has not been released.
func (s *TextureSampler) Valid() bool { return s != nil && s.id != 0 }

// Parameters returns the parameters the sampler was created with.
func (s *TextureSampler) Parameters() SamplerParameters { return s.params }

// Release deletes the sampler. Calling Release more than once is a no-op.
func (s *TextureSampler) Release() {
	if s == nil || s.id == 0 {
		return
	}
	if s.ctx.gl.IsSampler(s.id) {
		s.ctx.gl.DeleteSampler(s.id)
	}
	s.ctx.state.forgetSampler(s.id)
	s.id = 0
}

func magFilter(f gputypes.FilterMode) gl.Enum {
	if f == gputypes.FilterModeNearest {
		return gl.Nearest
	}
	return gl.Linear
}

func minFilter(f gputypes.FilterMode, m MipmapFilter) gl.Enum {
	nearest := f == gputypes.FilterModeNearest
	switch m {
	case MipmapNearest:
		if nearest {
			return gl.NearestMipmapNearest
		}
		return gl.LinearMipmapNearest
	case MipmapLinear:
		if nearest {
			return gl.NearestMipmapLinear
		}
		return gl.LinearMipmapLinear
	}
	if nearest {
		return gl.Nearest
	}
	return gl.Linear
}

func addressMode(a gputypes.AddressMode) gl.Enum {
	switch a {
	case gputypes.AddressModeRepeat:
		return gl.Repeat
	case gputypes.AddressModeMirrorRepeat:
		return gl.MirroredRepeat
	default:
		return gl.ClampToEdge
	}
}

func compareFunction(c gputypes.CompareFunction) gl.Enum {
	switch c {
	case gputypes.CompareFunctionNever:
		return gl.Never
	case gputypes.CompareFunctionLess:
		return gl.Less
	case gputypes.CompareFunctionEqual:
		return gl.Equal
	case gputypes.CompareFunctionLessEqual:
		return gl.Lequal
	case gputypes.CompareFunctionGreater:
		return gl.Greater
	case gputypes.CompareFunctionNotEqual:
		return gl.Notequal
	case gputypes.CompareFunctionGreaterEqual:
		return gl.Gequal
	default:
		return gl.Always
	}
}
