package lofx

import (
	"fmt"

	"github.com/gogpu/lofx/gl"
)

// TextureTarget is the shape of a texture.
type TextureTarget uint8

const (
	Texture1D        TextureTarget = iota // GL_TEXTURE_1D
	Texture2D                             // GL_TEXTURE_2D
	Texture1DArray                        // GL_TEXTURE_1D_ARRAY
	TextureRectangle                      // GL_TEXTURE_RECTANGLE

	// Cube map faces, in GL face order.
	TextureCubeMapPositiveX
	TextureCubeMapNegativeX
	TextureCubeMapPositiveY
	TextureCubeMapNegativeY
	TextureCubeMapPositiveZ
	TextureCubeMapNegativeZ

	Texture3D      // GL_TEXTURE_3D
	Texture2DArray // GL_TEXTURE_2D_ARRAY
)

var textureTargets = [...]struct {
	name string
	gl   gl.Enum
}{
	Texture1D:               {"1D", gl.Texture1D},
	Texture2D:               {"2D", gl.Texture2D},
	Texture1DArray:          {"1DArray", gl.Texture1DArray},
	TextureRectangle:        {"Rectangle", gl.TextureRectangle},
	TextureCubeMapPositiveX: {"CubeMapPositiveX", gl.TextureCubeMapPositiveX},
	TextureCubeMapNegativeX: {"CubeMapNegativeX", gl.TextureCubeMapNegativeX},
	TextureCubeMapPositiveY: {"CubeMapPositiveY", gl.TextureCubeMapPositiveY},
	TextureCubeMapNegativeY: {"CubeMapNegativeY", gl.TextureCubeMapNegativeY},
	TextureCubeMapPositiveZ: {"CubeMapPositiveZ", gl.TextureCubeMapPositiveZ},
	TextureCubeMapNegativeZ: {"CubeMapNegativeZ", gl.TextureCubeMapNegativeZ},
	Texture3D:               {"3D", gl.Texture3D},
	Texture2DArray:          {"2DArray", gl.Texture2DArray},
}

// String returns the target name.
func (t TextureTarget) String() string {
	if int(t) < len(textureTargets) {
		return textureTargets[t].name
	}
	return fmt.Sprintf("Unknown(%d)", t)
}

// IsArray reports whether t is a layered array target.
func (t TextureTarget) IsArray() bool {
	return t == Texture1DArray || t == Texture2DArray
}

// IsCubeFace reports whether t is one face of a cube map.
func (t TextureTarget) IsCubeFace() bool {
	return t >= TextureCubeMapPositiveX && t <= TextureCubeMapNegativeZ
}

// image returns the target used for uploads, reads and face attachments.
func (t TextureTarget) image() gl.Enum {
	if int(t) < len(textureTargets) {
		return textureTargets[t].gl
	}
	return gl.Texture2D
}

// binding returns the target the texture object is bound to.
func (t TextureTarget) binding() gl.Enum {
	if t.IsCubeFace() {
		return gl.TextureCubeMap
	}
	return t.image()
}

// TextureFormat is a texture internal format.
//
// The unsized base formats (FormatRed, FormatRGBA, FormatDepthComponent, ...)
// are allocated with an 8-bit (color) or 24-bit (depth) sized equivalent,
// since immutable storage requires sized formats.
type TextureFormat uint8

// Texture formats. Sized formats are named after their GL internal format,
// so FormatRGBA16F is GL_RGBA16F. The unsized base formats come first.
const (
	FormatDepthComponent TextureFormat = iota
	FormatDepthStencil
	FormatRed
	FormatRG
	FormatRGB
	FormatRGBA
	FormatR8
	FormatR8Snorm
	FormatR16
	FormatR16Snorm
	FormatRG8
	FormatRG8Snorm
	FormatRG16
	FormatRG16Snorm
	FormatR3G3B2
	FormatRGB4
	FormatRGB5
	FormatRGB8
	FormatRGB8Snorm
	FormatRGB10
	FormatRGB12
	FormatRGB16Snorm
	FormatRGBA2
	FormatRGBA4
	FormatRGB5A1
	FormatRGBA8
	FormatRGBA8Snorm
	FormatRGB10A2
	FormatRGB10A2UI
	FormatRGBA12
	FormatRGBA16
	FormatSRGB8
	FormatSRGB8Alpha8
	FormatR16F
	FormatRG16F
	FormatRGB16F
	FormatRGBA16F
	FormatR32F
	FormatRG32F
	FormatRGB32F
	FormatRGBA32F
	FormatR11FG11FB10F
	FormatRGB9E5
	FormatR8I
	FormatR8UI
	FormatR16I
	FormatR16UI
	FormatR32I
	FormatR32UI
	FormatRG8I
	FormatRG8UI
	FormatRG16I
	FormatRG16UI
	FormatRG32I
	FormatRG32UI
	FormatRGB8I
	FormatRGB8UI
	FormatRGB16I
	FormatRGB16UI
	FormatRGB32I
	FormatRGB32UI
	FormatRGBA8I
	FormatRGBA8UI
	FormatRGBA16I
	FormatRGBA16UI
	FormatRGBA32I
	FormatRGBA32UI
	FormatCompressedRedRGTC1
	FormatCompressedSignedRedRGTC1
	FormatCompressedRGRGTC2
	FormatCompressedSignedRGRGTC2
	FormatCompressedRGBABPTCUnorm
	FormatCompressedSRGBAlphaBPTCUnorm
	FormatCompressedRGBBPTCSignedFloat
	FormatCompressedRGBBPTCUnsignedFloat
	FormatDepth24Stencil8
	FormatDepth32FStencil8
	FormatDepthComponent32F
)

var textureFormats = [...]gl.Enum{
	FormatDepthComponent:                 gl.DepthComponent24,
	FormatDepthStencil:                   gl.Depth24Stencil8,
	FormatRed:                            gl.R8,
	FormatRG:                             gl.RG8,
	FormatRGB:                            gl.RGB8,
	FormatRGBA:                           gl.RGBA8,
	FormatR8:                             gl.R8,
	FormatR8Snorm:                        gl.R8Snorm,
	FormatR16:                            gl.R16,
	FormatR16Snorm:                       gl.R16Snorm,
	FormatRG8:                            gl.RG8,
	FormatRG8Snorm:                       gl.RG8Snorm,
	FormatRG16:                           gl.RG16,
	FormatRG16Snorm:                      gl.RG16Snorm,
	FormatR3G3B2:                         gl.R3G3B2,
	FormatRGB4:                           gl.RGB4,
	FormatRGB5:                           gl.RGB5,
	FormatRGB8:                           gl.RGB8,
	FormatRGB8Snorm:                      gl.RGB8Snorm,
	FormatRGB10:                          gl.RGB10,
	FormatRGB12:                          gl.RGB12,
	FormatRGB16Snorm:                     gl.RGB16Snorm,
	FormatRGBA2:                          gl.RGBA2,
	FormatRGBA4:                          gl.RGBA4,
	FormatRGB5A1:                         gl.RGB5A1,
	FormatRGBA8:                          gl.RGBA8,
	FormatRGBA8Snorm:                     gl.RGBA8Snorm,
	FormatRGB10A2:                        gl.RGB10A2,
	FormatRGB10A2UI:                      gl.RGB10A2UI,
	FormatRGBA12:                         gl.RGBA12,
	FormatRGBA16:                         gl.RGBA16,
	FormatSRGB8:                          gl.SRGB8,
	FormatSRGB8Alpha8:                    gl.SRGB8Alpha8,
	FormatR16F:                           gl.R16F,
	FormatRG16F:                          gl.RG16F,
	FormatRGB16F:                         gl.RGB16F,
	FormatRGBA16F:                        gl.RGBA16F,
	FormatR32F:                           gl.R32F,
	FormatRG32F:                          gl.RG32F,
	FormatRGB32F:                         gl.RGB32F,
	FormatRGBA32F:                        gl.RGBA32F,
	FormatR11FG11FB10F:                   gl.R11FG11FB10F,
	FormatRGB9E5:                         gl.RGB9E5,
	FormatR8I:                            gl.R8I,
	FormatR8UI:                           gl.R8UI,
	FormatR16I:                           gl.R16I,
	FormatR16UI:                          gl.R16UI,
	FormatR32I:                           gl.R32I,
	FormatR32UI:                          gl.R32UI,
	FormatRG8I:                           gl.RG8I,
	FormatRG8UI:                          gl.RG8UI,
	FormatRG16I:                          gl.RG16I,
	FormatRG16UI:                         gl.RG16UI,
	FormatRG32I:                          gl.RG32I,
	FormatRG32UI:                         gl.RG32UI,
	FormatRGB8I:                          gl.RGB8I,
	FormatRGB8UI:                         gl.RGB8UI,
	FormatRGB16I:                         gl.RGB16I,
	FormatRGB16UI:                        gl.RGB16UI,
	FormatRGB32I:                         gl.RGB32I,
	FormatRGB32UI:                        gl.RGB32UI,
	FormatRGBA8I:                         gl.RGBA8I,
	FormatRGBA8UI:                        gl.RGBA8UI,
	FormatRGBA16I:                        gl.RGBA16I,
	FormatRGBA16UI:                       gl.RGBA16UI,
	FormatRGBA32I:                        gl.RGBA32I,
	FormatRGBA32UI:                       gl.RGBA32UI,
	FormatCompressedRedRGTC1:             gl.CompressedRedRGTC1,
	FormatCompressedSignedRedRGTC1:       gl.CompressedSignedRedRGTC1,
	FormatCompressedRGRGTC2:              gl.CompressedRGRGTC2,
	FormatCompressedSignedRGRGTC2:        gl.CompressedSignedRGRGTC2,
	FormatCompressedRGBABPTCUnorm:        gl.CompressedRGBABPTCUnorm,
	FormatCompressedSRGBAlphaBPTCUnorm:   gl.CompressedSRGBAlphaBPTCUnorm,
	FormatCompressedRGBBPTCSignedFloat:   gl.CompressedRGBBPTCSignedFloat,
	FormatCompressedRGBBPTCUnsignedFloat: gl.CompressedRGBBPTCUnsignedFloat,
	FormatDepth24Stencil8:                gl.Depth24Stencil8,
	FormatDepth32FStencil8:               gl.Depth32FStencil8,
	FormatDepthComponent32F:              gl.DepthComponent32F,
}

func (f TextureFormat) glFormat() gl.Enum {
	if int(f) < len(textureFormats) {
		return textureFormats[f]
	}
	return gl.RGBA8
}

// IsDepth reports whether f holds depth (and possibly stencil) values.
func (f TextureFormat) IsDepth() bool {
	switch f {
	case FormatDepthComponent, FormatDepthStencil, FormatDepth24Stencil8,
		FormatDepth32FStencil8, FormatDepthComponent32F:
		return true
	}
	return false
}

// ImageFormat is the channel layout of pixel data sent to or read from a
// texture.
type ImageFormat uint8

// Image formats map to the GL pixel transfer formats of the same name.
const (
	ImageRed ImageFormat = iota
	ImageRG
	ImageRGB
	ImageBGR
	ImageRGBA
	ImageBGRA
	ImageRedInteger
	ImageRGInteger
	ImageRGBInteger
	ImageBGRInteger
	ImageRGBAInteger
	ImageBGRAInteger
	ImageStencilIndex
	ImageDepthComponent
	ImageDepthStencil
)

var imageFormats = [...]struct {
	gl       gl.Enum
	channels int
}{
	ImageRed:            {gl.Red, 1},
	ImageRG:             {gl.RG, 2},
	ImageRGB:            {gl.RGB, 3},
	ImageBGR:            {gl.BGR, 3},
	ImageRGBA:           {gl.RGBA, 4},
	ImageBGRA:           {gl.BGRA, 4},
	ImageRedInteger:     {gl.RedInteger, 1},
	ImageRGInteger:      {gl.RGInteger, 2},
	ImageRGBInteger:     {gl.RGBInteger, 3},
	ImageBGRInteger:     {gl.BGRInteger, 3},
	ImageRGBAInteger:    {gl.RGBAInteger, 4},
	ImageBGRAInteger:    {gl.BGRAInteger, 4},
	ImageStencilIndex:   {gl.StencilIndex, 1},
	ImageDepthComponent: {gl.DepthComponent, 1},
	ImageDepthStencil:   {gl.DepthStencil, 2},
}

func (f ImageFormat) glFormat() gl.Enum {
	if int(f) < len(imageFormats) {
		return imageFormats[f].gl
	}
	return gl.RGBA
}

// Channels returns the number of components per pixel.
func (f ImageFormat) Channels() int {
	if int(f) < len(imageFormats) {
		return imageFormats[f].channels
	}
	return 0
}

// ImageType is the component type of pixel data.
type ImageType uint8

// Image types map to the GL pixel transfer types. Packed types carry the
// bit widths of their channels, and a Rev suffix reverses channel order.
const (
	ImageUnsignedByte ImageType = iota
	ImageByte
	ImageUnsignedShort
	ImageShort
	ImageUnsignedInt
	ImageInt
	ImageHalfFloat
	ImageFloat
	ImageUnsignedByte332
	ImageUnsignedByte233Rev
	ImageUnsignedShort565
	ImageUnsignedShort565Rev
	ImageUnsignedShort4444
	ImageUnsignedShort4444Rev
	ImageUnsignedShort5551
	ImageUnsignedShort1555Rev
	ImageUnsignedInt8888
	ImageUnsignedInt8888Rev
	ImageUnsignedInt1010102
	ImageUnsignedInt2101010Rev
	ImageUnsignedInt248
)

// imageTypes holds the component size of each type, or the whole pixel size
// for packed types.
var imageTypes = [...]struct {
	gl     gl.Enum
	size   int
	packed bool
}{
	ImageUnsignedByte:          {gl.UnsignedByte, 1, false},
	ImageByte:                  {gl.Byte, 1, false},
	ImageUnsignedShort:         {gl.UnsignedShort, 2, false},
	ImageShort:                 {gl.Short, 2, false},
	ImageUnsignedInt:           {gl.UnsignedInt, 4, false},
	ImageInt:                   {gl.Int, 4, false},
	ImageHalfFloat:             {gl.HalfFloat, 2, false},
	ImageFloat:                 {gl.Float, 4, false},
	ImageUnsignedByte332:       {gl.UnsignedByte332, 1, true},
	ImageUnsignedByte233Rev:    {gl.UnsignedByte233Rev, 1, true},
	ImageUnsignedShort565:      {gl.UnsignedShort565, 2, true},
	ImageUnsignedShort565Rev:   {gl.UnsignedShort565Rev, 2, true},
	ImageUnsignedShort4444:     {gl.UnsignedShort4444, 2, true},
	ImageUnsignedShort4444Rev:  {gl.UnsignedShort4444Rev, 2, true},
	ImageUnsignedShort5551:     {gl.UnsignedShort5551, 2, true},
	ImageUnsignedShort1555Rev:  {gl.UnsignedShort1555Rev, 2, true},
	ImageUnsignedInt8888:       {gl.UnsignedInt8888, 4, true},
	ImageUnsignedInt8888Rev:    {gl.UnsignedInt8888Rev, 4, true},
	ImageUnsignedInt1010102:    {gl.UnsignedInt1010102, 4, true},
	ImageUnsignedInt2101010Rev: {gl.UnsignedInt2101010Rev, 4, true},
	ImageUnsignedInt248:        {gl.UnsignedInt248, 4, true},
}

func (t ImageType) glType() gl.Enum {
	if int(t) < len(imageTypes) {
		return imageTypes[t].gl
	}
	return gl.UnsignedByte
}

// PixelSize returns the byte size of one pixel of format f and type t.
func PixelSize(f ImageFormat, t ImageType) int {
	if int(t) >= len(imageTypes) {
		return 0
	}
	it := imageTypes[t]
	if it.packed {
		return it.size
	}
	return it.size * f.Channels()
}
