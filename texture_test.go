package lofx

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/lofx/gl"
)

func TestCreateTextureStorage(t *testing.T) {
	tests := []struct {
		name string
		desc TextureDescriptor
		call string
		args []any
	}{
		{
			name: "2D",
			desc: TextureDescriptor{Width: 4, Height: 2, Target: Texture2D, Format: FormatRGBA8},
			call: "TexStorage2D",
			args: []any{gl.Texture2D, 1, gl.RGBA8, 4, 2},
		},
		{
			name: "2DArray",
			desc: TextureDescriptor{Width: 4, Height: 4, Depth: 3, Levels: 2, Target: Texture2DArray, Format: FormatR32F},
			call: "TexStorage3D",
			args: []any{gl.Texture2DArray, 2, gl.R32F, 4, 4, 3},
		},
		{
			name: "1D",
			desc: TextureDescriptor{Width: 16, Target: Texture1D, Format: FormatRGBA},
			call: "TexStorage1D",
			args: []any{gl.Texture1D, 1, gl.RGBA8, 16},
		},
		{
			name: "1DArray",
			desc: TextureDescriptor{Width: 16, Depth: 4, Target: Texture1DArray, Format: FormatRed},
			call: "TexStorage2D",
			args: []any{gl.Texture1DArray, 1, gl.R8, 16, 4},
		},
		{
			name: "cube face",
			desc: TextureDescriptor{Width: 8, Height: 8, Target: TextureCubeMapPositiveZ, Format: FormatDepthComponent},
			call: "TexStorage2D",
			args: []any{gl.TextureCubeMap, 1, gl.DepthComponent24, 8, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, log := newTestContext(t)

			tex := c.CreateTexture(tt.desc)

			require.True(t, tex.Valid())
			calls := rec.CallsNamed(tt.call)
			require.Len(t, calls, 1)
			assert.Equal(t, tt.args, calls[0].Args)
			assert.Empty(t, log.entries)
			assert.Equal(t, 0, c.CheckErrors())
		})
	}
}

func TestCreateTextureMinFilter(t *testing.T) {
	c, rec, _ := newTestContext(t)

	c.CreateTexture(TextureDescriptor{Width: 4, Height: 4, Target: Texture2D})
	calls := rec.CallsNamed("TexParameteri")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{gl.Texture2D, gl.TextureMinFilter, int32(gl.Linear)}, calls[0].Args)

	rec.Reset()
	c.CreateTexture(TextureDescriptor{Width: 4, Height: 4, Levels: 3, Target: Texture2D})
	assert.Equal(t, 0, rec.Count("TexParameteri"), "mipmapped textures keep the default filter")
}

func TestCreateTextureClampsSize(t *testing.T) {
	c, _, _ := newTestContext(t)

	tex := c.CreateTexture(TextureDescriptor{Target: Texture3D})

	w, h, d := tex.Size()
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{w, h, d})
	assert.Equal(t, 1, tex.Levels())
}

func TestTextureImageRoundTrip(t *testing.T) {
	c, _, log := newTestContext(t)
	tex := c.CreateTexture(TextureDescriptor{Width: 2, Height: 2, Target: Texture2D, Format: FormatRGBA8})

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	src.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	src.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 40})
	tex.SendImage(src)

	got := tex.ReadImage()

	require.NotNil(t, got)
	assert.Equal(t, src.Pix, got.Pix)
	assert.Empty(t, log.entries)
}

func TestTextureSendImageScales(t *testing.T) {
	c, rec, log := newTestContext(t)
	tex := c.CreateTexture(TextureDescriptor{Width: 4, Height: 4, Target: Texture2D, Format: FormatRGBA8})
	rec.Reset()

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	tex.SendImage(src)

	calls := rec.CallsNamed("TexSubImage2D")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{gl.Texture2D, 0, 0, 0, 4, 4, gl.RGBA, gl.UnsignedByte, 64}, calls[0].Args)
	assert.Empty(t, log.entries)
}

func TestTextureSendImageRejects3D(t *testing.T) {
	c, rec, log := newTestContext(t)
	tex := c.CreateTexture(TextureDescriptor{Width: 2, Height: 2, Depth: 2, Target: Texture3D})
	rec.Reset()

	tex.SendImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))

	assert.Equal(t, 1, log.count(LevelWarn))
	assert.Empty(t, rec.CallNames())
	assert.Nil(t, tex.ReadImage())
}

func TestTextureSendRegionShortData(t *testing.T) {
	c, rec, log := newTestContext(t)
	tex := c.CreateTexture(TextureDescriptor{Width: 4, Height: 4, Target: Texture2D})
	rec.Reset()

	tex.SendRegion(TextureRegion{Width: 2, Height: 2}, make([]byte, 15), ImageRGBA, ImageUnsignedByte)

	assert.Equal(t, 1, log.count(LevelWarn))
	assert.Equal(t, 0, rec.Count("TexSubImage2D"))

	tex.SendRegion(TextureRegion{X: 2, Y: 2, Width: 2, Height: 2}, make([]byte, 16), ImageRGBA, ImageUnsignedByte)
	calls := rec.CallsNamed("TexSubImage2D")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{gl.Texture2D, 0, 2, 2, 2, 2, gl.RGBA, gl.UnsignedByte, 16}, calls[0].Args)
}

func TestTextureSendArrayUsesSubImage3D(t *testing.T) {
	c, rec, _ := newTestContext(t)
	tex := c.CreateTexture(TextureDescriptor{Width: 2, Height: 2, Depth: 3, Target: Texture2DArray})
	rec.Reset()

	tex.Send(make([]byte, 2*2*3*4), ImageRGBA, ImageUnsignedByte)

	assert.Equal(t, 1, rec.Count("TexSubImage3D"))
	assert.Equal(t, 0, rec.Count("BindTexture"), "creation left the texture bound")
}

func TestTextureRelease(t *testing.T) {
	c, rec, _ := newTestContext(t)
	s := c.CreateTextureSampler(DefaultSamplerParameters())
	tex := c.CreateTexture(TextureDescriptor{Width: 2, Height: 2, Target: Texture2D, Sampler: s})

	tex.Release()
	tex.Release()

	assert.False(t, tex.Valid())
	assert.True(t, s.Valid(), "the sampler outlives the texture")
	assert.Equal(t, 1, rec.Count("DeleteTexture"))
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		format ImageFormat
		typ    ImageType
		want   int
	}{
		{ImageRGBA, ImageUnsignedByte, 4},
		{ImageRGB, ImageFloat, 12},
		{ImageRG, ImageHalfFloat, 4},
		{ImageRGBA, ImageUnsignedShort565, 2},
		{ImageDepthStencil, ImageUnsignedInt248, 4},
		{ImageRGBA, ImageType(200), 0},
	}
	for _, tt := range tests {
		if got := PixelSize(tt.format, tt.typ); got != tt.want {
			t.Errorf("PixelSize(%d, %d) = %d, want %d", tt.format, tt.typ, got, tt.want)
		}
	}
}

func TestTextureTarget(t *testing.T) {
	assert.Equal(t, "2DArray", Texture2DArray.String())
	assert.Equal(t, "Unknown(42)", TextureTarget(42).String())
	assert.True(t, Texture1DArray.IsArray())
	assert.False(t, Texture3D.IsArray())
	assert.True(t, TextureCubeMapNegativeX.IsCubeFace())
	assert.Equal(t, gl.TextureCubeMap, TextureCubeMapNegativeX.binding())
	assert.Equal(t, gl.TextureCubeMapNegativeX, TextureCubeMapNegativeX.image())
}

func TestTextureFormatIsDepth(t *testing.T) {
	assert.True(t, FormatDepth24Stencil8.IsDepth())
	assert.False(t, FormatRGBA16F.IsDepth())
}
