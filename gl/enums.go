package gl

// Enum is a GLenum value.
type Enum uint32

// Bitfield is a GLbitfield value.
type Bitfield uint32

// Data types.
const (
	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406
	Double        Enum = 0x140A
	HalfFloat     Enum = 0x140B

	UnsignedByte332       Enum = 0x8032
	UnsignedByte233Rev    Enum = 0x8362
	UnsignedShort565      Enum = 0x8363
	UnsignedShort565Rev   Enum = 0x8364
	UnsignedShort4444     Enum = 0x8033
	UnsignedShort4444Rev  Enum = 0x8365
	UnsignedShort5551     Enum = 0x8034
	UnsignedShort1555Rev  Enum = 0x8366
	UnsignedInt8888       Enum = 0x8035
	UnsignedInt8888Rev    Enum = 0x8367
	UnsignedInt1010102    Enum = 0x8036
	UnsignedInt2101010Rev Enum = 0x8368

	UnsignedInt248           Enum = 0x84FA
	Float32UnsignedInt248Rev Enum = 0x8DAD
)

// Buffer targets and storage flags.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	CopyReadBuffer     Enum = 0x8F36
	CopyWriteBuffer    Enum = 0x8F37

	MapReadBit        Bitfield = 0x0001
	MapWriteBit       Bitfield = 0x0002
	MapPersistentBit  Bitfield = 0x0040
	MapCoherentBit    Bitfield = 0x0080
	DynamicStorageBit Bitfield = 0x0100
	ClientStorageBit  Bitfield = 0x0200
)

// Shader types and program pipeline stage bits.
const (
	FragmentShader       Enum = 0x8B30
	VertexShader         Enum = 0x8B31
	GeometryShader       Enum = 0x8DD9
	TessEvaluationShader Enum = 0x8E87
	TessControlShader    Enum = 0x8E88
	ComputeShader        Enum = 0x91B9

	VertexShaderBit         Bitfield = 0x00000001
	FragmentShaderBit       Bitfield = 0x00000002
	GeometryShaderBit       Bitfield = 0x00000004
	TessControlShaderBit    Bitfield = 0x00000008
	TessEvaluationShaderBit Bitfield = 0x00000010
	ComputeShaderBit        Bitfield = 0x00000020
	AllShaderBits           Bitfield = 0xFFFFFFFF

	LinkStatus             Enum = 0x8B82
	InfoLogLength          Enum = 0x8B84
	ActiveUniforms         Enum = 0x8B86
	ActiveUniformMaxLength Enum = 0x8B87
)

// Texture targets.
const (
	Texture1D               Enum = 0x0DE0
	Texture2D               Enum = 0x0DE1
	Texture3D               Enum = 0x806F
	Texture1DArray          Enum = 0x8C18
	Texture2DArray          Enum = 0x8C1A
	TextureRectangle        Enum = 0x84F5
	TextureCubeMap          Enum = 0x8513
	TextureCubeMapPositiveX Enum = 0x8515
	TextureCubeMapNegativeX Enum = 0x8516
	TextureCubeMapPositiveY Enum = 0x8517
	TextureCubeMapNegativeY Enum = 0x8518
	TextureCubeMapPositiveZ Enum = 0x8519
	TextureCubeMapNegativeZ Enum = 0x851A
	Texture0                Enum = 0x84C0
)

// Texture and sampler parameters.
const (
	TextureMagFilter     Enum = 0x2800
	TextureMinFilter     Enum = 0x2801
	TextureWrapS         Enum = 0x2802
	TextureWrapT         Enum = 0x2803
	TextureWrapR         Enum = 0x8072
	TextureMinLOD        Enum = 0x813A
	TextureMaxLOD        Enum = 0x813B
	TextureBorderColor   Enum = 0x1004
	TextureMaxAnisotropy Enum = 0x84FE
	TextureCompareMode   Enum = 0x884C
	TextureCompareFunc   Enum = 0x884D
	CompareRefToTexture  Enum = 0x884E

	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703

	Repeat         Enum = 0x2901
	ClampToEdge    Enum = 0x812F
	ClampToBorder  Enum = 0x812D
	MirroredRepeat Enum = 0x8370

	Never    Enum = 0x0200
	Less     Enum = 0x0201
	Equal    Enum = 0x0202
	Lequal   Enum = 0x0203
	Greater  Enum = 0x0204
	Notequal Enum = 0x0205
	Gequal   Enum = 0x0206
	Always   Enum = 0x0207
)

// Pixel formats.
const (
	None           Enum = 0
	StencilIndex   Enum = 0x1901
	DepthComponent Enum = 0x1902
	Red            Enum = 0x1903
	Green          Enum = 0x1904
	Blue           Enum = 0x1905
	RGB            Enum = 0x1907
	RGBA           Enum = 0x1908
	RG             Enum = 0x8227
	BGR            Enum = 0x80E0
	BGRA           Enum = 0x80E1
	DepthStencil   Enum = 0x84F9
	RedInteger     Enum = 0x8D94
	RGInteger      Enum = 0x8228
	RGBInteger     Enum = 0x8D98
	RGBAInteger    Enum = 0x8D99
	BGRInteger     Enum = 0x8D9A
	BGRAInteger    Enum = 0x8D9B

	PackAlignment   Enum = 0x0D05
	UnpackAlignment Enum = 0x0CF5
)

// Sized internal formats.
const (
	R8           Enum = 0x8229
	R8Snorm      Enum = 0x8F94
	R16          Enum = 0x822A
	R16Snorm     Enum = 0x8F98
	RG8          Enum = 0x822B
	RG8Snorm     Enum = 0x8F95
	RG16         Enum = 0x822C
	RG16Snorm    Enum = 0x8F99
	R3G3B2       Enum = 0x2A10
	RGB4         Enum = 0x804F
	RGB5         Enum = 0x8050
	RGB8         Enum = 0x8051
	RGB8Snorm    Enum = 0x8F96
	RGB10        Enum = 0x8052
	RGB12        Enum = 0x8053
	RGB16Snorm   Enum = 0x8F9A
	RGBA2        Enum = 0x8055
	RGBA4        Enum = 0x8056
	RGB5A1       Enum = 0x8057
	RGBA8        Enum = 0x8058
	RGBA8Snorm   Enum = 0x8F97
	RGB10A2      Enum = 0x8059
	RGB10A2UI    Enum = 0x906F
	RGBA12       Enum = 0x805A
	RGBA16       Enum = 0x805B
	SRGB8        Enum = 0x8C41
	SRGB8Alpha8  Enum = 0x8C43
	R16F         Enum = 0x822D
	RG16F        Enum = 0x822F
	RGB16F       Enum = 0x881B
	RGBA16F      Enum = 0x881A
	R32F         Enum = 0x822E
	RG32F        Enum = 0x8230
	RGB32F       Enum = 0x8815
	RGBA32F      Enum = 0x8814
	R11FG11FB10F Enum = 0x8C3A
	RGB9E5       Enum = 0x8C3D
	R8I          Enum = 0x8231
	R8UI         Enum = 0x8232
	R16I         Enum = 0x8233
	R16UI        Enum = 0x8234
	R32I         Enum = 0x8235
	R32UI        Enum = 0x8236
	RG8I         Enum = 0x8237
	RG8UI        Enum = 0x8238
	RG16I        Enum = 0x8239
	RG16UI       Enum = 0x823A
	RG32I        Enum = 0x823B
	RG32UI       Enum = 0x823C
	RGB8I        Enum = 0x8D8F
	RGB8UI       Enum = 0x8D7D
	RGB16I       Enum = 0x8D89
	RGB16UI      Enum = 0x8D77
	RGB32I       Enum = 0x8D83
	RGB32UI      Enum = 0x8D71
	RGBA8I       Enum = 0x8D8E
	RGBA8UI      Enum = 0x8D7C
	RGBA16I      Enum = 0x8D88
	RGBA16UI     Enum = 0x8D76
	RGBA32I      Enum = 0x8D82
	RGBA32UI     Enum = 0x8D70

	CompressedRedRGTC1             Enum = 0x8DBB
	CompressedSignedRedRGTC1       Enum = 0x8DBC
	CompressedRGRGTC2              Enum = 0x8DBD
	CompressedSignedRGRGTC2        Enum = 0x8DBE
	CompressedRGBABPTCUnorm        Enum = 0x8E8C
	CompressedSRGBAlphaBPTCUnorm   Enum = 0x8E8D
	CompressedRGBBPTCSignedFloat   Enum = 0x8E8E
	CompressedRGBBPTCUnsignedFloat Enum = 0x8E8F

	DepthComponent16  Enum = 0x81A5
	DepthComponent24  Enum = 0x81A6
	DepthComponent32F Enum = 0x8CAC
	Depth24Stencil8   Enum = 0x88F0
	Depth32FStencil8  Enum = 0x8CAD
)

// Framebuffers and renderbuffers.
const (
	Framebuffer            Enum = 0x8D40
	ReadFramebuffer        Enum = 0x8CA8
	DrawFramebuffer        Enum = 0x8CA9
	Renderbuffer           Enum = 0x8D41
	ColorAttachment0       Enum = 0x8CE0
	DepthAttachment        Enum = 0x8D00
	StencilAttachment      Enum = 0x8D20
	DepthStencilAttachment Enum = 0x821A
	Back                   Enum = 0x0405
	Front                  Enum = 0x0404
	FrontAndBack           Enum = 0x0408

	FramebufferComplete                    Enum = 0x8CD5
	FramebufferUndefined                   Enum = 0x8219
	FramebufferIncompleteAttachment        Enum = 0x8CD6
	FramebufferIncompleteMissingAttachment Enum = 0x8CD7
	FramebufferIncompleteDrawBuffer        Enum = 0x8CDB
	FramebufferIncompleteReadBuffer        Enum = 0x8CDC
	FramebufferUnsupported                 Enum = 0x8CDD
	FramebufferIncompleteMultisample       Enum = 0x8D56
	FramebufferIncompleteLayerTargets      Enum = 0x8DA8
)

// Capabilities and fixed-function state.
const (
	DepthTest   Enum = 0x0B71
	StencilTest Enum = 0x0B90
	CullFace    Enum = 0x0B44
	Blend       Enum = 0x0BE2
	CW          Enum = 0x0900
	CCW         Enum = 0x0901

	ColorBufferBit   Bitfield = 0x00004000
	DepthBufferBit   Bitfield = 0x00000100
	StencilBufferBit Bitfield = 0x00000400
)

// Primitive modes.
const (
	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	LineLoop      Enum = 0x0002
	LineStrip     Enum = 0x0003
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
	TriangleFan   Enum = 0x0006
	Patches       Enum = 0x000E
)

// Queries.
const (
	Vendor                       Enum = 0x1F00
	Renderer                     Enum = 0x1F01
	Version                      Enum = 0x1F02
	ShadingLanguageVersion       Enum = 0x8B8C
	MajorVersion                 Enum = 0x821B
	MinorVersion                 Enum = 0x821C
	MaxColorAttachments          Enum = 0x8CDF
	MaxDrawBuffers               Enum = 0x8824
	MaxVertexAttribs             Enum = 0x8869
	MaxCombinedTextureImageUnits Enum = 0x8B4D
	MaxTextureSize               Enum = 0x0D33
)

// Errors.
const (
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	StackOverflow               Enum = 0x0503
	StackUnderflow              Enum = 0x0504
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)

// KHR_debug.
const (
	DebugOutputKHR         Enum = 0x92E0
	DebugOutputSynchronous Enum = 0x8242

	DebugSourceAPI            Enum = 0x8246
	DebugSourceWindowSystem   Enum = 0x8247
	DebugSourceShaderCompiler Enum = 0x8248
	DebugSourceThirdParty     Enum = 0x8249
	DebugSourceApplication    Enum = 0x824A
	DebugSourceOther          Enum = 0x824B

	DebugTypeError              Enum = 0x824C
	DebugTypeDeprecatedBehavior Enum = 0x824D
	DebugTypeUndefinedBehavior  Enum = 0x824E
	DebugTypePortability        Enum = 0x824F
	DebugTypePerformance        Enum = 0x8250
	DebugTypeOther              Enum = 0x8251
	DebugTypeMarker             Enum = 0x8268

	DebugSeverityHigh         Enum = 0x9146
	DebugSeverityMedium       Enum = 0x9147
	DebugSeverityLow          Enum = 0x9148
	DebugSeverityNotification Enum = 0x826B
)

// ErrorString returns the symbolic name of a glGetError code.
func ErrorString(e Enum) string {
	switch e {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "GL_UNKNOWN_ERROR"
	}
}
