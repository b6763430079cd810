package gl

// Functions is the set of OpenGL 4.5 core entry points used by lofx.
//
// Methods mirror the GL commands they wrap with Go types: object names are
// uint32, offsets into bound buffers are int, and data is passed as byte or
// float32 slices. Implementations are not safe for concurrent use; all calls
// must come from the thread that owns the current GL context.
//
// The real implementation lives in gl/native. gl/gltest provides a recording
// in-memory implementation for tests and headless use.
type Functions interface {
	// Buffers.
	CreateBuffer() uint32
	DeleteBuffer(id uint32)
	IsBuffer(id uint32) bool
	BindBuffer(target Enum, id uint32)
	BufferStorage(target Enum, size int, data []byte, flags Bitfield)
	BufferSubData(target Enum, offset int, data []byte)
	GetBufferSubData(target Enum, offset int, data []byte)

	// Textures and samplers.
	CreateTexture() uint32
	DeleteTexture(id uint32)
	IsTexture(id uint32) bool
	ActiveTexture(unit Enum)
	BindTexture(target Enum, id uint32)
	TexStorage1D(target Enum, levels int, format Enum, width int)
	TexStorage2D(target Enum, levels int, format Enum, width, height int)
	TexStorage3D(target Enum, levels int, format Enum, width, height, depth int)
	TexSubImage1D(target Enum, level, x, width int, format, typ Enum, data []byte)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, typ Enum, data []byte)
	TexSubImage3D(target Enum, level, x, y, z, width, height, depth int, format, typ Enum, data []byte)
	GetTexImage(target Enum, level int, format, typ Enum, data []byte)
	TexParameteri(target, pname Enum, param int32)
	PixelStorei(pname Enum, param int32)
	CreateSampler() uint32
	DeleteSampler(id uint32)
	IsSampler(id uint32) bool
	BindSampler(unit uint32, id uint32)
	SamplerParameteri(id uint32, pname Enum, param int32)
	SamplerParameterf(id uint32, pname Enum, param float32)
	SamplerParameterfv(id uint32, pname Enum, params []float32)

	// Renderbuffers and framebuffers.
	CreateRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)
	IsRenderbuffer(id uint32) bool
	BindRenderbuffer(target Enum, id uint32)
	RenderbufferStorage(target, format Enum, width, height int)
	CreateFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	IsFramebuffer(id uint32) bool
	BindFramebuffer(target Enum, id uint32)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb uint32)
	FramebufferTexture(target, attachment Enum, tex uint32, level int)
	FramebufferTexture2D(target, attachment, texTarget Enum, tex uint32, level int)
	FramebufferTextureLayer(target, attachment Enum, tex uint32, level, layer int)
	DrawBuffers(bufs []Enum)
	ReadBuffer(src Enum)
	CheckFramebufferStatus(target Enum) Enum
	ReadPixels(x, y, width, height int, format, typ Enum, data []byte)

	// Separable programs and program pipelines.
	CreateShaderProgram(typ Enum, source string) uint32
	DeleteProgram(id uint32)
	IsProgram(id uint32) bool
	GetProgrami(id uint32, pname Enum) int32
	GetProgramInfoLog(id uint32) string
	GetActiveUniformName(id uint32, index uint32) string
	GetUniformLocation(id uint32, name string) int32
	UseProgram(id uint32)
	ProgramUniform1i(id uint32, loc int32, v int32)
	ProgramUniform1ui(id uint32, loc int32, v uint32)
	ProgramUniform1f(id uint32, loc int32, v float32)
	ProgramUniform2fv(id uint32, loc int32, v []float32)
	ProgramUniform3fv(id uint32, loc int32, v []float32)
	ProgramUniform4fv(id uint32, loc int32, v []float32)
	ProgramUniformMatrix2fv(id uint32, loc int32, v []float32)
	ProgramUniformMatrix3fv(id uint32, loc int32, v []float32)
	ProgramUniformMatrix4fv(id uint32, loc int32, v []float32)
	CreateProgramPipeline() uint32
	DeleteProgramPipeline(id uint32)
	IsProgramPipeline(id uint32) bool
	UseProgramStages(pipeline uint32, stages Bitfield, program uint32)
	BindProgramPipeline(id uint32)

	// Vertex input.
	CreateVertexArray() uint32
	DeleteVertexArray(id uint32)
	IsVertexArray(id uint32) bool
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttribIPointer(index uint32, size int, typ Enum, stride, offset int)

	// Fixed-function state and drawing.
	Enable(cap Enum)
	Disable(cap Enum)
	FrontFace(mode Enum)
	CullFace(mode Enum)
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float64)
	ClearStencil(s int32)
	Clear(mask Bitfield)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	Finish()

	// Queries.
	GetInteger(pname Enum) int32
	GetString(pname Enum) string
	GetError() Enum
}

// DebugMessageFunc receives KHR_debug messages.
type DebugMessageFunc func(source, typ Enum, id uint32, severity Enum, message string)

// DebugOutput is implemented by Functions that can install a KHR_debug
// message callback. It is optional: contexts without the extension, or
// implementations that cannot create native callbacks, do not implement it.
type DebugOutput interface {
	DebugMessageCallback(fn DebugMessageFunc)
}
