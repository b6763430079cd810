package native

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/lofx/gl"
)

// Functions calls OpenGL through function pointers resolved by Load or
// LoadSystem.
type Functions struct {
	glCreateBuffers      func(n int32, ids *uint32)
	glDeleteBuffers      func(n int32, ids *uint32)
	glIsBuffer           func(id uint32) bool
	glBindBuffer         func(target, id uint32)
	glBufferStorage      func(target uint32, size int, data unsafe.Pointer, flags uint32)
	glBufferSubData      func(target uint32, offset, size int, data unsafe.Pointer)
	glGetBufferSubData   func(target uint32, offset, size int, data unsafe.Pointer)
	glGenTextures        func(n int32, ids *uint32)
	glDeleteTextures     func(n int32, ids *uint32)
	glIsTexture          func(id uint32) bool
	glActiveTexture      func(unit uint32)
	glBindTexture        func(target, id uint32)
	glTexStorage1D       func(target uint32, levels int32, format uint32, w int32)
	glTexStorage2D       func(target uint32, levels int32, format uint32, w, h int32)
	glTexStorage3D       func(target uint32, levels int32, format uint32, w, h, d int32)
	glTexSubImage1D      func(target uint32, level, x, w int32, format, typ uint32, data unsafe.Pointer)
	glTexSubImage2D      func(target uint32, level, x, y, w, h int32, format, typ uint32, data unsafe.Pointer)
	glTexSubImage3D      func(target uint32, level, x, y, z, w, h, d int32, format, typ uint32, data unsafe.Pointer)
	glGetTexImage        func(target uint32, level int32, format, typ uint32, data unsafe.Pointer)
	glTexParameteri      func(target, pname uint32, param int32)
	glPixelStorei        func(pname uint32, param int32)
	glCreateSamplers     func(n int32, ids *uint32)
	glDeleteSamplers     func(n int32, ids *uint32)
	glIsSampler          func(id uint32) bool
	glBindSampler        func(unit, id uint32)
	glSamplerParameteri  func(id, pname uint32, param int32)
	glSamplerParameterf  func(id, pname uint32, param float32)
	glSamplerParameterfv func(id, pname uint32, params *float32)

	glCreateRenderbuffers      func(n int32, ids *uint32)
	glDeleteRenderbuffers      func(n int32, ids *uint32)
	glIsRenderbuffer           func(id uint32) bool
	glBindRenderbuffer         func(target, id uint32)
	glRenderbufferStorage      func(target, format uint32, w, h int32)
	glCreateFramebuffers       func(n int32, ids *uint32)
	glDeleteFramebuffers       func(n int32, ids *uint32)
	glIsFramebuffer            func(id uint32) bool
	glBindFramebuffer          func(target, id uint32)
	glFramebufferRenderbuffer  func(target, attachment, rbTarget, rb uint32)
	glFramebufferTexture       func(target, attachment, tex uint32, level int32)
	glFramebufferTexture2D     func(target, attachment, texTarget, tex uint32, level int32)
	glFramebufferTextureLayer  func(target, attachment, tex uint32, level, layer int32)
	glDrawBuffers              func(n int32, bufs *uint32)
	glReadBuffer               func(src uint32)
	glCheckFramebufferStatus   func(target uint32) uint32
	glReadPixels               func(x, y, w, h int32, format, typ uint32, data unsafe.Pointer)
	glCreateShaderProgramv     func(typ uint32, count int32, sources **byte) uint32
	glDeleteProgram            func(id uint32)
	glIsProgram                func(id uint32) bool
	glGetProgramiv             func(id, pname uint32, params *int32)
	glGetProgramInfoLog        func(id uint32, size int32, length *int32, log *byte)
	glGetActiveUniformName     func(id, index uint32, size int32, length *int32, name *byte)
	glGetUniformLocation       func(id uint32, name *byte) int32
	glUseProgram               func(id uint32)
	glProgramUniform1i         func(id uint32, loc, v int32)
	glProgramUniform1ui        func(id uint32, loc int32, v uint32)
	glProgramUniform1f         func(id uint32, loc int32, v float32)
	glProgramUniform2fv        func(id uint32, loc, count int32, v *float32)
	glProgramUniform3fv        func(id uint32, loc, count int32, v *float32)
	glProgramUniform4fv        func(id uint32, loc, count int32, v *float32)
	glProgramUniformMatrix2fv  func(id uint32, loc, count int32, transpose bool, v *float32)
	glProgramUniformMatrix3fv  func(id uint32, loc, count int32, transpose bool, v *float32)
	glProgramUniformMatrix4fv  func(id uint32, loc, count int32, transpose bool, v *float32)
	glCreateProgramPipelines   func(n int32, ids *uint32)
	glDeleteProgramPipelines   func(n int32, ids *uint32)
	glIsProgramPipeline        func(id uint32) bool
	glUseProgramStages         func(pipeline, stages, program uint32)
	glBindProgramPipeline      func(id uint32)
	glCreateVertexArrays       func(n int32, ids *uint32)
	glDeleteVertexArrays       func(n int32, ids *uint32)
	glIsVertexArray            func(id uint32) bool
	glBindVertexArray          func(id uint32)
	glEnableVertexAttribArray  func(index uint32)
	glDisableVertexAttribArray func(index uint32)
	glVertexAttribPointer      func(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr)
	glVertexAttribIPointer     func(index uint32, size int32, typ uint32, stride int32, offset uintptr)

	glEnable       func(cap uint32)
	glDisable      func(cap uint32)
	glFrontFace    func(mode uint32)
	glCullFace     func(mode uint32)
	glViewport     func(x, y, w, h int32)
	glClearColor   func(r, g, b, a float32)
	glClearDepth   func(d float64)
	glClearStencil func(s int32)
	glClear        func(mask uint32)
	glDrawElements func(mode uint32, count int32, typ uint32, offset uintptr)
	glFinish       func()
	glGetIntegerv  func(pname uint32, v *int32)
	glGetString    func(name uint32) *byte
	glGetError     func() uint32

	glDebugMessageCallback func(callback uintptr, user unsafe.Pointer)
}

var (
	_ gl.Functions   = (*Functions)(nil)
	_ gl.DebugOutput = (*Functions)(nil)
)

// ptr returns the address of the first byte of b, or nil for an empty
// slice.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// cstr returns a NUL-terminated copy of s.
func cstr(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// gostr copies the NUL-terminated string at p.
func gostr(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func (f *Functions) create(fn func(int32, *uint32)) uint32 {
	var id uint32
	fn(1, &id)
	return id
}

func (f *Functions) CreateBuffer() uint32    { return f.create(f.glCreateBuffers) }
func (f *Functions) DeleteBuffer(id uint32)  { f.glDeleteBuffers(1, &id) }
func (f *Functions) IsBuffer(id uint32) bool { return f.glIsBuffer(id) }
func (f *Functions) BindBuffer(target gl.Enum, id uint32) {
	f.glBindBuffer(uint32(target), id)
}

func (f *Functions) BufferStorage(target gl.Enum, size int, data []byte, flags gl.Bitfield) {
	f.glBufferStorage(uint32(target), size, ptr(data), uint32(flags))
	runtime.KeepAlive(data)
}

func (f *Functions) BufferSubData(target gl.Enum, offset int, data []byte) {
	f.glBufferSubData(uint32(target), offset, len(data), ptr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) GetBufferSubData(target gl.Enum, offset int, data []byte) {
	f.glGetBufferSubData(uint32(target), offset, len(data), ptr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) CreateTexture() uint32      { return f.create(f.glGenTextures) }
func (f *Functions) DeleteTexture(id uint32)    { f.glDeleteTextures(1, &id) }
func (f *Functions) IsTexture(id uint32) bool   { return f.glIsTexture(id) }
func (f *Functions) ActiveTexture(unit gl.Enum) { f.glActiveTexture(uint32(unit)) }
func (f *Functions) BindTexture(target gl.Enum, id uint32) {
	f.glBindTexture(uint32(target), id)
}

func (f *Functions) TexStorage1D(target gl.Enum, levels int, format gl.Enum, width int) {
	f.glTexStorage1D(uint32(target), int32(levels), uint32(format), int32(width))
}

func (f *Functions) TexStorage2D(target gl.Enum, levels int, format gl.Enum, width, height int) {
	f.glTexStorage2D(uint32(target), int32(levels), uint32(format), int32(width), int32(height))
}

func (f *Functions) TexStorage3D(target gl.Enum, levels int, format gl.Enum, width, height, depth int) {
	f.glTexStorage3D(uint32(target), int32(levels), uint32(format), int32(width), int32(height), int32(depth))
}

func (f *Functions) TexSubImage1D(target gl.Enum, level, x, width int, format, typ gl.Enum, data []byte) {
	f.glTexSubImage1D(uint32(target), int32(level), int32(x), int32(width), uint32(format), uint32(typ), ptr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, typ gl.Enum, data []byte) {
	f.glTexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height),
		uint32(format), uint32(typ), ptr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) TexSubImage3D(target gl.Enum, level, x, y, z, width, height, depth int, format, typ gl.Enum, data []byte) {
	f.glTexSubImage3D(uint32(target), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth),
		uint32(format), uint32(typ), ptr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) GetTexImage(target gl.Enum, level int, format, typ gl.Enum, data []byte) {
	f.glGetTexImage(uint32(target), int32(level), uint32(format), uint32(typ), ptr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int32) {
	f.glTexParameteri(uint32(target), uint32(pname), param)
}

func (f *Functions) PixelStorei(pname gl.Enum, param int32) { f.glPixelStorei(uint32(pname), param) }

func (f *Functions) CreateSampler() uint32       { return f.create(f.glCreateSamplers) }
func (f *Functions) DeleteSampler(id uint32)     { f.glDeleteSamplers(1, &id) }
func (f *Functions) IsSampler(id uint32) bool    { return f.glIsSampler(id) }
func (f *Functions) BindSampler(unit, id uint32) { f.glBindSampler(unit, id) }

func (f *Functions) SamplerParameteri(id uint32, pname gl.Enum, param int32) {
	f.glSamplerParameteri(id, uint32(pname), param)
}

func (f *Functions) SamplerParameterf(id uint32, pname gl.Enum, param float32) {
	f.glSamplerParameterf(id, uint32(pname), param)
}

func (f *Functions) SamplerParameterfv(id uint32, pname gl.Enum, params []float32) {
	if len(params) == 0 {
		return
	}
	f.glSamplerParameterfv(id, uint32(pname), &params[0])
}

func (f *Functions) CreateRenderbuffer() uint32    { return f.create(f.glCreateRenderbuffers) }
func (f *Functions) DeleteRenderbuffer(id uint32)  { f.glDeleteRenderbuffers(1, &id) }
func (f *Functions) IsRenderbuffer(id uint32) bool { return f.glIsRenderbuffer(id) }
func (f *Functions) BindRenderbuffer(target gl.Enum, id uint32) {
	f.glBindRenderbuffer(uint32(target), id)
}

func (f *Functions) RenderbufferStorage(target, format gl.Enum, width, height int) {
	f.glRenderbufferStorage(uint32(target), uint32(format), int32(width), int32(height))
}

func (f *Functions) CreateFramebuffer() uint32    { return f.create(f.glCreateFramebuffers) }
func (f *Functions) DeleteFramebuffer(id uint32)  { f.glDeleteFramebuffers(1, &id) }
func (f *Functions) IsFramebuffer(id uint32) bool { return f.glIsFramebuffer(id) }
func (f *Functions) BindFramebuffer(target gl.Enum, id uint32) {
	f.glBindFramebuffer(uint32(target), id)
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb uint32) {
	f.glFramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), rb)
}

func (f *Functions) FramebufferTexture(target, attachment gl.Enum, tex uint32, level int) {
	f.glFramebufferTexture(uint32(target), uint32(attachment), tex, int32(level))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, tex uint32, level int) {
	f.glFramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), tex, int32(level))
}

func (f *Functions) FramebufferTextureLayer(target, attachment gl.Enum, tex uint32, level, layer int) {
	f.glFramebufferTextureLayer(uint32(target), uint32(attachment), tex, int32(level), int32(layer))
}

func (f *Functions) DrawBuffers(bufs []gl.Enum) {
	if len(bufs) == 0 {
		f.glDrawBuffers(0, nil)
		return
	}
	f.glDrawBuffers(int32(len(bufs)), (*uint32)(unsafe.Pointer(&bufs[0])))
}

func (f *Functions) ReadBuffer(src gl.Enum) { f.glReadBuffer(uint32(src)) }

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(f.glCheckFramebufferStatus(uint32(target)))
}

func (f *Functions) ReadPixels(x, y, width, height int, format, typ gl.Enum, data []byte) {
	f.glReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), ptr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) CreateShaderProgram(typ gl.Enum, source string) uint32 {
	src := cstr(source)
	var pin runtime.Pinner
	pin.Pin(src)
	defer pin.Unpin()
	srcs := []*byte{src}
	return f.glCreateShaderProgramv(uint32(typ), 1, &srcs[0])
}

func (f *Functions) DeleteProgram(id uint32)  { f.glDeleteProgram(id) }
func (f *Functions) IsProgram(id uint32) bool { return f.glIsProgram(id) }

func (f *Functions) GetProgrami(id uint32, pname gl.Enum) int32 {
	var v int32
	f.glGetProgramiv(id, uint32(pname), &v)
	return v
}

func (f *Functions) GetProgramInfoLog(id uint32) string {
	n := f.GetProgrami(id, gl.InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	f.glGetProgramInfoLog(id, n, &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) GetActiveUniformName(id uint32, index uint32) string {
	n := f.GetProgrami(id, gl.ActiveUniformMaxLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	f.glGetActiveUniformName(id, index, n, &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) GetUniformLocation(id uint32, name string) int32 {
	return f.glGetUniformLocation(id, cstr(name))
}

func (f *Functions) UseProgram(id uint32) { f.glUseProgram(id) }

func (f *Functions) ProgramUniform1i(id uint32, loc int32, v int32)   { f.glProgramUniform1i(id, loc, v) }
func (f *Functions) ProgramUniform1ui(id uint32, loc int32, v uint32) { f.glProgramUniform1ui(id, loc, v) }
func (f *Functions) ProgramUniform1f(id uint32, loc int32, v float32) { f.glProgramUniform1f(id, loc, v) }

func (f *Functions) ProgramUniform2fv(id uint32, loc int32, v []float32) {
	f.glProgramUniform2fv(id, loc, int32(len(v)/2), &v[0])
}

func (f *Functions) ProgramUniform3fv(id uint32, loc int32, v []float32) {
	f.glProgramUniform3fv(id, loc, int32(len(v)/3), &v[0])
}

func (f *Functions) ProgramUniform4fv(id uint32, loc int32, v []float32) {
	f.glProgramUniform4fv(id, loc, int32(len(v)/4), &v[0])
}

func (f *Functions) ProgramUniformMatrix2fv(id uint32, loc int32, v []float32) {
	f.glProgramUniformMatrix2fv(id, loc, int32(len(v)/4), false, &v[0])
}

func (f *Functions) ProgramUniformMatrix3fv(id uint32, loc int32, v []float32) {
	f.glProgramUniformMatrix3fv(id, loc, int32(len(v)/9), false, &v[0])
}

func (f *Functions) ProgramUniformMatrix4fv(id uint32, loc int32, v []float32) {
	f.glProgramUniformMatrix4fv(id, loc, int32(len(v)/16), false, &v[0])
}

func (f *Functions) CreateProgramPipeline() uint32    { return f.create(f.glCreateProgramPipelines) }
func (f *Functions) DeleteProgramPipeline(id uint32)  { f.glDeleteProgramPipelines(1, &id) }
func (f *Functions) IsProgramPipeline(id uint32) bool { return f.glIsProgramPipeline(id) }
func (f *Functions) BindProgramPipeline(id uint32)    { f.glBindProgramPipeline(id) }

func (f *Functions) UseProgramStages(pipeline uint32, stages gl.Bitfield, program uint32) {
	f.glUseProgramStages(pipeline, uint32(stages), program)
}

func (f *Functions) CreateVertexArray() uint32         { return f.create(f.glCreateVertexArrays) }
func (f *Functions) DeleteVertexArray(id uint32)       { f.glDeleteVertexArrays(1, &id) }
func (f *Functions) IsVertexArray(id uint32) bool      { return f.glIsVertexArray(id) }
func (f *Functions) BindVertexArray(id uint32)         { f.glBindVertexArray(id) }
func (f *Functions) EnableVertexAttribArray(i uint32)  { f.glEnableVertexAttribArray(i) }
func (f *Functions) DisableVertexAttribArray(i uint32) { f.glDisableVertexAttribArray(i) }

func (f *Functions) VertexAttribPointer(index uint32, size int, typ gl.Enum, normalized bool, stride, offset int) {
	f.glVertexAttribPointer(index, int32(size), uint32(typ), normalized, int32(stride), uintptr(offset))
}

func (f *Functions) VertexAttribIPointer(index uint32, size int, typ gl.Enum, stride, offset int) {
	f.glVertexAttribIPointer(index, int32(size), uint32(typ), int32(stride), uintptr(offset))
}

func (f *Functions) Enable(c gl.Enum)       { f.glEnable(uint32(c)) }
func (f *Functions) Disable(c gl.Enum)      { f.glDisable(uint32(c)) }
func (f *Functions) FrontFace(mode gl.Enum) { f.glFrontFace(uint32(mode)) }
func (f *Functions) CullFace(mode gl.Enum)  { f.glCullFace(uint32(mode)) }
func (f *Functions) ClearDepth(d float64)   { f.glClearDepth(d) }
func (f *Functions) ClearStencil(s int32)   { f.glClearStencil(s) }
func (f *Functions) Clear(mask gl.Bitfield) { f.glClear(uint32(mask)) }
func (f *Functions) Finish()                { f.glFinish() }

func (f *Functions) Viewport(x, y, width, height int) {
	f.glViewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) ClearColor(r, g, b, a float32) { f.glClearColor(r, g, b, a) }

func (f *Functions) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	f.glDrawElements(uint32(mode), int32(count), uint32(typ), uintptr(offset))
}

func (f *Functions) GetInteger(pname gl.Enum) int32 {
	var v int32
	f.glGetIntegerv(uint32(pname), &v)
	return v
}

func (f *Functions) GetString(pname gl.Enum) string { return gostr(f.glGetString(uint32(pname))) }
func (f *Functions) GetError() gl.Enum              { return gl.Enum(f.glGetError()) }
