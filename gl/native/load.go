package native

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/lofx/gl"
)

// ProcAddressFunc resolves a GL entry point of the current context, such as
// glfw.GetProcAddress. It returns nil for unknown names.
type ProcAddressFunc func(name string) unsafe.Pointer

type entry struct {
	name     string
	fn       any
	optional bool
}

func (f *Functions) entries() []entry {
	return []entry{
		{name: "glCreateBuffers", fn: &f.glCreateBuffers},
		{name: "glDeleteBuffers", fn: &f.glDeleteBuffers},
		{name: "glIsBuffer", fn: &f.glIsBuffer},
		{name: "glBindBuffer", fn: &f.glBindBuffer},
		{name: "glBufferStorage", fn: &f.glBufferStorage},
		{name: "glBufferSubData", fn: &f.glBufferSubData},
		{name: "glGetBufferSubData", fn: &f.glGetBufferSubData},
		{name: "glGenTextures", fn: &f.glGenTextures},
		{name: "glDeleteTextures", fn: &f.glDeleteTextures},
		{name: "glIsTexture", fn: &f.glIsTexture},
		{name: "glActiveTexture", fn: &f.glActiveTexture},
		{name: "glBindTexture", fn: &f.glBindTexture},
		{name: "glTexStorage1D", fn: &f.glTexStorage1D},
		{name: "glTexStorage2D", fn: &f.glTexStorage2D},
		{name: "glTexStorage3D", fn: &f.glTexStorage3D},
		{name: "glTexSubImage1D", fn: &f.glTexSubImage1D},
		{name: "glTexSubImage2D", fn: &f.glTexSubImage2D},
		{name: "glTexSubImage3D", fn: &f.glTexSubImage3D},
		{name: "glGetTexImage", fn: &f.glGetTexImage},
		{name: "glTexParameteri", fn: &f.glTexParameteri},
		{name: "glPixelStorei", fn: &f.glPixelStorei},
		{name: "glCreateSamplers", fn: &f.glCreateSamplers},
		{name: "glDeleteSamplers", fn: &f.glDeleteSamplers},
		{name: "glIsSampler", fn: &f.glIsSampler},
		{name: "glBindSampler", fn: &f.glBindSampler},
		{name: "glSamplerParameteri", fn: &f.glSamplerParameteri},
		{name: "glSamplerParameterf", fn: &f.glSamplerParameterf},
		{name: "glSamplerParameterfv", fn: &f.glSamplerParameterfv},

		{name: "glCreateRenderbuffers", fn: &f.glCreateRenderbuffers},
		{name: "glDeleteRenderbuffers", fn: &f.glDeleteRenderbuffers},
		{name: "glIsRenderbuffer", fn: &f.glIsRenderbuffer},
		{name: "glBindRenderbuffer", fn: &f.glBindRenderbuffer},
		{name: "glRenderbufferStorage", fn: &f.glRenderbufferStorage},
		{name: "glCreateFramebuffers", fn: &f.glCreateFramebuffers},
		{name: "glDeleteFramebuffers", fn: &f.glDeleteFramebuffers},
		{name: "glIsFramebuffer", fn: &f.glIsFramebuffer},
		{name: "glBindFramebuffer", fn: &f.glBindFramebuffer},
		{name: "glFramebufferRenderbuffer", fn: &f.glFramebufferRenderbuffer},
		{name: "glFramebufferTexture", fn: &f.glFramebufferTexture},
		{name: "glFramebufferTexture2D", fn: &f.glFramebufferTexture2D},
		{name: "glFramebufferTextureLayer", fn: &f.glFramebufferTextureLayer},
		{name: "glDrawBuffers", fn: &f.glDrawBuffers},
		{name: "glReadBuffer", fn: &f.glReadBuffer},
		{name: "glCheckFramebufferStatus", fn: &f.glCheckFramebufferStatus},
		{name: "glReadPixels", fn: &f.glReadPixels},

		{name: "glCreateShaderProgramv", fn: &f.glCreateShaderProgramv},
		{name: "glDeleteProgram", fn: &f.glDeleteProgram},
		{name: "glIsProgram", fn: &f.glIsProgram},
		{name: "glGetProgramiv", fn: &f.glGetProgramiv},
		{name: "glGetProgramInfoLog", fn: &f.glGetProgramInfoLog},
		{name: "glGetActiveUniformName", fn: &f.glGetActiveUniformName},
		{name: "glGetUniformLocation", fn: &f.glGetUniformLocation},
		{name: "glUseProgram", fn: &f.glUseProgram},
		{name: "glProgramUniform1i", fn: &f.glProgramUniform1i},
		{name: "glProgramUniform1ui", fn: &f.glProgramUniform1ui},
		{name: "glProgramUniform1f", fn: &f.glProgramUniform1f},
		{name: "glProgramUniform2fv", fn: &f.glProgramUniform2fv},
		{name: "glProgramUniform3fv", fn: &f.glProgramUniform3fv},
		{name: "glProgramUniform4fv", fn: &f.glProgramUniform4fv},
		{name: "glProgramUniformMatrix2fv", fn: &f.glProgramUniformMatrix2fv},
		{name: "glProgramUniformMatrix3fv", fn: &f.glProgramUniformMatrix3fv},
		{name: "glProgramUniformMatrix4fv", fn: &f.glProgramUniformMatrix4fv},
		{name: "glCreateProgramPipelines", fn: &f.glCreateProgramPipelines},
		{name: "glDeleteProgramPipelines", fn: &f.glDeleteProgramPipelines},
		{name: "glIsProgramPipeline", fn: &f.glIsProgramPipeline},
		{name: "glUseProgramStages", fn: &f.glUseProgramStages},
		{name: "glBindProgramPipeline", fn: &f.glBindProgramPipeline},

		{name: "glCreateVertexArrays", fn: &f.glCreateVertexArrays},
		{name: "glDeleteVertexArrays", fn: &f.glDeleteVertexArrays},
		{name: "glIsVertexArray", fn: &f.glIsVertexArray},
		{name: "glBindVertexArray", fn: &f.glBindVertexArray},
		{name: "glEnableVertexAttribArray", fn: &f.glEnableVertexAttribArray},
		{name: "glDisableVertexAttribArray", fn: &f.glDisableVertexAttribArray},
		{name: "glVertexAttribPointer", fn: &f.glVertexAttribPointer},
		{name: "glVertexAttribIPointer", fn: &f.glVertexAttribIPointer},

		{name: "glEnable", fn: &f.glEnable},
		{name: "glDisable", fn: &f.glDisable},
		{name: "glFrontFace", fn: &f.glFrontFace},
		{name: "glCullFace", fn: &f.glCullFace},
		{name: "glViewport", fn: &f.glViewport},
		{name: "glClearColor", fn: &f.glClearColor},
		{name: "glClearDepth", fn: &f.glClearDepth},
		{name: "glClearStencil", fn: &f.glClearStencil},
		{name: "glClear", fn: &f.glClear},
		{name: "glDrawElements", fn: &f.glDrawElements},
		{name: "glFinish", fn: &f.glFinish},
		{name: "glGetIntegerv", fn: &f.glGetIntegerv},
		{name: "glGetString", fn: &f.glGetString},
		{name: "glGetError", fn: &f.glGetError},

		{name: "glDebugMessageCallback", fn: &f.glDebugMessageCallback, optional: true},
	}
}

// Load resolves every entry point with getProcAddress. The context must be
// current. Missing required functions are reported together, wrapped in
// ErrMissingFunction.
func Load(getProcAddress ProcAddressFunc) (*Functions, error) {
	return load(func(name string) uintptr {
		return uintptr(getProcAddress(name))
	})
}

func load(resolve func(name string) uintptr) (*Functions, error) {
	f := &Functions{}
	var missing []string
	for _, e := range f.entries() {
		addr := resolve(e.name)
		if addr == 0 {
			if !e.optional {
				missing = append(missing, e.name)
			}
			continue
		}
		purego.RegisterFunc(e.fn, addr)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFunction, strings.Join(missing, ", "))
	}
	return f, nil
}

// The GL debug callback is a single C trampoline shared by every
// Functions; it dispatches to the handler of the most recent
// DebugMessageCallback call.
var (
	debugOnce       sync.Once
	debugTrampoline uintptr
	debugMu         sync.RWMutex
	debugHandler    gl.DebugMessageFunc
)

func debugMessage(source, typ, id, severity, length, message, _ uintptr) uintptr {
	debugMu.RLock()
	fn := debugHandler
	debugMu.RUnlock()
	if fn == nil {
		return 0
	}
	msg := gostr((*byte)(unsafe.Pointer(message)))
	if n := int(int32(length)); n >= 0 && n < len(msg) {
		msg = msg[:n]
	}
	fn(gl.Enum(uint32(source)), gl.Enum(uint32(typ)), uint32(id), gl.Enum(uint32(severity)), msg)
	return 0
}

// DebugMessageCallback enables synchronous KHR_debug output and routes it
// to fn. It does nothing when the driver lacks glDebugMessageCallback.
func (f *Functions) DebugMessageCallback(fn gl.DebugMessageFunc) {
	if f.glDebugMessageCallback == nil {
		return
	}
	debugOnce.Do(func() {
		debugTrampoline = purego.NewCallback(debugMessage)
	})
	debugMu.Lock()
	debugHandler = fn
	debugMu.Unlock()

	if fn == nil {
		f.glDisable(uint32(gl.DebugOutputKHR))
		f.glDebugMessageCallback(0, nil)
		return
	}
	f.glEnable(uint32(gl.DebugOutputKHR))
	f.glEnable(uint32(gl.DebugOutputSynchronous))
	f.glDebugMessageCallback(debugTrampoline, nil)
}
