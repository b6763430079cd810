package lofx

import (
	"fmt"

	"github.com/gogpu/lofx/backend"
	"github.com/gogpu/lofx/gl"
)

// Limits are implementation limits queried once when a Context is created.
type Limits struct {
	MaxColorAttachments int
	MaxDrawBuffers      int
	MaxVertexAttribs    int
	MaxTextureUnits     int
	MaxTextureSize      int
}

// Context owns one OpenGL context and the state lofx tracks for it. Every
// resource is created through a Context and stays bound to it.
//
// A Context is not safe for concurrent use. Use it only from the goroutine
// that created it, locked to its OS thread.
type Context struct {
	gl      gl.Functions
	state   glState
	diag    diagnostics
	limits  Limits
	surface backend.Surface
	vao     uint32

	major, minor int
	vendor       string
	renderer     string
}

// NewContext wraps GL entry points whose context is already current. It
// queries the version and limits, sets byte-aligned pixel transfers and
// binds the vertex array used by every draw.
func NewContext(fns gl.Functions, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{gl: fns}
	c.state.reset()
	c.diag.callback = o.callback

	c.major = int(fns.GetInteger(gl.MajorVersion))
	c.minor = int(fns.GetInteger(gl.MinorVersion))
	c.vendor = fns.GetString(gl.Vendor)
	c.renderer = fns.GetString(gl.Renderer)
	c.limits = Limits{
		MaxColorAttachments: int(fns.GetInteger(gl.MaxColorAttachments)),
		MaxDrawBuffers:      int(fns.GetInteger(gl.MaxDrawBuffers)),
		MaxVertexAttribs:    int(fns.GetInteger(gl.MaxVertexAttribs)),
		MaxTextureUnits:     int(fns.GetInteger(gl.MaxCombinedTextureImageUnits)),
		MaxTextureSize:      int(fns.GetInteger(gl.MaxTextureSize)),
	}

	if o.debugOutput {
		if d, ok := fns.(gl.DebugOutput); ok {
			d.DebugMessageCallback(c.onDebugMessage)
		} else {
			c.diag.tracef("debug output requested but not supported by %T", fns)
		}
	}

	fns.PixelStorei(gl.UnpackAlignment, 1)
	fns.PixelStorei(gl.PackAlignment, 1)

	c.vao = fns.CreateVertexArray()
	c.state.bindVertexArray(fns, c.vao)

	c.diag.tracef("lofx initialized; using OpenGL %d.%d (%s, %s)", c.major, c.minor, c.vendor, c.renderer)
	return c
}

// Init creates a surface from the backend registry, initializes it with
// cfg.Window and returns a Context on its GL context. Failures are returned
// and also reported to the debug callback with source SourceWindow.
func Init(cfg Config, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	diag := diagnostics{callback: o.callback}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := backend.Select(cfg.Backend)
	if err != nil {
		diag.window(cfg.Backend, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrNoBackend, err)
	}
	if err := s.Init(cfg.Window); err != nil {
		diag.window(s.Name(), err.Error())
		return nil, fmt.Errorf("lofx: init %s surface: %w", s.Name(), err)
	}

	if cfg.DebugOutput {
		opts = append(opts, WithDebugOutput(true))
	}
	c := NewContext(s.Functions(), opts...)
	c.surface = s

	major, minor, _ := cfg.Window.Version()
	if c.major < major || (c.major == major && c.minor < minor) {
		msg := fmt.Sprintf("OpenGL %d.%d requested, context is %d.%d", major, minor, c.major, c.minor)
		c.diag.window(s.Name(), msg)
		c.Terminate()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, msg)
	}
	return c, nil
}

// Terminate deletes the context's vertex array and closes its surface, if
// any. The Context must not be used afterwards; calling Terminate again is
// a no-op.
func (c *Context) Terminate() {
	if c.gl == nil {
		return
	}
	if c.vao != 0 && c.gl.IsVertexArray(c.vao) {
		c.gl.DeleteVertexArray(c.vao)
	}
	c.vao = 0
	if c.surface != nil {
		c.surface.Close()
		c.surface = nil
	}
	c.state.reset()
	c.gl = nil
}

// Functions returns the GL entry points, for calls lofx does not wrap.
// Call InvalidateState after changing bindings directly.
func (c *Context) Functions() gl.Functions { return c.gl }

// Version returns the GL version of the context.
func (c *Context) Version() (major, minor int) { return c.major, c.minor }

// Vendor returns the GL_VENDOR string.
func (c *Context) Vendor() string { return c.vendor }

// Renderer returns the GL_RENDERER string.
func (c *Context) Renderer() string { return c.renderer }

// Limits returns the implementation limits.
func (c *Context) Limits() Limits { return c.limits }

// Surface returns the surface created by Init, or nil for a Context made
// with NewContext.
func (c *Context) Surface() backend.Surface { return c.surface }

// SetDebugCallback replaces the diagnostics callback. Nil removes it.
func (c *Context) SetDebugCallback(cb DebugCallback) {
	c.diag.callback = cb
}

// InvalidateState forgets every cached binding so the next lofx call
// issues it again.
func (c *Context) InvalidateState() {
	c.state.reset()
	c.state.bindVertexArray(c.gl, c.vao)
}

// Sync blocks until every issued GL command has completed.
func (c *Context) Sync() {
	c.gl.Finish()
}

// CheckErrors drains glGetError, reporting each error as an Error
// diagnostic with source SourceOpenGL. It returns the number of errors.
func (c *Context) CheckErrors() int {
	n := 0
	// A lost context can report errors forever.
	for range maxErrorPoll {
		e := c.gl.GetError()
		if e == gl.NoError {
			break
		}
		c.diag.opengl(LevelError, OpenGLParams{
			Source:   gl.DebugSourceAPI,
			Type:     gl.DebugTypeError,
			ID:       uint32(e),
			Severity: gl.DebugSeverityHigh,
		}, "OpenGL error: "+gl.ErrorString(e))
		n++
	}
	return n
}

const maxErrorPoll = 32

func (c *Context) onDebugMessage(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
	c.diag.opengl(debugSeverityLevel(severity), OpenGLParams{
		Source:   source,
		Type:     typ,
		ID:       id,
		Severity: severity,
	}, message)
}

// SwapBuffers presents the surface's back buffer. It does nothing without
// a surface.
func (c *Context) SwapBuffers() {
	if c.surface != nil {
		c.surface.SwapBuffers()
	}
}

// Loop calls frame, checks for GL errors, presents and polls events until
// the surface asks to close. It returns immediately without a surface.
func (c *Context) Loop(frame func()) {
	s := c.surface
	if s == nil {
		return
	}
	for !s.ShouldClose() {
		frame()
		c.CheckErrors()
		s.SwapBuffers()
		s.PollEvents()
	}
}
