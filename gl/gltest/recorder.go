// Package gltest provides an in-memory implementation of gl.Functions.
//
// A Recorder keeps enough GL object state to behave like a driver for the
// calls lofx makes: names are allocated and reused per object kind, buffer
// storage holds real bytes, programs reflect the uniforms declared in their
// GLSL source, program pipelines remember their stage bindings and
// framebuffers compute a completeness status from their attachments. Every
// call is appended to a log so tests can assert on exact call sequences.
//
// The Recorder is also the GL implementation behind the headless backend.
package gltest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/lofx/gl"
)

// Call is one recorded GL command.
type Call struct {
	Name string
	Args []any
}

// String formats the call as Name(arg, arg, ...).
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Attrib is the recorded state of one vertex attribute slot.
type Attrib struct {
	Enabled    bool
	Buffer     uint32
	Size       int
	Type       gl.Enum
	Normalized bool
	Integer    bool
	Stride     int
	Offset     int
}

// Attachment is one framebuffer attachment point.
type Attachment struct {
	Texture      uint32
	TexTarget    gl.Enum
	Renderbuffer uint32
	Level        int
	// Layer is -1 for non-layer attachments.
	Layer int
}

// Draw is a recorded DrawElements call with the bindings it observed.
type Draw struct {
	Mode          gl.Enum
	Count         int
	Type          gl.Enum
	Offset        int
	Framebuffer   uint32
	Pipeline      uint32
	ElementBuffer uint32
}

type bufferObject struct {
	data  []byte
	flags gl.Bitfield
}

type textureObject struct {
	target               gl.Enum
	levels               int
	format               gl.Enum
	width, height, depth int
	pixels               []byte
}

type programObject struct {
	typ      gl.Enum
	linked   bool
	log      string
	uniforms []string
	values   map[string]any
}

type framebufferObject struct {
	attachments map[gl.Enum]Attachment
	drawBuffers []gl.Enum
	readBuffer  gl.Enum
}

type renderbufferObject struct {
	format        gl.Enum
	width, height int
}

type texBinding struct {
	unit   uint32
	target gl.Enum
}

// Recorder is a recording gl.Functions. The zero value is not usable; create
// one with New.
type Recorder struct {
	// Values reported by GetInteger. Tests may change them before creating a
	// context.
	MajorVersion        int32
	MinorVersion        int32
	MaxColorAttachments int32
	MaxDrawBuffers      int32
	MaxVertexAttribs    int32
	MaxTextureUnits     int32

	// FramebufferStatus, when non-zero, is returned by every
	// CheckFramebufferStatus on a non-default framebuffer.
	FramebufferStatus gl.Enum

	// Errors is drained by GetError, oldest first.
	Errors []gl.Enum

	calls []Call
	draws []Draw

	names map[string]*nameAllocator

	buffers       map[uint32]*bufferObject
	textures      map[uint32]*textureObject
	samplers      map[uint32]map[gl.Enum]any
	renderbuffers map[uint32]*renderbufferObject
	framebuffers  map[uint32]*framebufferObject
	programs      map[uint32]*programObject
	pipelines     map[uint32]map[gl.Bitfield]uint32
	vertexArrays  map[uint32]bool

	bufferBindings  map[gl.Enum]uint32
	drawFramebuffer uint32
	readFramebuffer uint32
	renderbuffer    uint32
	activeUnit      uint32
	texBindings     map[texBinding]uint32
	samplerBindings map[uint32]uint32
	program         uint32
	pipeline        uint32
	vertexArray     uint32
	attribs         map[uint32]Attrib
	caps            map[gl.Enum]bool
	frontFace       gl.Enum
	cullFace        gl.Enum
	viewport        [4]int
	pixelStore      map[gl.Enum]int32

	debug gl.DebugMessageFunc
}

var _ gl.Functions = (*Recorder)(nil)
var _ gl.DebugOutput = (*Recorder)(nil)

// New returns a Recorder that reports an OpenGL 4.5 context with 8 color
// attachments.
func New() *Recorder {
	return &Recorder{
		MajorVersion:        4,
		MinorVersion:        5,
		MaxColorAttachments: 8,
		MaxDrawBuffers:      8,
		MaxVertexAttribs:    16,
		MaxTextureUnits:     32,

		names:           make(map[string]*nameAllocator),
		buffers:         make(map[uint32]*bufferObject),
		textures:        make(map[uint32]*textureObject),
		samplers:        make(map[uint32]map[gl.Enum]any),
		renderbuffers:   make(map[uint32]*renderbufferObject),
		framebuffers:    make(map[uint32]*framebufferObject),
		programs:        make(map[uint32]*programObject),
		pipelines:       make(map[uint32]map[gl.Bitfield]uint32),
		vertexArrays:    make(map[uint32]bool),
		bufferBindings:  make(map[gl.Enum]uint32),
		texBindings:     make(map[texBinding]uint32),
		samplerBindings: make(map[uint32]uint32),
		attribs:         make(map[uint32]Attrib),
		caps:            make(map[gl.Enum]bool),
		frontFace:       gl.CCW,
		cullFace:        gl.Back,
		pixelStore:      map[gl.Enum]int32{gl.PackAlignment: 4, gl.UnpackAlignment: 4},
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) alloc(kind string) uint32 {
	a, ok := r.names[kind]
	if !ok {
		a = &nameAllocator{}
		r.names[kind] = a
	}
	return a.alloc()
}

func (r *Recorder) free(kind string, id uint32) {
	if a, ok := r.names[kind]; ok {
		a.free(id)
	}
}

// Calls returns a copy of the call log.
func (r *Recorder) Calls() []Call {
	return slices.Clone(r.calls)
}

// CallNames returns the names of all recorded calls in order.
func (r *Recorder) CallNames() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// CallsNamed returns the recorded calls with the given name.
func (r *Recorder) CallsNamed(name string) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset clears the call and draw logs. Object state is kept.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.draws = r.draws[:0]
}

// Draws returns the recorded draw calls.
func (r *Recorder) Draws() []Draw {
	return slices.Clone(r.draws)
}

// BufferData returns the storage of buffer id.
func (r *Recorder) BufferData(id uint32) ([]byte, bool) {
	b, ok := r.buffers[id]
	if !ok {
		return nil, false
	}
	return b.data, true
}

// BufferFlags returns the storage flags buffer id was created with.
func (r *Recorder) BufferFlags(id uint32) gl.Bitfield {
	if b, ok := r.buffers[id]; ok {
		return b.flags
	}
	return 0
}

// Attrib returns the state of vertex attribute index.
func (r *Recorder) Attrib(index uint32) Attrib {
	return r.attribs[index]
}

// Enabled reports whether capability c is enabled.
func (r *Recorder) Enabled(c gl.Enum) bool {
	return r.caps[c]
}

// FrontFaceMode returns the current winding order.
func (r *Recorder) FrontFaceMode() gl.Enum { return r.frontFace }

// CullFaceMode returns the current cull face.
func (r *Recorder) CullFaceMode() gl.Enum { return r.cullFace }

// BoundFramebuffer returns the current draw framebuffer.
func (r *Recorder) BoundFramebuffer() uint32 { return r.drawFramebuffer }

// BoundBuffer returns the buffer bound to target.
func (r *Recorder) BoundBuffer(target gl.Enum) uint32 { return r.bufferBindings[target] }

// BoundPipeline returns the bound program pipeline.
func (r *Recorder) BoundPipeline() uint32 { return r.pipeline }

// BoundProgram returns the program set with UseProgram.
func (r *Recorder) BoundProgram() uint32 { return r.program }

// ActiveUnit returns the active texture unit index.
func (r *Recorder) ActiveUnit() uint32 { return r.activeUnit }

// BoundTexture returns the texture bound to target on unit.
func (r *Recorder) BoundTexture(unit uint32, target gl.Enum) uint32 {
	return r.texBindings[texBinding{unit, target}]
}

// BoundSampler returns the sampler bound to unit.
func (r *Recorder) BoundSampler(unit uint32) uint32 { return r.samplerBindings[unit] }

// ViewportRect returns the last viewport rectangle.
func (r *Recorder) ViewportRect() [4]int { return r.viewport }

// PipelineStage returns the program bound to the stage bit of pipeline.
func (r *Recorder) PipelineStage(pipeline uint32, stage gl.Bitfield) uint32 {
	return r.pipelines[pipeline][stage]
}

// Attachments returns the attachments of framebuffer id.
func (r *Recorder) Attachments(id uint32) map[gl.Enum]Attachment {
	fb, ok := r.framebuffers[id]
	if !ok {
		return nil
	}
	out := make(map[gl.Enum]Attachment, len(fb.attachments))
	for k, v := range fb.attachments {
		out[k] = v
	}
	return out
}

// FramebufferDrawBuffers returns the draw buffers of framebuffer id.
func (r *Recorder) FramebufferDrawBuffers(id uint32) []gl.Enum {
	if fb, ok := r.framebuffers[id]; ok {
		return slices.Clone(fb.drawBuffers)
	}
	return nil
}

// UniformValue returns the value last pushed to the named uniform of a
// program. Scalars are int32, uint32 or float32; vectors and matrices are
// []float32.
func (r *Recorder) UniformValue(program uint32, name string) (any, bool) {
	p, ok := r.programs[program]
	if !ok {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Live reports the number of live objects of each kind.
func (r *Recorder) Live() map[string]int {
	return map[string]int{
		"buffer":       len(r.buffers),
		"texture":      len(r.textures),
		"sampler":      len(r.samplers),
		"renderbuffer": len(r.renderbuffers),
		"framebuffer":  len(r.framebuffers),
		"program":      len(r.programs),
		"pipeline":     len(r.pipelines),
		"vertexarray":  len(r.vertexArrays),
	}
}

// EmitDebug delivers a KHR_debug message to the installed callback.
func (r *Recorder) EmitDebug(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
	if r.debug != nil {
		r.debug(source, typ, id, severity, message)
	}
}

// nameAllocator hands out the lowest free name, as most drivers do, so that
// tests observe id reuse after deletion.
type nameAllocator struct {
	used map[uint32]bool
}

func (a *nameAllocator) alloc() uint32 {
	if a.used == nil {
		a.used = make(map[uint32]bool)
	}
	for id := uint32(1); ; id++ {
		if !a.used[id] {
			a.used[id] = true
			return id
		}
	}
}

func (a *nameAllocator) free(id uint32) {
	delete(a.used, id)
}
