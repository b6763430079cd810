package lofx

import (
	"maps"
	"slices"

	"github.com/gogpu/lofx/gl"
)

// tracked caches one piece of GL state. An unset value forces the next
// update through to GL.
type tracked[T comparable] struct {
	v  T
	ok bool
}

// update records v and reports whether GL must be called.
func (t *tracked[T]) update(v T) bool {
	if t.ok && t.v == v {
		return false
	}
	t.v, t.ok = v, true
	return true
}

// forget drops the cached value if it equals v.
func (t *tracked[T]) forget(v T) {
	if t.ok && t.v == v {
		t.ok = false
	}
}

type texUnitTarget struct {
	unit   uint32
	target gl.Enum
}

// glState mirrors the binding state lofx changes so that redundant binds
// are skipped. Deleting an object must forget every binding that refers to
// it, because GL reuses names.
type glState struct {
	framebuffer  tracked[uint32]
	arrayBuffer  tracked[uint32]
	elemBuffer   tracked[uint32]
	renderbuffer tracked[uint32]
	activeUnit   tracked[uint32]
	program      tracked[uint32]
	pipeline     tracked[uint32]
	vertexArray  tracked[uint32]
	frontFace    tracked[gl.Enum]
	cullFace     tracked[gl.Enum]
	viewport     tracked[[4]int]

	textures map[texUnitTarget]uint32
	samplers map[uint32]uint32
	caps     map[gl.Enum]bool
	attribs  map[uint32]bool
}

func (s *glState) reset() {
	*s = glState{
		textures: make(map[texUnitTarget]uint32),
		samplers: make(map[uint32]uint32),
		caps:     make(map[gl.Enum]bool),
		attribs:  make(map[uint32]bool),
	}
}

func (s *glState) bindFramebuffer(f gl.Functions, id uint32) {
	if s.framebuffer.update(id) {
		f.BindFramebuffer(gl.Framebuffer, id)
	}
}

func (s *glState) bindBuffer(f gl.Functions, target gl.Enum, id uint32) {
	switch target {
	case gl.ArrayBuffer:
		if !s.arrayBuffer.update(id) {
			return
		}
	case gl.ElementArrayBuffer:
		if !s.elemBuffer.update(id) {
			return
		}
	}
	f.BindBuffer(target, id)
}

func (s *glState) bindRenderbuffer(f gl.Functions, id uint32) {
	if s.renderbuffer.update(id) {
		f.BindRenderbuffer(gl.Renderbuffer, id)
	}
}

func (s *glState) activeTexture(f gl.Functions, unit uint32) {
	if s.activeUnit.update(unit) {
		f.ActiveTexture(gl.Texture0 + gl.Enum(unit))
	}
}

// bindTexture binds id on unit, making unit active first.
func (s *glState) bindTexture(f gl.Functions, unit uint32, target gl.Enum, id uint32) {
	s.activeTexture(f, unit)
	key := texUnitTarget{unit, target}
	if cur, ok := s.textures[key]; ok && cur == id {
		return
	}
	s.textures[key] = id
	f.BindTexture(target, id)
}

func (s *glState) bindSampler(f gl.Functions, unit, id uint32) {
	if cur, ok := s.samplers[unit]; ok && cur == id {
		return
	}
	s.samplers[unit] = id
	f.BindSampler(unit, id)
}

func (s *glState) useProgram(f gl.Functions, id uint32) {
	if s.program.update(id) {
		f.UseProgram(id)
	}
}

func (s *glState) bindPipeline(f gl.Functions, id uint32) {
	if s.pipeline.update(id) {
		f.BindProgramPipeline(id)
	}
}

func (s *glState) bindVertexArray(f gl.Functions, id uint32) {
	if s.vertexArray.update(id) {
		f.BindVertexArray(id)
	}
}

func (s *glState) set(f gl.Functions, c gl.Enum, enable bool) {
	if cur, ok := s.caps[c]; ok && cur == enable {
		return
	}
	s.caps[c] = enable
	if enable {
		f.Enable(c)
	} else {
		f.Disable(c)
	}
}

func (s *glState) setFrontFace(f gl.Functions, mode gl.Enum) {
	if s.frontFace.update(mode) {
		f.FrontFace(mode)
	}
}

func (s *glState) setCullFace(f gl.Functions, mode gl.Enum) {
	if s.cullFace.update(mode) {
		f.CullFace(mode)
	}
}

func (s *glState) setViewport(f gl.Functions, x, y, w, h int) {
	if s.viewport.update([4]int{x, y, w, h}) {
		f.Viewport(x, y, w, h)
	}
}

// enableAttrib enables one vertex attribute slot.
func (s *glState) enableAttrib(f gl.Functions, slot uint32) {
	if !s.attribs[slot] {
		f.EnableVertexAttribArray(slot)
		s.attribs[slot] = true
	}
}

// disableUnused disables slots left enabled by an earlier pack.
func (s *glState) disableUnused(f gl.Functions, used map[uint32]bool) {
	for _, slot := range slices.Sorted(maps.Keys(s.attribs)) {
		if !used[slot] {
			f.DisableVertexAttribArray(slot)
			delete(s.attribs, slot)
		}
	}
}

func (s *glState) forgetBuffer(id uint32) {
	s.arrayBuffer.forget(id)
	s.elemBuffer.forget(id)
}

func (s *glState) forgetTexture(id uint32) {
	for k, t := range s.textures {
		if t == id {
			delete(s.textures, k)
		}
	}
}

func (s *glState) forgetSampler(id uint32) {
	for u, smp := range s.samplers {
		if smp == id {
			delete(s.samplers, u)
		}
	}
}

func (s *glState) forgetFramebuffer(id uint32)  { s.framebuffer.forget(id) }
func (s *glState) forgetRenderbuffer(id uint32) { s.renderbuffer.forget(id) }
func (s *glState) forgetProgram(id uint32)      { s.program.forget(id) }
func (s *glState) forgetPipeline(id uint32)     { s.pipeline.forget(id) }
