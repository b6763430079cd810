package lofx

import (
	"slices"

	"github.com/gogpu/lofx/gl"
)

// Pipeline is a program pipeline: one Program per active stage. A Pipeline
// references its programs; it does not own them and the same Program may be
// attached to several pipelines.
type Pipeline struct {
	ctx    *Context
	id     uint32
	stages []*Program
}

// CreatePipeline creates a pipeline object with optional initial stages.
func (c *Context) CreatePipeline(programs ...*Program) *Pipeline {
	p := &Pipeline{ctx: c, id: c.gl.CreateProgramPipeline()}
	p.SetStages(programs...)
	return p
}

// ID returns the GL program pipeline name, 0 once released.
func (p *Pipeline) ID() uint32 { return p.id }

// Valid reports whether the pipeline has not been released.
func (p *Pipeline) Valid() bool { return p != nil && p.id != 0 }

// Equal reports whether p and o refer to the same pipeline object.
func (p *Pipeline) Equal(o *Pipeline) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.id == o.id
}

// Stages returns the attached programs in order.
func (p *Pipeline) Stages() []*Program {
	return slices.Clone(p.stages)
}

// SetStages replaces all stages. Nil programs are skipped.
func (p *Pipeline) SetStages(programs ...*Program) {
	p.stages = p.stages[:0]
	for _, prog := range programs {
		if prog != nil {
			p.stages = append(p.stages, prog)
		}
	}
}

// AddStage attaches prog, detaching any stage whose mask overlaps it.
func (p *Pipeline) AddStage(prog *Program) {
	if prog == nil {
		return
	}
	p.stages = slices.DeleteFunc(p.stages, func(s *Program) bool {
		return s.stages&prog.stages != 0
	})
	p.stages = append(p.stages, prog)
}

// FindStage returns the first attached program whose stages intersect mask,
// or nil.
func (p *Pipeline) FindStage(mask StageMask) *Program {
	for _, s := range p.stages {
		if s.stages&mask != 0 {
			return s
		}
	}
	return nil
}

// Use makes p the active pipeline. Every stage slot of the pipeline object
// is cleared before the attached stages are bound, so programs bound by an
// earlier use of the same object do not survive.
func (p *Pipeline) Use() {
	c := p.ctx
	c.state.useProgram(c.gl, 0)
	c.gl.UseProgramStages(p.id, gl.AllShaderBits, 0)
	for _, s := range p.stages {
		c.gl.UseProgramStages(p.id, s.stages.bits(), s.id)
	}
	c.state.bindPipeline(c.gl, p.id)
}

// Send pushes u to every attached stage that declares it. Stages without
// the uniform are skipped silently; a single Warn diagnostic is reported
// only when no stage declares it.
func (p *Pipeline) Send(u Uniform) {
	if !p.broadcast(u) {
		p.ctx.diag.warnf("pipeline %d: no stage declares uniform %q", p.id, u.Name)
	}
}

// broadcast pushes u to the stages declaring it and reports whether any did.
func (p *Pipeline) broadcast(u Uniform) bool {
	sent := false
	for _, s := range p.stages {
		if loc, ok := s.locations[u.Name]; ok {
			s.push(loc, u)
			sent = true
		}
	}
	return sent
}

// Release deletes the pipeline object. The attached programs are not
// released. Calling Release more than once is a no-op.
func (p *Pipeline) Release() {
	if p == nil || p.id == 0 {
		return
	}
	if p.ctx.gl.IsProgramPipeline(p.id) {
		p.ctx.gl.DeleteProgramPipeline(p.id)
	}
	p.ctx.state.forgetPipeline(p.id)
	p.id = 0
}
