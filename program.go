package lofx

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gogpu/lofx/gl"
)

// StageMask is a set of shader stages.
type StageMask uint8

// Stage bits, one per GL shader stage.
const (
	StageVertex StageMask = 1 << iota
	StageTessControl
	StageTessEvaluation
	StageGeometry
	StageFragment
	StageCompute

	// StageAny matches every stage in Pipeline.FindStage.
	StageAny = StageVertex | StageTessControl | StageTessEvaluation | StageGeometry | StageFragment | StageCompute
)

var stageNames = []struct {
	mask StageMask
	name string
}{
	{StageVertex, "vertex"},
	{StageTessControl, "tess-control"},
	{StageTessEvaluation, "tess-evaluation"},
	{StageGeometry, "geometry"},
	{StageFragment, "fragment"},
	{StageCompute, "compute"},
}

// String returns the stage names joined with "|".
func (m StageMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, s := range stageNames {
		if m&s.mask != 0 {
			parts = append(parts, s.name)
		}
	}
	if rest := m &^ StageAny; rest != 0 {
		parts = append(parts, fmt.Sprintf("Unknown(%#x)", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// bits translates m to program pipeline stage bits.
func (m StageMask) bits() gl.Bitfield {
	var b gl.Bitfield
	if m&StageVertex != 0 {
		b |= gl.VertexShaderBit
	}
	if m&StageTessControl != 0 {
		b |= gl.TessControlShaderBit
	}
	if m&StageTessEvaluation != 0 {
		b |= gl.TessEvaluationShaderBit
	}
	if m&StageGeometry != 0 {
		b |= gl.GeometryShaderBit
	}
	if m&StageFragment != 0 {
		b |= gl.FragmentShaderBit
	}
	if m&StageCompute != 0 {
		b |= gl.ComputeShaderBit
	}
	return b
}

// shaderType returns the shader type the program source is compiled as: the
// lowest stage in m.
func (m StageMask) shaderType() (gl.Enum, bool) {
	switch {
	case m&StageVertex != 0:
		return gl.VertexShader, true
	case m&StageTessControl != 0:
		return gl.TessControlShader, true
	case m&StageTessEvaluation != 0:
		return gl.TessEvaluationShader, true
	case m&StageGeometry != 0:
		return gl.GeometryShader, true
	case m&StageFragment != 0:
		return gl.FragmentShader, true
	case m&StageCompute != 0:
		return gl.ComputeShader, true
	}
	return 0, false
}

// Program is a separately linked shader program for one or more stages.
// Its uniform locations are read once at creation.
type Program struct {
	ctx       *Context
	id        uint32
	stages    StageMask
	locations map[string]int32
}

// CreateProgram concatenates sources and links them as one separable
// program for stages. On failure it reports an Error diagnostic with the
// link log and returns a Program whose Valid method reports false.
func (c *Context) CreateProgram(stages StageMask, sources ...string) *Program {
	p := &Program{ctx: c, stages: stages, locations: make(map[string]int32)}
	typ, ok := stages.shaderType()
	if !ok {
		c.diag.errorf("program: no shader stage in mask %s", stages)
		return p
	}
	id := c.gl.CreateShaderProgram(typ, strings.Join(sources, ""))
	if id == 0 {
		c.diag.errorf("program (%s stage): creation failed", stages)
		return p
	}
	if c.gl.GetProgrami(id, gl.LinkStatus) == 0 {
		c.diag.errorf("program (%s stage): link failed:\n%s", stages, c.gl.GetProgramInfoLog(id))
		c.gl.DeleteProgram(id)
		return p
	}
	p.id = id
	n := c.gl.GetProgrami(id, gl.ActiveUniforms)
	for i := range max(n, 0) {
		name := c.gl.GetActiveUniformName(id, uint32(i))
		if name == "" {
			continue
		}
		loc := c.gl.GetUniformLocation(id, name)
		if loc < 0 {
			continue
		}
		p.locations[name] = loc
		if base, ok := strings.CutSuffix(name, "[0]"); ok {
			p.locations[base] = loc
		}
	}
	return p
}

// ID returns the GL program name, 0 if linking failed or after Release.
func (p *Program) ID() uint32 { return p.id }

// Valid reports whether the program linked and has not been released.
func (p *Program) Valid() bool { return p != nil && p.id != 0 }

// Stages returns the stage mask the program was created for.
func (p *Program) Stages() StageMask { return p.stages }

// Uniforms returns the names of the active uniforms in sorted order.
func (p *Program) Uniforms() []string {
	return slices.Sorted(maps.Keys(p.locations))
}

// Location returns the cached location of a uniform.
func (p *Program) Location(name string) (int32, bool) {
	loc, ok := p.locations[name]
	return loc, ok
}

// HasUniform reports whether the program declares an active uniform name.
func (p *Program) HasUniform(name string) bool {
	_, ok := p.locations[name]
	return ok
}

// Send pushes u to the program. A name the program does not declare is
// reported with a Warn diagnostic and nothing is sent.
func (p *Program) Send(u Uniform) {
	loc, ok := p.locations[u.Name]
	if !ok {
		p.ctx.diag.warnf("program %d (%s stage): no active uniform %q", p.id, p.stages, u.Name)
		return
	}
	p.push(loc, u)
}

func (p *Program) push(loc int32, u Uniform) {
	f := p.ctx.gl
	switch u.typ {
	case UniformUint:
		f.ProgramUniform1ui(p.id, loc, u.u)
	case UniformInt:
		f.ProgramUniform1i(p.id, loc, u.i)
	case UniformFloat:
		f.ProgramUniform1f(p.id, loc, u.f[0])
	case UniformVec2:
		f.ProgramUniform2fv(p.id, loc, u.Floats())
	case UniformVec3:
		f.ProgramUniform3fv(p.id, loc, u.Floats())
	case UniformVec4:
		f.ProgramUniform4fv(p.id, loc, u.Floats())
	case UniformMat2:
		f.ProgramUniformMatrix2fv(p.id, loc, u.Floats())
	case UniformMat3:
		f.ProgramUniformMatrix3fv(p.id, loc, u.Floats())
	case UniformMat4:
		f.ProgramUniformMatrix4fv(p.id, loc, u.Floats())
	}
}

// Release deletes the program. Calling Release more than once is a no-op.
func (p *Program) Release() {
	if p == nil || p.id == 0 {
		return
	}
	if p.ctx.gl.IsProgram(p.id) {
		p.ctx.gl.DeleteProgram(p.id)
	}
	p.ctx.state.forgetProgram(p.id)
	p.id = 0
}
