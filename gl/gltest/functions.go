package gltest

import (
	"slices"

	"github.com/gogpu/lofx/gl"
)

func (r *Recorder) fail(e gl.Enum) {
	r.Errors = append(r.Errors, e)
}

// Buffers.

func (r *Recorder) CreateBuffer() uint32 {
	id := r.alloc("buffer")
	r.buffers[id] = &bufferObject{}
	r.record("CreateBuffer", id)
	return id
}

func (r *Recorder) DeleteBuffer(id uint32) {
	r.record("DeleteBuffer", id)
	if _, ok := r.buffers[id]; !ok {
		return
	}
	delete(r.buffers, id)
	r.free("buffer", id)
	for t, b := range r.bufferBindings {
		if b == id {
			r.bufferBindings[t] = 0
		}
	}
}

func (r *Recorder) IsBuffer(id uint32) bool {
	r.record("IsBuffer", id)
	_, ok := r.buffers[id]
	return ok
}

func (r *Recorder) BindBuffer(target gl.Enum, id uint32) {
	r.record("BindBuffer", target, id)
	r.bufferBindings[target] = id
}

func (r *Recorder) boundBuffer(target gl.Enum) *bufferObject {
	b, ok := r.buffers[r.bufferBindings[target]]
	if !ok {
		r.fail(gl.InvalidOperation)
		return nil
	}
	return b
}

func (r *Recorder) BufferStorage(target gl.Enum, size int, data []byte, flags gl.Bitfield) {
	r.record("BufferStorage", target, size, flags)
	b := r.boundBuffer(target)
	if b == nil {
		return
	}
	b.data = make([]byte, size)
	copy(b.data, data)
	b.flags = flags
}

func (r *Recorder) BufferSubData(target gl.Enum, offset int, data []byte) {
	r.record("BufferSubData", target, offset, len(data))
	b := r.boundBuffer(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) || b.flags&gl.DynamicStorageBit == 0 {
		r.fail(gl.InvalidValue)
		return
	}
	copy(b.data[offset:], data)
}

func (r *Recorder) GetBufferSubData(target gl.Enum, offset int, data []byte) {
	r.record("GetBufferSubData", target, offset, len(data))
	b := r.boundBuffer(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		r.fail(gl.InvalidValue)
		return
	}
	copy(data, b.data[offset:])
}

// Textures and samplers.

func (r *Recorder) CreateTexture() uint32 {
	id := r.alloc("texture")
	r.textures[id] = &textureObject{}
	r.record("CreateTexture", id)
	return id
}

func (r *Recorder) DeleteTexture(id uint32) {
	r.record("DeleteTexture", id)
	if _, ok := r.textures[id]; !ok {
		return
	}
	delete(r.textures, id)
	r.free("texture", id)
	for k, t := range r.texBindings {
		if t == id {
			delete(r.texBindings, k)
		}
	}
}

func (r *Recorder) IsTexture(id uint32) bool {
	r.record("IsTexture", id)
	_, ok := r.textures[id]
	return ok
}

func (r *Recorder) ActiveTexture(unit gl.Enum) {
	r.record("ActiveTexture", unit)
	r.activeUnit = uint32(unit - gl.Texture0)
}

func (r *Recorder) BindTexture(target gl.Enum, id uint32) {
	r.record("BindTexture", target, id)
	r.texBindings[texBinding{r.activeUnit, target}] = id
	if t, ok := r.textures[id]; ok && t.target == 0 {
		t.target = target
	}
}

func (r *Recorder) boundTexture(target gl.Enum) *textureObject {
	switch target {
	case gl.TextureCubeMapPositiveX, gl.TextureCubeMapNegativeX,
		gl.TextureCubeMapPositiveY, gl.TextureCubeMapNegativeY,
		gl.TextureCubeMapPositiveZ, gl.TextureCubeMapNegativeZ:
		target = gl.TextureCubeMap
	}
	t, ok := r.textures[r.texBindings[texBinding{r.activeUnit, target}]]
	if !ok {
		r.fail(gl.InvalidOperation)
		return nil
	}
	return t
}

func (r *Recorder) texStorage(target gl.Enum, levels int, format gl.Enum, w, h, d int) {
	t := r.boundTexture(target)
	if t == nil {
		return
	}
	t.levels, t.format = levels, format
	t.width, t.height, t.depth = w, h, d
}

func (r *Recorder) TexStorage1D(target gl.Enum, levels int, format gl.Enum, width int) {
	r.record("TexStorage1D", target, levels, format, width)
	r.texStorage(target, levels, format, width, 1, 1)
}

func (r *Recorder) TexStorage2D(target gl.Enum, levels int, format gl.Enum, width, height int) {
	r.record("TexStorage2D", target, levels, format, width, height)
	r.texStorage(target, levels, format, width, height, 1)
}

func (r *Recorder) TexStorage3D(target gl.Enum, levels int, format gl.Enum, width, height, depth int) {
	r.record("TexStorage3D", target, levels, format, width, height, depth)
	r.texStorage(target, levels, format, width, height, depth)
}

func (r *Recorder) upload(target gl.Enum, data []byte) {
	if t := r.boundTexture(target); t != nil {
		t.pixels = slices.Clone(data)
	}
}

func (r *Recorder) TexSubImage1D(target gl.Enum, level, x, width int, format, typ gl.Enum, data []byte) {
	r.record("TexSubImage1D", target, level, x, width, format, typ, len(data))
	r.upload(target, data)
}

func (r *Recorder) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, typ gl.Enum, data []byte) {
	r.record("TexSubImage2D", target, level, x, y, width, height, format, typ, len(data))
	r.upload(target, data)
}

func (r *Recorder) TexSubImage3D(target gl.Enum, level, x, y, z, width, height, depth int, format, typ gl.Enum, data []byte) {
	r.record("TexSubImage3D", target, level, x, y, z, width, height, depth, format, typ, len(data))
	r.upload(target, data)
}

func (r *Recorder) GetTexImage(target gl.Enum, level int, format, typ gl.Enum, data []byte) {
	r.record("GetTexImage", target, level, format, typ, len(data))
	if t := r.boundTexture(target); t != nil {
		copy(data, t.pixels)
	}
}

func (r *Recorder) TexParameteri(target, pname gl.Enum, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) PixelStorei(pname gl.Enum, param int32) {
	r.record("PixelStorei", pname, param)
	r.pixelStore[pname] = param
}

func (r *Recorder) CreateSampler() uint32 {
	id := r.alloc("sampler")
	r.samplers[id] = make(map[gl.Enum]any)
	r.record("CreateSampler", id)
	return id
}

func (r *Recorder) DeleteSampler(id uint32) {
	r.record("DeleteSampler", id)
	if _, ok := r.samplers[id]; !ok {
		return
	}
	delete(r.samplers, id)
	r.free("sampler", id)
	for u, s := range r.samplerBindings {
		if s == id {
			r.samplerBindings[u] = 0
		}
	}
}

func (r *Recorder) IsSampler(id uint32) bool {
	r.record("IsSampler", id)
	_, ok := r.samplers[id]
	return ok
}

func (r *Recorder) BindSampler(unit uint32, id uint32) {
	r.record("BindSampler", unit, id)
	r.samplerBindings[unit] = id
}

func (r *Recorder) SamplerParameteri(id uint32, pname gl.Enum, param int32) {
	r.record("SamplerParameteri", id, pname, param)
	if s, ok := r.samplers[id]; ok {
		s[pname] = param
	}
}

func (r *Recorder) SamplerParameterf(id uint32, pname gl.Enum, param float32) {
	r.record("SamplerParameterf", id, pname, param)
	if s, ok := r.samplers[id]; ok {
		s[pname] = param
	}
}

func (r *Recorder) SamplerParameterfv(id uint32, pname gl.Enum, params []float32) {
	r.record("SamplerParameterfv", id, pname, slices.Clone(params))
	if s, ok := r.samplers[id]; ok {
		s[pname] = slices.Clone(params)
	}
}

// SamplerParameter returns a parameter previously set on sampler id.
func (r *Recorder) SamplerParameter(id uint32, pname gl.Enum) (any, bool) {
	s, ok := r.samplers[id]
	if !ok {
		return nil, false
	}
	v, ok := s[pname]
	return v, ok
}

// Renderbuffers and framebuffers.

func (r *Recorder) CreateRenderbuffer() uint32 {
	id := r.alloc("renderbuffer")
	r.renderbuffers[id] = &renderbufferObject{}
	r.record("CreateRenderbuffer", id)
	return id
}

func (r *Recorder) DeleteRenderbuffer(id uint32) {
	r.record("DeleteRenderbuffer", id)
	if _, ok := r.renderbuffers[id]; !ok {
		return
	}
	delete(r.renderbuffers, id)
	r.free("renderbuffer", id)
	if r.renderbuffer == id {
		r.renderbuffer = 0
	}
}

func (r *Recorder) IsRenderbuffer(id uint32) bool {
	r.record("IsRenderbuffer", id)
	_, ok := r.renderbuffers[id]
	return ok
}

func (r *Recorder) BindRenderbuffer(target gl.Enum, id uint32) {
	r.record("BindRenderbuffer", target, id)
	r.renderbuffer = id
}

func (r *Recorder) RenderbufferStorage(target, format gl.Enum, width, height int) {
	r.record("RenderbufferStorage", target, format, width, height)
	rb, ok := r.renderbuffers[r.renderbuffer]
	if !ok {
		r.fail(gl.InvalidOperation)
		return
	}
	rb.format, rb.width, rb.height = format, width, height
}

func (r *Recorder) CreateFramebuffer() uint32 {
	id := r.alloc("framebuffer")
	r.framebuffers[id] = &framebufferObject{
		attachments: make(map[gl.Enum]Attachment),
		drawBuffers: []gl.Enum{gl.ColorAttachment0},
		readBuffer:  gl.ColorAttachment0,
	}
	r.record("CreateFramebuffer", id)
	return id
}

func (r *Recorder) DeleteFramebuffer(id uint32) {
	r.record("DeleteFramebuffer", id)
	if _, ok := r.framebuffers[id]; !ok {
		return
	}
	delete(r.framebuffers, id)
	r.free("framebuffer", id)
	if r.drawFramebuffer == id {
		r.drawFramebuffer = 0
	}
	if r.readFramebuffer == id {
		r.readFramebuffer = 0
	}
}

func (r *Recorder) IsFramebuffer(id uint32) bool {
	r.record("IsFramebuffer", id)
	_, ok := r.framebuffers[id]
	return ok
}

func (r *Recorder) BindFramebuffer(target gl.Enum, id uint32) {
	r.record("BindFramebuffer", target, id)
	switch target {
	case gl.DrawFramebuffer:
		r.drawFramebuffer = id
	case gl.ReadFramebuffer:
		r.readFramebuffer = id
	default:
		r.drawFramebuffer, r.readFramebuffer = id, id
	}
}

func (r *Recorder) framebufferFor(target gl.Enum) *framebufferObject {
	id := r.drawFramebuffer
	if target == gl.ReadFramebuffer {
		id = r.readFramebuffer
	}
	fb, ok := r.framebuffers[id]
	if !ok {
		r.fail(gl.InvalidOperation)
		return nil
	}
	return fb
}

func (r *Recorder) attach(target, attachment gl.Enum, a Attachment) {
	fb := r.framebufferFor(target)
	if fb == nil {
		return
	}
	if a.Texture == 0 && a.Renderbuffer == 0 {
		delete(fb.attachments, attachment)
		return
	}
	fb.attachments[attachment] = a
}

func (r *Recorder) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb uint32) {
	r.record("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
	r.attach(target, attachment, Attachment{Renderbuffer: rb, Layer: -1})
}

func (r *Recorder) FramebufferTexture(target, attachment gl.Enum, tex uint32, level int) {
	r.record("FramebufferTexture", target, attachment, tex, level)
	r.attach(target, attachment, Attachment{Texture: tex, Level: level, Layer: -1})
}

func (r *Recorder) FramebufferTexture2D(target, attachment, texTarget gl.Enum, tex uint32, level int) {
	r.record("FramebufferTexture2D", target, attachment, texTarget, tex, level)
	r.attach(target, attachment, Attachment{Texture: tex, TexTarget: texTarget, Level: level, Layer: -1})
}

func (r *Recorder) FramebufferTextureLayer(target, attachment gl.Enum, tex uint32, level, layer int) {
	r.record("FramebufferTextureLayer", target, attachment, tex, level, layer)
	r.attach(target, attachment, Attachment{Texture: tex, Level: level, Layer: layer})
}

func (r *Recorder) DrawBuffers(bufs []gl.Enum) {
	r.record("DrawBuffers", slices.Clone(bufs))
	if fb := r.framebufferFor(gl.DrawFramebuffer); fb != nil {
		fb.drawBuffers = slices.Clone(bufs)
	}
}

func (r *Recorder) ReadBuffer(src gl.Enum) {
	r.record("ReadBuffer", src)
	if r.readFramebuffer == 0 {
		return
	}
	if fb := r.framebufferFor(gl.ReadFramebuffer); fb != nil {
		fb.readBuffer = src
	}
}

func (r *Recorder) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	r.record("CheckFramebufferStatus", target)
	id := r.drawFramebuffer
	if target == gl.ReadFramebuffer {
		id = r.readFramebuffer
	}
	if id == 0 {
		return gl.FramebufferComplete
	}
	if r.FramebufferStatus != 0 {
		return r.FramebufferStatus
	}
	fb, ok := r.framebuffers[id]
	if !ok {
		return gl.FramebufferUndefined
	}
	if len(fb.attachments) == 0 {
		return gl.FramebufferIncompleteMissingAttachment
	}
	for _, a := range fb.attachments {
		if a.Texture != 0 {
			if _, ok := r.textures[a.Texture]; !ok {
				return gl.FramebufferIncompleteAttachment
			}
		}
		if a.Renderbuffer != 0 {
			if _, ok := r.renderbuffers[a.Renderbuffer]; !ok {
				return gl.FramebufferIncompleteAttachment
			}
		}
	}
	for _, b := range fb.drawBuffers {
		if b == gl.None {
			continue
		}
		if _, ok := fb.attachments[b]; !ok {
			return gl.FramebufferIncompleteDrawBuffer
		}
	}
	return gl.FramebufferComplete
}

func (r *Recorder) ReadPixels(x, y, width, height int, format, typ gl.Enum, data []byte) {
	r.record("ReadPixels", x, y, width, height, format, typ, len(data))
	if r.readFramebuffer == 0 {
		return
	}
	fb := r.framebufferFor(gl.ReadFramebuffer)
	if fb == nil {
		return
	}
	a, ok := fb.attachments[fb.readBuffer]
	if !ok {
		r.fail(gl.InvalidOperation)
		return
	}
	if t, ok := r.textures[a.Texture]; ok {
		copy(data, t.pixels)
	}
}

// Programs and pipelines.

func (r *Recorder) CreateShaderProgram(typ gl.Enum, source string) uint32 {
	id := r.alloc("program")
	p := &programObject{typ: typ, values: make(map[string]any)}
	p.linked, p.log = compile(source)
	if p.linked {
		p.uniforms = activeUniforms(source)
	}
	r.programs[id] = p
	r.record("CreateShaderProgram", typ, id)
	return id
}

func (r *Recorder) DeleteProgram(id uint32) {
	r.record("DeleteProgram", id)
	if _, ok := r.programs[id]; !ok {
		return
	}
	delete(r.programs, id)
	r.free("program", id)
	if r.program == id {
		r.program = 0
	}
}

func (r *Recorder) IsProgram(id uint32) bool {
	r.record("IsProgram", id)
	_, ok := r.programs[id]
	return ok
}

func (r *Recorder) GetProgrami(id uint32, pname gl.Enum) int32 {
	r.record("GetProgrami", id, pname)
	p, ok := r.programs[id]
	if !ok {
		r.fail(gl.InvalidValue)
		return 0
	}
	switch pname {
	case gl.LinkStatus:
		if p.linked {
			return 1
		}
		return 0
	case gl.InfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	case gl.ActiveUniforms:
		return int32(len(p.uniforms))
	case gl.ActiveUniformMaxLength:
		n := 0
		for _, u := range p.uniforms {
			n = max(n, len(u)+1)
		}
		return int32(n)
	}
	r.fail(gl.InvalidEnum)
	return 0
}

func (r *Recorder) GetProgramInfoLog(id uint32) string {
	r.record("GetProgramInfoLog", id)
	if p, ok := r.programs[id]; ok {
		return p.log
	}
	return ""
}

func (r *Recorder) GetActiveUniformName(id uint32, index uint32) string {
	r.record("GetActiveUniformName", id, index)
	p, ok := r.programs[id]
	if !ok || int(index) >= len(p.uniforms) {
		r.fail(gl.InvalidValue)
		return ""
	}
	return p.uniforms[index]
}

// UniformLocationBase offsets reflected locations from their active uniform
// indices so that code confusing the two is caught by tests.
const UniformLocationBase = 100

func (r *Recorder) GetUniformLocation(id uint32, name string) int32 {
	r.record("GetUniformLocation", id, name)
	p, ok := r.programs[id]
	if !ok {
		return -1
	}
	for i, u := range p.uniforms {
		if u == name || trimArray(u) == name {
			return int32(UniformLocationBase + i)
		}
	}
	return -1
}

func (r *Recorder) UseProgram(id uint32) {
	r.record("UseProgram", id)
	r.program = id
}

func (r *Recorder) setUniform(id uint32, loc int32, v any) {
	p, ok := r.programs[id]
	if !ok {
		r.fail(gl.InvalidOperation)
		return
	}
	i := int(loc) - UniformLocationBase
	if i < 0 || i >= len(p.uniforms) {
		if loc != -1 {
			r.fail(gl.InvalidOperation)
		}
		return
	}
	p.values[trimArray(p.uniforms[i])] = v
}

func (r *Recorder) ProgramUniform1i(id uint32, loc int32, v int32) {
	r.record("ProgramUniform1i", id, loc, v)
	r.setUniform(id, loc, v)
}

func (r *Recorder) ProgramUniform1ui(id uint32, loc int32, v uint32) {
	r.record("ProgramUniform1ui", id, loc, v)
	r.setUniform(id, loc, v)
}

func (r *Recorder) ProgramUniform1f(id uint32, loc int32, v float32) {
	r.record("ProgramUniform1f", id, loc, v)
	r.setUniform(id, loc, v)
}

func (r *Recorder) ProgramUniform2fv(id uint32, loc int32, v []float32) {
	r.record("ProgramUniform2fv", id, loc, slices.Clone(v))
	r.setUniform(id, loc, slices.Clone(v))
}

func (r *Recorder) ProgramUniform3fv(id uint32, loc int32, v []float32) {
	r.record("ProgramUniform3fv", id, loc, slices.Clone(v))
	r.setUniform(id, loc, slices.Clone(v))
}

func (r *Recorder) ProgramUniform4fv(id uint32, loc int32, v []float32) {
	r.record("ProgramUniform4fv", id, loc, slices.Clone(v))
	r.setUniform(id, loc, slices.Clone(v))
}

func (r *Recorder) ProgramUniformMatrix2fv(id uint32, loc int32, v []float32) {
	r.record("ProgramUniformMatrix2fv", id, loc, slices.Clone(v))
	r.setUniform(id, loc, slices.Clone(v))
}

func (r *Recorder) ProgramUniformMatrix3fv(id uint32, loc int32, v []float32) {
	r.record("ProgramUniformMatrix3fv", id, loc, slices.Clone(v))
	r.setUniform(id, loc, slices.Clone(v))
}

func (r *Recorder) ProgramUniformMatrix4fv(id uint32, loc int32, v []float32) {
	r.record("ProgramUniformMatrix4fv", id, loc, slices.Clone(v))
	r.setUniform(id, loc, slices.Clone(v))
}

func (r *Recorder) CreateProgramPipeline() uint32 {
	id := r.alloc("pipeline")
	r.pipelines[id] = make(map[gl.Bitfield]uint32)
	r.record("CreateProgramPipeline", id)
	return id
}

func (r *Recorder) DeleteProgramPipeline(id uint32) {
	r.record("DeleteProgramPipeline", id)
	if _, ok := r.pipelines[id]; !ok {
		return
	}
	delete(r.pipelines, id)
	r.free("pipeline", id)
	if r.pipeline == id {
		r.pipeline = 0
	}
}

func (r *Recorder) IsProgramPipeline(id uint32) bool {
	r.record("IsProgramPipeline", id)
	_, ok := r.pipelines[id]
	return ok
}

var stageBits = []gl.Bitfield{
	gl.VertexShaderBit,
	gl.TessControlShaderBit,
	gl.TessEvaluationShaderBit,
	gl.GeometryShaderBit,
	gl.FragmentShaderBit,
	gl.ComputeShaderBit,
}

func (r *Recorder) UseProgramStages(pipeline uint32, stages gl.Bitfield, program uint32) {
	r.record("UseProgramStages", pipeline, stages, program)
	p, ok := r.pipelines[pipeline]
	if !ok {
		r.fail(gl.InvalidOperation)
		return
	}
	for _, bit := range stageBits {
		if stages&bit == 0 {
			continue
		}
		if program == 0 {
			delete(p, bit)
		} else {
			p[bit] = program
		}
	}
}

func (r *Recorder) BindProgramPipeline(id uint32) {
	r.record("BindProgramPipeline", id)
	r.pipeline = id
}

// Vertex input.

func (r *Recorder) CreateVertexArray() uint32 {
	id := r.alloc("vertexarray")
	r.vertexArrays[id] = true
	r.record("CreateVertexArray", id)
	return id
}

func (r *Recorder) DeleteVertexArray(id uint32) {
	r.record("DeleteVertexArray", id)
	if !r.vertexArrays[id] {
		return
	}
	delete(r.vertexArrays, id)
	r.free("vertexarray", id)
	if r.vertexArray == id {
		r.vertexArray = 0
	}
}

func (r *Recorder) IsVertexArray(id uint32) bool {
	r.record("IsVertexArray", id)
	return r.vertexArrays[id]
}

func (r *Recorder) BindVertexArray(id uint32) {
	r.record("BindVertexArray", id)
	r.vertexArray = id
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
	a := r.attribs[index]
	a.Enabled = true
	r.attribs[index] = a
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray", index)
	a := r.attribs[index]
	a.Enabled = false
	r.attribs[index] = a
}

func (r *Recorder) VertexAttribPointer(index uint32, size int, typ gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	a := r.attribs[index]
	a.Buffer = r.bufferBindings[gl.ArrayBuffer]
	a.Size, a.Type, a.Normalized, a.Integer = size, typ, normalized, false
	a.Stride, a.Offset = stride, offset
	r.attribs[index] = a
}

func (r *Recorder) VertexAttribIPointer(index uint32, size int, typ gl.Enum, stride, offset int) {
	r.record("VertexAttribIPointer", index, size, typ, stride, offset)
	a := r.attribs[index]
	a.Buffer = r.bufferBindings[gl.ArrayBuffer]
	a.Size, a.Type, a.Normalized, a.Integer = size, typ, false, true
	a.Stride, a.Offset = stride, offset
	r.attribs[index] = a
}

// Fixed-function state and drawing.

func (r *Recorder) Enable(c gl.Enum) {
	r.record("Enable", c)
	r.caps[c] = true
}

func (r *Recorder) Disable(c gl.Enum) {
	r.record("Disable", c)
	r.caps[c] = false
}

func (r *Recorder) FrontFace(mode gl.Enum) {
	r.record("FrontFace", mode)
	r.frontFace = mode
}

func (r *Recorder) CullFace(mode gl.Enum) {
	r.record("CullFace", mode)
	r.cullFace = mode
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
	r.viewport = [4]int{x, y, width, height}
}

func (r *Recorder) ClearColor(cr, cg, cb, ca float32) {
	r.record("ClearColor", cr, cg, cb, ca)
}

func (r *Recorder) ClearDepth(d float64) {
	r.record("ClearDepth", d)
}

func (r *Recorder) ClearStencil(s int32) {
	r.record("ClearStencil", s)
}

func (r *Recorder) Clear(mask gl.Bitfield) {
	r.record("Clear", mask)
}

func (r *Recorder) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
	r.draws = append(r.draws, Draw{
		Mode:          mode,
		Count:         count,
		Type:          typ,
		Offset:        offset,
		Framebuffer:   r.drawFramebuffer,
		Pipeline:      r.pipeline,
		ElementBuffer: r.bufferBindings[gl.ElementArrayBuffer],
	})
}

func (r *Recorder) Finish() {
	r.record("Finish")
}

// Queries.

func (r *Recorder) GetInteger(pname gl.Enum) int32 {
	r.record("GetInteger", pname)
	switch pname {
	case gl.MajorVersion:
		return r.MajorVersion
	case gl.MinorVersion:
		return r.MinorVersion
	case gl.MaxColorAttachments:
		return r.MaxColorAttachments
	case gl.MaxDrawBuffers:
		return r.MaxDrawBuffers
	case gl.MaxVertexAttribs:
		return r.MaxVertexAttribs
	case gl.MaxCombinedTextureImageUnits:
		return r.MaxTextureUnits
	case gl.MaxTextureSize:
		return 16384
	}
	r.fail(gl.InvalidEnum)
	return 0
}

func (r *Recorder) GetString(pname gl.Enum) string {
	r.record("GetString", pname)
	switch pname {
	case gl.Vendor:
		return "gogpu"
	case gl.Renderer:
		return "gltest recorder"
	case gl.Version:
		return fmtVersion(r.MajorVersion, r.MinorVersion)
	case gl.ShadingLanguageVersion:
		return fmtGLSLVersion(r.MajorVersion, r.MinorVersion)
	}
	return ""
}

func (r *Recorder) GetError() gl.Enum {
	r.record("GetError")
	if len(r.Errors) == 0 {
		return gl.NoError
	}
	e := r.Errors[0]
	r.Errors = r.Errors[1:]
	return e
}

// DebugMessageCallback installs fn; EmitDebug invokes it.
func (r *Recorder) DebugMessageCallback(fn gl.DebugMessageFunc) {
	r.record("DebugMessageCallback")
	r.debug = fn
}
