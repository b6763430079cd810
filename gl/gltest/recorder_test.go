package gltest

import (
	"bytes"
	"slices"
	"testing"

	"github.com/gogpu/lofx/gl"
)

func TestNameReuse(t *testing.T) {
	r := New()
	a := r.CreateBuffer()
	b := r.CreateBuffer()
	if a != 1 || b != 2 {
		t.Fatalf("CreateBuffer() = %d, %d, want 1, 2", a, b)
	}

	r.DeleteBuffer(a)
	if got := r.CreateBuffer(); got != a {
		t.Errorf("CreateBuffer() after delete = %d, want reused %d", got, a)
	}
	if got := r.CreateTexture(); got != 1 {
		t.Errorf("CreateTexture() = %d, want 1; names are per kind", got)
	}
}

func TestBufferStorage(t *testing.T) {
	r := New()
	id := r.CreateBuffer()
	r.BindBuffer(gl.ArrayBuffer, id)
	r.BufferStorage(gl.ArrayBuffer, 4, []byte{1, 2}, gl.DynamicStorageBit)

	r.BufferSubData(gl.ArrayBuffer, 2, []byte{3, 4})
	data, ok := r.BufferData(id)
	if !ok || !bytes.Equal(data, []byte{1, 2, 3, 4}) {
		t.Errorf("BufferData() = %v, %v, want [1 2 3 4], true", data, ok)
	}

	out := make([]byte, 2)
	r.GetBufferSubData(gl.ArrayBuffer, 1, out)
	if !bytes.Equal(out, []byte{2, 3}) {
		t.Errorf("GetBufferSubData() = %v, want [2 3]", out)
	}
	if len(r.Errors) != 0 {
		t.Errorf("Errors = %v, want none", r.Errors)
	}
}

func TestBufferSubDataErrors(t *testing.T) {
	r := New()
	id := r.CreateBuffer()
	r.BindBuffer(gl.ArrayBuffer, id)
	r.BufferStorage(gl.ArrayBuffer, 4, nil, 0)

	r.BufferSubData(gl.ArrayBuffer, 0, []byte{1})
	r.BindBuffer(gl.ArrayBuffer, 0)
	r.BufferSubData(gl.ArrayBuffer, 0, []byte{1})

	want := []gl.Enum{gl.InvalidValue, gl.InvalidOperation}
	if !slices.Equal(r.Errors, want) {
		t.Errorf("Errors = %v, want %v", r.Errors, want)
	}
	if got := r.GetError(); got != gl.InvalidValue {
		t.Errorf("GetError() = %#x, want InvalidValue", uint32(got))
	}
	if got := r.GetError(); got != gl.InvalidOperation {
		t.Errorf("GetError() = %#x, want InvalidOperation", uint32(got))
	}
	if got := r.GetError(); got != gl.NoError {
		t.Errorf("GetError() = %#x, want NoError", uint32(got))
	}
}

func TestActiveUniforms(t *testing.T) {
	src := `#version 450
uniform mat4 model;
layout(location = 3) uniform vec4 tint;
uniform highp float time;
uniform vec3 lights[4];
uniform mat4 model;
// uniform float commented;
void main() {}
`
	got := activeUniforms(src)
	want := []string{"model", "tint", "time", "lights[0]"}
	if !slices.Equal(got, want) {
		t.Errorf("activeUniforms() = %v, want %v", got, want)
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name   string
		source string
		linked bool
	}{
		{"valid", "#version 450\nvoid main() {}\n", true},
		{"error directive", "#version 450\n#error missing semicolon\n", false},
		{"empty", "  \n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linked, log := compile(tt.source)
			if linked != tt.linked {
				t.Errorf("compile() linked = %v, want %v", linked, tt.linked)
			}
			if !linked && log == "" {
				t.Error("compile() failed without an info log")
			}
		})
	}
}

func TestProgramReflection(t *testing.T) {
	r := New()
	id := r.CreateShaderProgram(gl.FragmentShader, "uniform vec4 color;\nuniform float weights[2];\n")

	if got := r.GetProgrami(id, gl.LinkStatus); got != 1 {
		t.Fatalf("LinkStatus = %d, want 1", got)
	}
	if got := r.GetProgrami(id, gl.ActiveUniforms); got != 2 {
		t.Errorf("ActiveUniforms = %d, want 2", got)
	}
	if got := r.GetActiveUniformName(id, 1); got != "weights[0]" {
		t.Errorf("GetActiveUniformName(1) = %q, want weights[0]", got)
	}
	if got := r.GetUniformLocation(id, "weights"); got != UniformLocationBase+1 {
		t.Errorf("GetUniformLocation(weights) = %d, want %d", got, UniformLocationBase+1)
	}
	if got := r.GetUniformLocation(id, "missing"); got != -1 {
		t.Errorf("GetUniformLocation(missing) = %d, want -1", got)
	}

	r.ProgramUniform4fv(id, UniformLocationBase, []float32{1, 0, 0, 1})
	v, ok := r.UniformValue(id, "color")
	if !ok || !slices.Equal(v.([]float32), []float32{1, 0, 0, 1}) {
		t.Errorf("UniformValue(color) = %v, %v", v, ok)
	}

	r.ProgramUniform1f(id, -1, 2)
	r.ProgramUniform1f(id, 7, 2)
	if !slices.Equal(r.Errors, []gl.Enum{gl.InvalidOperation}) {
		t.Errorf("Errors = %v, want a single InvalidOperation for location 7", r.Errors)
	}
}

func TestProgramLinkFailure(t *testing.T) {
	r := New()
	id := r.CreateShaderProgram(gl.VertexShader, "#error bad token\n")

	if got := r.GetProgrami(id, gl.LinkStatus); got != 0 {
		t.Errorf("LinkStatus = %d, want 0", got)
	}
	if got := r.GetProgrami(id, gl.ActiveUniforms); got != 0 {
		t.Errorf("ActiveUniforms = %d, want 0", got)
	}
	if log := r.GetProgramInfoLog(id); log != "0:1(1): error: bad token" {
		t.Errorf("GetProgramInfoLog() = %q", log)
	}
}

func TestPipelineStages(t *testing.T) {
	r := New()
	p := r.CreateProgramPipeline()

	r.UseProgramStages(p, gl.VertexShaderBit|gl.FragmentShaderBit, 5)
	r.UseProgramStages(p, gl.FragmentShaderBit, 0)

	if got := r.PipelineStage(p, gl.VertexShaderBit); got != 5 {
		t.Errorf("vertex stage = %d, want 5", got)
	}
	if got := r.PipelineStage(p, gl.FragmentShaderBit); got != 0 {
		t.Errorf("fragment stage = %d, want 0", got)
	}

	r.UseProgramStages(99, gl.VertexShaderBit, 5)
	if !slices.Equal(r.Errors, []gl.Enum{gl.InvalidOperation}) {
		t.Errorf("Errors = %v, want InvalidOperation for an unknown pipeline", r.Errors)
	}
}

func TestFramebufferStatus(t *testing.T) {
	r := New()
	tex := r.CreateTexture()
	fb := r.CreateFramebuffer()
	r.BindFramebuffer(gl.Framebuffer, fb)

	if got := r.CheckFramebufferStatus(gl.Framebuffer); got != gl.FramebufferIncompleteMissingAttachment {
		t.Errorf("empty status = %#x, want missing attachment", uint32(got))
	}

	r.FramebufferTexture(gl.Framebuffer, gl.ColorAttachment0, tex, 0)
	r.DrawBuffers([]gl.Enum{gl.ColorAttachment0, gl.ColorAttachment0 + 1})
	if got := r.CheckFramebufferStatus(gl.Framebuffer); got != gl.FramebufferIncompleteDrawBuffer {
		t.Errorf("status = %#x, want incomplete draw buffer", uint32(got))
	}

	r.DrawBuffers([]gl.Enum{gl.ColorAttachment0})
	if got := r.CheckFramebufferStatus(gl.Framebuffer); got != gl.FramebufferComplete {
		t.Errorf("status = %#x, want complete", uint32(got))
	}

	r.DeleteTexture(tex)
	if got := r.CheckFramebufferStatus(gl.Framebuffer); got != gl.FramebufferIncompleteAttachment {
		t.Errorf("status after deleting the texture = %#x, want incomplete attachment", uint32(got))
	}

	r.FramebufferStatus = gl.FramebufferUnsupported
	if got := r.CheckFramebufferStatus(gl.Framebuffer); got != gl.FramebufferUnsupported {
		t.Errorf("overridden status = %#x, want unsupported", uint32(got))
	}

	r.BindFramebuffer(gl.Framebuffer, 0)
	if got := r.CheckFramebufferStatus(gl.Framebuffer); got != gl.FramebufferComplete {
		t.Errorf("default framebuffer status = %#x, want complete", uint32(got))
	}
}

func TestFramebufferDetach(t *testing.T) {
	r := New()
	rb := r.CreateRenderbuffer()
	fb := r.CreateFramebuffer()
	r.BindFramebuffer(gl.DrawFramebuffer, fb)

	r.FramebufferRenderbuffer(gl.DrawFramebuffer, gl.DepthStencilAttachment, gl.Renderbuffer, rb)
	r.FramebufferRenderbuffer(gl.DrawFramebuffer, gl.DepthStencilAttachment, gl.Renderbuffer, 0)

	if got := r.Attachments(fb); len(got) != 0 {
		t.Errorf("Attachments() = %v, want none", got)
	}
	if r.BoundFramebuffer() != fb {
		t.Errorf("BoundFramebuffer() = %d, want %d", r.BoundFramebuffer(), fb)
	}
}

func TestDrawRecordsBindings(t *testing.T) {
	r := New()
	ebo := r.CreateBuffer()
	r.BindBuffer(gl.ElementArrayBuffer, ebo)
	r.BindProgramPipeline(3)

	r.DrawElements(gl.Triangles, 6, gl.UnsignedShort, 12)

	want := []Draw{{
		Mode:          gl.Triangles,
		Count:         6,
		Type:          gl.UnsignedShort,
		Offset:        12,
		Pipeline:      3,
		ElementBuffer: ebo,
	}}
	if got := r.Draws(); !slices.Equal(got, want) {
		t.Errorf("Draws() = %+v, want %+v", got, want)
	}

	r.Reset()
	if len(r.Draws()) != 0 || len(r.Calls()) != 0 {
		t.Error("Reset() kept the logs")
	}
	if !r.IsBuffer(ebo) {
		t.Error("Reset() dropped object state")
	}
}

func TestCallLog(t *testing.T) {
	r := New()
	r.Viewport(0, 0, 4, 2)
	r.Enable(gl.DepthTest)
	r.Viewport(0, 0, 8, 8)

	if got := r.Count("Viewport"); got != 2 {
		t.Errorf("Count(Viewport) = %d, want 2", got)
	}
	if got := r.CallNames(); !slices.Equal(got, []string{"Viewport", "Enable", "Viewport"}) {
		t.Errorf("CallNames() = %v", got)
	}
	if got := r.CallsNamed("Viewport")[0].String(); got != "Viewport(0, 0, 4, 2)" {
		t.Errorf("Call.String() = %q", got)
	}
	if r.ViewportRect() != [4]int{0, 0, 8, 8} {
		t.Errorf("ViewportRect() = %v", r.ViewportRect())
	}
	if !r.Enabled(gl.DepthTest) {
		t.Error("Enabled(DepthTest) = false")
	}
}

func TestQueries(t *testing.T) {
	r := New()
	r.MajorVersion, r.MinorVersion = 4, 6

	if got := r.GetString(gl.Version); got != "4.6.0 gltest" {
		t.Errorf("GetString(Version) = %q", got)
	}
	if got := r.GetString(gl.ShadingLanguageVersion); got != "4.60" {
		t.Errorf("GetString(ShadingLanguageVersion) = %q", got)
	}
	if got := r.GetInteger(gl.MaxTextureSize); got != 16384 {
		t.Errorf("GetInteger(MaxTextureSize) = %d", got)
	}
	if got := r.GetInteger(gl.Enum(1)); got != 0 || !slices.Equal(r.Errors, []gl.Enum{gl.InvalidEnum}) {
		t.Errorf("GetInteger(unknown) = %d, Errors = %v", got, r.Errors)
	}
}

func TestEmitDebug(t *testing.T) {
	r := New()
	r.EmitDebug(gl.DebugSourceAPI, gl.DebugTypeError, 1, gl.DebugSeverityHigh, "ignored")

	var got []string
	r.DebugMessageCallback(func(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
		got = append(got, message)
	})
	r.EmitDebug(gl.DebugSourceAPI, gl.DebugTypeError, 1, gl.DebugSeverityHigh, "delivered")

	if !slices.Equal(got, []string{"delivered"}) {
		t.Errorf("messages = %v, want [delivered]", got)
	}
}

func TestLive(t *testing.T) {
	r := New()
	vao := r.CreateVertexArray()
	r.CreateSampler()
	r.DeleteVertexArray(vao)
	r.DeleteVertexArray(vao)

	live := r.Live()
	if live["vertexarray"] != 0 || live["sampler"] != 1 {
		t.Errorf("Live() = %v", live)
	}
}
