package lofx

import (
	"strings"
	"testing"

	"github.com/gogpu/lofx/gl/gltest"
)

// diagEntry is one diagnostic received by a test callback.
type diagEntry struct {
	details DebugDetails
	message string
}

// diagLog collects diagnostics.
type diagLog struct {
	entries []diagEntry
}

func (d *diagLog) callback(details DebugDetails, message string) {
	d.entries = append(d.entries, diagEntry{details: details, message: message})
}

// count returns how many diagnostics of level were received.
func (d *diagLog) count(level DebugLevel) int {
	n := 0
	for _, e := range d.entries {
		if e.details.Level == level {
			n++
		}
	}
	return n
}

// find returns the first diagnostic whose message contains substr.
func (d *diagLog) find(substr string) (diagEntry, bool) {
	for _, e := range d.entries {
		if strings.Contains(e.message, substr) {
			return e, true
		}
	}
	return diagEntry{}, false
}

func (d *diagLog) reset() { d.entries = nil }

// newTestContext returns a context on a fresh Recorder with the
// initialization calls and diagnostics already discarded.
func newTestContext(t *testing.T, opts ...Option) (*Context, *gltest.Recorder, *diagLog) {
	t.Helper()
	return newTestContextOn(t, gltest.New(), opts...)
}

func newTestContextOn(t *testing.T, rec *gltest.Recorder, opts ...Option) (*Context, *gltest.Recorder, *diagLog) {
	t.Helper()
	log := &diagLog{}
	opts = append([]Option{WithDebugCallback(log.callback)}, opts...)
	c := NewContext(rec, opts...)
	t.Cleanup(c.Terminate)
	rec.Reset()
	log.reset()
	return c, rec, log
}

const (
	testVertexSource = `#version 450
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
uniform mat4 model;
uniform mat4 viewProjection;
out vec3 vNormal;
void main() {
	vNormal = normal;
	gl_Position = viewProjection * model * vec4(position, 1.0);
}
`
	testFragmentSource = `#version 450
in vec3 vNormal;
uniform sampler2D albedo;
uniform sampler2D normals;
uniform vec3 lights[4];
layout(location = 0) out vec4 color;
void main() {
	color = texture(albedo, vNormal.xy) + vec4(lights[0], 0.0);
}
`
)

// newTestPipeline links the test vertex and fragment programs into a
// pipeline.
func newTestPipeline(t *testing.T, c *Context) (*Pipeline, *Program, *Program) {
	t.Helper()
	vs := c.CreateProgram(StageVertex, testVertexSource)
	fs := c.CreateProgram(StageFragment, testFragmentSource)
	if !vs.Valid() || !fs.Valid() {
		t.Fatal("test programs failed to link")
	}
	return c.CreatePipeline(vs, fs), vs, fs
}
