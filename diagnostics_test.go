package lofx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/lofx/gl"
)

func TestOpenGLParamsBinary(t *testing.T) {
	p := OpenGLParams{
		Source:   gl.DebugSourceShaderCompiler,
		Type:     gl.DebugTypePerformance,
		ID:       0xdeadbeef,
		Severity: gl.DebugSeverityLow,
	}

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, b, openGLParamsSize)

	var got OpenGLParams
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, p, got)
}

func TestOpenGLParamsShortBuffer(t *testing.T) {
	var p OpenGLParams
	err := p.UnmarshalBinary(make([]byte, openGLParamsSize-1))
	assert.ErrorIs(t, err, ErrInvalidParams)

	err = p.UnmarshalBinary(nil)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestWindowParamsBinary(t *testing.T) {
	b, err := WindowParams{Backend: "glfw"}.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte("glfw"), b)

	var p WindowParams
	require.NoError(t, p.UnmarshalBinary(b))
	assert.Equal(t, "glfw", p.Backend)
}

func TestDebugSeverityLevel(t *testing.T) {
	tests := []struct {
		severity gl.Enum
		want     DebugLevel
	}{
		{gl.DebugSeverityHigh, LevelError},
		{gl.DebugSeverityMedium, LevelWarn},
		{gl.DebugSeverityLow, LevelWarn},
		{gl.DebugSeverityNotification, LevelTrace},
		{gl.Enum(0), LevelTrace},
	}
	for _, tt := range tests {
		if got := debugSeverityLevel(tt.severity); got != tt.want {
			t.Errorf("debugSeverityLevel(%#x) = %v, want %v", uint32(tt.severity), got, tt.want)
		}
	}
}

func TestDebugLevelString(t *testing.T) {
	tests := []struct {
		level DebugLevel
		want  string
	}{
		{LevelTrace, "Trace"},
		{LevelWarn, "Warn"},
		{LevelError, "Error"},
		{DebugLevel(7), "Unknown(7)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DebugLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDebugSourceString(t *testing.T) {
	tests := []struct {
		source DebugSource
		want   string
	}{
		{SourceLofx, "Lofx"},
		{SourceWindow, "Window"},
		{SourceOpenGL, "OpenGL"},
		{DebugSource(3), "Unknown(3)"},
	}
	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("DebugSource(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestDiagnosticsWithoutCallback(t *testing.T) {
	var d diagnostics
	// Must not panic.
	d.warnf("buffer %d: out of range", 3)
	d.window("glfw", "no display")
}

func TestDiagnosticsRouting(t *testing.T) {
	log := &diagLog{}
	d := diagnostics{callback: log.callback}

	d.tracef("created %d", 1)
	d.errorf("failed: %s", "link")
	d.window("headless", "invalid size")

	require.Len(t, log.entries, 3)
	assert.Equal(t, DebugDetails{Level: LevelTrace, Source: SourceLofx}, log.entries[0].details)
	assert.Equal(t, "created 1", log.entries[0].message)
	assert.Equal(t, LevelError, log.entries[1].details.Level)
	assert.Nil(t, log.entries[1].details.Params)
	assert.Equal(t, DebugDetails{Level: LevelError, Source: SourceWindow, Params: []byte("headless")}, log.entries[2].details)
}
