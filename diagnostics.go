package lofx

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/gogpu/lofx/gl"
)

// DebugLevel is the severity of a diagnostic.
type DebugLevel uint8

const (
	// LevelTrace reports normal progress: initialization, version negotiation.
	LevelTrace DebugLevel = iota
	// LevelWarn reports an anomaly the call recovered from.
	LevelWarn
	// LevelError reports a resource that was left unusable.
	LevelError
)

// String returns the level name.
func (l DebugLevel) String() string {
	switch l {
	case LevelTrace:
		return "Trace"
	case LevelWarn:
		return "Warn"
	case LevelError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", l)
	}
}

func (l DebugLevel) slogLevel() slog.Level {
	switch l {
	case LevelTrace:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// DebugSource identifies the component a diagnostic comes from.
type DebugSource uint8

const (
	// SourceLofx is lofx itself.
	SourceLofx DebugSource = iota
	// SourceWindow is the window/context provider (a backend surface).
	SourceWindow
	// SourceOpenGL is the GL implementation (glGetError or KHR_debug).
	SourceOpenGL
)

// String returns the source name.
func (s DebugSource) String() string {
	switch s {
	case SourceLofx:
		return "Lofx"
	case SourceWindow:
		return "Window"
	case SourceOpenGL:
		return "OpenGL"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// DebugDetails accompanies every diagnostic message.
//
// Params is an opaque payload whose layout depends on Source. lofx itself
// sends no params; OpenGL diagnostics carry an encoded [OpenGLParams] and
// window diagnostics an encoded [WindowParams].
type DebugDetails struct {
	Level  DebugLevel
	Source DebugSource
	Params []byte
}

// DebugCallback receives diagnostics. It is called synchronously on the
// thread that issued the failing call.
type DebugCallback func(details DebugDetails, message string)

// OpenGLParams are the KHR_debug fields of an OpenGL diagnostic.
// Errors read with glGetError set Type to gl.DebugTypeError and ID to the
// error code.
type OpenGLParams struct {
	Source   gl.Enum
	Type     gl.Enum
	ID       uint32
	Severity gl.Enum
}

const openGLParamsSize = 16

// MarshalBinary encodes p as four little-endian uint32 values.
func (p OpenGLParams) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, openGLParamsSize)
	b = binary.LittleEndian.AppendUint32(b, uint32(p.Source))
	b = binary.LittleEndian.AppendUint32(b, uint32(p.Type))
	b = binary.LittleEndian.AppendUint32(b, p.ID)
	b = binary.LittleEndian.AppendUint32(b, uint32(p.Severity))
	return b, nil
}

// UnmarshalBinary decodes params produced by MarshalBinary.
func (p *OpenGLParams) UnmarshalBinary(b []byte) error {
	if len(b) < openGLParamsSize {
		return fmt.Errorf("%w: OpenGL params need %d bytes, got %d", ErrInvalidParams, openGLParamsSize, len(b))
	}
	p.Source = gl.Enum(binary.LittleEndian.Uint32(b[0:]))
	p.Type = gl.Enum(binary.LittleEndian.Uint32(b[4:]))
	p.ID = binary.LittleEndian.Uint32(b[8:])
	p.Severity = gl.Enum(binary.LittleEndian.Uint32(b[12:]))
	return nil
}

// WindowParams carries the backend surface name of a window diagnostic.
type WindowParams struct {
	Backend string
}

// MarshalBinary encodes p as its raw backend name.
func (p WindowParams) MarshalBinary() ([]byte, error) {
	return []byte(p.Backend), nil
}

// UnmarshalBinary decodes params produced by MarshalBinary.
func (p *WindowParams) UnmarshalBinary(b []byte) error {
	p.Backend = string(b)
	return nil
}

// diagnostics routes messages to the user callback and the package logger.
type diagnostics struct {
	callback DebugCallback
}

func (d *diagnostics) emit(level DebugLevel, source DebugSource, params []byte, msg string) {
	Logger().Log(context.Background(), level.slogLevel(), msg, "source", source.String())
	if d.callback != nil {
		d.callback(DebugDetails{Level: level, Source: source, Params: params}, msg)
	}
}

func (d *diagnostics) tracef(format string, args ...any) {
	d.emit(LevelTrace, SourceLofx, nil, fmt.Sprintf(format, args...))
}

func (d *diagnostics) warnf(format string, args ...any) {
	d.emit(LevelWarn, SourceLofx, nil, fmt.Sprintf(format, args...))
}

func (d *diagnostics) errorf(format string, args ...any) {
	d.emit(LevelError, SourceLofx, nil, fmt.Sprintf(format, args...))
}

func (d *diagnostics) opengl(level DebugLevel, p OpenGLParams, msg string) {
	params, _ := p.MarshalBinary()
	d.emit(level, SourceOpenGL, params, msg)
}

// window reports a surface failure of the named backend.
func (d *diagnostics) window(name, msg string) {
	params, _ := WindowParams{Backend: name}.MarshalBinary()
	d.emit(LevelError, SourceWindow, params, msg)
}

// debugSeverityLevel maps a KHR_debug severity onto a diagnostic level.
func debugSeverityLevel(severity gl.Enum) DebugLevel {
	switch severity {
	case gl.DebugSeverityHigh:
		return LevelError
	case gl.DebugSeverityMedium, gl.DebugSeverityLow:
		return LevelWarn
	default:
		return LevelTrace
	}
}
