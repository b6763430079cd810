// Package headless provides an offscreen surface backed by a gltest
// Recorder. It needs no display or GPU and is always available, so it is
// the lowest priority backend.
//
// To use it, import the package:
//
//	import _ "github.com/gogpu/lofx/backend/headless"
package headless

import (
	"errors"
	"fmt"

	"github.com/gogpu/lofx/backend"
	"github.com/gogpu/lofx/gl"
	"github.com/gogpu/lofx/gl/gltest"
)

// ErrInvalidSize is returned by Init for a non-positive surface size.
var ErrInvalidSize = errors.New("headless: invalid surface size")

// init registers the headless backend on package import.
func init() {
	backend.Register(backend.BackendHeadless, func() backend.Surface {
		return New()
	})
}

// Option configures a Surface.
type Option func(*Surface)

// WithFrameLimit makes ShouldClose report true after n calls to
// SwapBuffers. The default is 1; n <= 0 never closes.
func WithFrameLimit(n int) Option {
	return func(s *Surface) {
		s.limit = n
	}
}

// WithRecorder uses r instead of a fresh Recorder, so a test can configure
// limits or inspect calls.
func WithRecorder(r *gltest.Recorder) Option {
	return func(s *Surface) {
		s.rec = r
	}
}

// Surface is an invisible surface whose GL context is a gltest.Recorder.
type Surface struct {
	rec    *gltest.Recorder
	width  int
	height int
	limit  int
	frames int
	ready  bool
}

// New returns an uninitialized surface.
func New(opts ...Option) *Surface {
	s := &Surface{limit: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the backend identifier.
func (s *Surface) Name() string {
	return backend.BackendHeadless
}

// Init "creates" a context of exactly the requested version.
func (s *Surface) Init(cfg backend.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	major, minor, err := cfg.Version()
	if err != nil {
		return err
	}
	if s.rec == nil {
		s.rec = gltest.New()
	}
	s.rec.MajorVersion, s.rec.MinorVersion = int32(major), int32(minor)
	s.width, s.height = cfg.Width, cfg.Height
	s.frames = 0
	s.ready = true
	backend.Logger().Info("headless surface created",
		"width", cfg.Width, "height", cfg.Height, "gl", fmt.Sprintf("%d.%d", major, minor))
	return nil
}

// Functions returns the recorder, or nil before Init.
func (s *Surface) Functions() gl.Functions {
	if !s.ready {
		return nil
	}
	return s.rec
}

// Recorder returns the recorder standing in for the GL context.
func (s *Surface) Recorder() *gltest.Recorder {
	return s.rec
}

// SwapBuffers counts a presented frame.
func (s *Surface) SwapBuffers() {
	s.frames++
}

// Frames returns the number of SwapBuffers calls since Init.
func (s *Surface) Frames() int {
	return s.frames
}

// PollEvents does nothing; a headless surface has no events.
func (s *Surface) PollEvents() {}

// ShouldClose reports whether the frame limit is reached or the surface
// was closed.
func (s *Surface) ShouldClose() bool {
	if !s.ready {
		return true
	}
	return s.limit > 0 && s.frames >= s.limit
}

// FramebufferSize returns the size passed to Init.
func (s *Surface) FramebufferSize() (width, height int) {
	return s.width, s.height
}

// Close marks the surface closed. The recorder stays inspectable.
func (s *Surface) Close() {
	s.ready = false
}
