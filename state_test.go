package lofx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/lofx/gl"
	"github.com/gogpu/lofx/gl/gltest"
)

func TestTracked(t *testing.T) {
	var v tracked[uint32]

	if !v.update(0) {
		t.Error("first update() = false, want true")
	}
	if v.update(0) {
		t.Error("repeated update() = true, want false")
	}
	if !v.update(3) {
		t.Error("update() with a new value = false, want true")
	}

	v.forget(5)
	if v.update(3) {
		t.Error("forget() of another value cleared the cache")
	}
	v.forget(3)
	if !v.update(3) {
		t.Error("update() after forget() = false, want true")
	}
}

func TestStateElidesBinds(t *testing.T) {
	rec := gltest.New()
	var s glState
	s.reset()

	s.bindFramebuffer(rec, 2)
	s.bindFramebuffer(rec, 2)
	s.bindBuffer(rec, gl.ArrayBuffer, 1)
	s.bindBuffer(rec, gl.ArrayBuffer, 1)
	s.bindBuffer(rec, gl.ElementArrayBuffer, 1)
	s.bindTexture(rec, 1, gl.Texture2D, 4)
	s.bindTexture(rec, 1, gl.Texture2D, 4)
	s.set(rec, gl.DepthTest, true)
	s.set(rec, gl.DepthTest, true)
	s.setViewport(rec, 0, 0, 8, 8)
	s.setViewport(rec, 0, 0, 8, 8)

	want := []string{
		"BindFramebuffer",
		"BindBuffer",
		"BindBuffer",
		"ActiveTexture",
		"BindTexture",
		"Enable",
		"Viewport",
	}
	assert.Equal(t, want, rec.CallNames())
}

func TestStateUncachedTargetsAlwaysBind(t *testing.T) {
	rec := gltest.New()
	var s glState
	s.reset()

	s.bindBuffer(rec, gl.CopyWriteBuffer, 1)
	s.bindBuffer(rec, gl.CopyWriteBuffer, 1)

	assert.Equal(t, 2, rec.Count("BindBuffer"))
}

func TestStateForget(t *testing.T) {
	rec := gltest.New()
	var s glState
	s.reset()
	s.bindBuffer(rec, gl.ArrayBuffer, 1)
	s.bindTexture(rec, 0, gl.Texture2D, 1)
	s.bindSampler(rec, 0, 1)
	s.bindFramebuffer(rec, 1)
	s.useProgram(rec, 1)
	rec.Reset()

	s.forgetBuffer(1)
	s.forgetTexture(1)
	s.forgetSampler(1)
	s.forgetFramebuffer(1)
	s.forgetProgram(1)

	s.bindBuffer(rec, gl.ArrayBuffer, 1)
	s.bindTexture(rec, 0, gl.Texture2D, 1)
	s.bindSampler(rec, 0, 1)
	s.bindFramebuffer(rec, 1)
	s.useProgram(rec, 1)

	want := []string{"BindBuffer", "BindTexture", "BindSampler", "BindFramebuffer", "UseProgram"}
	assert.Equal(t, want, rec.CallNames())
}

func TestStateDisableUnused(t *testing.T) {
	rec := gltest.New()
	var s glState
	s.reset()
	for slot := range uint32(4) {
		s.enableAttrib(rec, slot)
	}
	rec.Reset()

	s.disableUnused(rec, map[uint32]bool{0: true, 2: true})

	want := []gltest.Call{
		{Name: "DisableVertexAttribArray", Args: []any{uint32(1)}},
		{Name: "DisableVertexAttribArray", Args: []any{uint32(3)}},
	}
	assert.Equal(t, want, rec.Calls())

	rec.Reset()
	s.enableAttrib(rec, 0)
	s.enableAttrib(rec, 1)
	assert.Equal(t, []string{"EnableVertexAttribArray"}, rec.CallNames())
}
