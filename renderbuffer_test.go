package lofx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/lofx/gl"
	"github.com/gogpu/lofx/gl/gltest"
)

func TestCreateRenderbuffer(t *testing.T) {
	c, rec, _ := newTestContext(t)

	rb := c.CreateRenderbuffer(64, 32)

	assert.True(t, rb.Valid())
	w, h := rb.Size()
	assert.Equal(t, [2]int{64, 32}, [2]int{w, h})
	assert.Equal(t, []gltest.Call{
		{Name: "CreateRenderbuffer", Args: []any{rb.ID()}},
		{Name: "BindRenderbuffer", Args: []any{gl.Renderbuffer, rb.ID()}},
		{Name: "RenderbufferStorage", Args: []any{gl.Renderbuffer, gl.Depth24Stencil8, 64, 32}},
	}, rec.Calls())
	assert.Equal(t, 0, c.CheckErrors())
}

func TestRenderbufferRelease(t *testing.T) {
	c, rec, _ := newTestContext(t)
	rb := c.CreateRenderbuffer(4, 4)

	rb.Release()
	rb.Release()
	var nilRB *Renderbuffer
	nilRB.Release()

	assert.False(t, rb.Valid())
	assert.Equal(t, 1, rec.Count("DeleteRenderbuffer"))
	assert.Equal(t, 0, rec.Live()["renderbuffer"])

	// The released name is reused; the new object must be bound again.
	next := c.CreateRenderbuffer(4, 4)
	assert.Equal(t, 2, rec.Count("BindRenderbuffer"))
	assert.True(t, next.Valid())
}
