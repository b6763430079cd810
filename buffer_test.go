package lofx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/lofx/gl"
)

func TestBufferRoundTrip(t *testing.T) {
	c, rec, log := newTestContext(t)
	buf := c.CreateBuffer(BufferVertex, 16)
	require.True(t, buf.Valid())
	assert.Equal(t, 16, buf.Size())
	assert.Equal(t, gl.DynamicStorageBit, rec.BufferFlags(buf.ID()))

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf.SendRange(4, data)

	assert.Equal(t, data, buf.Read(4, 8))
	stored, ok := rec.BufferData(buf.ID())
	require.True(t, ok)
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 0}, stored)
	assert.Empty(t, log.entries)
	assert.Equal(t, 0, c.CheckErrors())
}

func TestBufferSendSkipsRedundantBind(t *testing.T) {
	c, rec, _ := newTestContext(t)
	buf := c.CreateBuffer(BufferIndex, 4)
	rec.Reset()

	buf.Send(Bytes([]uint16{0, 1}))

	assert.Equal(t, []string{"BufferSubData"}, rec.CallNames())
}

func TestBufferSendOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		size   int
	}{
		{"past end", 12, 8},
		{"negative offset", -1, 4},
		{"larger than buffer", 0, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, log := newTestContext(t)
			buf := c.CreateBuffer(BufferVertex, 16)

			buf.SendRange(tt.offset, make([]byte, tt.size))

			assert.Equal(t, 1, log.count(LevelWarn))
			assert.Len(t, log.entries, 1)
			assert.Equal(t, 0, rec.Count("BufferSubData"))
		})
	}
}

func TestBufferReadOutOfRange(t *testing.T) {
	c, rec, log := newTestContext(t)
	buf := c.CreateBuffer(BufferVertex, 8)

	assert.Nil(t, buf.Read(4, 8))
	assert.Equal(t, 1, log.count(LevelWarn))
	assert.Equal(t, 0, rec.Count("GetBufferSubData"))
}

func TestBufferStorageFlags(t *testing.T) {
	c, rec, _ := newTestContext(t)
	buf := c.CreateBufferWithStorage(BufferVertex, 8, StorageMapRead|StorageMapWrite|StorageMapPersistent)

	assert.Equal(t, gl.MapReadBit|gl.MapWriteBit|gl.MapPersistentBit, rec.BufferFlags(buf.ID()))

	// Immutable storage without the dynamic flag rejects writes.
	buf.Send([]byte{1})
	assert.Equal(t, 1, c.CheckErrors())
}

func TestBufferDoubleReleaseAfterReuse(t *testing.T) {
	c, rec, _ := newTestContext(t)
	first := c.CreateBuffer(BufferVertex, 8)
	id := first.ID()

	first.Release()
	second := c.CreateBuffer(BufferVertex, 8)
	require.Equal(t, id, second.ID(), "recorder reuses the lowest free name")

	first.Release()

	assert.False(t, first.Valid())
	assert.True(t, second.Valid())
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
	assert.Equal(t, 1, rec.Live()["buffer"])
}

func TestBufferReleaseForgetsBinding(t *testing.T) {
	c, rec, _ := newTestContext(t)
	first := c.CreateBuffer(BufferVertex, 8)
	first.Release()
	rec.Reset()

	// The reused name must be bound again even though the cache saw it.
	second := c.CreateBuffer(BufferVertex, 8)

	assert.Equal(t, 1, rec.Count("BindBuffer"))
	assert.Equal(t, second.ID(), rec.BoundBuffer(gl.ArrayBuffer))
}

func TestBufferReleaseNil(t *testing.T) {
	var b *Buffer
	b.Release()
	assert.False(t, b.Valid())
}

func TestBytes(t *testing.T) {
	assert.Len(t, Bytes([]uint16{1, 2, 3}), 6)
	assert.Len(t, Bytes([]float32{1, 2}), 8)
	assert.Len(t, Bytes([]float64{1}), 8)
	assert.Nil(t, Bytes([]uint32(nil)))

	b := Bytes([]uint8{7, 9})
	assert.Equal(t, []byte{7, 9}, b)
}

func TestBufferKindString(t *testing.T) {
	tests := []struct {
		kind BufferKind
		want string
	}{
		{BufferVertex, "Vertex"},
		{BufferIndex, "Index"},
		{BufferKind(7), "Unknown(7)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BufferKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
