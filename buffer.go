package lofx

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/lofx/gl"
)

// BufferKind selects the binding point a buffer is written through.
type BufferKind uint8

const (
	// BufferVertex holds vertex attributes.
	BufferVertex BufferKind = iota
	// BufferIndex holds element indices.
	BufferIndex
)

// String returns the kind name.
func (k BufferKind) String() string {
	switch k {
	case BufferVertex:
		return "Vertex"
	case BufferIndex:
		return "Index"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

func (k BufferKind) target() gl.Enum {
	if k == BufferIndex {
		return gl.ElementArrayBuffer
	}
	return gl.ArrayBuffer
}

// BufferStorage is a set of immutable-storage flags.
type BufferStorage uint8

const (
	// StorageDynamic allows Send after creation.
	StorageDynamic BufferStorage = 1 << iota
	// StorageMapRead allows mapping for reading.
	StorageMapRead
	// StorageMapWrite allows mapping for writing.
	StorageMapWrite
	// StorageMapPersistent allows the buffer to stay mapped while used.
	StorageMapPersistent
	// StorageMapCoherent makes persistent mappings coherent.
	StorageMapCoherent
	// StorageClientStorage hints that storage should live in client memory.
	StorageClientStorage
)

func (s BufferStorage) bits() gl.Bitfield {
	var b gl.Bitfield
	if s&StorageDynamic != 0 {
		b |= gl.DynamicStorageBit
	}
	if s&StorageMapRead != 0 {
		b |= gl.MapReadBit
	}
	if s&StorageMapWrite != 0 {
		b |= gl.MapWriteBit
	}
	if s&StorageMapPersistent != 0 {
		b |= gl.MapPersistentBit
	}
	if s&StorageMapCoherent != 0 {
		b |= gl.MapCoherentBit
	}
	if s&StorageClientStorage != 0 {
		b |= gl.ClientStorageBit
	}
	return b
}

// Buffer is a GPU buffer with immutable storage of a fixed size.
type Buffer struct {
	ctx     *Context
	id      uint32
	size    int
	kind    BufferKind
	storage BufferStorage
}

// CreateBuffer allocates an uninitialized dynamic buffer of size bytes.
func (c *Context) CreateBuffer(kind BufferKind, size int) *Buffer {
	return c.CreateBufferWithStorage(kind, size, StorageDynamic)
}

// CreateBufferWithStorage allocates an uninitialized buffer with explicit
// storage flags. Buffers without StorageDynamic cannot be written by Send.
func (c *Context) CreateBufferWithStorage(kind BufferKind, size int, storage BufferStorage) *Buffer {
	b := &Buffer{ctx: c, size: size, kind: kind, storage: storage}
	b.id = c.gl.CreateBuffer()
	c.state.bindBuffer(c.gl, kind.target(), b.id)
	c.gl.BufferStorage(kind.target(), size, nil, storage.bits())
	return b
}

// ID returns the GL buffer name, 0 once released.
func (b *Buffer) ID() uint32 { return b.id }

// Size returns the storage size in bytes.
func (b *Buffer) Size() int { return b.size }

// Kind returns the buffer kind.
func (b *Buffer) Kind() BufferKind { return b.kind }

// Storage returns the storage flags.
func (b *Buffer) Storage() BufferStorage { return b.storage }

// Valid reports whether the buffer has not been released.
func (b *Buffer) Valid() bool { return b != nil && b.id != 0 }

// Send writes data at offset 0.
func (b *Buffer) Send(data []byte) {
	b.SendRange(0, data)
}

// SendRange writes data at offset. Writes outside [0, Size) are dropped
// with a Warn diagnostic.
func (b *Buffer) SendRange(offset int, data []byte) {
	if offset < 0 || offset+len(data) > b.size {
		b.ctx.diag.warnf("buffer %d: write of %d bytes at offset %d exceeds size %d", b.id, len(data), offset, b.size)
		return
	}
	if len(data) == 0 {
		return
	}
	b.ctx.state.bindBuffer(b.ctx.gl, b.kind.target(), b.id)
	b.ctx.gl.BufferSubData(b.kind.target(), offset, data)
}

// Read returns length bytes starting at offset.
func (b *Buffer) Read(offset, length int) []byte {
	if offset < 0 || length < 0 || offset+length > b.size {
		b.ctx.diag.warnf("buffer %d: read of %d bytes at offset %d exceeds size %d", b.id, length, offset, b.size)
		return nil
	}
	data := make([]byte, length)
	b.ctx.gl.BindBuffer(gl.CopyReadBuffer, b.id)
	b.ctx.gl.GetBufferSubData(gl.CopyReadBuffer, offset, data)
	return data
}

// Release deletes the buffer. Calling Release more than once is a no-op.
func (b *Buffer) Release() {
	if b == nil || b.id == 0 {
		return
	}
	if b.ctx.gl.IsBuffer(b.id) {
		b.ctx.gl.DeleteBuffer(b.id)
	}
	b.ctx.state.forgetBuffer(b.id)
	b.id = 0
}

// Bytes reinterprets a slice of fixed-size values as its raw bytes in host
// byte order, the layout GL expects for vertex and index data.
//
//	vertices := []float32{0, 0, 0, 1, 0, 0}
//	buf.Send(lofx.Bytes(vertices))
func Bytes[T ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 | ~float64](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// AttribType is the component type of an accessor.
type AttribType uint8

const (
	AttribByte          AttribType = iota // int8
	AttribUnsignedByte                    // uint8
	AttribShort                           // int16
	AttribUnsignedShort                   // uint16
	AttribInt                             // int32
	AttribUnsignedInt                     // uint32
	AttribFloat                           // float32
	AttribDouble                          // float64
)

// String returns the type name.
func (t AttribType) String() string {
	switch t {
	case AttribByte:
		return "Byte"
	case AttribUnsignedByte:
		return "UnsignedByte"
	case AttribShort:
		return "Short"
	case AttribUnsignedShort:
		return "UnsignedShort"
	case AttribInt:
		return "Int"
	case AttribUnsignedInt:
		return "UnsignedInt"
	case AttribFloat:
		return "Float"
	case AttribDouble:
		return "Double"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// IsInteger reports whether t is an integer type.
func (t AttribType) IsInteger() bool {
	return t <= AttribUnsignedInt
}

// AttribSize returns the byte width of one component of type t, or 0 for an
// unknown type.
func AttribSize(t AttribType) int {
	switch t {
	case AttribByte, AttribUnsignedByte:
		return 1
	case AttribShort, AttribUnsignedShort:
		return 2
	case AttribInt, AttribUnsignedInt, AttribFloat:
		return 4
	case AttribDouble:
		return 8
	default:
		return 0
	}
}

func (t AttribType) glType() gl.Enum {
	switch t {
	case AttribByte:
		return gl.Byte
	case AttribUnsignedByte:
		return gl.UnsignedByte
	case AttribShort:
		return gl.Short
	case AttribUnsignedShort:
		return gl.UnsignedShort
	case AttribInt:
		return gl.Int
	case AttribUnsignedInt:
		return gl.UnsignedInt
	case AttribDouble:
		return gl.Double
	default:
		return gl.Float
	}
}

// BufferView is a non-owning window over a Buffer. Several views may alias
// the same buffer.
type BufferView struct {
	Buffer *Buffer
	Offset int
	Length int
	// Stride is the byte distance between consecutive elements, 0 for
	// tightly packed.
	Stride int
}

// NewBufferView returns a view of length bytes at offset.
func NewBufferView(buf *Buffer, offset, length, stride int) BufferView {
	return BufferView{Buffer: buf, Offset: offset, Length: length, Stride: stride}
}

// Valid reports whether the view lies inside its buffer.
func (v BufferView) Valid() bool {
	return v.Buffer != nil && v.Offset >= 0 && v.Length >= 0 && v.Offset+v.Length <= v.Buffer.Size()
}

// BufferAccessor interprets a view as an array of Count elements of
// Components values of Type each.
//
// Columns is the column count of a matrix attribute, which is bound one
// column per slot. When it is 0 only vectors of up to 4 components and
// square 3x3 and 4x4 matrices can be bound.
type BufferAccessor struct {
	View       BufferView
	Offset     int
	Components int
	Columns    int
	Count      int
	Type       AttribType
	Normalized bool
}

// CreateAccessor returns an accessor over the whole of buf.
func CreateAccessor(buf *Buffer, typ AttribType, components, count int) BufferAccessor {
	size := 0
	if buf != nil {
		size = buf.Size()
	}
	return BufferAccessor{
		View:       BufferView{Buffer: buf, Length: size},
		Components: components,
		Count:      count,
		Type:       typ,
	}
}

// ElementSize returns the byte size of one element.
func (a BufferAccessor) ElementSize() int {
	return a.Components * AttribSize(a.Type)
}

// ByteSize returns the byte size of all elements when tightly packed.
func (a BufferAccessor) ByteSize() int {
	return a.Count * a.ElementSize()
}

// ByteOffset returns the offset of the first element in the buffer.
func (a BufferAccessor) ByteOffset() int {
	return a.View.Offset + a.Offset
}

// Valid reports whether all elements lie inside the backing buffer.
func (a BufferAccessor) Valid() bool {
	if a.View.Buffer == nil || a.Components < 0 || a.Count < 0 || a.ByteOffset() < 0 {
		return false
	}
	return a.ByteOffset()+a.ByteSize() <= a.View.Buffer.Size()
}
