package lofx

import (
	"maps"
	"slices"
)

// AttributePack maps vertex attribute slots to accessors.
//
// Buffer is the buffer of the first accessor placed in the pack. It is a hint
// for callers that keep all attributes in one buffer; binding always uses
// each accessor's own view, so packs mixing buffers are valid.
type AttributePack struct {
	Buffer     *Buffer
	Attributes map[uint32]BufferAccessor
}

// NewAttributePack returns an empty pack.
func NewAttributePack() *AttributePack {
	return &AttributePack{Attributes: make(map[uint32]BufferAccessor)}
}

// Set places accessor a at slot, replacing any accessor already there.
func (p *AttributePack) Set(slot uint32, a BufferAccessor) {
	if p.Attributes == nil {
		p.Attributes = make(map[uint32]BufferAccessor)
	}
	if p.Buffer == nil {
		p.Buffer = a.View.Buffer
	}
	p.Attributes[slot] = a
}

// Slots returns the occupied slots in ascending order.
func (p *AttributePack) Slots() []uint32 {
	return slices.Sorted(maps.Keys(p.Attributes))
}

// BuildFlatAttributePack places accessor i at slot i unchanged. Use it when
// every accessor already carries its own offset and stride.
func BuildFlatAttributePack(accessors ...BufferAccessor) *AttributePack {
	p := NewAttributePack()
	for i, a := range accessors {
		p.Set(uint32(i), a)
	}
	return p
}

// BuildInterleavedAttributePack lays the accessors out as fields of one
// vertex record, in argument order. Each accessor's Offset becomes the sum
// of the element sizes before it and every view's Stride becomes the total
// record size.
func BuildInterleavedAttributePack(accessors ...BufferAccessor) *AttributePack {
	p := NewAttributePack()
	offset := 0
	for i, a := range accessors {
		a.Offset = offset
		offset += a.ElementSize()
		p.Set(uint32(i), a)
	}
	for slot, a := range p.Attributes {
		a.View.Stride = offset
		p.Attributes[slot] = a
	}
	return p
}

// BuildSequentialAttributePack lays the accessors out as consecutive
// tightly packed arrays, in argument order. Each accessor's Offset becomes
// the byte size of all arrays before it and every view's Stride becomes 0.
func BuildSequentialAttributePack(accessors ...BufferAccessor) *AttributePack {
	p := NewAttributePack()
	offset := 0
	for i, a := range accessors {
		a.Offset = offset
		a.View.Stride = 0
		offset += a.ByteSize()
		p.Set(uint32(i), a)
	}
	return p
}

// SemanticSlot returns the attribute slot conventionally used for a glTF
// vertex attribute semantic, or false for an unknown semantic.
func SemanticSlot(semantic string) (uint32, bool) {
	switch semantic {
	case "POSITION":
		return 0, true
	case "NORMAL":
		return 1, true
	case "COLOR_0":
		return 2, true
	case "TEXCOORD_0":
		return 3, true
	case "TEXCOORD_1":
		return 4, true
	case "TANGENT":
		return 5, true
	case "JOINTS_0":
		return 6, true
	case "WEIGHTS_0":
		return 7, true
	}
	return 0, false
}

// matrixColumns returns how many attribute slots an accessor occupies and the
// component count of each. Accessors wider than a vec4 are matrices bound one
// column per slot. Without a column hint only square mat3 and mat4 have a
// known shape.
func matrixColumns(components, hint int) (columns, rows int, ok bool) {
	if hint > 0 {
		rows = components / hint
		if hint > 4 || rows < 1 || rows > 4 || rows*hint != components {
			return 0, 0, false
		}
		return hint, rows, true
	}
	switch components {
	case 1, 2, 3, 4:
		return 1, components, true
	case 9:
		return 3, 3, true
	case 16:
		return 4, 4, true
	}
	return 0, 0, false
}

// bindAttributes binds every accessor of p to its slot.
func (c *Context) bindAttributes(p *AttributePack) {
	used := make(map[uint32]bool)
	if p != nil {
		for _, slot := range p.Slots() {
			a := p.Attributes[slot]
			c.bindAttribute(slot, a, used)
		}
	}
	c.state.disableUnused(c.gl, used)
}

func (c *Context) bindAttribute(slot uint32, a BufferAccessor, used map[uint32]bool) {
	if a.Components == 0 {
		return
	}
	columns, rows, ok := matrixColumns(a.Components, a.Columns)
	if !ok {
		c.diag.warnf("attribute slot %d: cannot split %d components into %d columns", slot, a.Components, a.Columns)
		return
	}

	var id uint32
	if a.View.Buffer != nil {
		id = a.View.Buffer.ID()
	}
	c.state.bindBuffer(c.gl, BufferVertex.target(), id)

	stride := a.View.Stride
	if columns > 1 && stride == 0 {
		stride = a.ElementSize()
	}
	colSize := rows * AttribSize(a.Type)
	for col := range columns {
		s := slot + uint32(col)
		used[s] = true
		c.state.enableAttrib(c.gl, s)
		offset := a.ByteOffset() + col*colSize
		if a.Type.IsInteger() && !a.Normalized {
			c.gl.VertexAttribIPointer(s, rows, a.Type.glType(), stride, offset)
		} else {
			c.gl.VertexAttribPointer(s, rows, a.Type.glType(), a.Normalized, stride, offset)
		}
	}
}
