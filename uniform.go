package lofx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformType identifies the value held by a Uniform.
type UniformType uint8

// Uniform types, named after the GLSL type they set.
const (
	UniformUint UniformType = iota
	UniformInt
	UniformFloat
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat2
	UniformMat3
	UniformMat4
)

// String returns the GLSL type name.
func (t UniformType) String() string {
	switch t {
	case UniformUint:
		return "uint"
	case UniformInt:
		return "int"
	case UniformFloat:
		return "float"
	case UniformVec2:
		return "vec2"
	case UniformVec3:
		return "vec3"
	case UniformVec4:
		return "vec4"
	case UniformMat2:
		return "mat2"
	case UniformMat3:
		return "mat3"
	case UniformMat4:
		return "mat4"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// UniformValue lists the Go types a Uniform can carry. Matrices are
// column-major, as mgl32 stores them.
type UniformValue interface {
	uint32 | int32 | float32 | mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 | mgl32.Mat2 | mgl32.Mat3 | mgl32.Mat4
}

// Uniform is a named uniform value. The zero Uniform is an unsigned 0 with
// an empty name.
type Uniform struct {
	Name string
	typ  UniformType
	u    uint32
	i    int32
	f    [16]float32
}

// NewUniform returns a uniform whose type follows from T.
//
//	pipeline.Send(lofx.NewUniform("model", mgl32.Ident4()))
func NewUniform[T UniformValue](name string, v T) Uniform {
	switch v := any(v).(type) {
	case uint32:
		return Uint(name, v)
	case int32:
		return Int(name, v)
	case float32:
		return Float(name, v)
	case mgl32.Vec2:
		return Vec2(name, v)
	case mgl32.Vec3:
		return Vec3(name, v)
	case mgl32.Vec4:
		return Vec4(name, v)
	case mgl32.Mat2:
		return Mat2(name, v)
	case mgl32.Mat3:
		return Mat3(name, v)
	case mgl32.Mat4:
		return Mat4(name, v)
	}
	panic("unreachable")
}

// Uint returns a uint uniform.
func Uint(name string, v uint32) Uniform { return Uniform{Name: name, typ: UniformUint, u: v} }

// Int returns an int uniform. Sampler uniforms take the texture unit as an int.
func Int(name string, v int32) Uniform { return Uniform{Name: name, typ: UniformInt, i: v} }

// Float returns a float uniform.
func Float(name string, v float32) Uniform {
	u := Uniform{Name: name, typ: UniformFloat}
	u.f[0] = v
	return u
}

// Vec2 returns a vec2 uniform.
func Vec2(name string, v mgl32.Vec2) Uniform {
	u := Uniform{Name: name, typ: UniformVec2}
	copy(u.f[:], v[:])
	return u
}

// Vec3 returns a vec3 uniform.
func Vec3(name string, v mgl32.Vec3) Uniform {
	u := Uniform{Name: name, typ: UniformVec3}
	copy(u.f[:], v[:])
	return u
}

// Vec4 returns a vec4 uniform.
func Vec4(name string, v mgl32.Vec4) Uniform {
	u := Uniform{Name: name, typ: UniformVec4}
	copy(u.f[:], v[:])
	return u
}

// Mat2 returns a mat2 uniform.
func Mat2(name string, m mgl32.Mat2) Uniform {
	u := Uniform{Name: name, typ: UniformMat2}
	copy(u.f[:], m[:])
	return u
}

// Mat3 returns a mat3 uniform.
func Mat3(name string, m mgl32.Mat3) Uniform {
	u := Uniform{Name: name, typ: UniformMat3}
	copy(u.f[:], m[:])
	return u
}

// Mat4 returns a mat4 uniform.
func Mat4(name string, m mgl32.Mat4) Uniform {
	u := Uniform{Name: name, typ: UniformMat4}
	copy(u.f[:], m[:])
	return u
}

// Type returns the kind of value held.
func (u Uniform) Type() UniformType { return u.typ }

// Uint returns the value of a UniformUint.
func (u Uniform) Uint() uint32 { return u.u }

// Int returns the value of a UniformInt.
func (u Uniform) Int() int32 { return u.i }

// Floats returns the float components of a float, vector or matrix uniform.
func (u Uniform) Floats() []float32 {
	switch u.typ {
	case UniformFloat:
		return u.f[:1]
	case UniformVec2:
		return u.f[:2]
	case UniformVec3:
		return u.f[:3]
	case UniformVec4, UniformMat2:
		return u.f[:4]
	case UniformMat3:
		return u.f[:9]
	case UniformMat4:
		return u.f[:16]
	default:
		return nil
	}
}

// String formats the uniform for diagnostics.
func (u Uniform) String() string {
	switch u.typ {
	case UniformUint:
		return fmt.Sprintf("%s %s = %d", u.typ, u.Name, u.u)
	case UniformInt:
		return fmt.Sprintf("%s %s = %d", u.typ, u.Name, u.i)
	default:
		return fmt.Sprintf("%s %s = %v", u.typ, u.Name, u.Floats())
	}
}
