package mathutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Float is the set of element types a Vector3 can hold.
type Float interface {
	float32 | float64
}

// Vector3 is a 3-component vector (value type, stack-allocated).
// Indexing outside [0, 3) panics like any Go array; At and SetAt report it
// as ErrIndexOutOfRange instead.
//
// Comparing two vectors with == is exact component-wise equality, so a
// vector holding NaN never equals itself.
type Vector3[T Float] [3]T

// Vector3d and Vector3f are the double- and single-precision vectors.
type (
	Vector3d = Vector3[float64]
	Vector3f = Vector3[float32]
)

var (
	ErrIndexOutOfRange = errors.New("mathutil: vector index out of range")
	ErrShortSlice      = errors.New("mathutil: need at least 3 elements")
)

// New returns the vector (x, y, z).
func New[T Float](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Splat returns a vector with all three components set to f.
func Splat[T Float](f T) Vector3[T] {
	return Vector3[T]{f, f, f}
}

// FromSlice copies the first three elements of s.
func FromSlice[T Float](s []T) (Vector3[T], error) {
	if len(s) < 3 {
		return Vector3[T]{}, fmt.Errorf("from slice of %d: %w", len(s), ErrShortSlice)
	}
	return Vector3[T]{s[0], s[1], s[2]}, nil
}

// Named constants. Each call returns a fresh value.

func Zero[T Float]() Vector3[T]  { return Vector3[T]{0, 0, 0} }
func One[T Float]() Vector3[T]   { return Vector3[T]{1, 1, 1} }
func AxisX[T Float]() Vector3[T] { return Vector3[T]{1, 0, 0} }
func AxisY[T Float]() Vector3[T] { return Vector3[T]{0, 1, 0} }
func AxisZ[T Float]() Vector3[T] { return Vector3[T]{0, 0, 1} }

func (v Vector3[T]) X() T { return v[0] }
func (v Vector3[T]) Y() T { return v[1] }
func (v Vector3[T]) Z() T { return v[2] }

func (v *Vector3[T]) SetX(f T) { v[0] = f }
func (v *Vector3[T]) SetY(f T) { v[1] = f }
func (v *Vector3[T]) SetZ(f T) { v[2] = f }

// At returns component i.
func (v Vector3[T]) At(i int) (T, error) {
	if i < 0 || i >= 3 {
		return 0, fmt.Errorf("get index %d: %w", i, ErrIndexOutOfRange)
	}
	return v[i], nil
}

// SetAt assigns component i.
func (v *Vector3[T]) SetAt(i int, f T) error {
	if i < 0 || i >= 3 {
		return fmt.Errorf("set index %d: %w", i, ErrIndexOutOfRange)
	}
	v[i] = f
	return nil
}

func (v Vector3[T]) LengthSquared() T {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Length is computed in the vector's own precision.
func (v Vector3[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place using the default epsilon for
// its precision and returns the length it had before.
func (v *Vector3[T]) Normalize() T {
	return v.NormalizeEps(defaultEpsilon[T]())
}

// NormalizeEps is Normalize with an explicit threshold. When the length is
// not above eps, v becomes the zero vector and 0 is returned.
func (v *Vector3[T]) NormalizeEps(eps T) T {
	length := v.Length()
	if length > eps {
		inv := 1 / length
		v[0] *= inv
		v[1] *= inv
		v[2] *= inv
	} else {
		length = 0
		v[0], v[1], v[2] = 0, 0, 0
	}
	return length
}

// Normalized returns a unit-length copy of v.
func (v Vector3[T]) Normalized() Vector3[T] {
	n := v
	n.Normalize()
	return n
}

func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// UnitCross returns the normalized cross product, or zero for parallel inputs.
func (v Vector3[T]) UnitCross(o Vector3[T]) Vector3[T] {
	n := v.Cross(o)
	n.Normalize()
	return n
}

// AngleR returns the angle between v and o in radians.
// Neither vector is normalized first: pass unit vectors.
func (v Vector3[T]) AngleR(o Vector3[T]) T {
	return acos(Clamp(v.Dot(o), -1, 1))
}

// AngleD is AngleR in degrees.
func (v Vector3[T]) AngleD(o Vector3[T]) T {
	return v.AngleR(o) * T(Rad2Deg)
}

func Dot[T Float](a, b Vector3[T]) T                { return a.Dot(b) }
func Cross[T Float](a, b Vector3[T]) Vector3[T]     { return a.Cross(b) }
func UnitCross[T Float](a, b Vector3[T]) Vector3[T] { return a.UnitCross(b) }
func AngleR[T Float](a, b Vector3[T]) T             { return a.AngleR(b) }
func AngleD[T Float](a, b Vector3[T]) T             { return a.AngleD(b) }

// Set overwrites v with o.
func (v *Vector3[T]) Set(o Vector3[T]) {
	v[0], v[1], v[2] = o[0], o[1], o[2]
}

func (v *Vector3[T]) SetXYZ(x, y, z T) {
	v[0], v[1], v[2] = x, y, z
}

// Add adds o to v in place.
func (v *Vector3[T]) Add(o Vector3[T]) {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
}

// Subtract subtracts o from v in place.
func (v *Vector3[T]) Subtract(o Vector3[T]) {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v[0], -v[1], -v[2]}
}

// Scale returns v * f.
func (v Vector3[T]) Scale(f T) Vector3[T] {
	return Vector3[T]{f * v[0], f * v[1], f * v[2]}
}

// ScaleBy returns f * v.
func ScaleBy[T Float](f T, v Vector3[T]) Vector3[T] {
	return v.Scale(f)
}

// Div returns v / f. Division by zero yields Inf or NaN components.
func (v Vector3[T]) Div(f T) Vector3[T] {
	return Vector3[T]{v[0] / f, v[1] / f, v[2] / f}
}

// MulEach returns the component-wise (Hadamard) product. Not Dot or Cross.
func (v Vector3[T]) MulEach(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// DivEach returns the component-wise quotient v[i] / o[i].
func (v Vector3[T]) DivEach(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

func (v Vector3[T]) Plus(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vector3[T]) Minus(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// PlusScalar adds f to every component.
func (v Vector3[T]) PlusScalar(f T) Vector3[T] {
	return Vector3[T]{v[0] + f, v[1] + f, v[2] + f}
}

// MinusScalar subtracts f from every component.
func (v Vector3[T]) MinusScalar(f T) Vector3[T] {
	return Vector3[T]{v[0] - f, v[1] - f, v[2] - f}
}

// Equal reports exact component-wise equality.
func (v Vector3[T]) Equal(o Vector3[T]) bool {
	return v[0] == o[0] && v[1] == o[1] && v[2] == o[2]
}

func (v Vector3[T]) NotEqual(o Vector3[T]) bool {
	return v[0] != o[0] || v[1] != o[1] || v[2] != o[2]
}

// Lerp returns (1-t)*a + t*b. t is not clamped.
func Lerp[T Float](a, b Vector3[T], t T) Vector3[T] {
	s := 1 - t
	// explicit conversions stop the compiler from fusing into FMA
	return Vector3[T]{
		T(s*a[0]) + T(t*b[0]),
		T(s*a[1]) + T(t*b[1]),
		T(s*a[2]) + T(t*b[2]),
	}
}

func defaultEpsilon[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(Epsilonf)
	}
	return T(Epsilon)
}

func sqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func acos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(math.Acos(float64(x)))
}
