// Package math provides the left-handed matrix and rotation helpers used by the scene core.
//
// All types are mgl32 types. Matrices are stored column-major, which is byte-for-byte the
// same layout as a row-major matrix used with row vectors, so a matrix built here as T·R·S
// (column vectors) is the row-vector composition S×R×T.
package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Unit basis vectors.
var (
	UnitX = mgl32.Vec3{1, 0, 0}
	UnitY = mgl32.Vec3{0, 1, 0}
	UnitZ = mgl32.Vec3{0, 0, 1}
)

// WorldUp is the fixed up direction used for view construction.
var WorldUp = UnitY

// Normalize returns a unit vector, or the zero vector when v has zero length.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// MulComponents multiplies two vectors component-wise.
func MulComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// IsZero reports whether every component of v is exactly zero.
func IsZero(v mgl32.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// DegToRad3 converts each component from degrees to radians.
func DegToRad3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{mgl32.DegToRad(v[0]), mgl32.DegToRad(v[1]), mgl32.DegToRad(v[2])}
}

// IsFinite reports whether every element of m is a finite number.
func IsFinite(m mgl32.Mat4) bool {
	for _, e := range m {
		f := float64(e)
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return false
		}
	}
	return true
}
