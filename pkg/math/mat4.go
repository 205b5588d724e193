package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Identity returns an identity matrix.
func Identity() mgl32.Mat4 {
	return mgl32.Ident4()
}

// RotationRollPitchYaw returns the rotation matrix for Euler angles in radians.
func RotationRollPitchYaw(pitch, yaw, roll float32) mgl32.Mat4 {
	return QuatRollPitchYaw(pitch, yaw, roll).Mat4()
}

// World composes scale, then rotation, then translation.
func World(position, pitchYawRoll, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position[0], position[1], position[2])
	r := RotationRollPitchYaw(pitchYawRoll[0], pitchYawRoll[1], pitchYawRoll[2])
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r).Mul4(s)
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular or the result is not finite.
func Inverse(m mgl32.Mat4) mgl32.Mat4 {
	det := m.Det()
	if det == 0 || mgl32.FloatEqual(det, 0) {
		return mgl32.Ident4()
	}
	inv := m.Inv()
	if !IsFinite(inv) {
		return mgl32.Ident4()
	}
	return inv
}

// InverseTranspose returns inverse(transpose(m)), the matrix used to transform normals.
func InverseTranspose(m mgl32.Mat4) mgl32.Mat4 {
	return Inverse(m.Transpose())
}

// LookToLH returns a left-handed view matrix for an eye looking along dir.
// A dir parallel to up degenerates to a zero basis row rather than NaNs.
func LookToLH(eye, dir, up mgl32.Vec3) mgl32.Mat4 {
	z := Normalize(dir)
	x := Normalize(up.Cross(z))
	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// PerspectiveFovLH returns a left-handed perspective projection mapping depth to [0, 1].
// fovY is in radians, aspect is width/height.
func PerspectiveFovLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	h := float32(1.0 / gomath.Tan(float64(fovY)/2.0))
	w := h / aspect
	depth := far / (far - near)

	return mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, depth, 1,
		0, 0, -depth * near, 0,
	}
}

// Then returns the row-vector product a×b: apply a, then b.
func Then(a, b mgl32.Mat4) mgl32.Mat4 {
	return b.Mul4(a)
}

// TransformPoint applies m to a point (w=1) with perspective divide.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

// TransformDirection applies m to a direction (w=0).
func TransformDirection(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformNormal(d, m)
}
