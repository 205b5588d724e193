package math

import "github.com/go-gl/mathgl/mgl32"

// QuatRollPitchYaw builds the orientation quaternion for Euler angles in radians.
// Roll is applied first (about Z), then pitch (about X), then yaw (about Y).
// With these conventions a positive yaw turns +Z towards +X and a positive pitch
// turns +Z towards -Y.
func QuatRollPitchYaw(pitch, yaw, roll float32) mgl32.Quat {
	qYaw := mgl32.QuatRotate(yaw, UnitY)
	qPitch := mgl32.QuatRotate(pitch, UnitX)
	qRoll := mgl32.QuatRotate(roll, UnitZ)
	return qYaw.Mul(qPitch).Mul(qRoll)
}

// QuatFromEuler is QuatRollPitchYaw for a packed (pitch, yaw, roll) vector.
func QuatFromEuler(pitchYawRoll mgl32.Vec3) mgl32.Quat {
	return QuatRollPitchYaw(pitchYawRoll[0], pitchYawRoll[1], pitchYawRoll[2])
}

// RotateEuler rotates v by the orientation described by pitchYawRoll.
func RotateEuler(v, pitchYawRoll mgl32.Vec3) mgl32.Vec3 {
	return QuatFromEuler(pitchYawRoll).Rotate(v)
}
