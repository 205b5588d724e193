package math

import "github.com/go-gl/mathgl/mgl32"

// near compares absolutely; mgl32's relative threshold is too strict around zero.
func near(a, b, tol float32) bool {
	return mgl32.Abs(a-b) <= tol
}

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func matNear(a, b mgl32.Mat4, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
