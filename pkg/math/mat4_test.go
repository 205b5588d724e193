package math

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	if Identity() != mgl32.Ident4() {
		t.Error("Identity should equal mgl32.Ident4")
	}
}

func TestWorldTranslationLayout(t *testing.T) {
	m := World(mgl32.Vec3{5, 10, 15}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})

	// Translation lives in elements 12..14 (fourth row for row vectors).
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("World translation: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestWorldScalesBeforeRotatingBeforeTranslating(t *testing.T) {
	pos := mgl32.Vec3{10, 0, 0}
	rot := mgl32.Vec3{0, gomath.Pi / 2, 0}
	scale := mgl32.Vec3{2, 1, 1}
	m := World(pos, rot, scale)

	// (0,0,1): scale leaves it, yaw 90 sends it to (1,0,0), then translate.
	got := TransformPoint(m, mgl32.Vec3{0, 0, 1})
	if !vecNear(got, mgl32.Vec3{11, 0, 0}, eps) {
		t.Errorf("World(0,0,1) = %v, want (11, 0, 0)", got)
	}

	// (1,0,0): scale to (2,0,0), yaw 90 sends +X to -Z, then translate.
	got = TransformPoint(m, mgl32.Vec3{1, 0, 0})
	if !vecNear(got, mgl32.Vec3{10, 0, -2}, eps) {
		t.Errorf("World(1,0,0) = %v, want (10, 0, -2)", got)
	}
}

func TestThenMatchesRowVectorOrder(t *testing.T) {
	s := mgl32.Scale3D(2, 2, 2)
	tr := mgl32.Translate3D(1, 0, 0)
	got := TransformPoint(Then(s, tr), mgl32.Vec3{1, 0, 0})
	if !vecNear(got, mgl32.Vec3{3, 0, 0}, eps) {
		t.Errorf("scale then translate = %v, want (3, 0, 0)", got)
	}
}

func TestInverse(t *testing.T) {
	m := World(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0.3, 0.5, -0.2}, mgl32.Vec3{2, 3, 4})
	got := m.Mul4(Inverse(m))
	if !matNear(got, mgl32.Ident4(), eps) {
		t.Errorf("M * Inverse(M) = %v, want identity", got)
	}
}

func TestInverseSingularFallsBackToIdentity(t *testing.T) {
	m := World(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 1})
	if got := Inverse(m); got != mgl32.Ident4() {
		t.Errorf("Inverse(singular) = %v, want identity", got)
	}
}

func TestInverseTransposeOfRotationIsRotation(t *testing.T) {
	r := RotationRollPitchYaw(0.2, 1.1, -0.4)
	if got := InverseTranspose(r); !matNear(got, r, eps) {
		t.Errorf("InverseTranspose(R) = %v, want R", got)
	}
}

func TestLookToLHIdentityAtOrigin(t *testing.T) {
	m := LookToLH(mgl32.Vec3{}, UnitZ, WorldUp)
	if !matNear(m, mgl32.Ident4(), eps) {
		t.Errorf("LookToLH at origin along +Z = %v, want identity", m)
	}
}

func TestLookToLHMapsEyeToOrigin(t *testing.T) {
	eye := mgl32.Vec3{3, 4, -5}
	dir := mgl32.Vec3{1, -0.5, 2}
	m := LookToLH(eye, dir, WorldUp)

	if got := TransformPoint(m, eye); !vecNear(got, mgl32.Vec3{}, 1e-4) {
		t.Errorf("eye in view space = %v, want origin", got)
	}

	ahead := eye.Add(Normalize(dir).Mul(10))
	got := TransformPoint(m, ahead)
	if !vecNear(got, mgl32.Vec3{0, 0, 10}, 1e-4) {
		t.Errorf("point ahead in view space = %v, want (0, 0, 10)", got)
	}
}

func TestLookToLHParallelUpStaysFinite(t *testing.T) {
	m := LookToLH(mgl32.Vec3{}, UnitY, WorldUp)
	if !IsFinite(m) {
		t.Errorf("LookToLH looking straight up should stay finite, got %v", m)
	}
}

func TestPerspectiveFovLH(t *testing.T) {
	fov := float32(gomath.Pi / 4)
	zNear, zFar := float32(0.1), float32(100)
	m := PerspectiveFovLH(fov, 2, zNear, zFar)

	if m[11] != 1 {
		t.Errorf("PerspectiveFovLH [11] should be 1, got %f", m[11])
	}
	if m[15] != 0 {
		t.Errorf("PerspectiveFovLH [15] should be 0, got %f", m[15])
	}
	h := float32(1 / gomath.Tan(gomath.Pi/8))
	if !near(m[5], h, eps) || !near(m[0], h/2, eps) {
		t.Errorf("PerspectiveFovLH scale terms = (%f, %f), want (%f, %f)", m[0], m[5], h/2, h)
	}

	if z := TransformPoint(m, mgl32.Vec3{0, 0, zNear}).Z(); !near(z, 0, eps) {
		t.Errorf("near plane depth = %f, want 0", z)
	}
	if z := TransformPoint(m, mgl32.Vec3{0, 0, zFar}).Z(); !near(z, 1, eps) {
		t.Errorf("far plane depth = %f, want 1", z)
	}
}
