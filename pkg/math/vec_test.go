package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalize(t *testing.T) {
	n := Normalize(mgl32.Vec3{3, 0, 4})
	if !vecNear(n, mgl32.Vec3{0.6, 0, 0.8}, 1e-6) {
		t.Errorf("Normalize() = %v, want (0.6, 0, 0.8)", n)
	}
}

func TestNormalizeZero(t *testing.T) {
	got := Normalize(mgl32.Vec3{})
	if got != (mgl32.Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", got)
	}
}

func TestMulComponents(t *testing.T) {
	got := MulComponents(mgl32.Vec3{2, 1, 1}, mgl32.Vec3{1, 2, 1})
	want := mgl32.Vec3{2, 2, 1}
	if got != want {
		t.Errorf("MulComponents() = %v, want %v", got, want)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(mgl32.Vec3{}) {
		t.Error("IsZero(zero) should be true")
	}
	if IsZero(mgl32.Vec3{0, 0, 1e-9}) {
		t.Error("IsZero should be false for a tiny non-zero component")
	}
}

func TestDegToRad3(t *testing.T) {
	got := DegToRad3(mgl32.Vec3{180, 90, 0})
	want := mgl32.Vec3{mgl32.DegToRad(180), mgl32.DegToRad(90), 0}
	if !vecNear(got, want, 1e-6) {
		t.Errorf("DegToRad3() = %v, want %v", got, want)
	}
}
