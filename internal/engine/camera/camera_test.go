package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/pkg/math"
)

const eps = 1e-5

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func matNear(a, b mgl32.Mat4, tol float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func pressed(actions ...input.Action) input.State {
	var s input.State
	s.Press(actions...)
	return s
}

func TestNewDefaults(t *testing.T) {
	c := New(16.0/9.0, mgl32.Vec3{0, 2, -10}, mgl32.Vec3{}, 0)

	if c.FieldOfView() != DefaultFieldOfView {
		t.Errorf("fov = %v, want %v", c.FieldOfView(), DefaultFieldOfView)
	}
	if c.NearPlane() != 0.1 || c.FarPlane() != 1000 {
		t.Errorf("clip planes = (%v, %v), want (0.1, 1000)", c.NearPlane(), c.FarPlane())
	}
	if c.AspectRatio() != 16.0/9.0 {
		t.Errorf("aspect = %v, want 16/9", c.AspectRatio())
	}
	if c.MoveSpeed != 8 || c.LookSpeed != 0.005 {
		t.Errorf("speeds = (%v, %v), want (8, 0.005)", c.MoveSpeed, c.LookSpeed)
	}
	if c.Transform().Position() != (mgl32.Vec3{0, 2, -10}) {
		t.Errorf("position = %v", c.Transform().Position())
	}

	wantProj := math.PerspectiveFovLH(DefaultFieldOfView, 16.0/9.0, 0.1, 1000)
	if c.ProjectionMatrix() != wantProj {
		t.Error("initial projection does not match the default parameters")
	}
}

func TestNewCustomFieldOfView(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 1.2)
	if c.FieldOfView() != 1.2 {
		t.Errorf("fov = %v, want 1.2", c.FieldOfView())
	}
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	pos := mgl32.Vec3{4, 5, 6}
	c := New(1, pos, mgl32.Vec3{0.3, -1.2, 0}, 0)

	if got := math.TransformPoint(c.ViewMatrix(), pos); !vecNear(got, mgl32.Vec3{}, 1e-4) {
		t.Errorf("camera position in view space = %v, want origin", got)
	}
	ahead := pos.Add(c.Transform().Forward().Mul(3))
	if got := math.TransformPoint(c.ViewMatrix(), ahead); !vecNear(got, mgl32.Vec3{0, 0, 3}, 1e-4) {
		t.Errorf("point ahead in view space = %v, want (0, 0, 3)", got)
	}
}

func TestViewMatrixTracksTransform(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 0)
	before := c.ViewMatrix()

	c.Transform().MoveAbsolute(mgl32.Vec3{0, 0, 5})

	after := c.ViewMatrix()
	if after == before {
		t.Fatal("view matrix should change after the transform moved")
	}
	want := math.LookToLH(mgl32.Vec3{0, 0, 5}, math.UnitZ, math.WorldUp)
	if !matNear(after, want, eps) {
		t.Errorf("view = %v, want %v", after, want)
	}
}

func TestUpdateProjectionMatrixOnlyChangesAspect(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 0)
	c.UpdateProjectionMatrixFull(1, 1.0, 0.5, 200)
	square := c.ProjectionMatrix()

	c.UpdateProjectionMatrix(2)
	wide := c.ProjectionMatrix()

	if c.FieldOfView() != 1.0 || c.NearPlane() != 0.5 || c.FarPlane() != 200 {
		t.Errorf("params changed: fov=%v near=%v far=%v", c.FieldOfView(), c.NearPlane(), c.FarPlane())
	}
	if c.AspectRatio() != 2 {
		t.Errorf("aspect = %v, want 2", c.AspectRatio())
	}

	// Only the horizontal scale term depends on aspect.
	for i := range square {
		if i == 0 {
			continue
		}
		if square[i] != wide[i] {
			t.Errorf("element %d changed: %v -> %v", i, square[i], wide[i])
		}
	}
	if mgl32.Abs(wide[0]-square[0]/2) > eps {
		t.Errorf("x scale = %v, want %v", wide[0], square[0]/2)
	}
	if want := math.PerspectiveFovLH(1.0, 2, 0.5, 200); wide != want {
		t.Errorf("projection = %v, want %v", wide, want)
	}
}

func TestUpdateNoInput(t *testing.T) {
	c := New(1, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0.1, 0.2, 0}, 0)
	version := c.Transform().Version()

	c.Update(0.016, input.State{})

	if c.Transform().Version() != version {
		t.Error("update without input should not touch the transform")
	}
	if c.Transform().Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("position = %v, want unchanged", c.Transform().Position())
	}
}

func TestUpdateMovement(t *testing.T) {
	diag := float32(1 / gomath.Sqrt2)
	tests := []struct {
		name    string
		actions []input.Action
		want    mgl32.Vec3
	}{
		{"forward", []input.Action{input.MoveForward}, mgl32.Vec3{0, 0, 1}},
		{"backward", []input.Action{input.MoveBackward}, mgl32.Vec3{0, 0, -1}},
		{"left", []input.Action{input.MoveLeft}, mgl32.Vec3{-1, 0, 0}},
		{"right", []input.Action{input.MoveRight}, mgl32.Vec3{1, 0, 0}},
		{"forward wins over backward", []input.Action{input.MoveForward, input.MoveBackward}, mgl32.Vec3{0, 0, 1}},
		{"left wins over right", []input.Action{input.MoveLeft, input.MoveRight}, mgl32.Vec3{-1, 0, 0}},
		{"diagonal is normalized", []input.Action{input.MoveForward, input.MoveRight}, mgl32.Vec3{diag, 0, diag}},
		{"up", []input.Action{input.MoveUp}, mgl32.Vec3{0, 1, 0}},
		{"down", []input.Action{input.MoveDown}, mgl32.Vec3{0, -1, 0}},
		{"up wins over down", []input.Action{input.MoveUp, input.MoveDown}, mgl32.Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 0)
			c.MoveSpeed = 4
			c.Update(0.25, pressed(tt.actions...))

			if got := c.Transform().Position(); !vecNear(got, tt.want, eps) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateMovesRelativeToYaw(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{0, gomath.Pi / 2, 0}, 0)
	c.Update(1, pressed(input.MoveForward))

	if got := c.Transform().Position(); !vecNear(got, mgl32.Vec3{8, 0, 0}, 1e-4) {
		t.Errorf("position = %v, want (8, 0, 0)", got)
	}
}

func TestUpdateVerticalIgnoresOrientation(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{1.0, 0.7, 0.3}, 0)
	c.Update(0.5, pressed(input.MoveUp))

	if got := c.Transform().Position(); !vecNear(got, mgl32.Vec3{0, 4, 0}, eps) {
		t.Errorf("position = %v, want (0, 4, 0)", got)
	}
}

func TestUpdateLook(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 0)
	c.LookSpeed = 0.5

	in := pressed(input.Look)
	in.MouseX = 2
	in.MouseY = 1
	c.Update(0.1, in)

	want := mgl32.Vec3{0.05, 0.1, 0}
	if got := c.Transform().Rotation(); !vecNear(got, want, eps) {
		t.Errorf("rotation = %v, want %v", got, want)
	}
}

func TestUpdateLookRequiresButton(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 0)
	c.Update(1, input.State{MouseX: 100, MouseY: 100})

	if got := c.Transform().Rotation(); got != (mgl32.Vec3{}) {
		t.Errorf("rotation = %v, want unchanged without the look button", got)
	}
}

func TestUpdateClampsPitch(t *testing.T) {
	for _, dir := range []float32{1, -1} {
		c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 0)
		c.LookSpeed = 1

		in := pressed(input.Look)
		in.MouseX = 0.5
		in.MouseY = dir

		var wantYaw float32
		for i := 0; i < 50; i++ {
			c.Update(1, in)
			wantYaw += 0.5

			pitch := c.Transform().Rotation()[0]
			if mgl32.Abs(pitch) > PitchLimit {
				t.Fatalf("frame %d: |pitch| = %v exceeds %v", i, mgl32.Abs(pitch), PitchLimit)
			}
		}

		rot := c.Transform().Rotation()
		if mgl32.Abs(rot[0]-dir*PitchLimit) > eps {
			t.Errorf("pitch = %v, want %v", rot[0], dir*PitchLimit)
		}
		if mgl32.Abs(rot[1]-wantYaw) > 1e-3 {
			t.Errorf("yaw = %v, want %v (yaw is not clamped)", rot[1], wantYaw)
		}
	}
}

func TestUpdateRefreshesView(t *testing.T) {
	c := New(1, mgl32.Vec3{}, mgl32.Vec3{}, 0)
	c.Update(1, pressed(input.MoveForward))

	want := math.LookToLH(c.Transform().Position(), c.Transform().Forward(), math.WorldUp)
	if !matNear(c.ViewMatrix(), want, eps) {
		t.Errorf("view = %v, want %v", c.ViewMatrix(), want)
	}
}

func TestViewProjectionMatrix(t *testing.T) {
	c := New(1.5, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{}, 0)

	// The origin is 5 units ahead of the camera and on its axis.
	clip := math.TransformPoint(c.ViewProjectionMatrix(), mgl32.Vec3{})
	if mgl32.Abs(clip[0]) > eps || mgl32.Abs(clip[1]) > eps {
		t.Errorf("origin should project to screen centre, got %v", clip)
	}
	if clip[2] <= 0 || clip[2] >= 1 {
		t.Errorf("depth = %v, want inside (0, 1)", clip[2])
	}
}
