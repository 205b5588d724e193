// Package camera provides a first-person camera producing left-handed view and
// projection matrices.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/transform"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Defaults applied by New.
const (
	DefaultFieldOfView = float32(gomath.Pi / 4) // 45 degrees
	DefaultNearPlane   = float32(0.1)
	DefaultFarPlane    = float32(1000.0)
	DefaultMoveSpeed   = float32(8.0)
	DefaultLookSpeed   = float32(0.005)
)

// PitchLimit keeps the look direction just short of straight up or down.
const PitchLimit = float32(gomath.Pi * 0.499)

// Camera is a free-flying viewpoint.
//
// The view matrix is rebuilt whenever the camera's transform has changed since the
// last build, so changes made through Transform() are picked up on the next
// ViewMatrix call. The projection matrix only changes through the
// UpdateProjectionMatrix methods.
type Camera struct {
	transform transform.Transform

	fieldOfView float32
	aspectRatio float32
	nearPlane   float32
	farPlane    float32

	view        mgl32.Mat4
	viewVersion uint64
	projection  mgl32.Mat4

	// Movement speed in units per second
	MoveSpeed float32
	// Look speed in radians per unit of mouse movement
	LookSpeed float32
}

// New creates a camera at position facing pitchYawRoll (radians).
// fieldOfView is in radians; zero or negative selects DefaultFieldOfView.
func New(aspectRatio float32, position, pitchYawRoll mgl32.Vec3, fieldOfView float32) *Camera {
	if fieldOfView <= 0 {
		fieldOfView = DefaultFieldOfView
	}

	c := &Camera{
		transform: transform.New(),
		MoveSpeed: DefaultMoveSpeed,
		LookSpeed: DefaultLookSpeed,
	}
	c.transform.SetPosition(position)
	c.transform.SetRotation(pitchYawRoll)

	c.UpdateViewMatrix()
	c.UpdateProjectionMatrixFull(aspectRatio, fieldOfView, DefaultNearPlane, DefaultFarPlane)
	return c
}

// Transform returns the camera's transform for direct manipulation.
func (c *Camera) Transform() *transform.Transform {
	return &c.transform
}

// FieldOfView returns the vertical field of view in radians.
func (c *Camera) FieldOfView() float32 { return c.fieldOfView }

// AspectRatio returns width / height.
func (c *Camera) AspectRatio() float32 { return c.aspectRatio }

// NearPlane returns the near clip distance.
func (c *Camera) NearPlane() float32 { return c.nearPlane }

// FarPlane returns the far clip distance.
func (c *Camera) FarPlane() float32 { return c.farPlane }

// ViewMatrix returns the world-to-camera matrix, rebuilding it if the transform moved.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	if c.transform.Version() != c.viewVersion {
		c.UpdateViewMatrix()
	}
	return c.view
}

// ProjectionMatrix returns the camera-to-clip matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// ViewProjectionMatrix returns view followed by projection.
func (c *Camera) ViewProjectionMatrix() mgl32.Mat4 {
	return math.Then(c.ViewMatrix(), c.projection)
}

// UpdateViewMatrix rebuilds the view matrix from the current position and forward vector.
func (c *Camera) UpdateViewMatrix() {
	c.view = math.LookToLH(c.transform.Position(), c.transform.Forward(), math.WorldUp)
	c.viewVersion = c.transform.Version()
}

// UpdateProjectionMatrix changes the aspect ratio, keeping field of view and clip planes.
func (c *Camera) UpdateProjectionMatrix(aspectRatio float32) {
	c.UpdateProjectionMatrixFull(aspectRatio, c.fieldOfView, c.nearPlane, c.farPlane)
}

// UpdateProjectionMatrixFull replaces every projection parameter.
func (c *Camera) UpdateProjectionMatrixFull(aspectRatio, fieldOfView, nearPlane, farPlane float32) {
	c.aspectRatio = aspectRatio
	c.fieldOfView = fieldOfView
	c.nearPlane = nearPlane
	c.farPlane = farPlane

	c.projection = math.PerspectiveFovLH(fieldOfView, aspectRatio, nearPlane, farPlane)
}

// Update applies one frame of navigation input.
//
// Forward/back and left/right move relative to the camera's orientation, up/down move
// along world Y, and holding Look turns mouse movement into pitch and yaw.
func (c *Camera) Update(dt float32, in input.Source) {
	moveStep := c.MoveSpeed * dt
	lookStep := c.LookSpeed * dt

	var move mgl32.Vec3
	if in.Down(input.MoveForward) {
		move[2] = 1
	} else if in.Down(input.MoveBackward) {
		move[2] = -1
	}
	if in.Down(input.MoveLeft) {
		move[0] = -1
	} else if in.Down(input.MoveRight) {
		move[0] = 1
	}

	move = math.Normalize(move).Mul(moveStep)
	if !math.IsZero(move) {
		c.transform.MoveRelative(move)
	}

	if in.Down(input.MoveUp) {
		c.transform.MoveAbsolute(mgl32.Vec3{0, moveStep, 0})
	} else if in.Down(input.MoveDown) {
		c.transform.MoveAbsolute(mgl32.Vec3{0, -moveStep, 0})
	}

	if in.Down(input.Look) {
		dx, dy := in.MouseDelta()
		c.transform.Rotate(mgl32.Vec3{dy * lookStep, dx * lookStep, 0})

		rotation := c.transform.Rotation()
		rotation[0] = mgl32.Clamp(rotation[0], -PitchLimit, PitchLimit)
		c.transform.SetRotation(rotation)
	}

	c.UpdateViewMatrix()
}
