// Package transform stores object position, rotation and scale and turns them into
// world matrices on demand.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenekit/pkg/math"
)

// Transform holds position, rotation (pitch, yaw, roll in radians) and scale.
//
// The world and world-inverse-transpose matrices are cached and rebuilt together on the
// first read after any mutation. Transform is a value type: copying it copies the cached
// matrices and their validity.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3

	// Set by every mutator, cleared when the matrices are rebuilt.
	dirty bool
	// Bumped by every mutator; never reset.
	version uint64

	world                 mgl32.Mat4
	worldInverseTranspose mgl32.Mat4
}

// New returns a transform at the origin with no rotation and unit scale.
func New() Transform {
	return Transform{
		scale:                 mgl32.Vec3{1, 1, 1},
		world:                 mgl32.Ident4(),
		worldInverseTranspose: mgl32.Ident4(),
	}
}

// Position returns the world position.
func (t *Transform) Position() mgl32.Vec3 {
	return t.position
}

// Rotation returns the (pitch, yaw, roll) angles in radians.
func (t *Transform) Rotation() mgl32.Vec3 {
	return t.rotation
}

// Scale returns the per-axis scale.
func (t *Transform) Scale() mgl32.Vec3 {
	return t.scale
}

// Version returns a counter that changes whenever position, rotation or scale change.
func (t *Transform) Version() uint64 {
	return t.version
}

// SetPosition overwrites the position.
func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.position = position
	t.markDirty()
}

// SetRotation overwrites the (pitch, yaw, roll) angles.
func (t *Transform) SetRotation(pitchYawRoll mgl32.Vec3) {
	t.rotation = pitchYawRoll
	t.markDirty()
}

// SetScale overwrites the scale. Zero components are accepted and make the world
// matrix singular.
func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.scale = scale
	t.markDirty()
}

// MoveAbsolute offsets the position in world space, ignoring orientation.
func (t *Transform) MoveAbsolute(offset mgl32.Vec3) {
	t.position = t.position.Add(offset)
	t.markDirty()
}

// MoveRelative offsets the position along the transform's own axes.
func (t *Transform) MoveRelative(offset mgl32.Vec3) {
	t.position = t.position.Add(math.RotateEuler(offset, t.rotation))
	t.markDirty()
}

// Rotate adds to the (pitch, yaw, roll) angles. No wrapping is applied.
func (t *Transform) Rotate(pitchYawRoll mgl32.Vec3) {
	t.rotation = t.rotation.Add(pitchYawRoll)
	t.markDirty()
}

// ScaleBy multiplies the scale component-wise.
func (t *Transform) ScaleBy(factor mgl32.Vec3) {
	t.scale = math.MulComponents(t.scale, factor)
	t.markDirty()
}

// Right returns the local +X axis in world orientation.
func (t *Transform) Right() mgl32.Vec3 {
	return math.RotateEuler(math.UnitX, t.rotation)
}

// Up returns the local +Y axis in world orientation.
func (t *Transform) Up() mgl32.Vec3 {
	return math.RotateEuler(math.UnitY, t.rotation)
}

// Forward returns the local +Z axis in world orientation.
func (t *Transform) Forward() mgl32.Vec3 {
	return math.RotateEuler(math.UnitZ, t.rotation)
}

// WorldMatrix returns scale, then rotation, then translation as one matrix.
func (t *Transform) WorldMatrix() mgl32.Mat4 {
	t.updateWorldMatrices()
	return t.world
}

// WorldInverseTransposeMatrix returns inverse(transpose(world)) for transforming normals.
// When the world matrix is singular (a zero scale axis) this is the identity matrix.
func (t *Transform) WorldInverseTransposeMatrix() mgl32.Mat4 {
	t.updateWorldMatrices()
	return t.worldInverseTranspose
}

// Dirty reports whether the cached matrices are stale.
func (t *Transform) Dirty() bool {
	return t.dirty
}

func (t *Transform) markDirty() {
	t.dirty = true
	t.version++
}

// updateWorldMatrices rebuilds both cached matrices if anything changed.
func (t *Transform) updateWorldMatrices() {
	if !t.dirty {
		return
	}
	t.dirty = false

	t.world = math.World(t.position, t.rotation, t.scale)
	t.worldInverseTranspose = math.InverseTranspose(t.world)
}
