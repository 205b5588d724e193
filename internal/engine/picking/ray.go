// Package picking casts rays from the screen into the scene and finds the entity hit.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenekit/internal/engine/entity"
	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// viewProj is view followed by projection, with clip depth in [0, 1].
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj mgl32.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	inv := math.Inverse(viewProj)
	nearWorld := math.TransformPoint(inv, mgl32.Vec3{ndcX, ndcY, 0})
	farWorld := math.TransformPoint(inv, mgl32.Vec3{ndcX, ndcY, 1})

	return Ray{Origin: nearWorld, Direction: math.Normalize(farWorld.Sub(nearWorld))}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box geometry.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// TransformBounds returns the world-space box enclosing local transformed by world.
func TransformBounds(local geometry.Bounds, world mgl32.Mat4) geometry.Bounds {
	var out geometry.Bounds
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{local.Min[0], local.Min[1], local.Min[2]}
		if i&1 != 0 {
			corner[0] = local.Max[0]
		}
		if i&2 != 0 {
			corner[1] = local.Max[1]
		}
		if i&4 != 0 {
			corner[2] = local.Max[2]
		}
		p := math.TransformPoint(world, corner)
		if i == 0 {
			out = geometry.Bounds{Min: p, Max: p}
			continue
		}
		for a := 0; a < 3; a++ {
			out.Min[a] = min(out.Min[a], p[a])
			out.Max[a] = max(out.Max[a], p[a])
		}
	}
	return out
}

// Bounded is implemented by meshes that know their local bounds.
type Bounded interface {
	Bounds() geometry.Bounds
}

// Pick returns the index of the nearest entity whose world bounds the ray hits, or -1.
// Entities whose mesh does not implement Bounded cannot be picked.
func Pick(r Ray, entities []*entity.Entity) (index int, distance float32) {
	index = -1
	distance = float32(gomath.MaxFloat32)
	for i, e := range entities {
		b, ok := e.Mesh().(Bounded)
		if !ok {
			continue
		}
		box := TransformBounds(b.Bounds(), e.Transform().WorldMatrix())
		if t, hit := r.IntersectAABB(box); hit && t < distance {
			index, distance = i, t
		}
	}
	return index, distance
}
