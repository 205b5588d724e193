// Package entity binds a transform to shared mesh and material resources.
package entity

import (
	"github.com/Faultbox/scenekit/internal/engine/material"
	"github.com/Faultbox/scenekit/internal/engine/transform"
)

// Mesh is a drawable geometry handle. Implementations own the GPU buffers.
type Mesh interface {
	Draw()
	VertexCount() int
	IndexCount() int
}

// Entity is one drawable object. The mesh and material may be shared with other
// entities and are never modified through the entity.
type Entity struct {
	transform transform.Transform
	mesh      Mesh
	material  *material.Material
}

// New creates an entity at the origin using mesh and mat.
func New(mesh Mesh, mat *material.Material) *Entity {
	return &Entity{
		transform: transform.New(),
		mesh:      mesh,
		material:  mat,
	}
}

// Transform returns the entity's transform for in-place mutation.
func (e *Entity) Transform() *transform.Transform {
	return &e.transform
}

func (e *Entity) Mesh() Mesh                   { return e.mesh }
func (e *Entity) Material() *material.Material { return e.material }

// Draw issues the mesh draw call. Pipeline state and per-object constants must already
// be bound.
func (e *Entity) Draw() {
	e.mesh.Draw()
}
