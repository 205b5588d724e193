// Package scene owns the shared meshes and materials, the entities that reference them
// and the cameras that view them, and turns the lot into per-entity draw calls.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/entity"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/lighting"
	"github.com/Faultbox/scenekit/internal/engine/material"
	"github.com/Faultbox/scenekit/internal/logger"
)

var (
	ErrDuplicate       = errors.New("scene: name already registered")
	ErrUnknownMesh     = errors.New("scene: unknown mesh")
	ErrUnknownMaterial = errors.New("scene: unknown material")
	ErrCameraIndex     = errors.New("scene: camera index out of range")
)

// DrawCall is the per-object constant data for one entity plus the resources to bind.
type DrawCall struct {
	World                 mgl32.Mat4
	WorldInverseTranspose mgl32.Mat4
	View                  mgl32.Mat4
	Projection            mgl32.Mat4
	Tint                  mgl32.Vec4

	Material *material.Material
	Mesh     entity.Mesh
}

// Scene is not safe for concurrent use; mutate and draw it from the frame loop only.
type Scene struct {
	meshes    map[string]entity.Mesh
	materials map[string]*material.Material

	entities []*entity.Entity
	cameras  []*camera.Camera
	active   int

	sun lighting.Sun
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		meshes:    make(map[string]entity.Mesh),
		materials: make(map[string]*material.Material),
		sun:       lighting.DefaultSun(),
	}
}

// Sun returns the scene's directional light.
func (s *Scene) Sun() lighting.Sun {
	return s.sun
}

// SetSun replaces the directional light.
func (s *Scene) SetSun(sun lighting.Sun) {
	s.sun = sun
}

// AddMesh registers a mesh under name.
func (s *Scene) AddMesh(name string, mesh entity.Mesh) error {
	if _, ok := s.meshes[name]; ok {
		return fmt.Errorf("mesh %q: %w", name, ErrDuplicate)
	}
	s.meshes[name] = mesh
	return nil
}

// AddMaterial registers a material under name.
func (s *Scene) AddMaterial(name string, mat *material.Material) error {
	if _, ok := s.materials[name]; ok {
		return fmt.Errorf("material %q: %w", name, ErrDuplicate)
	}
	s.materials[name] = mat
	return nil
}

// Mesh looks up a registered mesh.
func (s *Scene) Mesh(name string) (entity.Mesh, bool) {
	m, ok := s.meshes[name]
	return m, ok
}

// Material looks up a registered material.
func (s *Scene) Material(name string) (*material.Material, bool) {
	m, ok := s.materials[name]
	return m, ok
}

// AddEntity creates an entity sharing the named mesh and material.
func (s *Scene) AddEntity(meshName, materialName string) (*entity.Entity, error) {
	mesh, ok := s.meshes[meshName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMesh, meshName)
	}
	mat, ok := s.materials[materialName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, materialName)
	}

	e := entity.New(mesh, mat)
	s.entities = append(s.entities, e)
	return e, nil
}

// Entities returns the entities in creation order. The slice must not be modified.
func (s *Scene) Entities() []*entity.Entity {
	return s.entities
}

// AddCamera appends a camera and returns its index. The first camera added becomes active.
func (s *Scene) AddCamera(c *camera.Camera) int {
	s.cameras = append(s.cameras, c)
	return len(s.cameras) - 1
}

// Cameras returns every camera in index order.
func (s *Scene) Cameras() []*camera.Camera {
	return s.cameras
}

// ActiveCamera returns the camera used for update and drawing, or nil if there is none.
func (s *Scene) ActiveCamera() *camera.Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[s.active]
}

// ActiveCameraIndex returns the index of the active camera.
func (s *Scene) ActiveCameraIndex() int {
	return s.active
}

// SetActiveCamera selects the camera at index i.
func (s *Scene) SetActiveCamera(i int) error {
	if i < 0 || i >= len(s.cameras) {
		return fmt.Errorf("%w: %d of %d", ErrCameraIndex, i, len(s.cameras))
	}
	s.active = i
	return nil
}

// NextCamera activates the following camera, wrapping to the first.
func (s *Scene) NextCamera() {
	if len(s.cameras) == 0 {
		return
	}
	s.active = (s.active + 1) % len(s.cameras)
	logger.Log.Debug("active camera changed", zap.Int("index", s.active))
}

// Resize updates every camera's aspect ratio for a new framebuffer size.
// Zero or negative sizes (a minimised window) are ignored.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	for _, c := range s.cameras {
		c.UpdateProjectionMatrix(aspect)
	}
}

// Update advances the active camera by one frame. Inactive cameras are not touched.
func (s *Scene) Update(dt float32, in input.Source) {
	if c := s.ActiveCamera(); c != nil {
		c.Update(dt, in)
	}
}

// DrawCalls builds one draw call per entity using the active camera.
// Without a camera, view and projection are identity.
func (s *Scene) DrawCalls() []DrawCall {
	view, projection := mgl32.Ident4(), mgl32.Ident4()
	if c := s.ActiveCamera(); c != nil {
		view = c.ViewMatrix()
		projection = c.ProjectionMatrix()
	}

	calls := make([]DrawCall, 0, len(s.entities))
	for _, e := range s.entities {
		t := e.Transform()
		calls = append(calls, DrawCall{
			World:                 t.WorldMatrix(),
			WorldInverseTranspose: t.WorldInverseTransposeMatrix(),
			View:                  view,
			Projection:            projection,
			Tint:                  e.Material().Tint(),
			Material:              e.Material(),
			Mesh:                  e.Mesh(),
		})
	}
	return calls
}
