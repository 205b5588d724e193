package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/entity"
	"github.com/Faultbox/scenekit/internal/engine/lighting"
	"github.com/Faultbox/scenekit/internal/engine/material"
	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/pkg/math"
)

// ErrInvalidDescription is wrapped by every validation failure in a scene file.
var ErrInvalidDescription = errors.New("scene: invalid description")

// Description is the on-disk form of a scene. Angles are in degrees.
type Description struct {
	ActiveCamera int                   `yaml:"active_camera"`
	Cameras      []CameraDescription   `yaml:"cameras"`
	Materials    []MaterialDescription `yaml:"materials"`
	Entities     []EntityDescription   `yaml:"entities"`
	Sun          *SunDescription       `yaml:"sun,omitempty"`
}

// SunDescription sets the directional light. Unset colours keep the default sun's.
type SunDescription struct {
	Longitude float32     `yaml:"longitude"`
	Latitude  float32     `yaml:"latitude"`
	Color     *mgl32.Vec3 `yaml:"color,omitempty"`
	Ambient   *mgl32.Vec3 `yaml:"ambient,omitempty"`
}

// CameraDescription places a camera. Zero FOV or speeds fall back to CameraDefaults.
type CameraDescription struct {
	Position  mgl32.Vec3 `yaml:"position"`
	Rotation  mgl32.Vec3 `yaml:"rotation"`
	FOV       float32    `yaml:"fov,omitempty"`
	MoveSpeed float32    `yaml:"move_speed,omitempty"`
	LookSpeed float32    `yaml:"look_speed,omitempty"`
}

// MaterialDescription names a shader pair. A missing tint is opaque white.
type MaterialDescription struct {
	Name         string      `yaml:"name"`
	VertexShader string      `yaml:"vertex_shader"`
	PixelShader  string      `yaml:"pixel_shader"`
	Tint         *mgl32.Vec4 `yaml:"tint,omitempty"`
}

// EntityDescription places one mesh with one material. A missing scale is (1, 1, 1).
type EntityDescription struct {
	Mesh     string      `yaml:"mesh"`
	Material string      `yaml:"material"`
	Position mgl32.Vec3  `yaml:"position"`
	Rotation mgl32.Vec3  `yaml:"rotation"`
	Scale    *mgl32.Vec3 `yaml:"scale,omitempty"`
}

// ShaderLibrary resolves shader names from a scene file to compiled stages.
type ShaderLibrary interface {
	VertexShader(name string) (material.VertexShader, error)
	PixelShader(name string) (material.PixelShader, error)
}

// CameraDefaults fills camera fields a description leaves unset.
type CameraDefaults struct {
	FieldOfView float32 // radians
	MoveSpeed   float32
	LookSpeed   float32
}

// DefaultCameraDefaults matches the camera package defaults.
func DefaultCameraDefaults() CameraDefaults {
	return CameraDefaults{
		FieldOfView: camera.DefaultFieldOfView,
		MoveSpeed:   camera.DefaultMoveSpeed,
		LookSpeed:   camera.DefaultLookSpeed,
	}
}

// LoadDescription reads and parses a scene file.
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	desc, err := ParseDescription(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return desc, nil
}

// ParseDescription decodes YAML and checks references between sections.
func ParseDescription(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Validate checks names and indices without touching any GPU resource.
// Mesh names are checked by Build, which knows what is loaded.
func (d *Description) Validate() error {
	names := make(map[string]bool, len(d.Materials))
	for i, m := range d.Materials {
		if m.Name == "" {
			return fmt.Errorf("%w: material %d has no name", ErrInvalidDescription, i)
		}
		if names[m.Name] {
			return fmt.Errorf("%w: material %q declared twice", ErrInvalidDescription, m.Name)
		}
		if m.VertexShader == "" || m.PixelShader == "" {
			return fmt.Errorf("%w: material %q needs both shaders", ErrInvalidDescription, m.Name)
		}
		names[m.Name] = true
	}

	for i, e := range d.Entities {
		if e.Mesh == "" {
			return fmt.Errorf("%w: entity %d has no mesh", ErrInvalidDescription, i)
		}
		if !names[e.Material] {
			return fmt.Errorf("%w: entity %d uses undeclared material %q", ErrInvalidDescription, i, e.Material)
		}
	}

	cameras := len(d.Cameras)
	if cameras == 0 {
		cameras = 1
	}
	if d.ActiveCamera < 0 || d.ActiveCamera >= cameras {
		return fmt.Errorf("%w: active_camera %d out of range", ErrInvalidDescription, d.ActiveCamera)
	}

	if d.Sun != nil && (d.Sun.Latitude < -90 || d.Sun.Latitude > 90) {
		return fmt.Errorf("%w: sun latitude %v outside [-90, 90]", ErrInvalidDescription, d.Sun.Latitude)
	}
	return nil
}

// Marshal encodes the description as YAML.
func (d *Description) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Build creates a scene from desc. Materials get their shaders from shaders and entities
// reference meshes by name. A description without cameras gets one default camera
// looking down +Z from (0, 0, -5).
func Build(desc *Description, shaders ShaderLibrary, meshes map[string]entity.Mesh, aspect float32, defaults CameraDefaults) (*Scene, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	s := New()
	for name, m := range meshes {
		if err := s.AddMesh(name, m); err != nil {
			return nil, err
		}
	}

	for _, md := range desc.Materials {
		vs, err := shaders.VertexShader(md.VertexShader)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", md.Name, err)
		}
		ps, err := shaders.PixelShader(md.PixelShader)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", md.Name, err)
		}

		tint := mgl32.Vec4{1, 1, 1, 1}
		if md.Tint != nil {
			tint = *md.Tint
		}
		mat, err := material.New(vs, ps, tint)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", md.Name, err)
		}
		if err := s.AddMaterial(md.Name, mat); err != nil {
			return nil, err
		}
	}

	for i, ed := range desc.Entities {
		e, err := s.AddEntity(ed.Mesh, ed.Material)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		t := e.Transform()
		t.SetPosition(ed.Position)
		t.SetRotation(math.DegToRad3(ed.Rotation))
		if ed.Scale != nil {
			t.SetScale(*ed.Scale)
		}
	}

	cameras := desc.Cameras
	if len(cameras) == 0 {
		cameras = []CameraDescription{{Position: mgl32.Vec3{0, 0, -5}}}
	}
	for _, cd := range cameras {
		s.AddCamera(buildCamera(cd, aspect, defaults))
	}
	if err := s.SetActiveCamera(desc.ActiveCamera); err != nil {
		return nil, err
	}
	if desc.Sun != nil {
		s.SetSun(buildSun(*desc.Sun))
	}

	logger.Log.Info("scene built",
		zap.Int("meshes", len(s.meshes)),
		zap.Int("materials", len(s.materials)),
		zap.Int("entities", len(s.entities)),
		zap.Int("cameras", len(s.cameras)))

	return s, nil
}

func buildCamera(cd CameraDescription, aspect float32, defaults CameraDefaults) *camera.Camera {
	fov := defaults.FieldOfView
	if cd.FOV > 0 {
		fov = mgl32.DegToRad(cd.FOV)
	}

	c := camera.New(aspect, cd.Position, math.DegToRad3(cd.Rotation), fov)
	if defaults.MoveSpeed > 0 {
		c.MoveSpeed = defaults.MoveSpeed
	}
	if defaults.LookSpeed > 0 {
		c.LookSpeed = defaults.LookSpeed
	}
	if cd.MoveSpeed > 0 {
		c.MoveSpeed = cd.MoveSpeed
	}
	if cd.LookSpeed > 0 {
		c.LookSpeed = cd.LookSpeed
	}
	return c
}

func buildSun(sd SunDescription) lighting.Sun {
	sun := lighting.DefaultSun()
	sun.Direction = lighting.SunDirection(sd.Longitude, sd.Latitude)
	if sd.Color != nil {
		sun.Color = *sd.Color
	}
	if sd.Ambient != nil {
		sun.Ambient = *sd.Ambient
	}
	return sun
}
