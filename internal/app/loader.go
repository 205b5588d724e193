package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/engine/entity"
	"github.com/Faultbox/scenekit/internal/engine/scene"
)

// cameraDefaults converts the config's camera section (degrees) to scene defaults.
func cameraDefaults(cfg config.CameraConfig) scene.CameraDefaults {
	return scene.CameraDefaults{
		FieldOfView: mgl32.DegToRad(cfg.FieldOfView),
		MoveSpeed:   cfg.MoveSpeed,
		LookSpeed:   cfg.LookSpeed,
	}
}

// loadDescription reads the configured scene file, or returns the demo scene when
// none is set.
func loadDescription(cfg config.SceneConfig) (*scene.Description, error) {
	if cfg.File == "" {
		return DemoDescription(), nil
	}
	return scene.LoadDescription(cfg.File)
}

// buildScene builds desc and applies the configured clip planes to every camera.
func buildScene(desc *scene.Description, shaders scene.ShaderLibrary, meshes map[string]entity.Mesh, aspect float32, cfg config.CameraConfig) (*scene.Scene, error) {
	s, err := scene.Build(desc, shaders, meshes, aspect, cameraDefaults(cfg))
	if err != nil {
		return nil, err
	}
	for _, c := range s.Cameras() {
		c.UpdateProjectionMatrixFull(c.AspectRatio(), c.FieldOfView(), cfg.NearPlane, cfg.FarPlane)
	}
	return s, nil
}
