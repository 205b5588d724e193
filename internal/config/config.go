// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Input   InputConfig   `yaml:"input"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// CameraConfig holds defaults for cameras a scene file does not fully specify.
type CameraConfig struct {
	FieldOfView float32 `yaml:"fov"` // degrees
	NearPlane   float32 `yaml:"near"`
	FarPlane    float32 `yaml:"far"`
	MoveSpeed   float32 `yaml:"move_speed"`
	LookSpeed   float32 `yaml:"look_speed"`
}

// InputConfig maps action names (move_forward, look, ...) to SDL key names.
type InputConfig struct {
	Bindings map[string]string `yaml:"bindings"`
}

// SceneConfig selects the scene description and whether to reload it on change.
// An empty File shows the built-in demo scene.
type SceneConfig struct {
	File  string `yaml:"file"`
	Watch bool   `yaml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	bindings := make(map[string]string)
	for action, key := range input.DefaultBindings() {
		bindings[action.String()] = key
	}

	return &Config{
		Window: WindowConfig{
			Title:      "scenekit",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ClearColor: [4]float32{0.4, 0.6, 0.75, 1},
		},
		Camera: CameraConfig{
			FieldOfView: 45,
			NearPlane:   0.1,
			FarPlane:    1000,
			MoveSpeed:   8,
			LookSpeed:   0.005,
		},
		Input: InputConfig{
			Bindings: bindings,
		},
		Scene: SceneConfig{
			File:  "",
			Watch: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that would leave the viewer unusable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		return fmt.Errorf("camera fov %v must be between 0 and 180 degrees", c.Camera.FieldOfView)
	}
	if c.Camera.NearPlane <= 0 || c.Camera.FarPlane <= c.Camera.NearPlane {
		return fmt.Errorf("camera clip planes near=%v far=%v are invalid", c.Camera.NearPlane, c.Camera.FarPlane)
	}
	if _, err := input.ParseBindings(c.Input.Bindings); err != nil {
		return err
	}
	return nil
}
