package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenekit/internal/engine/scene"
)

func vec4(r, g, b, a float32) *mgl32.Vec4 {
	v := mgl32.Vec4{r, g, b, a}
	return &v
}

func vec3(x, y, z float32) *mgl32.Vec3 {
	v := mgl32.Vec3{x, y, z}
	return &v
}

// DemoDescription is the scene shown when no scene file is configured: the built-in
// shapes spread along X, several entities sharing each mesh and material, and two
// cameras.
func DemoDescription() *scene.Description {
	return &scene.Description{
		Cameras: []scene.CameraDescription{
			{Position: mgl32.Vec3{0, 1, -8}, Rotation: mgl32.Vec3{5, 0, 0}},
			{Position: mgl32.Vec3{-10, 6, -10}, Rotation: mgl32.Vec3{25, 45, 0}, FOV: 60},
		},
		Materials: []scene.MaterialDescription{
			{Name: "vertex-color", VertexShader: "basic", PixelShader: "basic"},
			{Name: "warm", VertexShader: "basic", PixelShader: "basic", Tint: vec4(1, 0.6, 0.4, 1)},
			{Name: "shaded", VertexShader: "basic", PixelShader: "shaded"},
			{Name: "flat-blue", VertexShader: "basic", PixelShader: "tint", Tint: vec4(0.2, 0.4, 1, 1)},
		},
		Entities: []scene.EntityDescription{
			{Mesh: "triangle", Material: "vertex-color", Position: mgl32.Vec3{-4, 0, 0}},
			{Mesh: "triangle", Material: "warm", Position: mgl32.Vec3{-4, 1.5, 1}, Scale: vec3(0.5, 0.5, 0.5)},
			{Mesh: "quad", Material: "vertex-color", Position: mgl32.Vec3{-2, 0, 0}},
			{Mesh: "pentagon", Material: "warm", Position: mgl32.Vec3{0, 0, 0}, Rotation: mgl32.Vec3{0, 0, 30}},
			{Mesh: "cube", Material: "shaded", Position: mgl32.Vec3{2.5, 0, 0}, Rotation: mgl32.Vec3{20, 35, 0}},
			{Mesh: "cube", Material: "flat-blue", Position: mgl32.Vec3{5, 0, 2}, Scale: vec3(1, 2, 1)},
			{Mesh: "cube", Material: "shaded", Position: mgl32.Vec3{0, -1.5, 0}, Scale: vec3(12, 0.1, 6)},
		},
	}
}
