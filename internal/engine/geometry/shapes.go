package geometry

import "github.com/go-gl/mathgl/mgl32"

var (
	red   = mgl32.Vec4{1, 0, 0, 1}
	green = mgl32.Vec4{0, 1, 0, 1}
	blue  = mgl32.Vec4{0, 0, 1, 1}
	white = mgl32.Vec4{1, 1, 1, 1}
)

// Triangles wind clockwise when seen from the front (left-handed convention).

// Triangle returns a unit triangle centred on the origin in the XY plane.
func Triangle() Data {
	return New([]Vertex{
		{mgl32.Vec3{0, 0.5, 0}, red},
		{mgl32.Vec3{0.5, -0.5, 0}, blue},
		{mgl32.Vec3{-0.5, -0.5, 0}, green},
	}, []uint32{0, 1, 2})
}

// Quad returns a small square in the upper right of the XY plane.
func Quad() Data {
	return New([]Vertex{
		{mgl32.Vec3{0.7, 0.7, 0}, blue},
		{mgl32.Vec3{0.7, 0.9, 0}, green},
		{mgl32.Vec3{0.9, 0.9, 0}, green},
		{mgl32.Vec3{0.9, 0.7, 0}, blue},
	}, []uint32{0, 1, 2, 2, 3, 0})
}

// Pentagon returns a small pentagon in the lower left of the XY plane.
func Pentagon() Data {
	return New([]Vertex{
		{mgl32.Vec3{-0.7, -0.7, 0}, blue},
		{mgl32.Vec3{-0.75, -0.875, 0}, red},
		{mgl32.Vec3{-0.85, -0.875, 0}, red},
		{mgl32.Vec3{-0.9, -0.7, 0}, green},
		{mgl32.Vec3{-0.8, -0.55, 0}, red},
	}, []uint32{0, 1, 2, 2, 3, 0, 0, 3, 4})
}

// Cube returns an axis-aligned cube with edge length size centred on the origin.
func Cube(size float32) Data {
	h := size / 2
	return New([]Vertex{
		{mgl32.Vec3{-h, -h, -h}, red},
		{mgl32.Vec3{-h, h, -h}, green},
		{mgl32.Vec3{h, h, -h}, blue},
		{mgl32.Vec3{h, -h, -h}, white},
		{mgl32.Vec3{-h, -h, h}, blue},
		{mgl32.Vec3{-h, h, h}, white},
		{mgl32.Vec3{h, h, h}, red},
		{mgl32.Vec3{h, -h, h}, green},
	}, []uint32{
		0, 1, 2, 0, 2, 3, // -Z
		7, 6, 5, 7, 5, 4, // +Z
		4, 5, 1, 4, 1, 0, // -X
		3, 2, 6, 3, 6, 7, // +X
		1, 5, 6, 1, 6, 2, // +Y
		4, 0, 3, 4, 3, 7, // -Y
	})
}

// Builtins returns every built-in shape keyed by the name used in scene files.
func Builtins() map[string]Data {
	return map[string]Data{
		"triangle": Triangle(),
		"quad":     Quad(),
		"pentagon": Pentagon(),
		"cube":     Cube(1),
	}
}
