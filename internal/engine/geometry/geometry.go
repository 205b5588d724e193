// Package geometry holds CPU-side mesh data and the built-in test shapes.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the layout uploaded to the GPU: position followed by RGBA colour.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
}

// VertexStride is the size of Vertex in bytes.
const VertexStride = 7 * 4

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Data is an indexed triangle list.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// New builds mesh data and computes its bounds.
func New(vertices []Vertex, indices []uint32) Data {
	return Data{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   ComputeBounds(vertices),
	}
}

func (d Data) VertexCount() int { return len(d.Vertices) }
func (d Data) IndexCount() int  { return len(d.Indices) }

// ComputeBounds returns the box enclosing every vertex position.
// An empty slice yields a zero box.
func ComputeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}

// Flatten interleaves vertex attributes for upload to a vertex buffer.
func (d Data) Flatten() []float32 {
	out := make([]float32, 0, len(d.Vertices)*7)
	for _, v := range d.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
		out = append(out, v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}
	return out
}
