// Package material pairs a vertex and pixel shader with a colour tint.
package material

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNilShader is returned when a zero shader handle is supplied.
var ErrNilShader = errors.New("material: shader handle is zero")

// VertexShader is an opaque handle to a compiled vertex stage.
type VertexShader uint32

// PixelShader is an opaque handle to a compiled pixel (fragment) stage.
type PixelShader uint32

// Material is shared by reference between entities. Entities never modify it.
type Material struct {
	vertexShader VertexShader
	pixelShader  PixelShader
	tint         mgl32.Vec4
}

// New creates a material. Both shader handles must be non-zero.
func New(vs VertexShader, ps PixelShader, tint mgl32.Vec4) (*Material, error) {
	if vs == 0 || ps == 0 {
		return nil, ErrNilShader
	}
	return &Material{vertexShader: vs, pixelShader: ps, tint: tint}, nil
}

func (m *Material) VertexShader() VertexShader { return m.vertexShader }
func (m *Material) PixelShader() PixelShader   { return m.pixelShader }
func (m *Material) Tint() mgl32.Vec4           { return m.tint }

// SetVertexShader replaces the vertex stage. A zero handle is rejected and leaves the
// material unchanged.
func (m *Material) SetVertexShader(vs VertexShader) error {
	if vs == 0 {
		return ErrNilShader
	}
	m.vertexShader = vs
	return nil
}

// SetPixelShader replaces the pixel stage. A zero handle is rejected.
func (m *Material) SetPixelShader(ps PixelShader) error {
	if ps == 0 {
		return ErrNilShader
	}
	m.pixelShader = ps
	return nil
}

// SetTint replaces the RGBA tint.
func (m *Material) SetTint(tint mgl32.Vec4) {
	m.tint = tint
}
