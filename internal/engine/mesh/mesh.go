// Package mesh uploads geometry to OpenGL buffers.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/internal/logger"
)

// ErrEmpty is returned when uploading geometry without vertices or indices.
var ErrEmpty = errors.New("mesh: no vertices or indices")

// GL is an indexed triangle list in a vertex array object. It implements entity.Mesh.
type GL struct {
	vao uint32
	vbo uint32
	ibo uint32

	vertexCount int
	indexCount  int
	bounds      geometry.Bounds
}

// New uploads data. Requires a current GL context.
func New(data geometry.Data) (*GL, error) {
	if data.VertexCount() == 0 || data.IndexCount() == 0 {
		return nil, ErrEmpty
	}

	m := &GL{
		vertexCount: data.VertexCount(),
		indexCount:  data.IndexCount(),
		bounds:      data.Bounds,
	}
	vertices := data.Flatten()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, geometry.VertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// Color (location = 1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, geometry.VertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	// The element buffer binding is VAO state, so unbind the VAO first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", m.vertexCount),
		zap.Int("indices", m.indexCount),
	)
	return m, nil
}

// Draw binds the vertex array and draws every index.
func (m *GL) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(m.indexCount), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *GL) VertexCount() int        { return m.vertexCount }
func (m *GL) IndexCount() int         { return m.indexCount }
func (m *GL) Bounds() geometry.Bounds { return m.bounds }

// Delete frees the GPU buffers. The mesh must not be drawn afterwards.
func (m *GL) Delete() {
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
		m.ibo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// UploadAll uploads every named geometry. On error, meshes already uploaded are deleted.
func UploadAll(shapes map[string]geometry.Data) (map[string]*GL, error) {
	out := make(map[string]*GL, len(shapes))
	for name, data := range shapes {
		m, err := New(data)
		if err != nil {
			for _, done := range out {
				done.Delete()
			}
			return nil, fmt.Errorf("mesh %q: %w", name, err)
		}
		out[name] = m
	}
	return out, nil
}
