package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/material"
	"github.com/Faultbox/scenekit/internal/logger"
)

type programKey struct {
	vs material.VertexShader
	ps material.PixelShader
}

// Library compiles embedded shaders on first use and caches stages by name and
// programs by stage pair. It requires a current GL context.
type Library struct {
	vertex   map[string]material.VertexShader
	pixel    map[string]material.PixelShader
	programs map[programKey]*Program
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		vertex:   make(map[string]material.VertexShader),
		pixel:    make(map[string]material.PixelShader),
		programs: make(map[programKey]*Program),
	}
}

// VertexShader returns the compiled vertex stage for name.
func (l *Library) VertexShader(name string) (material.VertexShader, error) {
	if vs, ok := l.vertex[name]; ok {
		return vs, nil
	}
	id, err := l.compile(Vertex, name)
	if err != nil {
		return 0, err
	}
	l.vertex[name] = material.VertexShader(id)
	return material.VertexShader(id), nil
}

// PixelShader returns the compiled pixel stage for name.
func (l *Library) PixelShader(name string) (material.PixelShader, error) {
	if ps, ok := l.pixel[name]; ok {
		return ps, nil
	}
	id, err := l.compile(Pixel, name)
	if err != nil {
		return 0, err
	}
	l.pixel[name] = material.PixelShader(id)
	return material.PixelShader(id), nil
}

func (l *Library) compile(stage Stage, name string) (uint32, error) {
	src, err := Source(stage, name)
	if err != nil {
		return 0, err
	}
	id, err := compileShader(src, stage, name)
	if err != nil {
		return 0, err
	}
	logger.Debug("shader compiled", zap.Stringer("stage", stage), zap.String("name", name), zap.Uint32("id", id))
	return id, nil
}

// Program returns the linked program for a material's stages.
func (l *Library) Program(m *material.Material) (*Program, error) {
	key := programKey{vs: m.VertexShader(), ps: m.PixelShader()}
	if p, ok := l.programs[key]; ok {
		return p, nil
	}

	p, err := linkProgram(uint32(key.vs), uint32(key.ps))
	if err != nil {
		return nil, fmt.Errorf("program (vs %d, ps %d): %w", key.vs, key.ps, err)
	}
	l.programs[key] = p
	logger.Debug("shader program linked", zap.Uint32("program", p.ID))
	return p, nil
}

// Close deletes every program and stage the library created.
func (l *Library) Close() {
	for k, p := range l.programs {
		gl.DeleteProgram(p.ID)
		delete(l.programs, k)
	}
	for name, vs := range l.vertex {
		gl.DeleteShader(uint32(vs))
		delete(l.vertex, name)
	}
	for name, ps := range l.pixel {
		gl.DeleteShader(uint32(ps))
		delete(l.pixel, name)
	}
}
