// Package renderer draws scene draw calls with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/lighting"
	"github.com/Faultbox/scenekit/internal/engine/material"
	"github.com/Faultbox/scenekit/internal/engine/scene"
	"github.com/Faultbox/scenekit/internal/engine/shader"
	"github.com/Faultbox/scenekit/internal/logger"
)

// Programs links a material's shader stages into a program.
type Programs interface {
	Program(m *material.Material) (*shader.Program, error)
}

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec4
	// Cull back faces. Front faces wind clockwise.
	CullBackFaces bool
}

// Stats describes the last frame drawn.
type Stats struct {
	DrawCalls       int
	Triangles       int
	ProgramSwitches int
	Skipped         int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config   Config
	programs Programs
	log      *zap.Logger

	current uint32
	stats   Stats
	sun     lighting.Sun

	// Materials whose program failed to link, logged once each.
	broken map[*material.Material]bool
}

// New initialises OpenGL and the default pipeline state.
// Must be called after the OpenGL context is created.
func New(cfg Config, programs Programs) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config:   cfg,
		programs: programs,
		log:      logger.Named("renderer"),
		broken:   make(map[*material.Material]bool),
		sun:      lighting.DefaultSun(),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.FrontFace(gl.CW)
	if cfg.CullBackFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases renderer state. Programs are owned by the shader library.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	gl.UseProgram(0)
	r.current = 0
}

// Resize sets the viewport. Non-positive sizes are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetSun sets the light used by lit pixel stages from the next program bind on.
func (r *Renderer) SetSun(sun lighting.Sun) {
	r.sun = sun
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	r.stats = Stats{}
	r.current = 0
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw uploads each call's constants and draws its mesh. Calls whose program cannot be
// built are skipped.
func (r *Renderer) Draw(calls []scene.DrawCall) {
	for i := range calls {
		dc := &calls[i]

		p, err := r.programs.Program(dc.Material)
		if err != nil {
			if !r.broken[dc.Material] {
				r.broken[dc.Material] = true
				r.log.Error("skipping material", zap.Error(err))
			}
			r.stats.Skipped++
			continue
		}

		if p.ID != r.current {
			gl.UseProgram(p.ID)
			r.current = p.ID
			r.stats.ProgramSwitches++
			r.setLight(p)
		}

		setMat4(p.World, dc.World)
		setMat4(p.WorldInverseTranspose, dc.WorldInverseTranspose)
		setMat4(p.View, dc.View)
		setMat4(p.Projection, dc.Projection)
		if p.ColorTint >= 0 {
			gl.Uniform4fv(p.ColorTint, 1, &dc.Tint[0])
		}

		dc.Mesh.Draw()
		r.stats.DrawCalls++
		r.stats.Triangles += dc.Mesh.IndexCount() / 3
	}
}

// Stats returns counters for the frame since the last Begin.
func (r *Renderer) Stats() Stats {
	return r.stats
}

func (r *Renderer) setLight(p *shader.Program) {
	setVec3(p.LightDirection, r.sun.Direction)
	setVec3(p.LightColor, r.sun.Color)
	setVec3(p.Ambient, r.sun.Ambient)
}

func setVec3(loc int32, v mgl32.Vec3) {
	if loc < 0 {
		return
	}
	gl.Uniform3fv(loc, 1, &v[0])
}

func setMat4(loc int32, m mgl32.Mat4) {
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
