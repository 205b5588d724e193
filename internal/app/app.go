// Package app runs the viewer: window, input, scene update, rendering and scene
// file hot reload.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/engine/debug"
	"github.com/Faultbox/scenekit/internal/engine/entity"
	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/input/sdlinput"
	"github.com/Faultbox/scenekit/internal/engine/mesh"
	"github.com/Faultbox/scenekit/internal/engine/picking"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/engine/scene"
	"github.com/Faultbox/scenekit/internal/engine/shader"
	"github.com/Faultbox/scenekit/internal/engine/window"
	"github.com/Faultbox/scenekit/internal/logger"
)

var _ scene.ShaderLibrary = (*shader.Library)(nil)

// App is the viewer instance.
type App struct {
	config *config.Config
	log    *zap.Logger

	window   *window.Window
	shaders  *shader.Library
	renderer *renderer.Renderer
	poller   *sdlinput.Poller
	meshes   map[string]*mesh.GL
	scene    *scene.Scene
	watcher  *config.Watcher
	shots    *debug.Screenshots

	running bool
	looking bool
}

// New creates the window and GPU resources and builds the configured scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
		shots:  debug.NewScreenshots("screenshots", "scenekit"),
	}
	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	bindings, err := input.ParseBindings(cfg.Input.Bindings)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	// Window first: everything after needs its GL context.
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if a.poller, err = sdlinput.New(bindings); err != nil {
		a.Close()
		return nil, err
	}

	a.shaders = shader.NewLibrary()
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:         width,
		Height:        height,
		ClearColor:    mgl32.Vec4(cfg.Window.ClearColor),
		CullBackFaces: true,
	}, a.shaders)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if a.meshes, err = mesh.UploadAll(geometry.Builtins()); err != nil {
		a.Close()
		return nil, err
	}

	if err := a.loadScene(); err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Scene.File != "" && cfg.Scene.Watch {
		a.watcher, err = config.NewWatcher(config.DefaultDebounce, cfg.Scene.File)
		if err != nil {
			// Viewing still works without reload.
			a.log.Warn("scene hot reload disabled", zap.Error(err))
		}
	}

	a.log.Info("viewer initialized")
	return a, nil
}

func (a *App) meshHandles() map[string]entity.Mesh {
	out := make(map[string]entity.Mesh, len(a.meshes))
	for name, m := range a.meshes {
		out[name] = m
	}
	return out
}

func (a *App) aspect() float32 {
	w, h := a.window.DrawableSize()
	if w <= 0 || h <= 0 {
		return float32(a.config.Window.Width) / float32(a.config.Window.Height)
	}
	return float32(w) / float32(h)
}

// loadScene replaces the current scene. On error the current scene is kept.
func (a *App) loadScene() error {
	desc, err := loadDescription(a.config.Scene)
	if err != nil {
		return err
	}
	s, err := buildScene(desc, a.shaders, a.meshHandles(), a.aspect(), a.config.Camera)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	a.scene = s
	return nil
}

// Run runs the frame loop until the window is closed or Escape is pressed.
func (a *App) Run() error {
	a.running = true
	clock := newFrameClock(time.Now())

	a.log.Info("starting frame loop")

	for a.running {
		dt, sampled := clock.tick(time.Now())

		quit, resized, width, height := a.poller.Poll()
		if quit || a.poller.Pressed(sdl.SCANCODE_ESCAPE) {
			a.running = false
			break
		}
		if resized {
			// Window events carry window coordinates; the viewport needs pixels.
			width, height = a.window.DrawableSize()
			a.renderer.Resize(width, height)
			a.scene.Resize(width, height)
		}
		if a.poller.Pressed(sdl.SCANCODE_TAB) {
			a.scene.NextCamera()
		}

		a.reloadIfChanged()
		a.handleClicks()

		state := a.poller.Snapshot()
		if look := state.Down(input.Look); look != a.looking {
			a.looking = look
			a.window.SetRelativeMouse(look)
		}
		a.scene.Update(dt, state)

		a.renderer.Begin()
		a.renderer.SetSun(a.scene.Sun())
		a.renderer.Draw(a.scene.DrawCalls())
		if a.poller.Pressed(sdl.SCANCODE_F12) {
			a.screenshot()
		}
		a.window.SwapBuffers()

		if sampled {
			stats := a.renderer.Stats()
			a.window.SetTitle(fmt.Sprintf("%s | %.0f fps | camera %d/%d | %d draws",
				a.config.Window.Title, clock.FPS(),
				a.scene.ActiveCameraIndex()+1, len(a.scene.Cameras()), stats.DrawCalls))
			a.log.Debug("frame stats",
				zap.Float64("fps", clock.FPS()),
				zap.Int("draw_calls", stats.DrawCalls),
				zap.Int("triangles", stats.Triangles),
				zap.Int("skipped", stats.Skipped),
			)
		}
	}

	return nil
}

// handleClicks logs the entity under each left click.
func (a *App) handleClicks() {
	c := a.scene.ActiveCamera()
	if c == nil || a.looking {
		return
	}
	w, h := a.window.Size()
	for _, click := range a.poller.Clicks() {
		if click.Button != sdl.BUTTON_LEFT {
			continue
		}
		ray := picking.ScreenToRay(float32(click.X), float32(click.Y), float32(w), float32(h), c.ViewProjectionMatrix())
		idx, dist := picking.Pick(ray, a.scene.Entities())
		if idx < 0 {
			a.log.Info("picked nothing", zap.Int("x", click.X), zap.Int("y", click.Y))
			continue
		}
		t := a.scene.Entities()[idx].Transform()
		a.log.Info("picked entity",
			zap.Int("index", idx),
			zap.Float32("distance", dist),
			zap.Any("position", t.Position()),
		)
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.shots.Save(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

// reloadIfChanged drains watcher events between frames and rebuilds the scene once.
func (a *App) reloadIfChanged() {
	if a.watcher == nil {
		return
	}

	changed := false
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			a.log.Debug("scene file changed", zap.String("path", path))
			changed = true
			continue
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			a.log.Warn("scene watcher error", zap.Error(err))
			continue
		default:
		}
		break
	}

	if !changed {
		return
	}
	if err := a.loadScene(); err != nil {
		a.log.Error("scene reload failed, keeping previous scene", zap.Error(err))
		return
	}
	a.log.Info("scene reloaded", zap.String("file", a.config.Scene.File))
}

// Close releases resources in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	for _, m := range a.meshes {
		m.Delete()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.shaders != nil {
		a.shaders.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
