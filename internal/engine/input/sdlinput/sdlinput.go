// Package sdlinput turns SDL2 events and keyboard state into input.State snapshots.
package sdlinput

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

var mouseButtons = map[string]uint8{
	input.MouseLeft:   sdl.BUTTON_LEFT,
	input.MouseMiddle: sdl.BUTTON_MIDDLE,
	input.MouseRight:  sdl.BUTTON_RIGHT,
}

// Click is a mouse button press at window coordinates.
type Click struct {
	Button uint8
	X, Y   int
}

// Poller drains the SDL event queue once per frame. It must be used from the thread
// that created the window.
type Poller struct {
	keys    map[input.Action]sdl.Scancode
	buttons map[input.Action]uint8

	buttonsDown map[uint8]bool
	pressed     []sdl.Scancode
	clicks      []Click
	dx, dy      float32
}

// New resolves bindings to SDL scancodes and mouse buttons.
func New(bindings input.Bindings) (*Poller, error) {
	p := &Poller{
		keys:        make(map[input.Action]sdl.Scancode),
		buttons:     make(map[input.Action]uint8),
		buttonsDown: make(map[uint8]bool),
		pressed:     make([]sdl.Scancode, 0, 8),
	}

	for action, name := range bindings {
		if b, ok := mouseButtons[name]; ok {
			p.buttons[action] = b
			continue
		}
		sc := sdl.GetScancodeFromName(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("binding %s: unknown key %q", action, name)
		}
		p.keys[action] = sc
	}
	return p, nil
}

// Poll processes pending events. It reports a quit request and, if the window was
// resized, the new window size in screen coordinates.
func (p *Poller) Poll() (quit bool, resized bool, width, height int) {
	p.pressed = p.pressed[:0]
	p.clicks = p.clicks[:0]
	p.dx, p.dy = 0, 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				resized = true
				width, height = int(e.Data1), int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				p.pressed = append(p.pressed, e.Keysym.Scancode)
			}

		case *sdl.MouseMotionEvent:
			p.dx += float32(e.XRel)
			p.dy += float32(e.YRel)

		case *sdl.MouseButtonEvent:
			down := e.Type == sdl.MOUSEBUTTONDOWN
			p.buttonsDown[e.Button] = down
			if down {
				p.clicks = append(p.clicks, Click{Button: e.Button, X: int(e.X), Y: int(e.Y)})
			}
		}
	}
	return quit, resized, width, height
}

// Snapshot returns the state of every bound action and the mouse movement accumulated
// by the last Poll.
func (p *Poller) Snapshot() input.State {
	keyboard := sdl.GetKeyboardState()

	s := input.State{MouseX: p.dx, MouseY: p.dy}
	for action, sc := range p.keys {
		if int(sc) < len(keyboard) && keyboard[sc] != 0 {
			s.Press(action)
		}
	}
	for action, b := range p.buttons {
		if p.buttonsDown[b] {
			s.Press(action)
		}
	}
	return s
}

// Pressed reports whether the key went down during the last Poll. Auto-repeat is ignored.
func (p *Poller) Pressed(sc sdl.Scancode) bool {
	for _, k := range p.pressed {
		if k == sc {
			return true
		}
	}
	return false
}

// Clicks returns the mouse button presses seen by the last Poll.
func (p *Poller) Clicks() []Click {
	return p.clicks
}
