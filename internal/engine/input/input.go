// Package input defines the logical navigation actions consumed by the camera and a
// per-frame snapshot of their state.
package input

import "fmt"

// Action is a logical input, independent of the physical key bound to it.
type Action uint8

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Look
	actionCount
)

var actionNames = [actionCount]string{
	MoveForward:  "move_forward",
	MoveBackward: "move_backward",
	MoveLeft:     "move_left",
	MoveRight:    "move_right",
	MoveUp:       "move_up",
	MoveDown:     "move_down",
	Look:         "look",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Actions returns every defined action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown input action %q", name)
}

// Source is what the camera polls once per frame.
type Source interface {
	// Down reports whether the action is held this frame.
	Down(a Action) bool
	// MouseDelta returns the mouse movement since the previous frame.
	MouseDelta() (dx, dy float32)
}

// State is a frame snapshot of every action plus the mouse delta.
// The zero value has nothing pressed.
type State struct {
	held   uint32
	MouseX float32
	MouseY float32
}

// Press marks actions as held.
func (s *State) Press(actions ...Action) {
	for _, a := range actions {
		s.held |= 1 << a
	}
}

// Release marks actions as not held.
func (s *State) Release(actions ...Action) {
	for _, a := range actions {
		s.held &^= 1 << a
	}
}

// Down implements Source.
func (s State) Down(a Action) bool {
	return s.held&(1<<a) != 0
}

// MouseDelta implements Source.
func (s State) MouseDelta() (dx, dy float32) {
	return s.MouseX, s.MouseY
}

// Any reports whether any action is held.
func (s State) Any() bool {
	return s.held != 0
}
