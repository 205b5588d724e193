package input

import (
	"fmt"
	"sort"
)

// Binding names for mouse buttons. Any other name is a keyboard key.
const (
	MouseLeft   = "MouseLeft"
	MouseMiddle = "MouseMiddle"
	MouseRight  = "MouseRight"
)

// IsMouseButton reports whether name refers to a mouse button rather than a key.
func IsMouseButton(name string) bool {
	return name == MouseLeft || name == MouseMiddle || name == MouseRight
}

// Bindings maps each action to the physical key or button name that drives it.
// Key names follow SDL's scancode names ("W", "Space", "Left Ctrl").
type Bindings map[Action]string

// DefaultBindings returns WASD movement, Space/Left Ctrl for up/down and right mouse to look.
func DefaultBindings() Bindings {
	return Bindings{
		MoveForward:  "W",
		MoveBackward: "S",
		MoveLeft:     "A",
		MoveRight:    "D",
		MoveUp:       "Space",
		MoveDown:     "Left Ctrl",
		Look:         MouseRight,
	}
}

// ParseBindings builds bindings from config names, starting from the defaults.
func ParseBindings(names map[string]string) (Bindings, error) {
	b := DefaultBindings()

	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		a, err := ParseAction(k)
		if err != nil {
			return nil, err
		}
		if names[k] == "" {
			return nil, fmt.Errorf("empty binding for %s", a)
		}
		b[a] = names[k]
	}
	return b, nil
}
