package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Action is a logical input action decoupled from the raw key that
// triggers it.
type Action string

// The four driving actions every car binds.
const (
	ActionUp    Action = "up"
	ActionDown  Action = "down"
	ActionLeft  Action = "left"
	ActionRight Action = "right"
)

// Source answers whether a logical action is currently held. Components
// poll it once per tick and never subscribe to raw key events directly.
type Source interface {
	IsActionDown(action Action) bool
}

// Manager maps logical actions to keyboard keys. Each car gets its own
// explicitly constructed manager; there is no shared global input state.
type Manager struct {
	bindings map[Action][]ebiten.Key
}

// NewManager creates a manager with no bindings.
func NewManager() *Manager {
	return &Manager{
		bindings: make(map[Action][]ebiten.Key),
	}
}

// Bind attaches one or more keys to an action, replacing any previous
// binding for that action.
func (m *Manager) Bind(action Action, keys ...ebiten.Key) {
	m.bindings[action] = keys
}

// Unbind removes the binding for an action.
func (m *Manager) Unbind(action Action) {
	delete(m.bindings, action)
}

// IsActionDown reports whether any key bound to the action is held.
// Unbound actions are never down.
func (m *Manager) IsActionDown(action Action) bool {
	for _, key := range m.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Player1Bindings returns a manager bound to the arrow keys.
func Player1Bindings() *Manager {
	m := NewManager()
	m.Bind(ActionUp, ebiten.KeyArrowUp)
	m.Bind(ActionDown, ebiten.KeyArrowDown)
	m.Bind(ActionLeft, ebiten.KeyArrowLeft)
	m.Bind(ActionRight, ebiten.KeyArrowRight)
	return m
}

// Player2Bindings returns a manager bound to WASD.
func Player2Bindings() *Manager {
	m := NewManager()
	m.Bind(ActionUp, ebiten.KeyW)
	m.Bind(ActionDown, ebiten.KeyS)
	m.Bind(ActionLeft, ebiten.KeyA)
	m.Bind(ActionRight, ebiten.KeyD)
	return m
}
