// Package input translates host window events into a small host-neutral
// event set and maps keys to animation controls.
package input

// EventType identifies the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Key is a host-neutral key code. Only keys with a binding are named.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	Key1
	Key2
	KeyL
	KeyT
	KeyF12
)

var keyNames = map[Key]string{
	KeyEscape: "Escape",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeySpace:  "Space",
	Key1:      "1",
	Key2:      "2",
	KeyL:      "L",
	KeyT:      "T",
	KeyF12:    "F12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event represents a processed input event. Width and Height are the
// drawable size in pixels for EventWindowResize.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
	Width  int
	Height int
}

// Action is what a key press asks the application to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionFaster
	ActionSlower
	ActionLogo
	ActionTree
	ActionToggleScene
	ActionScreenshot
)

// Bindings maps keys to actions.
type Bindings map[Key]Action

// DefaultBindings returns the built-in keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		KeyEscape: ActionQuit,
		KeyUp:     ActionFaster,
		KeyRight:  ActionFaster,
		KeyDown:   ActionSlower,
		KeyLeft:   ActionSlower,
		Key1:      ActionLogo,
		KeyL:      ActionLogo,
		Key2:      ActionTree,
		KeyT:      ActionTree,
		KeySpace:  ActionToggleScene,
		KeyF12:    ActionScreenshot,
	}
}

// Action returns the action bound to a key-down event. Key releases and
// auto-repeated screenshot or toggle presses map to ActionNone.
func (b Bindings) Action(e Event) Action {
	if e.Type != EventKeyDown {
		return ActionNone
	}
	action := b[e.Key]
	if e.Repeat && (action == ActionScreenshot || action == ActionToggleScene) {
		return ActionNone
	}
	return action
}
