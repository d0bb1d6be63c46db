package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeys = map[sdl.Scancode]Key{
	sdl.SCANCODE_ESCAPE: KeyEscape,
	sdl.SCANCODE_UP:     KeyUp,
	sdl.SCANCODE_DOWN:   KeyDown,
	sdl.SCANCODE_LEFT:   KeyLeft,
	sdl.SCANCODE_RIGHT:  KeyRight,
	sdl.SCANCODE_SPACE:  KeySpace,
	sdl.SCANCODE_1:      Key1,
	sdl.SCANCODE_KP_1:   Key1,
	sdl.SCANCODE_2:      Key2,
	sdl.SCANCODE_KP_2:   Key2,
	sdl.SCANCODE_L:      KeyL,
	sdl.SCANCODE_T:      KeyT,
	sdl.SCANCODE_F12:    KeyF12,
}

// SDLKey maps an SDL scancode to a Key.
func SDLKey(code sdl.Scancode) Key {
	if k, ok := sdlKeys[code]; ok {
		return k
	}
	return KeyUnknown
}

// FromSDL converts an SDL event. The second result is false for events
// that have no counterpart.
func FromSDL(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{
			Key:    SDLKey(e.Keysym.Scancode),
			Repeat: e.Repeat != 0,
		}
		switch e.Type {
		case sdl.KEYDOWN:
			ev.Type = EventKeyDown
			return ev, true
		case sdl.KEYUP:
			ev.Type = EventKeyUp
			return ev, true
		}
	}
	return Event{}, false
}

// PollSDL drains the SDL event queue, appending converted events to dst.
// It reports whether a quit was requested.
func PollSDL(dst []Event) ([]Event, bool) {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := FromSDL(event)
		if !ok {
			continue
		}
		if ev.Type == EventQuit {
			quit = true
		}
		dst = append(dst, ev)
	}
	return dst, quit
}
