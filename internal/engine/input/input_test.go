package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		key  Key
		want Action
	}{
		{KeyEscape, ActionQuit},
		{KeyUp, ActionFaster},
		{KeyRight, ActionFaster},
		{KeyDown, ActionSlower},
		{KeyLeft, ActionSlower},
		{Key1, ActionLogo},
		{KeyL, ActionLogo},
		{Key2, ActionTree},
		{KeyT, ActionTree},
		{KeySpace, ActionToggleScene},
		{KeyF12, ActionScreenshot},
		{KeyUnknown, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got := b.Action(Event{Type: EventKeyDown, Key: tt.key})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindingsIgnoreReleaseAndRepeat(t *testing.T) {
	b := DefaultBindings()

	assert.Equal(t, ActionNone, b.Action(Event{Type: EventKeyUp, Key: KeyUp}))
	assert.Equal(t, ActionNone, b.Action(Event{Type: EventKeyDown, Key: KeyF12, Repeat: true}))
	assert.Equal(t, ActionNone, b.Action(Event{Type: EventKeyDown, Key: KeySpace, Repeat: true}))
	// Holding an arrow keeps changing the speed
	assert.Equal(t, ActionFaster, b.Action(Event{Type: EventKeyDown, Key: KeyUp, Repeat: true}))
}

func TestFromSDL(t *testing.T) {
	ev, ok := FromSDL(&sdl.QuitEvent{Type: sdl.QUIT})
	assert.True(t, ok)
	assert.Equal(t, EventQuit, ev.Type)

	ev, ok = FromSDL(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 640, Data2: 480})
	assert.True(t, ok)
	assert.Equal(t, Event{Type: EventWindowResize, Width: 640, Height: 480}, ev)

	_, ok = FromSDL(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED})
	assert.False(t, ok)

	ev, ok = FromSDL(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_UP}})
	assert.True(t, ok)
	assert.Equal(t, Event{Type: EventKeyDown, Key: KeyUp}, ev)

	ev, ok = FromSDL(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}})
	assert.True(t, ok)
	assert.True(t, ev.Repeat)
	assert.Equal(t, KeyF12, ev.Key)

	ev, ok = FromSDL(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_Q}})
	assert.True(t, ok)
	assert.Equal(t, EventKeyUp, ev.Type)
	assert.Equal(t, KeyUnknown, ev.Key)
}

func TestSDLKeypadDigits(t *testing.T) {
	assert.Equal(t, Key1, SDLKey(sdl.SCANCODE_KP_1))
	assert.Equal(t, Key2, SDLKey(sdl.SCANCODE_KP_2))
}

func TestFromGLFWKey(t *testing.T) {
	assert.Equal(t, Event{Type: EventKeyDown, Key: KeyT}, FromGLFWKey(glfw.KeyT, glfw.Press))
	assert.Equal(t, Event{Type: EventKeyDown, Key: KeyLeft, Repeat: true}, FromGLFWKey(glfw.KeyLeft, glfw.Repeat))
	assert.Equal(t, Event{Type: EventKeyUp, Key: KeyEscape}, FromGLFWKey(glfw.KeyEscape, glfw.Release))
	assert.Equal(t, KeyUnknown, GLFWKey(glfw.KeyA))
	assert.Equal(t, Key2, GLFWKey(glfw.KeyKP2))
}
