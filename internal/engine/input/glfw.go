package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
	glfw.KeyUp:     KeyUp,
	glfw.KeyDown:   KeyDown,
	glfw.KeyLeft:   KeyLeft,
	glfw.KeyRight:  KeyRight,
	glfw.KeySpace:  KeySpace,
	glfw.Key1:      Key1,
	glfw.KeyKP1:    Key1,
	glfw.Key2:      Key2,
	glfw.KeyKP2:    Key2,
	glfw.KeyL:      KeyL,
	glfw.KeyT:      KeyT,
	glfw.KeyF12:    KeyF12,
}

// GLFWKey maps a GLFW key to a Key.
func GLFWKey(key glfw.Key) Key {
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return KeyUnknown
}

// FromGLFWKey converts the arguments of a GLFW key callback.
func FromGLFWKey(key glfw.Key, action glfw.Action) Event {
	ev := Event{Key: GLFWKey(key)}
	switch action {
	case glfw.Press:
		ev.Type = EventKeyDown
	case glfw.Repeat:
		ev.Type = EventKeyDown
		ev.Repeat = true
	case glfw.Release:
		ev.Type = EventKeyUp
	}
	return ev
}
