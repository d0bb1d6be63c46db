package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/zhijia2/DancingLogo/internal/engine/input"
	"github.com/zhijia2/DancingLogo/internal/logger"
)

// glfwWindow wraps a GLFW window. Callbacks queue events that Loop hands
// to the frame function after each PollEvents.
type glfwWindow struct {
	log    *zap.Logger
	window *glfw.Window
	events []input.Event
}

func newGLFWWindow(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{
		log:    logger.Named("window"),
		events: make([]input.Event, 0, 16),
	}

	w.log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, &SurfaceCreationError{Host: HostGLFW, Err: fmt.Errorf("glfwInit failed: %w", err)}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &SurfaceCreationError{Host: HostGLFW, Err: fmt.Errorf("glfwCreateWindow failed: %w", err)}
	}
	w.window = win
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.events = append(w.events, input.FromGLFWKey(key, action))
	})

	// Framebuffer size is in pixels, which differs from the window size on
	// high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, input.Event{
			Type:   input.EventWindowResize,
			Width:  width,
			Height: height,
		})
	})

	width, height := w.DrawableSize()
	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) Loop(frame FrameFunc) error {
	glfw.SetTime(0)

	for !w.window.ShouldClose() {
		w.events = w.events[:0]
		glfw.PollEvents()
		if w.window.ShouldClose() {
			return nil
		}

		more, err := runFrame(frame, glfw.GetTime(), w.events)
		if !more {
			return err
		}

		w.window.SwapBuffers()
	}
	return nil
}

func (w *glfwWindow) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	w.log.Info("closing window")

	if w.window != nil {
		w.window.Destroy()
	}
	glfw.Terminate()
}
