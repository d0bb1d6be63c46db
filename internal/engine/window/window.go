// Package window creates the drawable surface and its OpenGL context and
// drives the per-frame callback.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/zhijia2/DancingLogo/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Host names accepted by Open.
const (
	HostSDL  = "sdl"
	HostGLFW = "glfw"
)

// ErrStop ends Loop without error when returned from a FrameFunc.
var ErrStop = errors.New("window: stop")

// FrameFunc is called once per display refresh with the time in seconds
// since Loop started and the events received since the previous frame.
type FrameFunc func(timestamp float64, events []input.Event) error

// Surface is a window with a current OpenGL 4.1 core context.
type Surface interface {
	// Loop runs frame until the window is closed or frame returns an
	// error. Buffers are swapped after every successful frame.
	Loop(frame FrameFunc) error
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	SetTitle(title string)
	Close()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Host       string
}

// SurfaceCreationError reports that no window or GL context could be
// created.
type SurfaceCreationError struct {
	Host string
	Err  error
}

func (e *SurfaceCreationError) Error() string {
	return fmt.Sprintf("create %s surface: %v", e.Host, e.Err)
}

func (e *SurfaceCreationError) Unwrap() error {
	return e.Err
}

// Open creates a surface on the configured host. An empty host selects SDL.
func Open(cfg Config) (Surface, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &SurfaceCreationError{
			Host: cfg.Host,
			Err:  fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height),
		}
	}

	switch cfg.Host {
	case HostSDL, "":
		w, err := newSDLWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case HostGLFW:
		w, err := newGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, &SurfaceCreationError{
			Host: cfg.Host,
			Err:  errors.New("unknown host"),
		}
	}
}

// runFrame calls frame and maps ErrStop to a clean exit.
func runFrame(frame FrameFunc, ts float64, events []input.Event) (bool, error) {
	if err := frame(ts, events); err != nil {
		if errors.Is(err, ErrStop) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
