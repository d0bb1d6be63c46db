// Package app wires the window, the renderer session and the controls
// into the main loop.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zhijia2/DancingLogo/internal/config"
	"github.com/zhijia2/DancingLogo/internal/controls"
	"github.com/zhijia2/DancingLogo/internal/engine/debug"
	"github.com/zhijia2/DancingLogo/internal/engine/gpu"
	"github.com/zhijia2/DancingLogo/internal/engine/input"
	"github.com/zhijia2/DancingLogo/internal/engine/renderer"
	"github.com/zhijia2/DancingLogo/internal/engine/window"
	"github.com/zhijia2/DancingLogo/internal/logger"
	"github.com/zhijia2/DancingLogo/internal/scene"
)

// App is the running program.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	surface  window.Surface
	dev      gpu.Device
	session  *renderer.Session
	signals  *controls.Signals
	bindings input.Bindings
	shots    *debug.ScreenshotCapture

	stopWatch func() error
	// Last animation settings seen from the config, owned by the watcher
	// goroutine once watching starts.
	watched config.AnimationConfig

	title       scene.Scene
	pendingShot bool

	fpsFrames int
	fpsStart  float64
}

// New opens the window, creates the GL device and initializes the
// renderer session.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("host", cfg.Window.Host),
	)

	// Create window (this also creates OpenGL context)
	surface, err := window.Open(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Host:       cfg.Window.Host,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL entry points can only be loaded once the context is current
	dev, err := gpu.NewGL()
	if err != nil {
		surface.Close()
		return nil, fmt.Errorf("failed to create window: %w",
			&window.SurfaceCreationError{Host: cfg.Window.Host, Err: err})
	}

	a, err := newApp(cfg, surface, dev)
	if err != nil {
		surface.Close()
		return nil, err
	}

	log.Info("initialized successfully")
	return a, nil
}

func newApp(cfg *config.Config, surface window.Surface, dev gpu.Device) (*App, error) {
	width, height := surface.DrawableSize()
	session, err := renderer.Initialize(dev, renderer.Options{Width: width, Height: height})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	a := &App{
		cfg:      cfg,
		log:      logger.Named("app"),
		surface:  surface,
		dev:      dev,
		session:  session,
		signals:  controls.New(cfg.Animation.Speed, cfg.InitialScene(), cfg.Animation.MaxSpeed),
		bindings: input.DefaultBindings(),
		shots:    debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix, cfg.Screenshot.Format),
	}

	a.watched = cfg.Animation
	if cfg.Animation.Watch {
		a.watchConfig()
	}

	a.title = a.signals.Sample().Scene
	a.surface.SetTitle(a.windowTitle(a.title))
	return a, nil
}

func (a *App) watchConfig() {
	path := a.cfg.Source()
	if path == "" {
		a.log.Warn("animation.watch is set but no config file was loaded")
		return
	}

	stop, err := config.Watch(path, a.applyConfig)
	if err != nil {
		a.log.Warn("config watch disabled", zap.Error(err))
		return
	}
	a.stopWatch = stop
	a.log.Info("watching config", zap.String("path", path))
}

// applyConfig runs on the watcher goroutine and only touches the signals.
// A signal is overwritten only when its configured value changed, so
// keyboard adjustments survive saves that edit other keys.
func (a *App) applyConfig(cfg *config.Config) {
	prev := a.watched
	a.watched = cfg.Animation

	if cfg.Animation.Speed != prev.Speed {
		speed := a.signals.SetSpeed(cfg.Animation.Speed)
		a.log.Info("speed reloaded", zap.Float64("speed", speed))
	}
	if next := cfg.InitialScene(); next != prev.InitialScene() {
		a.signals.SetScene(next)
		a.log.Info("scene reloaded", zap.String("scene", next.String()))
	}
}

// Run starts the main loop and returns when the window closes.
func (a *App) Run() error {
	a.log.Info("starting main loop")
	return a.surface.Loop(a.frame)
}

func (a *App) frame(timestamp float64, events []input.Event) error {
	for _, e := range events {
		if e.Type == input.EventWindowResize {
			a.session.Resize(e.Width, e.Height)
			continue
		}
		if err := a.handle(a.bindings.Action(e)); err != nil {
			return err
		}
	}

	in := a.signals.Sample()
	if err := a.session.Tick(timestamp, in); err != nil {
		a.log.Error("tick failed", zap.Error(err))
		return fmt.Errorf("render error: %w", err)
	}

	// The back buffer still holds this frame until the host swaps.
	if a.pendingShot {
		a.pendingShot = false
		a.screenshot()
	}

	if in.Scene != a.title {
		a.title = in.Scene
		a.surface.SetTitle(a.windowTitle(in.Scene))
	}

	a.reportFPS(timestamp)
	return nil
}

func (a *App) handle(action input.Action) error {
	switch action {
	case input.ActionQuit:
		return window.ErrStop
	case input.ActionFaster:
		speed := a.signals.AdjustSpeed(a.cfg.Animation.SpeedStep)
		a.log.Debug("speed changed", zap.Float64("speed", speed))
	case input.ActionSlower:
		speed := a.signals.AdjustSpeed(-a.cfg.Animation.SpeedStep)
		a.log.Debug("speed changed", zap.Float64("speed", speed))
	case input.ActionLogo:
		a.signals.SetScene(scene.Logo)
	case input.ActionTree:
		a.signals.SetScene(scene.Tree)
	case input.ActionToggleScene:
		a.signals.ToggleScene()
	case input.ActionScreenshot:
		a.pendingShot = true
	}
	return nil
}

func (a *App) screenshot() {
	width, height := a.session.Size()
	pixels := a.dev.ReadPixels(width, height)
	name, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

func (a *App) reportFPS(timestamp float64) {
	a.fpsFrames++
	elapsed := timestamp - a.fpsStart
	if elapsed < 1 {
		return
	}

	state := a.session.State()
	a.log.Debug("fps",
		zap.Float64("fps", float64(a.fpsFrames)/elapsed),
		zap.String("scene", state.Active.String()),
		zap.Float64("speed", a.signals.Speed()),
		zap.Float64("angle", a.session.Clock().AccumulatedAngle),
	)
	a.fpsFrames = 0
	a.fpsStart = timestamp
}

func (a *App) windowTitle(s scene.Scene) string {
	return fmt.Sprintf("%s - %s", a.cfg.Window.Title, s)
}

// Close releases the session, the watcher and the window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.stopWatch != nil {
		if err := a.stopWatch(); err != nil {
			a.log.Warn("stopping config watch", zap.Error(err))
		}
		a.stopWatch = nil
	}
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}
	if a.surface != nil {
		a.surface.Close()
		a.surface = nil
	}
}
