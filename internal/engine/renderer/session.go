// Package renderer drives the per-frame animation: it samples the input
// signals, advances the clock, regenerates the active scene, uploads it
// and draws it.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zhijia2/DancingLogo/internal/animation"
	"github.com/zhijia2/DancingLogo/internal/controls"
	"github.com/zhijia2/DancingLogo/internal/engine/buffer"
	"github.com/zhijia2/DancingLogo/internal/engine/gpu"
	"github.com/zhijia2/DancingLogo/internal/engine/renderer/shaders"
	"github.com/zhijia2/DancingLogo/internal/engine/shader"
	"github.com/zhijia2/DancingLogo/internal/logger"
	"github.com/zhijia2/DancingLogo/internal/scene"
	"github.com/zhijia2/DancingLogo/pkg/math"
)

// Shader binding names.
const (
	AttribPosition   = "aVertexPosition"
	AttribColor      = "aVertexColor"
	UniformModelView = "uModelViewMatrix"
)

// Phase increments applied on each tick of the matching scene.
const (
	LogoPhaseStep = 2.0
	TreePhaseStep = 1.0
)

// Status is the scheduler state. A session is Running from the moment
// Initialize returns until Close.
type Status int

const (
	Idle Status = iota
	Running
)

func (s Status) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Options configures Initialize. Zero-valued sources fall back to the
// embedded scene shaders.
type Options struct {
	Width, Height  int
	VertexSource   string
	FragmentSource string
}

// RenderState is the mutable per-frame state besides the clock.
type RenderState struct {
	Active    scene.Scene
	Transform math.Mat4
	// Each scene keeps its own phase so switching away and back resumes
	// where it left off.
	LogoPhase float64
	TreePhase float64
}

// Session owns the GPU resources and animation state of one surface.
type Session struct {
	dev     gpu.Device
	log     *zap.Logger
	program *shader.Program
	buffers *buffer.Set

	modelView int32

	clock     animation.Clock
	transform *animation.Transform
	state     RenderState
	status    Status

	width, height int
	frames        uint64
}

// Initialize compiles the scene program, resolves its bindings, uploads
// the initial logo and sets an opaque white clear color. On failure every
// object created so far is released and nothing is left bound.
func Initialize(dev gpu.Device, opts Options) (*Session, error) {
	if opts.VertexSource == "" {
		opts.VertexSource = shaders.SceneVertexShader
	}
	if opts.FragmentSource == "" {
		opts.FragmentSource = shaders.SceneFragmentShader
	}

	s := &Session{
		dev:       dev,
		log:       logger.Named("renderer"),
		transform: animation.NewTransform(),
		status:    Idle,
	}
	s.state.Transform = s.transform.Matrix()

	version, rendererName := dev.Info()
	s.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	program, err := shader.CompileProgram(dev, opts.VertexSource, opts.FragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	s.program = program

	posLoc, err := program.Attribute(AttribPosition)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to bind shader inputs: %w", err)
	}
	colorLoc, err := program.Attribute(AttribColor)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to bind shader inputs: %w", err)
	}
	s.modelView, err = program.Uniform(UniformModelView)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to bind shader inputs: %w", err)
	}

	program.Use()

	s.buffers = buffer.New(dev, posLoc, colorLoc)
	s.state.Active = scene.Logo
	s.state.LogoPhase += LogoPhaseStep
	if err := s.buffers.Upload(scene.GenerateLogo(s.state.LogoPhase)); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to upload initial scene: %w", err)
	}

	dev.ClearColor(1.0, 1.0, 1.0, 1.0)
	s.Resize(opts.Width, opts.Height)

	s.status = Running
	s.log.Debug("session initialized",
		zap.Uint32("program", program.Handle()),
		zap.Int32("vertices", s.buffers.Count()),
	)
	return s, nil
}

// Tick advances the animation to timestamp (seconds) using the sampled
// input, regenerates the active scene and draws it.
//
// Only the logo recomputes the transform. While the tree is active the
// matrix keeps whatever value the logo last produced (identity if the logo
// never ticked).
func (s *Session) Tick(timestamp float64, in controls.Input) error {
	if s.status != Running {
		return fmt.Errorf("tick on %s session", s.status)
	}

	s.clock.Advance(timestamp, in.Speed)
	s.state.Active = in.Scene

	var mesh scene.Mesh
	switch in.Scene {
	case scene.Tree:
		s.state.TreePhase += TreePhaseStep
		mesh = scene.GenerateTree(s.state.TreePhase)
	default:
		s.state.Transform = s.transform.Update(float32(s.clock.AccumulatedAngle))
		s.state.LogoPhase += LogoPhaseStep
		mesh = scene.GenerateLogo(s.state.LogoPhase)
	}

	if err := s.buffers.Upload(mesh); err != nil {
		return err
	}

	if err := s.draw(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	s.frames++
	return nil
}

// draw clears the surface and draws every uploaded vertex with the
// current transform. A matrix holding NaN or Inf is never sent.
func (s *Session) draw() error {
	s.dev.Clear()
	s.program.Use()
	return s.buffers.Bound(func(count int32) error {
		m := s.state.Transform
		if !m.IsFinite() {
			return fmt.Errorf("model-view matrix is not finite: %v", m)
		}
		s.dev.UniformMatrix4(s.modelView, (*[16]float32)(&m))
		s.dev.DrawTriangles(0, count)
		return nil
	})
}

// Resize updates the viewport to the drawable size.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.dev.Viewport(0, 0, int32(width), int32(height))
	s.log.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (s *Session) Size() (int, int) {
	return s.width, s.height
}

// Status reports whether the session is running.
func (s *Session) Status() Status {
	return s.status
}

// Clock returns a copy of the animation clock.
func (s *Session) Clock() animation.Clock {
	return s.clock
}

// State returns a copy of the render state.
func (s *Session) State() RenderState {
	return s.state
}

// VertexCount returns the number of vertices the next draw will cover.
func (s *Session) VertexCount() int32 {
	if s.buffers == nil {
		return 0
	}
	return s.buffers.Count()
}

// Frames returns the number of completed ticks.
func (s *Session) Frames() uint64 {
	return s.frames
}

// Close releases the buffers and program.
func (s *Session) Close() {
	if s.buffers != nil {
		s.buffers.Delete()
		s.buffers = nil
	}
	if s.program != nil {
		s.program.Delete()
		s.program = nil
	}
	s.status = Idle
}
