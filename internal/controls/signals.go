// Package controls holds the two user-facing inputs of the animation:
// rotation speed and the selected scene.
package controls

import (
	"math"
	"sync/atomic"

	"github.com/zhijia2/DancingLogo/internal/scene"
)

// Input is one sample of the signals, taken at the start of a tick.
type Input struct {
	Speed float64
	Scene scene.Scene
}

// Signals is written by the keyboard handler and the config watcher and
// read once per frame by the render loop. Values are stored atomically
// because the watcher runs on its own goroutine.
type Signals struct {
	speed    atomic.Uint64
	scene    atomic.Int32
	maxSpeed float64
}

// New returns signals with the given initial values. maxSpeed bounds
// SetSpeed; zero or negative means unbounded.
func New(speed float64, s scene.Scene, maxSpeed float64) *Signals {
	sig := &Signals{maxSpeed: maxSpeed}
	sig.SetSpeed(speed)
	sig.SetScene(s)
	return sig
}

// Sample returns the current values.
func (s *Signals) Sample() Input {
	return Input{
		Speed: math.Float64frombits(s.speed.Load()),
		Scene: scene.Scene(s.scene.Load()),
	}
}

// Speed returns the current speed in degrees per second.
func (s *Signals) Speed() float64 {
	return math.Float64frombits(s.speed.Load())
}

// SetSpeed stores v clamped to [0, maxSpeed] and returns the stored value.
func (s *Signals) SetSpeed(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if s.maxSpeed > 0 && v > s.maxSpeed {
		v = s.maxSpeed
	}
	s.speed.Store(math.Float64bits(v))
	return v
}

// AdjustSpeed adds delta to the speed and returns the new value.
func (s *Signals) AdjustSpeed(delta float64) float64 {
	return s.SetSpeed(s.Speed() + delta)
}

// SetScene selects the active scene.
func (s *Signals) SetScene(sc scene.Scene) {
	s.scene.Store(int32(sc))
}

// ToggleScene switches to the other scene and returns it.
func (s *Signals) ToggleScene() scene.Scene {
	next := scene.Scene(s.scene.Load()).Toggle()
	s.scene.Store(int32(next))
	return next
}
