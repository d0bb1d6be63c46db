// Package buffer owns the vertex array and the two attribute buffers the
// scene is drawn from.
package buffer

import (
	"fmt"

	"github.com/zhijia2/DancingLogo/internal/engine/gpu"
	"github.com/zhijia2/DancingLogo/internal/scene"
)

// Set is one vertex array object with a position buffer and a color
// buffer. Objects are allocated once and re-filled on every Upload.
type Set struct {
	dev gpu.Device

	vao         uint32
	positionVBO uint32
	colorVBO    uint32

	positionLoc uint32
	colorLoc    uint32

	count int32
}

// New allocates the vertex array and buffers. positionLoc and colorLoc are
// the attribute locations the buffers are wired to.
func New(dev gpu.Device, positionLoc, colorLoc uint32) *Set {
	return &Set{
		dev:         dev,
		vao:         dev.GenVertexArray(),
		positionVBO: dev.GenBuffer(),
		colorVBO:    dev.GenBuffer(),
		positionLoc: positionLoc,
		colorLoc:    colorLoc,
	}
}

// Upload replaces both buffers with the mesh and records its vertex count.
// Positions use a dynamic usage hint since they change every frame.
func (s *Set) Upload(m scene.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	s.dev.BindVertexArray(s.vao)

	s.dev.BindArrayBuffer(s.positionVBO)
	s.dev.BufferData(m.Positions, gpu.DynamicDraw)
	s.dev.VertexAttribPointer(s.positionLoc, scene.PositionSize)

	s.dev.BindArrayBuffer(s.colorVBO)
	s.dev.BufferData(m.Colors, gpu.StaticDraw)
	s.dev.VertexAttribPointer(s.colorLoc, scene.ColorSize)

	s.dev.EnableVertexAttribArray(s.positionLoc)
	s.dev.EnableVertexAttribArray(s.colorLoc)

	s.dev.BindArrayBuffer(0)
	s.dev.BindVertexArray(0)

	s.count = int32(m.VertexCount())
	return nil
}

// Count returns the number of vertices from the last Upload.
func (s *Set) Count() int32 {
	return s.count
}

// Bound binds the vertex array, runs fn with the vertex count, and unbinds
// the array again however fn returns.
func (s *Set) Bound(fn func(count int32) error) error {
	s.dev.BindVertexArray(s.vao)
	defer s.dev.BindVertexArray(0)
	return fn(s.count)
}

// Delete releases the vertex array and buffers.
func (s *Set) Delete() {
	if s.vao != 0 {
		s.dev.DeleteVertexArray(s.vao)
		s.vao = 0
	}
	if s.positionVBO != 0 {
		s.dev.DeleteBuffer(s.positionVBO)
		s.positionVBO = 0
	}
	if s.colorVBO != 0 {
		s.dev.DeleteBuffer(s.colorVBO)
		s.colorVBO = 0
	}
	s.count = 0
}
