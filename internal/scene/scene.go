// Package scene defines the two drawable shapes and their per-frame
// geometry generators.
package scene

import (
	"fmt"
	"strings"
)

// Scene identifies one of the two shapes.
type Scene int

const (
	Logo Scene = iota
	Tree
)

// String returns the lowercase scene name used in config files.
func (s Scene) String() string {
	switch s {
	case Logo:
		return "logo"
	case Tree:
		return "tree"
	default:
		return fmt.Sprintf("Scene(%d)", int(s))
	}
}

// Toggle returns the other scene.
func (s Scene) Toggle() Scene {
	if s == Logo {
		return Tree
	}
	return Logo
}

// Parse converts a config or flag value into a Scene.
func Parse(name string) (Scene, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "logo", "":
		return Logo, nil
	case "tree", "treelike":
		return Tree, nil
	default:
		return Logo, fmt.Errorf("unknown scene %q", name)
	}
}

// Mesh is a non-indexed triangle list with parallel attribute arrays.
// Positions hold 3 floats per vertex and Colors 4 floats per vertex.
type Mesh struct {
	Positions []float32
	Colors    []float32
}

const (
	PositionSize = 3
	ColorSize    = 4
)

// VertexCount returns the number of vertices described by Positions.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / PositionSize
}

// Validate checks the layout invariant: whole vertices in both arrays and
// the same vertex count in each.
func (m Mesh) Validate() error {
	if len(m.Positions)%PositionSize != 0 {
		return fmt.Errorf("positions: length %d is not a multiple of %d", len(m.Positions), PositionSize)
	}
	if len(m.Colors)%ColorSize != 0 {
		return fmt.Errorf("colors: length %d is not a multiple of %d", len(m.Colors), ColorSize)
	}
	if np, nc := len(m.Positions)/PositionSize, len(m.Colors)/ColorSize; np != nc {
		return fmt.Errorf("vertex count mismatch: %d positions, %d colors", np, nc)
	}
	return nil
}

// Generate builds the mesh for s at the given phase.
func Generate(s Scene, phase float64) Mesh {
	if s == Tree {
		return GenerateTree(phase)
	}
	return GenerateLogo(phase)
}
