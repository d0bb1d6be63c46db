package scene

import "math"

var (
	canopyColor = [ColorSize]float32{0.2, 1.0, 0.2, 1.0}
	trunkColor  = [ColorSize]float32{0.5, 0.5, 0.5, 1.0}
)

// treePositions never change; only the ornament color is animated.
var treePositions = [...]float32{
	// canopy
	0.5, 0.0, 0.0,
	-0.5, 0.0, 0.0,
	0.0, 0.5, 0.0,

	0.25, 0.5, 0.0,
	-0.25, 0.5, 0.0,
	0.0, 0.75, 0.0,

	0.0, 0.0, 0.0,
	0.75, -0.75, 0.0,
	-0.75, -0.75, 0.0,

	// trunk
	-0.1, -0.75, 0.0,
	-0.1, -1.0, 0.0,
	0.1, -1.0, 0.0,

	-0.1, -0.75, 0.0,
	0.1, -1.0, 0.0,
	0.1, -0.75, 0.0,

	// ornament
	0.0, 0.75, 0.0,
	0.0, 0.8, 0.0,
	0.05, 0.775, 0.0,

	0.0, 0.75, 0.0,
	0.0, 0.8, 0.0,
	-0.05, 0.775, 0.0,
}

const (
	TreeVertexCount      = len(treePositions) / PositionSize
	canopyVertices       = 9
	trunkVertices        = 6
	TreeOrnamentVertices = 6
)

// GenerateTree returns the tree at the given phase. The ornament's red
// channel is cos(phase), unclamped.
func GenerateTree(phase float64) Mesh {
	red := float32(math.Cos(phase))
	ornament := [ColorSize]float32{red, 0, 0, 1}

	m := Mesh{
		Positions: append([]float32(nil), treePositions[:]...),
		Colors:    make([]float32, 0, TreeVertexCount*ColorSize),
	}
	for i := 0; i < canopyVertices; i++ {
		m.Colors = append(m.Colors, canopyColor[:]...)
	}
	for i := 0; i < trunkVertices; i++ {
		m.Colors = append(m.Colors, trunkColor[:]...)
	}
	for i := 0; i < TreeOrnamentVertices; i++ {
		m.Colors = append(m.Colors, ornament[:]...)
	}
	return m
}
