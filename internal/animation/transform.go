package animation

import (
	"github.com/zhijia2/DancingLogo/pkg/math"
)

// Transform owns the model-view matrix sent to the vertex shader. The
// scene is drawn straight into clip space, so there is no projection.
type Transform struct {
	matrix math.Mat4
}

// NewTransform returns a transform holding the identity matrix.
func NewTransform() *Transform {
	return &Transform{matrix: math.Identity()}
}

// Update rebuilds the matrix as a rotation about Z by angleDegrees
// after a uniform scale of angleDegrees/360, so the shape grows out of the
// origin over a turn and collapses again when the angle wraps.
func (t *Transform) Update(angleDegrees float32) math.Mat4 {
	s := angleDegrees / FullTurn
	t.matrix = math.RotateZ(math.DegToRad(angleDegrees)).Mul(math.ScaleVec(math.Splat(s)))
	return t.matrix
}

// Matrix returns the last computed matrix.
func (t *Transform) Matrix() math.Mat4 {
	return t.matrix
}
