package scene

import "math"

// logoVertex is one corner of the logo. Animated corners are shifted
// horizontally by the breathing offset.
type logoVertex struct {
	x, y     float64
	animated bool
}

// logoColor is shared by every logo vertex.
var logoColor = [ColorSize]float32{1.0, 0.3, 0.0, 1.0}

// BreathAmplitude is the peak horizontal shift of the animated logo corners.
const BreathAmplitude = 0.1

// logoTriangles lists the ten logo triangles in draw order. Triangles 7
// and 9 form the static center band.
var logoTriangles = [...]logoVertex{
	// top-left bar
	{-0.6, 1.0, true}, {-0.6, 0.6, true}, {-0.2, 0.6, true},
	// bottom-left foot
	{-0.2, -0.6, true}, {-0.6, -0.6, true}, {-0.6, -1.0, true},
	// bottom-right foot
	{0.6, -1.0, true}, {0.6, -0.6, true}, {0.2, -0.6, true},
	// top-right bar
	{0.2, 0.6, true}, {0.6, 0.6, true}, {0.6, 1.0, true},
	// top span
	{-0.6, 1.0, true}, {-0.2, 0.6, true}, {0.6, 1.0, true},
	{-0.2, 0.6, true}, {0.2, 0.6, true}, {0.6, 1.0, true},
	// center band
	{-0.2, -0.6, false}, {0.2, -0.6, false}, {-0.2, 0.6, false},
	// bottom span
	{0.6, -1.0, true}, {-0.2, -0.6, true}, {0.2, -0.6, true},
	// center band
	{-0.2, 0.6, false}, {0.2, 0.6, false}, {0.2, -0.6, false},
	// bottom span
	{-0.6, -1.0, true}, {0.6, -1.0, true}, {-0.2, -0.6, true},
}

// LogoVertexCount is the number of vertices GenerateLogo returns.
const LogoVertexCount = len(logoTriangles)

// GenerateLogo returns the logo at the given phase. Animated corners sit
// at baseX + 0.1*cos(phase); the center band does not move.
func GenerateLogo(phase float64) Mesh {
	offset := BreathAmplitude * math.Cos(phase)

	m := Mesh{
		Positions: make([]float32, 0, LogoVertexCount*PositionSize),
		Colors:    make([]float32, 0, LogoVertexCount*ColorSize),
	}
	for _, v := range logoTriangles {
		x := v.x
		if v.animated {
			x += offset
		}
		m.Positions = append(m.Positions, float32(x), float32(v.y), 0)
		m.Colors = append(m.Colors, logoColor[:]...)
	}
	return m
}

// LogoAnimated reports, per vertex, whether GenerateLogo shifts it with
// the phase.
func LogoAnimated() []bool {
	out := make([]bool, LogoVertexCount)
	for i, v := range logoTriangles {
		out[i] = v.animated
	}
	return out
}
