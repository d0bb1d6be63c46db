package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phases = []float64{0, 1, 2, math.Pi, 17.5, -3, 1e6 + 0.25}

func TestGenerateLogoCounts(t *testing.T) {
	for _, phase := range phases {
		m := GenerateLogo(phase)
		require.NoError(t, m.Validate())
		assert.Equal(t, 30, m.VertexCount(), "phase %v", phase)
		assert.Len(t, m.Colors, 30*ColorSize)
	}
}

func TestGenerateLogoStaticBand(t *testing.T) {
	animated := LogoAnimated()
	base := GenerateLogo(math.Pi / 2) // cos = 0, so every vertex sits at its base

	static := 0
	for _, a := range animated {
		if !a {
			static++
		}
	}
	assert.Equal(t, 6, static, "center band is two triangles")

	for _, phase := range phases {
		m := GenerateLogo(phase)
		offset := float32(0.1 * math.Cos(phase))
		for i, a := range animated {
			x, y, z := m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]
			assert.Equal(t, base.Positions[i*3+1], y, "y of vertex %d", i)
			assert.Zero(t, z)
			if a {
				assert.InDelta(t, base.Positions[i*3]+offset, x, 1e-6, "vertex %d at phase %v", i, phase)
			} else {
				assert.Equal(t, base.Positions[i*3], x, "static vertex %d moved at phase %v", i, phase)
			}
		}
	}
}

func TestGenerateLogoColor(t *testing.T) {
	m := GenerateLogo(3)
	for i := 0; i < m.VertexCount(); i++ {
		assert.Equal(t, []float32{1.0, 0.3, 0.0, 1.0}, m.Colors[i*4:i*4+4])
	}
}

func TestGenerateTree(t *testing.T) {
	ref := GenerateTree(0)
	for _, phase := range phases {
		m := GenerateTree(phase)
		require.NoError(t, m.Validate())
		require.Equal(t, 21, m.VertexCount())
		assert.Equal(t, ref.Positions, m.Positions, "positions must not depend on phase")

		want := float32(math.Cos(phase))
		for i := 0; i < 21; i++ {
			c := m.Colors[i*4 : i*4+4]
			switch {
			case i < 9:
				assert.Equal(t, []float32{0.2, 1.0, 0.2, 1.0}, c, "canopy vertex %d", i)
			case i < 15:
				assert.Equal(t, []float32{0.5, 0.5, 0.5, 1.0}, c, "trunk vertex %d", i)
			default:
				assert.Equal(t, []float32{want, 0, 0, 1}, c, "ornament vertex %d", i)
			}
		}
	}
}

func TestGenerateTreeOrnamentUnclamped(t *testing.T) {
	m := GenerateTree(math.Pi)
	assert.InDelta(t, -1.0, m.Colors[len(m.Colors)-4], 1e-6)
}

func TestGenerateReturnsFreshSlices(t *testing.T) {
	a := GenerateTree(1)
	a.Positions[0] = 42
	a.Colors[0] = 42
	b := GenerateTree(1)
	assert.NotEqual(t, float32(42), b.Positions[0])
	assert.NotEqual(t, float32(42), b.Colors[0])

	l1 := GenerateLogo(1)
	l1.Positions[0] = 42
	assert.NotEqual(t, float32(42), GenerateLogo(1).Positions[0])
}

func TestGenerateDispatch(t *testing.T) {
	assert.Equal(t, GenerateLogo(5), Generate(Logo, 5))
	assert.Equal(t, GenerateTree(5), Generate(Tree, 5))
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    Mesh
		wantErr bool
	}{
		{"empty", Mesh{}, false},
		{"one vertex", Mesh{Positions: make([]float32, 3), Colors: make([]float32, 4)}, false},
		{"ragged positions", Mesh{Positions: make([]float32, 4), Colors: make([]float32, 4)}, true},
		{"ragged colors", Mesh{Positions: make([]float32, 3), Colors: make([]float32, 5)}, true},
		{"count mismatch", Mesh{Positions: make([]float32, 6), Colors: make([]float32, 4)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Scene
		wantErr bool
	}{
		{"logo", Logo, false},
		{"LOGO", Logo, false},
		{"", Logo, false},
		{"tree", Tree, false},
		{" TreeLike ", Tree, false},
		{"cube", Logo, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "Parse(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestSceneToggleAndString(t *testing.T) {
	assert.Equal(t, Tree, Logo.Toggle())
	assert.Equal(t, Logo, Tree.Toggle())
	assert.Equal(t, "logo", Logo.String())
	assert.Equal(t, "tree", Tree.String())
	assert.Equal(t, "Scene(7)", Scene(7).String())
}
