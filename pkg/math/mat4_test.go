package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Scale(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestScale(t *testing.T) {
	m := ScaleVec(Vec3{2, 3, 4})

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
	if m[15] != 1 {
		t.Errorf("Scale [15] should be 1, got %f", m[15])
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2)) // 90 degrees
	p := [3]float32{1, 0, 0}           // Point on X axis
	result := m.TransformPoint(p)

	// Counter-clockwise: (1,0,0) becomes approximately (0,1,0)
	if abs(result[0]) > 0.001 || abs(result[1]-1) > 0.001 || abs(result[2]) > 0.001 {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", result)
	}
}

func TestRotateThenScale(t *testing.T) {
	// Scale is applied to the point first, then the rotation.
	m := RotateZ(DegToRad(90)).Mul(Scale(0.5, 0.5, 0.5))
	result := m.TransformPoint([3]float32{1, 0, 0})

	if abs(result[0]) > 0.001 || abs(result[1]-0.5) > 0.001 {
		t.Errorf("RotateZ*Scale: got %v, want (0, 0.5, 0)", result)
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg, want float32
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
	}

	for _, tt := range tests {
		if got := DegToRad(tt.deg); abs(got-tt.want) > 1e-6 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !Scale(0, 0, 0).IsFinite() {
		t.Error("zero scale matrix should be finite")
	}

	m := Identity()
	m[3] = float32(math.NaN())
	if m.IsFinite() {
		t.Error("matrix with NaN should not be finite")
	}

	m = Identity()
	m[7] = float32(math.Inf(1))
	if m.IsFinite() {
		t.Error("matrix with +Inf should not be finite")
	}
}

func TestSplat(t *testing.T) {
	got := Splat(0.25).Scale(2)
	want := Vec3{0.5, 0.5, 0.5}
	if got != want {
		t.Errorf("Splat(0.25).Scale(2) = %v, want %v", got, want)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
