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
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestPerspective(t *testing.T) {
	fov := Radians(45)
	m := Perspective(fov, 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveAspect(t *testing.T) {
	fov := Radians(45)
	square := Perspective(fov, 1, 0.1, 100)
	wide := Perspective(fov, 2, 0.1, 100)

	// Doubling the aspect halves the horizontal scale and leaves vertical alone
	if abs(wide[0]-square[0]/2) > 1e-6 {
		t.Errorf("wide [0] = %f, want %f", wide[0], square[0]/2)
	}
	if wide[5] != square[5] {
		t.Errorf("wide [5] = %f, want %f", wide[5], square[5])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}

	m := LookAt(eye, center, WorldUp)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// The eye maps to the view-space origin
	got := m.TransformVec3(eye)
	if got.Length() > 1e-5 {
		t.Errorf("eye in view space = %v, want origin", got)
	}

	// The target lies straight ahead on -Z
	got = m.TransformVec3(center)
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z+5) > 1e-5 {
		t.Errorf("center in view space = %v, want (0, 0, -5)", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-float32(math.Pi)) > 1e-6 {
		t.Errorf("Radians(180) = %f, want pi", got)
	}
	if got := Radians(0); got != 0 {
		t.Errorf("Radians(0) = %f, want 0", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
