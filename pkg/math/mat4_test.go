package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I = %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	got := Translate(10, 20, 30).TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x90", RotateX(Radians(90)), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y90", RotateY(Radians(90)), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"z90", RotateZ(Radians(90)), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"y180", RotateY(Radians(180)), Vec3{0, 0, 1}, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !near(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposeOrder(t *testing.T) {
	// Scale happens before rotation: a unit X offset scaled by 2 then
	// rotated 90 degrees around Z lands on +Y at distance 2, then moves.
	m := Compose(Vec3{2, 1, 1}, 0, 0, 90, Vec3{5, 0, 0})
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{5, 2, 0}
	if !near(got, want) {
		t.Errorf("Compose = %v, want %v", got, want)
	}

	// X rotation is applied after Y and Z, so it is the outermost rotation.
	m = Compose(Vec3{1, 1, 1}, 90, 90, 0, Vec3{})
	got = m.TransformPoint(Vec3{1, 0, 0})
	want = RotateX(Radians(90)).TransformPoint(RotateY(Radians(90)).TransformPoint(Vec3{1, 0, 0}))
	if !near(got, want) {
		t.Errorf("Compose rotation order = %v, want %v", got, want)
	}
}

func TestComposeMatchesDeskTable(t *testing.T) {
	m := Compose(Vec3{20, 0.3, 9.4}, 0, 0, 0, Vec3{0, 0, -0.3})
	got := m.TransformPoint(Vec3{0.5, 0.5, 0.5})
	want := Vec3{10, 0.15, 4.4}
	if !near(got, want) {
		t.Errorf("table corner = %v, want %v", got, want)
	}
}

func TestNormalMatrixZeroScale(t *testing.T) {
	// Flat planes in the scene use a zero Y scale.
	m := Compose(Vec3{1.38, 0, 1}, 0, 0, 0, Vec3{5, 1.3, -4.465})
	n := m.NormalMatrix().MulVec3(Vec3{0, 1, 0}).Normalize()
	if !near(n, Vec3{0, 1, 0}) {
		t.Errorf("normal = %v, want (0, 1, 0)", n)
	}
}

func TestNormalMatrixRotation(t *testing.T) {
	m := Compose(Vec3{13, 0.3, 8}, 90, 0, 0, Vec3{0, 3, -5.5})
	n := m.NormalMatrix().MulVec3(Vec3{0, 1, 0}).Normalize()
	if !near(n, Vec3{0, 0, 1}) {
		t.Errorf("backdrop normal = %v, want (0, 0, 1)", n)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 1, 0.1, 100)
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

func TestOrthoMapsBoundsToNDC(t *testing.T) {
	m := Ortho(-4, 4, -2, 2, 0.1, 100)
	got := m.TransformPoint(Vec3{4, 2, -0.1})
	if !near(got, Vec3{1, 1, -1}) {
		t.Errorf("Ortho corner = %v, want (1, 1, -1)", got)
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	got := m.TransformPoint(Vec3{})
	if !near(got, Vec3{0, 0, -5}) {
		t.Errorf("origin in view space = %v, want (0, 0, -5)", got)
	}
}

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < 1e-4 && abs(a.Y-b.Y) < 1e-4 && abs(a.Z-b.Z) < 1e-4
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
