package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3Reflect(t *testing.T) {
	got := Vec3{1, -1, 0}.Reflect(Vec3{0, 1, 0})
	want := Vec3{1, 1, 0}
	if got != want {
		t.Errorf("Reflect = %v, want %v", got, want)
	}
}

func TestVec3Clamp01(t *testing.T) {
	got := Vec3{-0.5, 0.25, 3}.Clamp01()
	want := Vec3{0, 0.25, 1}
	if got != want {
		t.Errorf("Clamp01 = %v, want %v", got, want)
	}
}
