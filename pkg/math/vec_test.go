package math

import (
	"testing"
)

func TestVec2Within(t *testing.T) {
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{0, 0}, true},
		{Vec2{299.5, 549.5}, true},
		{Vec2{300, 10}, false},
		{Vec2{10, 550}, false},
		{Vec2{-0.5, 10}, false},
		{Vec2{10, -1}, false},
	}
	for _, tt := range tests {
		if got := tt.p.Within(300, 550); got != tt.want {
			t.Errorf("%v.Within(300, 550) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}
	if got, want := a.Min(b), (Vec3{-1, -2, 0}); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}
