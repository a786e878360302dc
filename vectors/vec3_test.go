package vectors

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecAlmostEqual(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance && math.Abs(a.Z-b.Z) < tolerance
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Vec3
		exp  Vec3
	}{
		{"unit x", Vec3{3, 0, 0}, Vec3{1, 0, 0}},
		{"diagonal", Vec3{1, 1, 0}, Vec3{1 / math.Sqrt2, 1 / math.Sqrt2, 0}},
		{"zero stays zero", Vec3{}, Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Normalize()
			if !vecAlmostEqual(got, c.exp) {
				t.Fatalf("Normalize(%v) = %v, want %v", c.in, got, c.exp)
			}
			if !got.IsFinite() {
				t.Fatalf("Normalize(%v) produced non-finite %v", c.in, got)
			}
		})
	}
}

func TestCrossIsRightHanded(t *testing.T) {
	x, y := Vec3{1, 0, 0}, Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Fatalf("x × y = %v, want (0,0,1)", got)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Fatalf("y × x = %v, want (0,0,-1)", got)
	}
}

func TestComponentwiseOps(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{2, 4, 6}
	if got := a.Mul(b); got != (Vec3{2, 8, 18}) {
		t.Fatalf("Mul = %v", got)
	}
	if got := b.Div(a); got != (Vec3{2, 2, 2}) {
		t.Fatalf("Div = %v", got)
	}
	if got := a.Dot(b); got != 28 {
		t.Fatalf("Dot = %v", got)
	}
	if got := a.Neg(); got != (Vec3{-1, -2, -3}) {
		t.Fatalf("Neg = %v", got)
	}
}

func TestReflect(t *testing.T) {
	in := Vec3{1, -1, 0}.Normalize()
	got := in.Reflect(Vec3{0, 1, 0})
	exp := Vec3{1, 1, 0}.Normalize()
	if !vecAlmostEqual(got, exp) {
		t.Fatalf("Reflect = %v, want %v", got, exp)
	}
}

func TestNewRayNormalizesOnce(t *testing.T) {
	r := NewRay(Vec3{1, 1, 1}, Vec3{0, 0, -5})
	if math.Abs(r.Direction.Norm()-1) > tolerance {
		t.Fatalf("direction length = %v, want 1", r.Direction.Norm())
	}
	if got := r.At(2); !vecAlmostEqual(got, Vec3{1, 1, -1}) {
		t.Fatalf("At(2) = %v", got)
	}
}

func TestNewRayZeroDirection(t *testing.T) {
	r := NewRay(Vec3{}, Vec3{})
	if !r.Direction.IsZero() {
		t.Fatalf("zero direction should stay zero, got %v", r.Direction)
	}
}
