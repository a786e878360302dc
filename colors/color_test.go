package colors

import (
	"image/color"
	"math"
	"testing"

	"github.com/echoflaresat/whitted/vectors"
)

func TestFromRadianceIsOpaque(t *testing.T) {
	c := FromRadiance(vectors.Vec3{X: 0.2, Y: 3, Z: 0})
	if c.A != 1 {
		t.Fatalf("alpha = %v, want 1", c.A)
	}
	if c.Radiance() != (vectors.Vec3{X: 0.2, Y: 3, Z: 0}) {
		t.Fatalf("radiance round trip = %v", c.Radiance())
	}
}

func TestToNRGBAClamps(t *testing.T) {
	got := New(2, -1, 0.5, 1).ToNRGBA()
	exp := color.NRGBA{R: 255, G: 0, B: 127, A: 255}
	if got != exp {
		t.Fatalf("ToNRGBA = %v, want %v", got, exp)
	}
}

func TestEncode(t *testing.T) {
	c := New(0.25, 0.5, 4, 1)

	cases := []struct {
		name  string
		gamma float64
		exp   Color4
	}{
		{"linear", 1, New(0.25, 0.5, 1, 1)},
		{"gamma 2", 2, New(0.5, math.Sqrt(0.5), 1, 1)},
		{"srgb", 0, New(linearToSrgb(0.25), linearToSrgb(0.5), 1, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Encode(tc.gamma)
			if math.Abs(got.R-tc.exp.R) > 1e-12 || math.Abs(got.G-tc.exp.G) > 1e-12 || math.Abs(got.B-tc.exp.B) > 1e-9 {
				t.Fatalf("Encode(%v) = %v, want %v", tc.gamma, got, tc.exp)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !Black().IsFinite() {
		t.Fatal("black should be finite")
	}
	if New(math.NaN(), 0, 0, 1).IsFinite() {
		t.Fatal("NaN should not be finite")
	}
	if New(0, math.Inf(1), 0, 1).IsFinite() {
		t.Fatal("Inf should not be finite")
	}
}
