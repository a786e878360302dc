package colors

import (
	"image/color"
	"math"

	"github.com/echoflaresat/whitted/vectors"
)

// Color4 is a linear RGBA color with float64 components. Radiance values
// may exceed 1; they are clamped only when converted to 8 bits.
type Color4 struct {
	R, G, B, A float64
}

func New(r, g, b, a float64) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

// FromRadiance wraps an RGB radiance triple as an opaque color.
func FromRadiance(v vectors.Vec3) Color4 {
	return Color4{R: v.X, G: v.Y, B: v.Z, A: 1}
}

// Radiance drops alpha.
func (c Color4) Radiance() vectors.Vec3 {
	return vectors.Vec3{X: c.R, Y: c.G, Z: c.B}
}

func (c Color4) RGBA() (r, g, b, a uint32) {
	rf := clamp01(c.R)
	gf := clamp01(c.G)
	bf := clamp01(c.B)
	af := clamp01(c.A)

	// Convert to pre-multiplied 16-bit values
	return uint32(rf * af * 65535),
		uint32(gf * af * 65535),
		uint32(bf * af * 65535),
		uint32(af * 65535)
}

func Black() Color4 {
	return Color4{R: 0, G: 0, B: 0, A: 1}
}

// Add returns c + o (component-wise).
func (c Color4) Add(o Color4) Color4 {
	return Color4{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Mul returns c * o (component-wise).
func (c Color4) Mul(o Color4) Color4 {
	return Color4{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale returns c * s (scalar).
func (c Color4) Scale(s float64) Color4 {
	return Color4{c.R * s, c.G * s, c.B * s, c.A * s}
}

func (c Color4) Pow(gamma float64) Color4 {
	return Color4{
		R: math.Pow(c.R, gamma),
		G: math.Pow(c.G, gamma),
		B: math.Pow(c.B, gamma),
		A: c.A, // leave alpha untouched
	}
}

// Clamp01 clamps each component into [0,1].
func (c Color4) Clamp01() Color4 {
	return Color4{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// Encode maps linear radiance to display values. gamma <= 0 selects the
// sRGB transfer curve, gamma == 1 leaves values linear.
func (c Color4) Encode(gamma float64) Color4 {
	c = c.Clamp01()
	switch {
	case gamma <= 0:
		return Color4{linearToSrgb(c.R), linearToSrgb(c.G), linearToSrgb(c.B), c.A}
	case gamma == 1:
		return c
	}
	return c.Pow(1.0 / gamma)
}

// IsFinite reports whether no channel is NaN or infinite.
func (c Color4) IsFinite() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ToNRGBA truncates each clamped channel to 8 bits.
func (c Color4) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		to8bit(c.R),
		to8bit(c.G),
		to8bit(c.B),
		to8bit(c.A),
	}
}

// --- helpers ---

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	return uint8(255.0 * clamp01(x))
}

// IEC 61966-2-1 linear -> sRGB
func linearToSrgb(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}
