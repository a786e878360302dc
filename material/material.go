// Package material describes how a surface responds to incoming light.
//
// Materials are built once when a scene is assembled and are shared
// read-only by every shape that references them.
package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/whitted/vectors"
)

var (
	ErrZeroIOR            = errors.New("material: index of refraction must be non-zero")
	ErrInvalidShininess   = errors.New("material: shininess must be non-negative")
	ErrInvalidCoefficient = errors.New("material: coefficients must be finite")
)

// Kind selects the response model of a Material.
type Kind int

const (
	Rough Kind = iota
	Reflective
	Refractive
)

func (k Kind) String() string {
	switch k {
	case Rough:
		return "rough"
	case Reflective:
		return "reflective"
	case Refractive:
		return "refractive"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Material is a tagged variant. Only the fields of its Kind are meaningful:
// Ambient/Diffuse/Specular/Shininess for Rough, F0 for Reflective and
// F0/IOR for Refractive.
type Material struct {
	Kind Kind

	Ambient   vectors.Vec3
	Diffuse   vectors.Vec3
	Specular  vectors.Vec3
	Shininess float64

	F0  vectors.Vec3
	IOR float64
}

// NewRough builds a diffuse+specular material. Ambient is derived as
// diffuse*π and cannot be set independently.
func NewRough(diffuse, specular vectors.Vec3, shininess float64) *Material {
	return &Material{
		Kind:      Rough,
		Ambient:   diffuse.Scale(math.Pi),
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewReflective builds a mirror from the complex refractive index (n, kappa):
// F0 = ((n-1)² + κ²) / ((n+1)² + κ²), per channel.
func NewReflective(n, kappa vectors.Vec3) *Material {
	one := vectors.Splat(1)
	nm, np := n.Sub(one), n.Add(one)
	k2 := kappa.Mul(kappa)
	return &Material{
		Kind: Reflective,
		F0:   nm.Mul(nm).Add(k2).Div(np.Mul(np).Add(k2)),
	}
}

// NewRefractive builds a dielectric from the real index n. The scalar
// IOR is taken from n.X.
func NewRefractive(n vectors.Vec3) *Material {
	one := vectors.Splat(1)
	nm, np := n.Sub(one), n.Add(one)
	return &Material{
		Kind: Refractive,
		F0:   nm.Mul(nm).Div(np.Mul(np)),
		IOR:  n.X,
	}
}

// Fresnel evaluates Schlick's approximation F0 + (1-F0)(1-cosα)^5.
func (m *Material) Fresnel(cosAlpha float64) vectors.Vec3 {
	one := vectors.Splat(1)
	return m.F0.Add(one.Sub(m.F0).Scale(math.Pow(1-cosAlpha, 5)))
}

// Validate rejects materials that would divide by zero or inject NaN
// while tracing.
func (m *Material) Validate() error {
	switch m.Kind {
	case Rough:
		if !m.Diffuse.IsFinite() || !m.Specular.IsFinite() || math.IsNaN(m.Shininess) {
			return ErrInvalidCoefficient
		}
		if m.Shininess < 0 {
			return ErrInvalidShininess
		}
	case Reflective:
		if !m.F0.IsFinite() {
			return ErrInvalidCoefficient
		}
	case Refractive:
		if m.IOR == 0 {
			return ErrZeroIOR
		}
		if !m.F0.IsFinite() || math.IsNaN(m.IOR) || math.IsInf(m.IOR, 0) {
			return ErrInvalidCoefficient
		}
	default:
		return fmt.Errorf("material: unknown kind %d", int(m.Kind))
	}
	return nil
}
