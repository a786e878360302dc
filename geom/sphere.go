package geom

import (
	"math"

	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/vectors"
)

// Sphere is a ball of the given Radius around Center.
type Sphere struct {
	Center   vectors.Vec3
	Radius   float64
	Material *material.Material
}

func NewSphere(center vectors.Vec3, radius float64, m *material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: m}
}

// Intersect solves |O + tD - C|² = r² for the nearest positive t.
func (s *Sphere) Intersect(ray vectors.Ray) Hit {
	dist := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * dist.Dot(ray.Direction)
	c := dist.Dot(dist) - s.Radius*s.Radius

	t := nearestRoot(a, b, c)
	if t <= 0 {
		return NoHit()
	}

	pos := ray.At(t)
	return Hit{
		T:        t,
		Position: pos,
		Normal:   pos.Sub(s.Center).Scale(1.0 / s.Radius),
		Material: s.Material,
	}
}

func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) || !s.Center.IsFinite() {
		return ErrInvalidRadius
	}
	return validateMaterial(s.Material)
}
