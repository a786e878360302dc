// Package geom implements the ray/shape intersection tests.
package geom

import (
	"errors"
	"math"

	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/vectors"
)

var (
	ErrInvalidRadius      = errors.New("geom: radius must be positive")
	ErrInvalidAxes        = errors.New("geom: ellipsoid axes must be positive")
	ErrInvalidScale       = errors.New("geom: scale must be positive")
	ErrDegenerateTriangle = errors.New("geom: triangle has zero area")
	ErrMissingMaterial    = errors.New("geom: shape has no material")
)

// Hit is the result of an intersection test. T == -1 means no hit.
//
// Normal is unit length and not yet oriented against the ray; the
// scene flips it. Material is borrowed from the shape.
type Hit struct {
	T        float64
	Position vectors.Vec3
	Normal   vectors.Vec3
	Material *material.Material
}

// NoHit returns the sentinel miss.
func NoHit() Hit {
	return Hit{T: -1}
}

// Valid reports whether the hit lies strictly in front of the ray origin.
func (h Hit) Valid() bool {
	return h.T > 0
}

// Intersectable is implemented by every shape a scene can hold.
type Intersectable interface {
	// Intersect returns the nearest hit with t > 0, or NoHit().
	Intersect(ray vectors.Ray) Hit

	// Validate reports shape parameters that would make tracing
	// produce NaN or Inf.
	Validate() error
}

func validateMaterial(m *material.Material) error {
	if m == nil {
		return ErrMissingMaterial
	}
	return m.Validate()
}

// nearestRoot picks the smaller positive root of a·t² + b·t + c = 0,
// or -1 when the discriminant is negative or both roots are <= 0.
func nearestRoot(a, b, c float64) float64 {
	discriminant := b*b - 4.0*a*c
	if discriminant < 0 || a == 0 {
		return -1.0
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2.0 * a)
	t2 := (-b + sqrtDisc) / (2.0 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}
	return -1.0
}
