package geom

import (
	"math"

	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/vectors"
)

// Ellipsoid is the "egg": the implicit surface
// ((x-cx)/ax)² + ((y-cy)/ay)² + ((z-cz)/az)² = 1.
type Ellipsoid struct {
	Center   vectors.Vec3
	Axes     vectors.Vec3
	Material *material.Material
}

func NewEllipsoid(center, axes vectors.Vec3, m *material.Material) *Ellipsoid {
	return &Ellipsoid{Center: center, Axes: axes, Material: m}
}

// Intersect scales the ray into the unit-sphere space of the ellipsoid.
// The ray parameter t is unchanged by the scaling.
func (e *Ellipsoid) Intersect(ray vectors.Ray) Hit {
	o := ray.Origin.Sub(e.Center).Div(e.Axes)
	d := ray.Direction.Div(e.Axes)

	a := d.Dot(d)
	b := 2.0 * o.Dot(d)
	c := o.Dot(o) - 1.0

	t := nearestRoot(a, b, c)
	if t <= 0 {
		return NoHit()
	}

	pos := ray.At(t)
	// gradient of the implicit function
	grad := pos.Sub(e.Center).Div(e.Axes.Mul(e.Axes))
	return Hit{
		T:        t,
		Position: pos,
		Normal:   grad.Normalize(),
		Material: e.Material,
	}
}

func (e *Ellipsoid) Validate() error {
	for _, v := range []float64{e.Axes.X, e.Axes.Y, e.Axes.Z} {
		if !(v > 0) || math.IsInf(v, 0) {
			return ErrInvalidAxes
		}
	}
	if !e.Center.IsFinite() {
		return ErrInvalidAxes
	}
	return validateMaterial(e.Material)
}
