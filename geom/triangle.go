package geom

import (
	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/vectors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a planar face spanned by P1, P2, P3.
type Triangle struct {
	P1, P2, P3 vectors.Vec3
	Material   *material.Material
}

func NewTriangle(p1, p2, p3 vectors.Vec3, m *material.Material) *Triangle {
	return &Triangle{P1: p1, P2: p2, P3: p3, Material: m}
}

// Normal returns the unit geometric normal (P2-P1) × (P3-P1).
func (tr *Triangle) Normal() vectors.Vec3 {
	return tr.P2.Sub(tr.P1).Cross(tr.P3.Sub(tr.P1)).Normalize()
}

// Intersect hits the supporting plane and keeps points whose barycentric
// coordinates (u, v) satisfy u >= 0, v >= 0, u+v <= 1.
func (tr *Triangle) Intersect(ray vectors.Ray) Hit {
	e1 := tr.P2.Sub(tr.P1)
	e2 := tr.P3.Sub(tr.P1)
	normal := e1.Cross(e2)

	denom := ray.Direction.Dot(normal)
	if denom == 0 {
		return NoHit()
	}

	// Cramer's rule on O + tD = P1 + u·e1 + v·e2.
	s := ray.Origin.Sub(tr.P1)
	t := -normal.Dot(s) / denom
	u := -e2.Cross(ray.Direction.Neg()).Dot(s) / denom
	v := -ray.Direction.Neg().Cross(e1).Dot(s) / denom
	if u < 0 || v < 0 || u+v > 1 {
		return NoHit()
	}
	if t <= 0 {
		return NoHit()
	}

	return Hit{
		T:        t,
		Position: ray.At(t),
		Normal:   normal.Normalize(),
		Material: tr.Material,
	}
}

// Validate rejects collinear or coincident vertices.
func (tr *Triangle) Validate() error {
	a, b, c := toR3(tr.P1), toR3(tr.P2), toR3(tr.P3)
	area := 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
	if !(area > 0) {
		return ErrDegenerateTriangle
	}
	return validateMaterial(tr.Material)
}

func toR3(v vectors.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}
