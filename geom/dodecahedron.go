package geom

import (
	"math"

	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/vectors"
)

const invPhi = 1.0 / math.Phi

// Vertices of the regular dodecahedron with edge 2/φ centered at the origin.
var dodecahedronVertices = [20]vectors.Vec3{
	{X: 0, Y: invPhi, Z: math.Phi},
	{X: 0, Y: -invPhi, Z: math.Phi},
	{X: 0, Y: -invPhi, Z: -math.Phi},
	{X: 0, Y: invPhi, Z: -math.Phi},
	{X: math.Phi, Y: 0, Z: invPhi},
	{X: -math.Phi, Y: 0, Z: invPhi},
	{X: -math.Phi, Y: 0, Z: -invPhi},
	{X: math.Phi, Y: 0, Z: -invPhi},
	{X: invPhi, Y: math.Phi, Z: 0},
	{X: -invPhi, Y: math.Phi, Z: 0},
	{X: -invPhi, Y: -math.Phi, Z: 0},
	{X: invPhi, Y: -math.Phi, Z: 0},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: -1},
}

// Pentagons as vertex indices in boundary order.
var dodecahedronFaces = [12][5]int{
	{0, 1, 15, 4, 12},
	{0, 12, 8, 9, 13},
	{0, 13, 5, 14, 1},
	{1, 14, 10, 11, 15},
	{2, 3, 17, 7, 16},
	{2, 16, 11, 10, 19},
	{2, 19, 6, 18, 3},
	{18, 9, 8, 17, 3},
	{15, 11, 16, 7, 4},
	{4, 7, 17, 8, 12},
	{13, 9, 18, 6, 5},
	{5, 6, 19, 10, 14},
}

// Dodecahedron is a regular dodecahedron whose pentagons are fan
// triangulated into 36 triangles sharing one material.
type Dodecahedron struct {
	Center   vectors.Vec3
	Scale    float64
	Material *material.Material

	faces []*Triangle
}

// NewDodecahedron places the unit-table dodecahedron at center, scaled by scale.
func NewDodecahedron(center vectors.Vec3, scale float64, m *material.Material) *Dodecahedron {
	d := &Dodecahedron{Center: center, Scale: scale, Material: m}

	vertex := func(i int) vectors.Vec3 {
		return dodecahedronVertices[i].Scale(scale).Add(center)
	}
	d.faces = make([]*Triangle, 0, len(dodecahedronFaces)*3)
	for _, f := range dodecahedronFaces {
		for k := 1; k < 4; k++ {
			d.faces = append(d.faces, NewTriangle(vertex(f[0]), vertex(f[k]), vertex(f[k+1]), m))
		}
	}
	return d
}

// Faces returns the triangles making up the surface.
func (d *Dodecahedron) Faces() []*Triangle {
	return d.faces
}

func (d *Dodecahedron) Intersect(ray vectors.Ray) Hit {
	best := NoHit()
	for _, f := range d.faces {
		hit := f.Intersect(ray)
		if hit.T > 0 && (best.T < 0 || hit.T < best.T) {
			best = hit
		}
	}
	return best
}

func (d *Dodecahedron) Validate() error {
	if !(d.Scale > 0) || math.IsInf(d.Scale, 0) {
		return ErrInvalidScale
	}
	for _, f := range d.faces {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return validateMaterial(d.Material)
}
