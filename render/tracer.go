package render

import (
	"math"

	"github.com/echoflaresat/whitted/geom"
	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/vectors"
)

// tracer carries per-worker counters for one pass over a scene. It is not
// safe for concurrent use; each worker owns one.
type tracer struct {
	scene *Scene

	// rays counts trace invocations, shadowRays counts occlusion tests.
	rays       int64
	shadowRays int64
}

func (t *tracer) trace(ray vectors.Ray, depth int) vectors.Vec3 {
	t.rays++
	s := t.scene

	if depth > MaxDepth {
		return s.ambient
	}
	hit := s.FirstIntersect(ray)
	if hit.T < 0 {
		return s.ambient
	}

	m := hit.Material
	if m.Kind == material.Rough {
		return t.shadeRough(ray, hit)
	}

	one := vectors.Splat(1)
	cosa := -ray.Direction.Dot(hit.Normal)
	F := m.Fresnel(cosa)

	reflected := vectors.NewRay(hit.Position.Add(hit.Normal.Scale(Epsilon)), ray.Direction.Reflect(hit.Normal))
	outRadiance := t.trace(reflected, depth+1).Mul(F)

	if m.Kind == material.Refractive {
		ior := m.IOR
		disc := 1 - (1-cosa*cosa)/(ior*ior)
		// disc < 0 is total internal reflection: only the reflected term remains
		if disc >= 0 {
			dir := ray.Direction.Scale(1 / ior).Add(hit.Normal.Scale(cosa/ior - math.Sqrt(disc)))
			refracted := vectors.NewRay(hit.Position.Sub(hit.Normal.Scale(Epsilon)), dir)
			outRadiance = outRadiance.Add(t.trace(refracted, depth+1).Mul(one.Sub(F)))
		}
	}
	return outRadiance
}

// shadeRough accumulates ambient, Lambert and Blinn-Phong terms for every
// unoccluded light facing the surface.
func (t *tracer) shadeRough(ray vectors.Ray, hit geom.Hit) vectors.Vec3 {
	s := t.scene
	m := hit.Material

	outRadiance := m.Ambient.Mul(s.ambient)
	for _, light := range s.lights {
		cosTheta := hit.Normal.Dot(light.Direction)
		if cosTheta <= 0 {
			continue
		}

		t.shadowRays++
		shadowRay := vectors.NewRay(hit.Position.Add(hit.Normal.Scale(Epsilon)), light.Direction)
		if s.ShadowIntersect(shadowRay) {
			continue
		}

		outRadiance = outRadiance.Add(light.Radiance.Mul(m.Diffuse).Scale(cosTheta))
		halfway := ray.Direction.Neg().Add(light.Direction).Normalize()
		if cosDelta := hit.Normal.Dot(halfway); cosDelta > 0 {
			outRadiance = outRadiance.Add(light.Radiance.Mul(m.Specular).Scale(math.Pow(cosDelta, m.Shininess)))
		}
	}
	return outRadiance
}
