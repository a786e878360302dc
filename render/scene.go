package render

import (
	"fmt"
	"math"

	"github.com/echoflaresat/whitted/geom"
	"github.com/echoflaresat/whitted/vectors"
)

const (
	// MaxDepth bounds the reflection/refraction recursion. A ray at
	// depth MaxDepth+1 returns the ambient radiance.
	MaxDepth = 5

	// Epsilon offsets secondary ray origins along the normal so they do
	// not re-hit the surface they leave.
	Epsilon = 1e-4
)

// Light is a directional light; Direction points toward the light.
type Light struct {
	Direction vectors.Vec3
	Radiance  vectors.Vec3
}

// NewLight normalizes dir. A zero dir is kept as zero and rejected by Build.
func NewLight(dir, radiance vectors.Vec3) Light {
	return Light{Direction: dir.Normalize(), Radiance: radiance}
}

// Scene owns the shapes, lights and camera of one render.
//
// Everything but the camera is immutable after Build. The camera only
// changes through Animate, which must not run concurrently with Render.
type Scene struct {
	objects []geom.Intersectable
	lights  []Light
	camera  Camera
	ambient vectors.Vec3
}

// Build validates its inputs and returns a ready scene. Degenerate
// materials, shapes, lights and cameras are rejected here so tracing
// never has to check for them.
func Build(camera Camera, ambient vectors.Vec3, objects []geom.Intersectable, lights []Light) (*Scene, error) {
	if err := validateCamera(camera); err != nil {
		return nil, err
	}
	if !ambient.IsFinite() || ambient.X < 0 || ambient.Y < 0 || ambient.Z < 0 {
		return nil, ErrInvalidAmbient
	}

	for i, obj := range objects {
		if obj == nil {
			return nil, fmt.Errorf("object %d: %w", i, ErrNilObject)
		}
		if err := obj.Validate(); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}

	owned := make([]Light, len(lights))
	for i, l := range lights {
		if !l.Direction.IsFinite() || !l.Radiance.IsFinite() {
			return nil, fmt.Errorf("light %d: %w", i, ErrInvalidLight)
		}
		if l.Direction.Norm() == 0 {
			return nil, fmt.Errorf("light %d: %w", i, ErrZeroLightDirection)
		}
		owned[i] = Light{Direction: l.Direction.Normalize(), Radiance: l.Radiance}
	}

	return &Scene{
		objects: append([]geom.Intersectable(nil), objects...),
		lights:  owned,
		camera:  camera,
		ambient: ambient,
	}, nil
}

func validateCamera(c Camera) error {
	if !c.Eye.IsFinite() || !c.LookAt.IsFinite() || !c.VUp.IsFinite() {
		return ErrInvalidCamera
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		return ErrInvalidCamera
	}
	if c.Eye.Sub(c.LookAt).Norm() == 0 || c.Right.Norm() == 0 || c.Up.Norm() == 0 {
		return ErrInvalidCamera
	}
	return nil
}

func (s *Scene) Camera() Camera {
	return s.camera
}

func (s *Scene) Ambient() vectors.Vec3 {
	return s.ambient
}

func (s *Scene) Lights() []Light {
	return s.lights
}

func (s *Scene) Objects() []geom.Intersectable {
	return s.objects
}

// Animate advances scene time by orbiting the camera.
func (s *Scene) Animate(dt float64) {
	s.camera.Animate(dt)
}

// FirstIntersect returns the nearest hit over all objects with its normal
// turned against the incoming ray. A miss is returned unchanged.
func (s *Scene) FirstIntersect(ray vectors.Ray) geom.Hit {
	best := geom.NoHit()
	for _, obj := range s.objects {
		hit := obj.Intersect(ray)
		if hit.T > 0 && (best.T < 0 || hit.T < best.T) {
			best = hit
		}
	}

	// the sentinel has a zero normal, nothing to orient
	if best.T < 0 {
		return best
	}
	if ray.Direction.Dot(best.Normal) > 0 {
		best.Normal = best.Normal.Neg()
	}
	return best
}

// ShadowIntersect reports whether any object lies along ray.
func (s *Scene) ShadowIntersect(ray vectors.Ray) bool {
	for _, obj := range s.objects {
		if obj.Intersect(ray).T > 0 {
			return true
		}
	}
	return false
}

// Trace returns the radiance arriving along ray.
func (s *Scene) Trace(ray vectors.Ray) vectors.Vec3 {
	t := tracer{scene: s}
	return t.trace(ray, 0)
}
