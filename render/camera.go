package render

import (
	"math"

	"github.com/echoflaresat/whitted/vectors"
)

// Camera models a pinhole camera whose image plane is centered at LookAt.
//
// Right and Up are derived from Eye, LookAt, VUp and FOV by Set and are
// scaled to the half extent of the image plane. Never assign them directly.
type Camera struct {
	Eye    vectors.Vec3
	LookAt vectors.Vec3
	VUp    vectors.Vec3
	FOV    float64 // radians
	Right  vectors.Vec3
	Up     vectors.Vec3
}

// NewCamera returns a camera already Set from the given view.
func NewCamera(eye, lookAt, vup vectors.Vec3, fov float64) Camera {
	var c Camera
	c.Set(eye, lookAt, vup, fov)
	return c
}

// Set stores the view and re-derives the right-handed basis:
// w = eye - lookat, half extent = |w|·tan(fov/2),
// right = normalize(vup × w)·extent, up = normalize(w × right)·extent.
func (c *Camera) Set(eye, lookAt, vup vectors.Vec3, fov float64) {
	c.Eye = eye
	c.LookAt = lookAt
	c.VUp = vup
	c.FOV = fov

	w := eye.Sub(lookAt)
	windowSize := w.Norm() * math.Tan(fov/2.0)
	c.Right = vup.Cross(w).Normalize().Scale(windowSize)
	c.Up = w.Cross(c.Right).Normalize().Scale(windowSize)
}

// GetRay returns the ray from the eye through the center of pixel (x, y)
// of a width×height image. y grows upward on the image plane.
func (c Camera) GetRay(x, y, width, height int) vectors.Ray {
	return c.ComputeRay(float64(x)+0.5, float64(y)+0.5, width, height)
}

// ComputeRay returns the ray through the continuous image position
// (px, py), measured in pixels from the bottom-left corner.
func (c Camera) ComputeRay(px, py float64, width, height int) vectors.Ray {
	sx := 2.0*px/float64(width) - 1.0
	sy := 2.0*py/float64(height) - 1.0

	target := c.LookAt.Add(c.Right.Scale(sx)).Add(c.Up.Scale(sy))
	return vectors.NewRay(c.Eye, target.Sub(c.Eye))
}

// Animate orbits the eye around LookAt about the vertical axis by dt
// radians and re-derives the basis.
func (c *Camera) Animate(dt float64) {
	d := c.Eye.Sub(c.LookAt)
	axis := vectors.Vec3{X: 0, Y: 1, Z: 0}
	eye := rotateVec(d, axis, math.Cos(dt), math.Sin(dt)).Add(c.LookAt)
	c.Set(eye, c.LookAt, c.VUp, c.FOV)
}

// Forward returns the unit viewing direction.
func (c Camera) Forward() vectors.Vec3 {
	return c.LookAt.Sub(c.Eye).Normalize()
}

// rotateVec applies Rodrigues’ rotation formula: rotate v around axis by (cosT, sinT).
func rotateVec(v, axis vectors.Vec3, cosT, sinT float64) vectors.Vec3 {
	// v*cos + (axis x v)*sin + axis*(axis·v)*(1-cos)
	return v.Scale(cosT).
		Add(axis.Cross(v).Scale(sinT)).
		Add(axis.Scale(axis.Dot(v) * (1.0 - cosT)))
}
