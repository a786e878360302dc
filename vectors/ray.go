package vectors

// Ray is a half-line with a unit-length direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay normalizes dir once; a zero dir yields a zero direction.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point origin + t*direction.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
