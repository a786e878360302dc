// Package sun places a directional light where the Sun stands in the sky
// of an observer on Earth at a given instant.
package sun

import (
	"errors"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/echoflaresat/whitted/vectors"
)

var ErrInvalidLocation = errors.New("sun: latitude must be within [-90, 90] degrees")

// Observer is a point on the Earth's surface, in degrees. Longitude is
// positive east.
type Observer struct {
	Lat float64
	Lon float64
}

// Direction returns the unit vector toward the Sun in the scene frame of
// an observer: +x east, +y up (zenith) and +z south, so that x × y = z.
func Direction(t time.Time, obs Observer) (vectors.Vec3, error) {
	if obs.Lat < -90 || obs.Lat > 90 {
		return vectors.Vec3{}, ErrInvalidLocation
	}

	t = t.UTC()
	jd := julian.TimeToJD(t)

	// Apparent RA/Dec of the Sun
	ra, dec := solar.ApparentEquatorial(jd)

	// Unit vector in ECI (Earth-centered inertial)
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Rotate ECI → ECEF using apparent sidereal time at the instant
	gast := sidereal.Apparent(jd).Angle()
	cosG, sinG := gast.Cos(), gast.Sin()
	xe := x*cosG + y*sinG
	ye := -x*sinG + y*cosG
	ze := z

	// ECEF → local east/north/up
	lat, lon := unit.AngleFromDeg(obs.Lat), unit.AngleFromDeg(obs.Lon)
	sinLat, cosLat := lat.Sin(), lat.Cos()
	sinLon, cosLon := lon.Sin(), lon.Cos()

	east := -sinLon*xe + cosLon*ye
	north := -sinLat*cosLon*xe - sinLat*sinLon*ye + cosLat*ze
	up := cosLat*cosLon*xe + cosLat*sinLon*ye + sinLat*ze

	return vectors.Vec3{X: east, Y: up, Z: -north}.Normalize(), nil
}

// Elevation returns the Sun's altitude above the horizon in degrees.
func Elevation(t time.Time, obs Observer) (float64, error) {
	dir, err := Direction(t, obs)
	if err != nil {
		return 0, err
	}
	return unit.Angle(math.Asin(math.Max(-1, math.Min(1, dir.Y)))).Deg(), nil
}
