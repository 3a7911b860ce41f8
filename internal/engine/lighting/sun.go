// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/driftlabs/driftline/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a
// normalized direction vector pointing towards the sun. Longitude is
// rotation around the Y axis (0-360), latitude is elevation from the
// horizon (0-90).
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := longitude * math.Pi / 180.0
	latRad := latitude * math.Pi / 180.0

	return math.Vec3{
		X: math.Cos(latRad) * math.Sin(lonRad),
		Y: math.Sin(latRad),
		Z: math.Cos(latRad) * math.Cos(lonRad),
	}
}
