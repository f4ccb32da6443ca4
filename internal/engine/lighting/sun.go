// Package lighting provides the directional light used by the model renderer.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts an azimuth around Y (0-360) and an elevation above the
// horizon (0-90), both in degrees, to the unit direction the light travels.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	// Vector pointing at the sun, negated.
	return mgl32.Vec3{
		float32(-math.Cos(el) * math.Sin(az)),
		float32(-math.Sin(el)),
		float32(-math.Cos(el) * math.Cos(az)),
	}
}
