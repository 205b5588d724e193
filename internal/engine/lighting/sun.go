// Package lighting describes the scene's directional light.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light.
type Sun struct {
	// Direction points from the scene towards the sun.
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Ambient   mgl32.Vec3
}

// DefaultSun is a white sun high over the front-left of the scene.
func DefaultSun() Sun {
	return Sun{
		Direction: SunDirection(-30, 60),
		Color:     mgl32.Vec3{1, 1, 1},
		Ambient:   mgl32.Vec3{0.3, 0.3, 0.35},
	}
}

// SunDirection converts longitude/latitude angles in degrees to a unit vector pointing
// towards the sun. Longitude rotates about Y starting from +Z (positive turns towards
// +X), latitude is elevation above the horizon.
func SunDirection(longitude, latitude float32) mgl32.Vec3 {
	lonRad := float64(mgl32.DegToRad(longitude))
	latRad := float64(mgl32.DegToRad(latitude))

	return mgl32.Vec3{
		float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		float32(gomath.Sin(latRad)),
		float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}
