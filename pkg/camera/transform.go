// Package camera provides the camera models that turn screen
// coordinates into primary rays: a pinhole driven by a rigid transform
// sequence, and a thin lens with finite aperture and focus distance.
package camera

import "github.com/go-gl/mathgl/mgl64"

// Transform is a time-sampled rigid pose: a position and an orientation
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewTransform creates a rigid transform
func NewTransform(position mgl64.Vec3, orientation mgl64.Quat) Transform {
	return Transform{Position: position, Orientation: orientation}
}

// IdentityTransform returns the transform that leaves rays unchanged
func IdentityTransform() Transform {
	return Transform{Orientation: mgl64.QuatIdent()}
}
