package camera

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tylerw/go-packet-raytracer/pkg/anim"
	"github.com/tylerw/go-packet-raytracer/pkg/core"
)

// Pinhole is an ideal camera with no lens. The image plane sits one unit
// in front of the camera; its corner and extent are fixed from the
// aspect ratio at construction, and the camera pose is sampled from a
// transform sequence at ray time.
type Pinhole struct {
	lowerLeft mgl64.Vec3
	fullSize  mgl64.Vec3
	transform anim.Sequenced[Transform]
}

// NewPinhole creates a pinhole camera for the given aspect ratio
func NewPinhole(aspectRatio float64, transform anim.Sequenced[Transform]) *Pinhole {
	return &Pinhole{
		lowerLeft: mgl64.Vec3{-aspectRatio * 0.5, -0.5, -1.0},
		fullSize:  mgl64.Vec3{aspectRatio, 1.0, 0},
		transform: transform,
	}
}

// GetRay returns the ray through screen coordinate uv at the given time.
// Deterministic for a given uv and time; random is never consumed.
func (c *Pinhole) GetRay(uv mgl64.Vec2, time float64, random *rand.Rand) core.Ray {
	transform := c.transform.SampleAt(time)

	screen := c.lowerLeft.Add(mgl64.Vec3{
		c.fullSize.X() * uv.X(),
		c.fullSize.Y() * uv.Y(),
		c.fullSize.Z(),
	})

	return core.NewRay(transform.Position, transform.Orientation.Rotate(screen.Normalize()))
}
