package core

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tylerw/go-packet-raytracer/pkg/math"
)

// Hitable is the capability set every geometry object exposes to the
// dispatch pipeline. Implementations must be read-only: many render
// threads call these methods on the same object concurrently.
type Hitable interface {
	// Hit returns the per-lane nearest intersection distance within
	// [tMin, tMax), or a sentinel >= that lane's tMax if the lane does
	// not intersect. Invalid ray lanes never intersect.
	Hit(rays *WRay, tMin, tMax math.Float4) math.Float4

	// Occluded returns per-lane visibility in [0,1] for the segment
	// between start and end: 1 means unobstructed by this object,
	// 0 fully blocked, fractions mean partial (soft) occlusion.
	Occluded(start, end math.WVec3, time math.Float4) math.Float4

	// GetShadingInfo materializes the shading payload for a packed hit
	// against this object. primary marks batches that originate from
	// camera rays, which lets implementations size the
	// anti-self-intersection offset from the screen-space footprint at
	// the hit point instead of a fixed epsilon.
	GetShadingInfo(hits WHit, primary bool, camera Camera) (MaterialHandle, ShadingPoint)
}

// Camera produces one ray per screen coordinate. Implementations must be
// read-only and safe for concurrent use; randomness comes only from the
// caller-supplied source.
type Camera interface {
	// GetRay returns the ray through screen coordinate uv (both
	// components in [0,1]) at the given time. random is consumed only
	// by models that sample a lens.
	GetRay(uv mgl64.Vec2, time float64, random *rand.Rand) Ray
}

// Logger interface for pipeline logging
type Logger interface {
	Printf(format string, args ...interface{})
}
