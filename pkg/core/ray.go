package core

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tylerw/go-packet-raytracer/pkg/math"
)

// Ray represents a ray with an origin, a direction and a validity flag.
// An invalid ray is an inert sentinel: it never produces a hit and never
// contributes to occlusion, but flows through every lane operation
// unchanged.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
	Valid  bool
}

// NewRay creates a valid ray
func NewRay(origin, dir mgl64.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir, Valid: true}
}

// NewInvalidRay creates the inert sentinel ray used to pad partial packets
func NewInvalidRay() Ray {
	return Ray{}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// WRay packs four rays into one packet, one per lane. Lanes are
// independent and may mix valid and invalid rays.
type WRay struct {
	Origin math.WVec3
	Dir    math.WVec3
	Valid  [4]bool
}

// NewWRay packs four scalar rays into a packet, lane by lane
func NewWRay(rays [4]Ray) WRay {
	var origins, dirs [4]mgl64.Vec3
	var valid [4]bool
	for i, ray := range rays {
		origins[i] = ray.Origin
		dirs[i] = ray.Dir
		valid[i] = ray.Valid
	}
	return WRay{
		Origin: math.NewWVec3(origins),
		Dir:    math.NewWVec3(dirs),
		Valid:  valid,
	}
}

// Lane extracts the scalar ray held in lane i
func (r WRay) Lane(i int) Ray {
	return Ray{
		Origin: r.Origin.Lane(i),
		Dir:    r.Dir.Lane(i),
		Valid:  r.Valid[i],
	}
}

// PointAt returns the per-lane point at parameter t along each ray
func (r WRay) PointAt(t math.Float4) math.WVec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
