package camera

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tylerw/go-packet-raytracer/pkg/anim"
	"github.com/tylerw/go-packet-raytracer/pkg/core"
	mathpkg "github.com/tylerw/go-packet-raytracer/pkg/math"
)

// ThinLens simulates a camera with a finite aperture focused on a point,
// producing depth of field. Aperture, pose and focus point are all
// time-sampled sequences; with the aperture sampled to zero it
// degenerates to a pinhole ray through the same screen point.
//
// Degenerate configurations (zero focus distance, zero-length up) are a
// caller contract violation and are not defended against.
type ThinLens struct {
	halfSize mgl64.Vec2
	aperture anim.Sequenced[float64]
	origin   anim.Sequenced[mgl64.Vec3]
	at       anim.Sequenced[mgl64.Vec3]
	up       anim.Sequenced[mgl64.Vec3]
	focus    anim.Sequenced[mgl64.Vec3]
}

// NewThinLens creates a thin-lens camera. vfov is the vertical field of
// view in degrees; aspect is width over height.
func NewThinLens(
	aspect, vfov float64,
	aperture anim.Sequenced[float64],
	origin, at, up, focus anim.Sequenced[mgl64.Vec3],
) *ThinLens {
	theta := mgl64.DegToRad(vfov)
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight
	return &ThinLens{
		halfSize: mgl64.Vec2{halfWidth, halfHeight},
		aperture: aperture,
		origin:   origin,
		at:       at,
		up:       up,
		focus:    focus,
	}
}

// GetRay returns the ray through screen coordinate uv at the given time,
// with its origin jittered across the lens aperture
func (c *ThinLens) GetRay(uv mgl64.Vec2, time float64, random *rand.Rand) core.Ray {
	origin := c.origin.SampleAt(time)
	at := c.at.SampleAt(time)
	up := c.up.SampleAt(time)
	focus := c.focus.SampleAt(time)
	focusDist := focus.Sub(origin).Len()
	aperture := c.aperture.SampleAt(time)

	// View basis: w looks backwards, u spans the image plane
	// horizontally, v vertically
	basisW := origin.Sub(at).Normalize()
	basisU := up.Cross(basisW).Normalize()
	basisV := basisW.Cross(basisU)

	// Focus-plane geometry, scaled so the plane through the focus point
	// stays in sharp focus
	lowerLeft := origin.
		Sub(basisU.Mul(c.halfSize.X() * focusDist)).
		Sub(basisV.Mul(c.halfSize.Y() * focusDist)).
		Sub(basisW.Mul(focusDist))
	horizontal := basisU.Mul(c.halfSize.X() * focusDist * 2 * uv.X())
	vertical := basisV.Mul(c.halfSize.Y() * focusDist * 2 * uv.Y())

	// Jitter the origin across the aperture disk
	rd := mathpkg.RandomInUnitDisk(random).Mul(aperture)
	offset := basisU.Mul(rd.X()).Add(basisV.Mul(rd.Y()))

	rayOrigin := origin.Add(offset)
	target := lowerLeft.Add(horizontal).Add(vertical)
	return core.NewRay(rayOrigin, target.Sub(rayOrigin).Normalize())
}
