package core

import (
	"github.com/tylerw/go-packet-raytracer/pkg/math"
)

// MaterialHandle is an opaque reference into an external material table.
// This core never interprets it, only routes it alongside shading data.
type MaterialHandle int

// Hit records one ray's intersection at parametric distance T
type Hit struct {
	Ray Ray
	T   float64
}

// WHit packs four scalar hits into one packet
type WHit struct {
	Ray WRay
	T   math.Float4
}

// NewWHit builds a packed hit from exactly four scalar hits
func NewWHit(hits [4]Hit) WHit {
	return WHit{
		Ray: NewWRay([4]Ray{hits[0].Ray, hits[1].Ray, hits[2].Ray, hits[3].Ray}),
		T:   math.Float4{hits[0].T, hits[1].T, hits[2].T, hits[3].T},
	}
}

// Point returns the per-lane world-space intersection point
func (h WHit) Point() math.WVec3 {
	return h.Ray.PointAt(h.T)
}

// ShadingPoint is the geometric payload a shading stage needs for one
// packed hit: world point, surface normal, a local frame built from the
// normal, and the offset used to keep secondary rays off the surface.
// Lane validity rides in Ray and must be honored downstream.
type ShadingPoint struct {
	Ray      WRay
	T        math.Float4
	Point    math.WVec3
	OffsetBy math.Float4
	Normal   math.WVec3
	Basis    math.WBasis
}

// NewShadingPoint derives the shading payload for a packed hit. The
// orthonormal basis is computed here, once per batch; normal must be
// unit length per lane.
func NewShadingPoint(hit WHit, point math.WVec3, offsetBy math.Float4, normal math.WVec3) ShadingPoint {
	return ShadingPoint{
		Ray:      hit.Ray,
		T:        hit.T,
		Point:    point,
		OffsetBy: offsetBy,
		Normal:   normal,
		Basis:    normal.OrthonormalBasis(),
	}
}

// CreateRays spawns secondary rays in the given per-lane directions. The
// origin is offset from the stored point along the normal by OffsetBy,
// signed so the offset moves away from the surface on the side the new
// direction leaves through. Lane validity is inherited from the hit.
func (sp ShadingPoint) CreateRays(dir math.WVec3) WRay {
	ray := sp.Ray
	ray.Origin = sp.Point.Add(sp.Normal.Scale(sp.Normal.Dot(dir).Sign().Mul(sp.OffsetBy)))
	ray.Dir = dir
	return ray
}

// Intersection pairs a material reference with the shading payload for
// one processed batch; it is the pipeline's output unit
type Intersection struct {
	Material MaterialHandle
	Shading  ShadingPoint
}
