package trace

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tylerw/go-packet-raytracer/pkg/core"
	"github.com/tylerw/go-packet-raytracer/pkg/math"
)

// testSphere is a minimal wide-lane sphere used as scene geometry in
// tests. Concrete primitives live outside this module; this one exists
// only to exercise the dispatch pipeline.
type testSphere struct {
	center   mgl64.Vec3
	radius   float64
	material core.MaterialHandle
	offsetBy float64
}

func newTestSphere(center mgl64.Vec3, radius float64, material core.MaterialHandle) *testSphere {
	return &testSphere{center: center, radius: radius, material: material, offsetBy: 1e-3}
}

// intersect solves the sphere quadratic for one scalar ray, returning
// the nearest root in [tMin, tMax] and whether one exists
func (s *testSphere) intersect(ray core.Ray, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Sub(s.center)
	a := ray.Dir.Dot(ray.Dir)
	halfB := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := stdmath.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, false
		}
	}
	return root, true
}

func (s *testSphere) Hit(rays *core.WRay, tMin, tMax math.Float4) math.Float4 {
	result := tMax
	for lane := 0; lane < 4; lane++ {
		ray := rays.Lane(lane)
		if !ray.Valid {
			continue
		}
		if t, ok := s.intersect(ray, tMin[lane], tMax[lane]); ok {
			result[lane] = t
		}
	}
	return result
}

func (s *testSphere) Occluded(start, end math.WVec3, time math.Float4) math.Float4 {
	visibility := math.Splat(1)
	for lane := 0; lane < 4; lane++ {
		segment := core.NewRay(start.Lane(lane), end.Lane(lane).Sub(start.Lane(lane)))
		if _, ok := s.intersect(segment, 1e-4, 1-1e-4); ok {
			visibility[lane] = 0
		}
	}
	return visibility
}

func (s *testSphere) GetShadingInfo(hits core.WHit, primary bool, camera core.Camera) (core.MaterialHandle, core.ShadingPoint) {
	point := hits.Point()
	normal := point.Sub(math.SplatVec3(s.center)).Scale(math.Splat(1 / s.radius))
	return s.material, core.NewShadingPoint(hits, point, math.Splat(s.offsetBy), normal)
}

// constHitable reports the same t for every valid lane, for exercising
// the tie-break and fold order without real geometry
type constHitable struct {
	t        float64
	material core.MaterialHandle
}

func (c *constHitable) Hit(rays *core.WRay, tMin, tMax math.Float4) math.Float4 {
	result := tMax
	for lane := 0; lane < 4; lane++ {
		if rays.Valid[lane] && c.t >= tMin[lane] && c.t < tMax[lane] {
			result[lane] = c.t
		}
	}
	return result
}

func (c *constHitable) Occluded(start, end math.WVec3, time math.Float4) math.Float4 {
	return math.Splat(1)
}

func (c *constHitable) GetShadingInfo(hits core.WHit, primary bool, camera core.Camera) (core.MaterialHandle, core.ShadingPoint) {
	point := hits.Point()
	return c.material, core.NewShadingPoint(hits, point, math.Splat(1e-3), math.SplatVec3(mgl64.Vec3{0, 0, 1}))
}

// partialOccluder attenuates every lane by a fixed factor, for testing
// the multiplicative visibility fold
type partialOccluder struct {
	factor float64
}

func (p *partialOccluder) Hit(rays *core.WRay, tMin, tMax math.Float4) math.Float4 {
	return tMax
}

func (p *partialOccluder) Occluded(start, end math.WVec3, time math.Float4) math.Float4 {
	return math.Splat(p.factor)
}

func (p *partialOccluder) GetShadingInfo(hits core.WHit, primary bool, camera core.Camera) (core.MaterialHandle, core.ShadingPoint) {
	point := hits.Point()
	return 0, core.NewShadingPoint(hits, point, math.Splat(1e-3), math.SplatVec3(mgl64.Vec3{0, 0, 1}))
}

// straightRay aims a valid ray down -z from the given x offset
func straightRay(x float64) core.Ray {
	return core.NewRay(mgl64.Vec3{x, 0, 0}, mgl64.Vec3{0, 0, -1})
}

// packetOf repeats one ray across all four lanes
func packetOf(ray core.Ray) core.WRay {
	return core.NewWRay([4]core.Ray{ray, ray, ray, ray})
}

// countValidLanes tallies the real (non-padding) lanes in a pass output
func countValidLanes(intersections []core.Intersection) int {
	count := 0
	for _, intersection := range intersections {
		for lane := 0; lane < 4; lane++ {
			if intersection.Shading.Ray.Valid[lane] {
				count++
			}
		}
	}
	return count
}
