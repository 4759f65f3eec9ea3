// Package trace is the intersection-and-shading dispatch pipeline: it
// finds, per packet lane, the nearest intersected object across a scene
// collection, stages the resulting scalar hits per object, and re-packs
// them into dense 4-wide batches before paying for shading-basis
// computation.
package trace

import (
	"github.com/tylerw/go-packet-raytracer/pkg/core"
	"github.com/tylerw/go-packet-raytracer/pkg/math"
)

// noHit marks a lane whose ray intersected nothing
const noHit = -1

// HitableStore is an ordered collection of geometry objects. An object's
// position in the collection is its stable numeric id: ids are assigned
// once at Push time and never reused or reassigned, and every HitStore
// serving this store is sized against the same id space. Populate the
// store before rendering starts; it is read-only afterwards and safe to
// share across workers.
type HitableStore struct {
	hitables []core.Hitable
}

// NewHitableStore creates an empty store
func NewHitableStore() *HitableStore {
	return &HitableStore{}
}

// Push appends an object, assigning it the next id
func (s *HitableStore) Push(h core.Hitable) {
	s.hitables = append(s.hitables, h)
}

// Len returns the number of objects in the store
func (s *HitableStore) Len() int {
	return len(s.hitables)
}

// Get returns the object with the given id
func (s *HitableStore) Get(id int) core.Hitable {
	return s.hitables[id]
}

// AddHits intersects a packet against every object and stages, per lane,
// the nearest hit into out. The fold tracks the per-lane minimum t and
// the id that produced it, shrinking each lane's upper bound as closer
// hits are found; a candidate replaces the current best only on a strict
// less-than, so on an exact tie the earlier object wins. Lanes with
// invalid rays or no intersection stage nothing.
func (s *HitableStore) AddHits(rays core.WRay, tMin, tMax math.Float4, out *HitStore) {
	ids := [4]int{noHit, noHit, noHit, noHit}
	closest := tMax

	for id, hitable := range s.hitables {
		t := hitable.Hit(&rays, tMin, closest)
		for lane := 0; lane < 4; lane++ {
			if t[lane] < closest[lane] {
				closest[lane] = t[lane]
				ids[lane] = id
			}
		}
	}

	for lane := 0; lane < 4; lane++ {
		ray := rays.Lane(lane)
		if ids[lane] != noHit && ray.Valid {
			out.addHit(ids[lane], core.Hit{Ray: ray, T: closest[lane]})
		}
	}
}

// TestOccluded folds every object's fractional visibility for the
// segment between start and end, per lane. The fold starts from
// all-ones, so an empty store reports fully visible; any object
// reporting 0 in a lane zeroes that lane regardless of order.
func (s *HitableStore) TestOccluded(start, end math.WVec3, time math.Float4) math.Float4 {
	visibility := math.Splat(1)
	for _, hitable := range s.hitables {
		visibility = visibility.Mul(hitable.Occluded(start, end, time))
	}
	return visibility
}
