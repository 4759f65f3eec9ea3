package trace

import (
	"slices"

	"github.com/tylerw/go-packet-raytracer/pkg/core"
)

// HitStore stages scalar hits per object id between packet dispatch and
// shading. A packet's four lanes may resolve to four different objects,
// so hits are first grouped by object here and only then re-batched into
// 4-wide groups for homogeneous shading dispatch.
//
// A HitStore is not safe for concurrent writes: each worker owns a
// private HitStore (and its arena) for the duration of a batch, and
// results merge only after ProcessHits returns.
type HitStore struct {
	hits [][]core.Hit
}

// NewHitStore builds a store with one staging list per object in the
// hitable store, backed by the given arena. The id space is fixed here:
// the two stores must keep the same object count for the whole pass.
func NewHitStore(arena *Arena, hitables *HitableStore) *HitStore {
	return &HitStore{hits: arena.hitLists(hitables.Len())}
}

// addHit stages one scalar hit under the object id that produced it.
// Only AddHits calls this, with ids it read from the hitable store, so
// the index is always in range.
func (hs *HitStore) addHit(objID int, hit core.Hit) {
	hs.hits[objID] = append(hs.hits[objID], hit)
}

// staged returns the number of hits currently staged for an object
func (hs *HitStore) staged(objID int) int {
	return len(hs.hits[objID])
}

// ProcessHits re-batches every staged hit and dispatches shading. Each
// object's list is padded up to a multiple of four with invalid-ray
// sentinel hits so no partial group is dropped, then each group of four
// is repacked into a WHit and handed to the owning object's
// GetShadingInfo; every resulting pair is appended to out. Padded lanes
// are shaded too — their invalidity stays visible through the validity
// flags inside the ShadingPoint's ray, and consumers discard them.
func (hs *HitStore) ProcessHits(hitables *HitableStore, out *[]core.Intersection, primary bool, camera core.Camera) {
	totalHits := 0
	for objID := range hs.hits {
		for len(hs.hits[objID])%4 != 0 {
			hs.hits[objID] = append(hs.hits[objID], core.Hit{Ray: core.NewInvalidRay()})
		}
		totalHits += len(hs.hits[objID])
	}

	*out = slices.Grow(*out, totalHits/4)

	for objID, hits := range hs.hits {
		for i := 0; i+4 <= len(hits); i += 4 {
			wide := core.NewWHit([4]core.Hit{hits[i], hits[i+1], hits[i+2], hits[i+3]})
			material, shading := hitables.Get(objID).GetShadingInfo(wide, primary, camera)
			*out = append(*out, core.Intersection{Material: material, Shading: shading})
		}
	}
}

// Reset truncates every staging list in place, keeping capacity, so the
// store can be refilled next pass at zero extra allocation. Output
// buffers and the backing arena are untouched.
func (hs *HitStore) Reset() {
	for i := range hs.hits {
		hs.hits[i] = hs.hits[i][:0]
	}
}
