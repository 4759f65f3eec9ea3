package math

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// RandomInUnitDisk generates a uniform random point in the unit disk
// (used for lens aperture sampling)
func RandomInUnitDisk(random *rand.Rand) mgl64.Vec2 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := mgl64.Vec2{2*random.Float64() - 1, 2*random.Float64() - 1}
		// Accept if inside unit disk
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
