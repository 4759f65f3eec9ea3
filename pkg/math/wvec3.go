package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WVec3 is a wide 3-vector: four independent 3D vectors stored
// structure-of-arrays, one per lane
type WVec3 struct {
	X, Y, Z Float4
}

// SplatVec3 returns a WVec3 with the same vector in every lane
func SplatVec3(v mgl64.Vec3) WVec3 {
	return WVec3{
		X: Splat(v.X()),
		Y: Splat(v.Y()),
		Z: Splat(v.Z()),
	}
}

// NewWVec3 packs four scalar vectors into a wide vector, lane by lane
func NewWVec3(lanes [4]mgl64.Vec3) WVec3 {
	var v WVec3
	for i, lane := range lanes {
		v.X[i] = lane.X()
		v.Y[i] = lane.Y()
		v.Z[i] = lane.Z()
	}
	return v
}

// Lane extracts the scalar vector held in lane i
func (v WVec3) Lane(i int) mgl64.Vec3 {
	return mgl64.Vec3{v.X[i], v.Y[i], v.Z[i]}
}

// Add returns the lanewise sum of two wide vectors
func (v WVec3) Add(o WVec3) WVec3 {
	return WVec3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

// Sub returns the lanewise difference of two wide vectors
func (v WVec3) Sub(o WVec3) WVec3 {
	return WVec3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

// Scale multiplies each lane's vector by that lane's scalar
func (v WVec3) Scale(s Float4) WVec3 {
	return WVec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Dot returns the per-lane dot product of two wide vectors
func (v WVec3) Dot(o WVec3) Float4 {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Cross returns the per-lane cross product of two wide vectors
func (v WVec3) Cross(o WVec3) WVec3 {
	return WVec3{
		X: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		Y: v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		Z: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

// Len returns the per-lane magnitude
func (v WVec3) Len() Float4 {
	return v.Dot(v).Sqrt()
}

// Normalize returns per-lane unit vectors. A zero-length lane normalizes
// to the zero vector rather than NaN.
func (v WVec3) Normalize() WVec3 {
	length := v.Len()
	var inv Float4
	for i := range length {
		if length[i] != 0 {
			inv[i] = 1 / length[i]
		}
	}
	return v.Scale(inv)
}

// WBasis is a wide orthonormal frame: per lane, Tangent and Bitangent
// span the surface and Normal completes the right-handed triple
type WBasis struct {
	Tangent   WVec3
	Bitangent WVec3
	Normal    WVec3
}

// OrthonormalBasis builds a local frame around each lane's vector, which
// must already be unit length
func (v WVec3) OrthonormalBasis() WBasis {
	var tangent, bitangent WVec3
	for i := 0; i < 4; i++ {
		normal := v.Lane(i)

		// Pick a helper axis not parallel to the normal
		helper := mgl64.Vec3{1, 0, 0}
		if math.Abs(normal.X()) > 0.1 {
			helper = mgl64.Vec3{0, 1, 0}
		}

		t := helper.Cross(normal).Normalize()
		b := normal.Cross(t)

		tangent.X[i], tangent.Y[i], tangent.Z[i] = t.X(), t.Y(), t.Z()
		bitangent.X[i], bitangent.Y[i], bitangent.Z[i] = b.X(), b.Y(), b.Z()
	}
	return WBasis{Tangent: tangent, Bitangent: bitangent, Normal: v}
}

// ToWorld maps a direction expressed in the local frame into world space,
// per lane
func (b WBasis) ToWorld(local WVec3) WVec3 {
	return b.Tangent.Scale(local.X).
		Add(b.Bitangent.Scale(local.Y)).
		Add(b.Normal.Scale(local.Z))
}
