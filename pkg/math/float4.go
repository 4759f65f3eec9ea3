package math

import "math"

// Float4 holds four independent scalar lanes processed together, one per
// packet slot. It is the scalar fallback for a 4-wide SIMD register: every
// operation is a plain loop of four and must produce the same per-lane
// results a hardware vector unit would.
type Float4 [4]float64

// Splat returns a Float4 with the same value in every lane
func Splat(v float64) Float4 {
	return Float4{v, v, v, v}
}

// Add returns the lanewise sum of two packets
func (a Float4) Add(b Float4) Float4 {
	return Float4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns the lanewise difference of two packets
func (a Float4) Sub(b Float4) Float4 {
	return Float4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns the lanewise product of two packets
func (a Float4) Mul(b Float4) Float4 {
	return Float4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Scale returns the packet with every lane multiplied by a scalar
func (a Float4) Scale(s float64) Float4 {
	return Float4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// Min returns the lanewise minimum of two packets
func (a Float4) Min(b Float4) Float4 {
	return Float4{
		min(a[0], b[0]),
		min(a[1], b[1]),
		min(a[2], b[2]),
		min(a[3], b[3]),
	}
}

// Sign returns +1 or -1 per lane, carrying the sign of the lane value.
// Zero counts as positive, matching IEEE copysign semantics.
func (a Float4) Sign() Float4 {
	return Float4{
		math.Copysign(1, a[0]),
		math.Copysign(1, a[1]),
		math.Copysign(1, a[2]),
		math.Copysign(1, a[3]),
	}
}

// Sqrt returns the lanewise square root of the packet
func (a Float4) Sqrt() Float4 {
	return Float4{
		math.Sqrt(a[0]),
		math.Sqrt(a[1]),
		math.Sqrt(a[2]),
		math.Sqrt(a[3]),
	}
}
