// Package anim is the time-sampling seam between the dispatch core and
// an external animation evaluator. Cameras thread every time-varying
// parameter through a Sequenced value.
package anim

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Sequenced is a value that can be sampled at a point in time.
// Implementations must be read-only and safe for concurrent use.
type Sequenced[T any] interface {
	SampleAt(time float64) T
}

// Constant is a Sequenced that ignores time
type Constant[T any] struct {
	Value T
}

// NewConstant wraps a fixed value as a Sequenced
func NewConstant[T any](value T) Constant[T] {
	return Constant[T]{Value: value}
}

// SampleAt returns the wrapped value regardless of time
func (c Constant[T]) SampleAt(time float64) T {
	return c.Value
}

// Keyframes interpolates between timestamped values with a
// caller-supplied lerp. Samples clamp to the first and last value
// outside the keyed range.
type Keyframes[T any] struct {
	times  []float64
	values []T
	lerp   func(a, b T, t float64) T
}

// NewKeyframes builds a keyframe sequence. times must be sorted
// ascending and the same length as values, with at least one entry;
// violating that is a construction contract violation and panics.
func NewKeyframes[T any](times []float64, values []T, lerp func(a, b T, t float64) T) Keyframes[T] {
	if len(times) == 0 || len(times) != len(values) {
		panic("anim: keyframe times and values must be non-empty and equal length")
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			panic("anim: keyframe times must be sorted ascending")
		}
	}
	return Keyframes[T]{times: times, values: values, lerp: lerp}
}

// SampleAt interpolates the keyed values at the given time
func (k Keyframes[T]) SampleAt(time float64) T {
	if time <= k.times[0] {
		return k.values[0]
	}
	last := len(k.times) - 1
	if time >= k.times[last] {
		return k.values[last]
	}

	// Index of the first keyframe at or after time; the previous one
	// starts the containing interval.
	hi := sort.SearchFloat64s(k.times, time)
	lo := hi - 1
	span := k.times[hi] - k.times[lo]
	if span == 0 {
		return k.values[hi]
	}
	return k.lerp(k.values[lo], k.values[hi], (time-k.times[lo])/span)
}

// LerpFloat linearly interpolates between two scalars
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors componentwise
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
