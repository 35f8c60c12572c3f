package core

import "math"

// smallestNormal is the smallest positive normal float64
const smallestNormal = 0x1p-1022

// FlushDenormal returns 0 for subnormal inputs and f otherwise.
func FlushDenormal(f float64) float64 {
	if f != 0 && math.Abs(f) < smallestNormal {
		return 0
	}
	return f
}

// FlushDenormals flushes every subnormal component of v to zero.
// Go exposes no control over the FPU's flush-to-zero mode, so values are
// flushed before they are stored in long-lived accumulators.
func FlushDenormals(v Vec3) Vec3 {
	return Vec3{X: FlushDenormal(v.X), Y: FlushDenormal(v.Y), Z: FlushDenormal(v.Z)}
}
