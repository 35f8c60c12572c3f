package core

import (
	"math"
	"math/rand"
)

// NewRandom returns a generator for a single goroutine. *rand.Rand is not
// safe for concurrent use, so every worker gets its own.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// MixSeed derives a well-spread seed from a base seed and a list of indices
// (frame, worker, ...), so neighbouring workers do not get correlated streams.
func MixSeed(base int64, indices ...int) int64 {
	h := uint64(base)
	for _, idx := range indices {
		h ^= uint64(idx) + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
		// splitmix64 finalizer
		h ^= h >> 30
		h *= 0xbf58476d1ce4e5b9
		h ^= h >> 27
		h *= 0x94d049bb133111eb
		h ^= h >> 31
	}
	return int64(h & math.MaxInt64)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	return NewONB(normal).LocalToWorld(NewVec3(x, y, zCoord))
}

// SamplePointInUnitDisk generates a point in the unit disk (z = 0) using concentric mapping.
// The mapping is area preserving, so uniform samples give a uniform disk.
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// RandomInUnitDisk draws a uniform point in the unit disk from random
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	return SamplePointInUnitDisk(NewVec2(random.Float64(), random.Float64()))
}

// RandomCosineDirection draws a cosine-weighted direction around normal from random
func RandomCosineDirection(normal Vec3, random *rand.Rand) Vec3 {
	return SampleCosineHemisphere(normal, NewVec2(random.Float64(), random.Float64()))
}
