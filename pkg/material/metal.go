package material

import (
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: min(1.0, max(0.0, fuzzness))}
}

// Emits is always false for metals
func (m *Metal) Emits() bool { return false }

// Emit returns black
func (m *Metal) Emit(rayIn core.Ray, hit HitInfo) core.Vec3 {
	return core.Vec3{}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (ScatterResult, bool) {
	normal := hit.ShadingNormal()
	reflected := reflect(rayIn.Direction.Normalize(), normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		reflected = reflected.Add(randomInUnitSphere(random).Multiply(m.Fuzzness))
	}

	scattered := core.NewRay(hit.Position, reflected)

	// Only scatter if the ray is above the surface (not absorbed)
	scatters := scattered.Direction.Dot(normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo, // No π factor for specular
		PDF:         0,
	}, scatters
}

// PDF reports a delta lobe
func (m *Metal) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0.0, true
}

// reflect mirrors v around the normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// randomInUnitSphere draws a point uniformly inside the unit sphere by rejection
func randomInUnitSphere(random *rand.Rand) core.Vec3 {
	for {
		p := core.NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
