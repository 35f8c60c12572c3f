package material

import (
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Material is the shading capability referenced by primitives and hits.
// Implementations must be immutable once built: a single material is shared
// by every worker goroutine of a render.
type Material interface {
	// Emits reports whether the material gives off light. Primitives with an
	// emitting material take part in light importance sampling.
	Emits() bool

	// Emit returns the radiance leaving the surface towards the ray origin
	Emit(rayIn core.Ray, hit HitInfo) core.Vec3

	// Scatter generates a random scattered direction
	Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (ScatterResult, bool)

	// PDF returns (pdf, isDelta) for scattering into outgoingDir, where isDelta
	// indicates a specular lobe that can not be importance sampled
	PDF(incomingDir, outgoingDir, normal core.Vec3) (pdf float64, isDelta bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
	PDF         float64   // Probability density function (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitInfo describes a ray-primitive intersection.
type HitInfo struct {
	T         float64   // Parameter t along the ray
	Position  core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, pointing out of the primitive
	FrontFace bool      // Whether the ray arrived from outside the primitive
	Material  Material  // Material of the hit object, owned by the scene
}

// ShadingNormal returns the normal facing the side the ray came from
func (h HitInfo) ShadingNormal() core.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}
