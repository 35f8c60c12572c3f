package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or procedural)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a color source
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Emits is always false for diffuse surfaces
func (l *Lambertian) Emits() bool { return false }

// Emit returns black
func (l *Lambertian) Emit(rayIn core.Ray, hit HitInfo) core.Vec3 {
	return core.Vec3{}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (ScatterResult, bool) {
	normal := hit.ShadingNormal()

	// Generate cosine-weighted random direction in hemisphere around normal
	scatterDirection := core.RandomCosineDirection(normal, random)
	scattered := core.NewRay(hit.Position, scatterDirection)

	// Calculate PDF: cos(θ) / π where θ is angle from normal
	cosTheta := max(0, scatterDirection.Normalize().Dot(normal))
	pdf := cosTheta / math.Pi

	// BRDF: albedo / π (proper energy conservation)
	attenuation := l.Albedo.Evaluate(hit.Position).Multiply(1.0 / math.Pi)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
		PDF:         pdf,
	}, true
}

// PDF calculates the probability density function for specific incoming/outgoing directions
func (l *Lambertian) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	// Cosine-weighted hemisphere sampling: cos(θ) / π
	cosTheta := outgoingDir.Normalize().Dot(normal)
	if cosTheta <= 0 {
		return 0.0, false
	}
	return cosTheta / math.Pi, false
}
