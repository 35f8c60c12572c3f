package material

import (
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Emits reports true so the owning primitive is used as a light
func (e *Emissive) Emits() bool { return true }

// Emit returns the emitted light for this material
func (e *Emissive) Emit(rayIn core.Ray, hit HitInfo) core.Vec3 {
	return e.Emission
}

// Scatter implements the Material interface for emissive materials.
// Emissive materials don't scatter - they absorb all incoming rays
func (e *Emissive) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// PDF is always 0, emissive materials don't scatter
func (e *Emissive) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0.0, false
}
