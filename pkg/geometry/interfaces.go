package geometry

import (
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// Hittable is implemented by every primitive a ray can intersect.
// Implementations are read-only after construction and safe to share
// between goroutines.
type Hittable interface {
	// Hit returns the nearest intersection with tMin < t < tMax.
	// ray.Direction must not be the zero vector.
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitInfo, bool)

	// Emits reports whether the primitive is a light source
	Emits() bool

	// RandomRay returns a unit-direction ray from origin towards the
	// primitive, used to importance sample it as a light.
	RandomRay(origin core.Vec3, random *rand.Rand) core.Ray

	// Pdf returns the solid angle density with which RandomRay would have
	// produced ray.Direction from ray.Origin, or 0 if it never would.
	Pdf(ray core.Ray) float64
}
