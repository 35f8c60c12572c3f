package integrator

import (
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Integrator estimates the radiance arriving along a camera ray. It is the
// sample function the render driver calls for every pixel sample, so
// implementations must be safe for concurrent use with distinct generators.
type Integrator interface {
	Sample(ray core.Ray, random *rand.Rand) core.Vec3
}
