package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Dielectric is a clear material such as glass that either reflects or refracts
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Emits is always false for dielectrics
func (d *Dielectric) Emits() bool { return false }

// Emit returns black
func (d *Dielectric) Emit(rayIn core.Ray, hit HitInfo) core.Vec3 {
	return core.Vec3{}
}

// Scatter picks reflection or refraction with Fresnel probability
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitInfo, random *rand.Rand) (ScatterResult, bool) {
	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	normal := hit.ShadingNormal()
	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if refractionRatio*sinTheta > 1.0 || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = reflect(unitDirection, normal)
	} else {
		direction = refract(unitDirection, normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Position, direction),
		Attenuation: core.NewVec3(1, 1, 1),
		PDF:         0,
	}, true
}

// PDF reports a delta lobe
func (d *Dielectric) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0.0, true
}

// refract bends the unit vector uv through a surface with normal n using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance is Schlick's approximation of the Fresnel reflectance
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
