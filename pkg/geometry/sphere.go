package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// pdfEpsilon is the tMin used when re-testing a sampled direction in Pdf
const pdfEpsilon = 1e-3

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. It panics if radius is not positive.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	if !(radius > 0) {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %v", radius))
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Emits reports whether the sphere's material emits light
func (s *Sphere) Emits() bool {
	return s.Material != nil && s.Material.Emits()
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitInfo, bool) {
	// Quadratic a·t² + 2b·t + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	d := b*b - a*c
	if d <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(d)

	// Nearer root first; the farther one covers origins inside the sphere
	for _, root := range [2]float64{(-b - sqrtD) / a, (-b + sqrtD) / a} {
		if root > tMin && root < tMax {
			return s.hitInfo(ray, root), true
		}
	}
	return nil, false
}

func (s *Sphere) hitInfo(ray core.Ray, t float64) *material.HitInfo {
	position := ray.At(t)
	normal := position.Subtract(s.Center).Divide(s.Radius)
	return &material.HitInfo{
		T:         t,
		Position:  position,
		Normal:    normal,
		FrontFace: ray.Direction.Dot(normal) < 0,
		Material:  s.Material,
	}
}

// RandomRay samples a point on the sphere's silhouette disk as seen from
// origin and returns the normalized ray towards it. origin must lie outside
// the sphere.
func (s *Sphere) RandomRay(origin core.Vec3, random *rand.Rand) core.Ray {
	onb := core.NewONB(s.Center.Subtract(origin))
	p := s.Center.Add(onb.LocalToWorld(core.RandomInUnitDisk(random).Multiply(s.Radius)))
	return core.NewRay(origin, p.Subtract(origin).Normalize())
}

// Pdf returns the uniform cone density 1/(2π(1-cosθmax)) for directions that
// hit the sphere and 0 otherwise. ray.Origin must lie outside the sphere.
func (s *Sphere) Pdf(ray core.Ray) float64 {
	if _, hit := s.Hit(ray, pdfEpsilon, math.Inf(1)); !hit {
		return 0
	}

	return 1 / s.SolidAngle(ray.Origin)
}

// SolidAngle returns the solid angle subtended by the sphere from origin
func (s *Sphere) SolidAngle(origin core.Vec3) float64 {
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/s.Center.Subtract(origin).LengthSquared())
	return 2 * math.Pi * (1 - cosThetaMax)
}
