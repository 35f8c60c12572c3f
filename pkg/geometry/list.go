package geometry

import (
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// List is a flat collection of hittables tested one after the other.
// It is used both for the world and for the set of lights.
type List struct {
	Objects []Hittable
}

// NewList creates a list from the given objects
func NewList(objects ...Hittable) *List {
	return &List{Objects: objects}
}

// Add appends an object to the list
func (l *List) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *List) Len() int {
	return len(l.Objects)
}

// Emitters returns a list containing only the emitting members
func (l *List) Emitters() *List {
	lights := &List{}
	for _, object := range l.Objects {
		if object.Emits() {
			lights.Add(object)
		}
	}
	return lights
}

// Hit returns the closest hit across all objects
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitInfo, bool) {
	var closestHit *material.HitInfo
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Emits reports whether any member emits
func (l *List) Emits() bool {
	for _, object := range l.Objects {
		if object.Emits() {
			return true
		}
	}
	return false
}

// RandomRay picks a member uniformly and samples it.
// The list must not be empty.
func (l *List) RandomRay(origin core.Vec3, random *rand.Rand) core.Ray {
	return l.Objects[random.Intn(len(l.Objects))].RandomRay(origin, random)
}

// Pdf is the average of the member densities, matching the uniform choice in RandomRay
func (l *List) Pdf(ray core.Ray) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	sum := 0.0
	for _, object := range l.Objects {
		sum += object.Pdf(ray)
	}
	return sum / float64(len(l.Objects))
}
