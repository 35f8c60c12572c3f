package material

import (
	"math"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at the given 3D point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a 3D checkerboard: space is cut into cubes of side Scale that
// alternate between Even and Odd.
type Checker struct {
	Scale     float64
	Even, Odd core.Vec3
}

// NewChecker creates a checkerboard color source
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// Evaluate returns Even or Odd depending on the cell containing point
func (c *Checker) Evaluate(point core.Vec3) core.Vec3 {
	inv := 1.0 / c.Scale
	sum := int(math.Floor(point.X*inv)) + int(math.Floor(point.Y*inv)) + int(math.Floor(point.Z*inv))
	if sum%2 == 0 {
		return c.Even
	}
	return c.Odd
}
