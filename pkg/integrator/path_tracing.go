package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/geometry"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// shadowEpsilon offsets secondary rays from the surface they leave
const shadowEpsilon = 0.001

// Config contains path tracing configuration
type Config struct {
	MaxDepth                  int       // Maximum ray bounce depth
	RussianRouletteMinBounces int       // Minimum bounces before Russian Roulette can activate
	LightSamplingWeight       float64   // Probability of drawing a diffuse bounce towards a light
	BackgroundTop             core.Vec3 // Sky color straight up
	BackgroundBottom          core.Vec3 // Sky color straight down
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:                  50,
		RussianRouletteMinBounces: 5,
		LightSamplingWeight:       0.5,
		BackgroundTop:             core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom:          core.NewVec3(1.0, 1.0, 1.0),
	}
}

// PathTracer implements unidirectional path tracing. Diffuse bounces draw
// their direction from a mixture of the material's cosine lobe and the
// lights' RandomRay strategy, weighted by the matching mixture density.
type PathTracer struct {
	world  geometry.Hittable
	lights *geometry.List
	config Config
}

// NewPathTracer creates a new path tracer over world. lights may be empty,
// in which case only material sampling is used.
func NewPathTracer(world geometry.Hittable, lights *geometry.List, config Config) *PathTracer {
	if lights == nil {
		lights = geometry.NewList()
	}
	return &PathTracer{
		world:  world,
		lights: lights,
		config: config,
	}
}

// Sample computes the radiance carried back along ray
func (pt *PathTracer) Sample(ray core.Ray, random *rand.Rand) core.Vec3 {
	color := pt.rayColor(ray, random, pt.config.MaxDepth, core.NewVec3(1, 1, 1))
	if !color.IsFinite() {
		// A NaN would poison the pixel's running statistics for good
		return core.Vec3{}
	}
	return color
}

// rayColor computes the color for a single ray
func (pt *PathTracer) rayColor(ray core.Ray, random *rand.Rand, depth int, throughput core.Vec3) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	shouldTerminate, rrCompensation := pt.applyRussianRoulette(depth, throughput, random)
	if shouldTerminate {
		return core.Vec3{}
	}

	hit, isHit := pt.world.Hit(ray, shadowEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray).Multiply(rrCompensation)
	}

	if hit.Material == nil {
		return core.Vec3{}
	}
	colorEmitted := hit.Material.Emit(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted.Multiply(rrCompensation)
	}

	var colorScattered core.Vec3
	if scatter.IsSpecular() {
		colorScattered = pt.calculateSpecularColor(scatter, random, depth, throughput)
	} else {
		colorScattered = pt.calculateDiffuseColor(ray, scatter, hit, random, depth, throughput)
	}

	return colorEmitted.Add(colorScattered).Multiply(rrCompensation)
}

// calculateSpecularColor follows the single mirror direction
func (pt *PathTracer) calculateSpecularColor(scatter material.ScatterResult, random *rand.Rand, depth int, throughput core.Vec3) core.Vec3 {
	newThroughput := throughput.MultiplyVec(scatter.Attenuation)
	return scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.Scattered, random, depth-1, newThroughput))
}

// calculateDiffuseColor estimates reflected light with the light/material mixture
func (pt *PathTracer) calculateDiffuseColor(rayIn core.Ray, scatter material.ScatterResult, hit *material.HitInfo, random *rand.Rand, depth int, throughput core.Vec3) core.Vec3 {
	normal := hit.ShadingNormal()
	weight := pt.lightWeight()

	direction := scatter.Scattered.Direction
	if weight > 0 && random.Float64() < weight {
		direction = pt.lights.RandomRay(hit.Position, random).Direction
	}
	scattered := core.NewRay(hit.Position, direction)

	cosine := direction.Normalize().Dot(normal)
	if cosine <= 0 {
		return core.Vec3{}
	}

	materialPDF, _ := hit.Material.PDF(rayIn.Direction, direction, normal)
	pdf := (1 - weight) * materialPDF
	if weight > 0 {
		pdf += weight * pt.lights.Pdf(scattered)
	}
	if pdf <= 0 {
		return core.Vec3{}
	}

	// Monte Carlo estimator: (BRDF * incomingLight * cosine) / PDF
	factor := scatter.Attenuation.Multiply(cosine / pdf)
	newThroughput := throughput.MultiplyVec(factor)
	incomingLight := pt.rayColor(scattered, random, depth-1, newThroughput)
	return factor.MultiplyVec(incomingLight)
}

// lightWeight is the mixture probability of sampling lights, 0 without lights
func (pt *PathTracer) lightWeight() float64 {
	if pt.lights.Len() == 0 {
		return 0
	}
	return min(1, max(0, pt.config.LightSamplingWeight))
}

// applyRussianRoulette determines if a ray should be terminated and returns the compensation factor
func (pt *PathTracer) applyRussianRoulette(depth int, throughput core.Vec3, random *rand.Rand) (bool, float64) {
	currentBounce := pt.config.MaxDepth - depth
	if currentBounce < pt.config.RussianRouletteMinBounces {
		return false, 1.0
	}

	// Conservative bounds: survivalProb between 0.5 and 0.95
	survivalProb := math.Min(0.95, math.Max(0.5, throughput.Luminance()))
	if random.Float64() > survivalProb {
		return true, 0.0
	}
	return false, 1.0 / survivalProb
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracer) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)
	return pt.config.BackgroundBottom.Multiply(1.0 - t).Add(pt.config.BackgroundTop.Multiply(t))
}
