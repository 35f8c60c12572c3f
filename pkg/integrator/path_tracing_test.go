package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/geometry"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// testConfig disables Russian roulette so path length is deterministic
func testConfig(maxDepth int) Config {
	config := DefaultConfig()
	config.MaxDepth = maxDepth
	config.RussianRouletteMinBounces = 1000
	return config
}

func TestPathTracingDepthTermination(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	world := geometry.NewList(sphere)
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	pt := NewPathTracer(world, nil, testConfig(0))
	if color := pt.Sample(ray, random); color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", color)
	}

	pt = NewPathTracer(world, nil, testConfig(3))
	if color := pt.Sample(ray, random); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackground(t *testing.T) {
	config := testConfig(5)
	config.BackgroundTop = core.NewVec3(0, 0, 1)
	config.BackgroundBottom = core.NewVec3(1, 0, 0)
	pt := NewPathTracer(geometry.NewList(), nil, config)
	random := rand.New(rand.NewSource(42))

	up := pt.Sample(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), random)
	if up != config.BackgroundTop {
		t.Errorf("Expected top color %v, got %v", config.BackgroundTop, up)
	}

	down := pt.Sample(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -3, 0)), random)
	if down != config.BackgroundBottom {
		t.Errorf("Expected bottom color %v, got %v", config.BackgroundBottom, down)
	}

	horizon := pt.Sample(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), random)
	if math.Abs(horizon.X-0.5) > 1e-12 || math.Abs(horizon.Z-0.5) > 1e-12 {
		t.Errorf("Expected even blend at the horizon, got %v", horizon)
	}
}

func TestPathTracingDirectEmission(t *testing.T) {
	emission := core.NewVec3(4, 2, 1)
	light := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewEmissive(emission))
	world := geometry.NewList(light)
	pt := NewPathTracer(world, world.Emitters(), testConfig(5))
	random := rand.New(rand.NewSource(42))

	got := pt.Sample(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), random)
	if got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

func TestPathTracingWhiteFurnace(t *testing.T) {
	// A convex diffuse object under a uniform white sky reflects exactly its albedo
	albedo := core.NewVec3(0.5, 0.25, 0.75)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(albedo))
	config := testConfig(10)
	config.BackgroundTop = core.NewVec3(1, 1, 1)
	config.BackgroundBottom = core.NewVec3(1, 1, 1)
	pt := NewPathTracer(geometry.NewList(sphere), nil, config)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for i := 0; i < 200; i++ {
		got := pt.Sample(ray, random)
		if math.Abs(got.X-albedo.X) > 1e-9 || math.Abs(got.Y-albedo.Y) > 1e-9 || math.Abs(got.Z-albedo.Z) > 1e-9 {
			t.Fatalf("Expected %v, got %v", albedo, got)
		}
	}
}

func TestPathTracingMirror(t *testing.T) {
	// A perfect mirror facing the camera reflects the sky straight back
	config := testConfig(5)
	config.BackgroundTop = core.NewVec3(0.2, 0.2, 0.2)
	config.BackgroundBottom = core.NewVec3(0.2, 0.2, 0.2)
	albedo := core.NewVec3(0.9, 0.8, 0.7)
	mirror := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewMetal(albedo, 0))
	pt := NewPathTracer(geometry.NewList(mirror), nil, config)
	random := rand.New(rand.NewSource(42))

	got := pt.Sample(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), random)
	expected := albedo.Multiply(0.2)
	if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 || math.Abs(got.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

// litGround builds a near-flat diffuse ground under a small overhead sphere light
func litGround() (world *geometry.List, albedo float64, emission float64, sinThetaMax float64) {
	albedo, emission = 0.5, 10.0
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(albedo, albedo, albedo)))
	light := geometry.NewSphere(core.NewVec3(0, 5, 0), 0.5, material.NewEmissive(core.NewVec3(emission, emission, emission)))
	return geometry.NewList(ground, light), albedo, emission, 0.5 / 5.0
}

func estimate(pt *PathTracer, ray core.Ray, n int, random *rand.Rand) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += pt.Sample(ray, random).X
	}
	return sum / float64(n)
}

func TestPathTracingLightSamplingConverges(t *testing.T) {
	world, albedo, emission, sinThetaMax := litGround()
	config := testConfig(2)
	config.BackgroundTop = core.Vec3{}
	config.BackgroundBottom = core.Vec3{}

	// Outgoing radiance of a lambertian point under an overhead sphere light
	expected := albedo * emission * sinThetaMax * sinThetaMax
	ray := core.NewRay(core.NewVec3(0, 1, 3), core.NewVec3(0, -1, -3))

	withLights := NewPathTracer(world, world.Emitters(), config)
	lightSampled := estimate(withLights, ray, 20000, rand.New(rand.NewSource(42)))
	if math.Abs(lightSampled-expected)/expected > 0.1 {
		t.Errorf("Light sampled estimate %f, expected ~%f", lightSampled, expected)
	}

	withoutLights := NewPathTracer(world, nil, config)
	cosineSampled := estimate(withoutLights, ray, 200000, rand.New(rand.NewSource(43)))
	if math.Abs(cosineSampled-expected)/expected > 0.1 {
		t.Errorf("Cosine sampled estimate %f, expected ~%f", cosineSampled, expected)
	}
}

func TestPathTracingLightSamplingReducesVariance(t *testing.T) {
	world, _, _, _ := litGround()
	config := testConfig(2)
	config.BackgroundTop = core.Vec3{}
	config.BackgroundBottom = core.Vec3{}
	ray := core.NewRay(core.NewVec3(0, 1, 3), core.NewVec3(0, -1, -3))

	variance := func(pt *PathTracer, seed int64) float64 {
		random := rand.New(rand.NewSource(seed))
		const n = 20000
		sum, sumSq := 0.0, 0.0
		for i := 0; i < n; i++ {
			v := pt.Sample(ray, random).X
			sum += v
			sumSq += v * v
		}
		mean := sum / n
		return sumSq/n - mean*mean
	}

	withLights := variance(NewPathTracer(world, world.Emitters(), config), 42)
	withoutLights := variance(NewPathTracer(world, nil, config), 42)
	if withLights >= withoutLights {
		t.Errorf("Expected light sampling to lower variance: %f >= %f", withLights, withoutLights)
	}
}

func TestPathTracingRussianRoulette(t *testing.T) {
	pt := NewPathTracer(geometry.NewList(), nil, Config{MaxDepth: 50, RussianRouletteMinBounces: 1})
	random := rand.New(rand.NewSource(42))

	// Before the minimum bounce count, nothing is terminated
	terminate, compensation := pt.applyRussianRoulette(50, core.NewVec3(0.01, 0.01, 0.01), random)
	if terminate || compensation != 1.0 {
		t.Errorf("Expected no roulette on the first bounce, got (%t, %f)", terminate, compensation)
	}

	// Low throughput is terminated about half of the time with 2x compensation
	terminated := 0
	for i := 0; i < 1000; i++ {
		terminate, compensation := pt.applyRussianRoulette(40, core.NewVec3(0.01, 0.01, 0.01), random)
		if terminate {
			terminated++
		} else if math.Abs(compensation-2.0) > 1e-12 {
			t.Fatalf("Expected compensation 2.0, got %f", compensation)
		}
	}
	if terminated < 400 || terminated > 600 {
		t.Errorf("Expected ~50%% termination, got %d/1000", terminated)
	}
}
