package scene

import (
	"math"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/geometry"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
)

// NewLightBallScene creates a dark scene lit only by small colored sphere
// lights circling a diffuse ball. Small bright lights make pixel variance
// high, so most pixels take the adaptive top-up.
func NewLightBallScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.6, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}

	s := newScene("lightball", cameraConfig, cameraOverrides)
	s.IntegratorConfig.BackgroundTop = core.Vec3{}
	s.IntegratorConfig.BackgroundBottom = core.Vec3{}
	s.IntegratorConfig.LightSamplingWeight = 0.7

	s.Add(
		NewGroundSphere(0, material.NewTexturedLambertian(
			material.NewChecker(2, core.NewVec3(0.7, 0.7, 0.7), core.NewVec3(0.2, 0.2, 0.2)))),
		geometry.NewSphere(core.NewVec3(0, 0.6, 0), 0.6, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))),
	)

	colors := []core.Vec3{
		core.NewVec3(12, 2, 2),
		core.NewVec3(2, 12, 2),
		core.NewVec3(2, 2, 12),
		core.NewVec3(10, 8, 2),
	}
	for i, emission := range colors {
		angle := 2 * math.Pi * float64(i) / float64(len(colors))
		center := core.NewVec3(1.4*math.Cos(angle), 0.4+0.3*float64(i%2), 1.4*math.Sin(angle))
		s.AddSphereLight(center, 0.12, emission)
	}

	return s
}
