package scene

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/geometry"
	"github.com/df07/go-adaptive-raytracer/pkg/integrator"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name             string
	World            *geometry.List // Every object, emitters included
	Lights           *geometry.List // Emitting objects, used for light sampling
	CameraConfig     renderer.CameraConfig
	IntegratorConfig integrator.Config
	RenderConfig     renderer.Config
}

// newScene creates an empty scene with the camera overrides applied
func newScene(name string, camera renderer.CameraConfig, overrides []renderer.CameraConfig) *Scene {
	if len(overrides) > 0 {
		camera = renderer.MergeCameraConfig(camera, overrides[0])
	}
	return &Scene{
		Name:             name,
		World:            geometry.NewList(),
		Lights:           geometry.NewList(),
		CameraConfig:     camera,
		IntegratorConfig: integrator.DefaultConfig(),
		RenderConfig:     renderer.DefaultConfig(),
	}
}

// Add puts objects in the scene; emitting objects also become lights
func (s *Scene) Add(objects ...geometry.Hittable) {
	for _, object := range objects {
		s.World.Add(object)
		if object.Emits() {
			s.Lights.Add(object)
		}
	}
}

// AddSphereLight adds a spherical light to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) *geometry.Sphere {
	light := geometry.NewSphere(center, radius, material.NewEmissive(emission))
	s.Add(light)
	return light
}

// NewGroundSphere creates a huge sphere whose top touches y = height
func NewGroundSphere(height float64, mat material.Material) *geometry.Sphere {
	const radius = 1000.0
	return geometry.NewSphere(core.NewVec3(0, height-radius, 0), radius, mat)
}

// Camera builds the scene camera
func (s *Scene) Camera() *renderer.ThinLensCamera {
	return renderer.NewCamera(s.CameraConfig)
}

// Integrator builds the path tracer for the scene
func (s *Scene) Integrator() *integrator.PathTracer {
	return integrator.NewPathTracer(s.World, s.Lights, s.IntegratorConfig)
}

// ObjectCount returns the number of objects in the scene
func (s *Scene) ObjectCount() int {
	return s.World.Len()
}
