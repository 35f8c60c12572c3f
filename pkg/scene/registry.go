package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
)

// Builder creates a scene, applying an optional camera override
type Builder func(cameraOverrides ...renderer.CameraConfig) *Scene

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
	Build       Builder
}

var registry = map[string]Info{
	"default": {
		Name:        "default",
		Description: "Metal, glass and diffuse spheres lit by a distant sun",
		Build:       NewDefaultScene,
	},
	"spheregrid": {
		Name:        "spheregrid",
		Description: "Grid of colored metal spheres under a sphere light",
		Build:       NewSphereGridScene,
	},
	"lightball": {
		Name:        "lightball",
		Description: "Small colored sphere lights around a diffuse ball in the dark",
		Build:       NewLightBallScene,
	},
}

// Available returns the built-in scenes sorted by name
func Available() []Info {
	scenes := make([]Info, 0, len(registry))
	for _, info := range registry {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })
	return scenes
}

// New builds the named scene
func New(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	info, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return info.Build(cameraOverrides...), nil
}
