package renderer

import (
	"math/rand"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Camera turns normalized image coordinates into primary rays.
// u grows to the right and v grows upwards, both in [0, 1].
type Camera interface {
	MakeRay(u, v float64, random *rand.Rand) core.Ray
}

// Sampler estimates the radiance along a ray. It is called concurrently
// from every worker, each with its own generator.
type Sampler interface {
	Sample(ray core.Ray, random *rand.Rand) core.Vec3
}

// Film accumulates per-pixel running statistics.
// Concurrent calls for distinct pixels must be safe without locking; the
// driver never touches the same pixel from two goroutines at once.
type Film interface {
	Width() int
	Height() int
	AddSample(x, y int, value core.Vec3)
	StandardDeviation(x, y int) core.Vec3
}

// SnapshotFilm is a Film that can persist its current state
type SnapshotFilm interface {
	Film
	Save(path string) error
}

// Progress receives advisory progress updates; Increment may be called
// from several goroutines.
type Progress interface {
	Start(total int)
	Increment()
	Done()
}
