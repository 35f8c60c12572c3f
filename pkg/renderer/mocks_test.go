package renderer

import (
	"math/rand"
	"sync"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

var testLogger = log.New("renderer-test")

// uvCamera encodes the requested (u, v) into the ray origin
type uvCamera struct {
	onRay func(u, v float64, random *rand.Rand)
}

func (c *uvCamera) MakeRay(u, v float64, random *rand.Rand) core.Ray {
	if c.onRay != nil {
		c.onRay(u, v, random)
	}
	return core.NewRay(core.NewVec3(u, v, 0), core.NewVec3(0, 0, -1))
}

// funcSampler delegates to a function
type funcSampler func(ray core.Ray, random *rand.Rand) core.Vec3

func (f funcSampler) Sample(ray core.Ray, random *rand.Rand) core.Vec3 {
	return f(ray, random)
}

func constantSampler(c core.Vec3) funcSampler {
	return func(core.Ray, *rand.Rand) core.Vec3 { return c }
}

// recordingFilm wraps an Image and records every AddSample call
type recordingFilm struct {
	*Image
	mu      sync.Mutex
	calls   map[[2]int]int
	onAdd   func(x, y int)
	saved   []string
	saveErr error
}

func newRecordingFilm(width, height int) *recordingFilm {
	return &recordingFilm{Image: NewImage(width, height), calls: make(map[[2]int]int)}
}

func (f *recordingFilm) AddSample(x, y int, value core.Vec3) {
	if f.onAdd != nil {
		f.onAdd(x, y)
	}
	f.mu.Lock()
	f.calls[[2]int{x, y}]++
	f.mu.Unlock()
	f.Image.AddSample(x, y, value)
}

func (f *recordingFilm) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *recordingFilm) Save(path string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, path)
	return nil
}

// countingProgress counts progress callbacks
type countingProgress struct {
	mu         sync.Mutex
	started    []int
	increments int
	done       int
}

func (p *countingProgress) Start(total int) {
	p.mu.Lock()
	p.started = append(p.started, total)
	p.mu.Unlock()
}

func (p *countingProgress) Increment() {
	p.mu.Lock()
	p.increments++
	p.mu.Unlock()
}

func (p *countingProgress) Done() {
	p.mu.Lock()
	p.done++
	p.mu.Unlock()
}
