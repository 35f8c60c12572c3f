package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

// Config contains the sampling and scheduling settings for the driver
type Config struct {
	SamplesPerPixel   int     // Base samples per pixel per frame, may be 0
	NumWorkers        int     // Worker goroutines, 0 = runtime.NumCPU()
	AdaptiveThreshold float64 // Max channel std deviation that triggers a top-up
	AdaptiveSamples   int     // Size of the one-shot top-up batch
	Seed              int64   // Base seed for the per worker generators
	Format            string  // File extension for saved frames
}

// DefaultConfig returns the default driver configuration
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel:   16,
		NumWorkers:        0,
		AdaptiveThreshold: 1.0,
		AdaptiveSamples:   256,
		Seed:              1,
		Format:            "png",
	}
}

// Driver renders frames by splitting image rows across worker goroutines.
// A Driver renders one frame at a time; Render and Run must not be called
// concurrently on the same Driver.
type Driver struct {
	sampler Sampler
	camera  Camera
	config  Config
	logger  log.Logger
	frame   int

	// OnFrame is called after every frame saved by Run
	OnFrame func(FrameStats)
}

// NewDriver creates a driver for the given sampler and camera
func NewDriver(sampler Sampler, camera Camera, config Config, logger log.Logger) *Driver {
	if config.SamplesPerPixel < 0 {
		config.SamplesPerPixel = 0
	}
	if config.AdaptiveSamples < 0 {
		config.AdaptiveSamples = 0
	}
	if config.Format == "" {
		config.Format = "png"
	}
	return &Driver{
		sampler: sampler,
		camera:  camera,
		config:  config,
		logger:  logger,
	}
}

// NumWorkers returns the resolved number of worker goroutines
func (d *Driver) NumWorkers() int {
	if d.config.NumWorkers > 0 {
		return d.config.NumWorkers
	}
	return max(1, runtime.NumCPU())
}

// Config returns the driver configuration
func (d *Driver) Config() Config {
	return d.config
}

// rowTask is the work owned by one worker: rows RowStart, RowStart+RowStride, ...
type rowTask struct {
	Worker    int
	RowStart  int
	RowStride int
	Random    *rand.Rand
}

// newRowTasks stripes rows across numWorkers tasks with generators seeded
// from (seed, frame, worker)
func newRowTasks(numWorkers int, seed int64, frame int) []rowTask {
	tasks := make([]rowTask, numWorkers)
	for i := range tasks {
		tasks[i] = rowTask{
			Worker:    i,
			RowStart:  i,
			RowStride: numWorkers,
			Random:    core.NewRandom(core.MixSeed(seed, frame, i)),
		}
	}
	return tasks
}

// Rows returns the rows this task covers in an image of the given height
func (t rowTask) Rows(height int) []int {
	var rows []int
	for y := t.RowStart; y < height; y += t.RowStride {
		rows = append(rows, y)
	}
	return rows
}

// Render draws one frame into film. Every pixel receives SamplesPerPixel
// samples plus a single adaptive top-up when its deviation is too high.
// All workers are joined before Render returns; a worker panic is
// reported as an error and leaves its remaining rows partially rendered.
func (d *Driver) Render(film Film, progress Progress) (FrameStats, error) {
	if progress == nil {
		progress = NopProgress{}
	}

	frame := d.frame
	d.frame++

	numWorkers := d.NumWorkers()
	tasks := newRowTasks(numWorkers, d.config.Seed, frame)
	stats := FrameStats{Frame: frame, Workers: make([]WorkerStats, numWorkers)}
	errs := make([]error, numWorkers)

	d.logger.Infof("rendering frame %d (%dx%d) with %d workers", frame, film.Width(), film.Height(), numWorkers)

	start := time.Now()
	progress.Start(film.Height())

	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(task rowTask) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[task.Worker] = fmt.Errorf("worker %d panicked: %v", task.Worker, r)
				}
			}()
			d.renderRows(task, film, progress, &stats.Workers[task.Worker])
		}(task)
	}
	wg.Wait()

	progress.Done()
	stats.RenderTime = time.Since(start)

	if err := errors.Join(errs...); err != nil {
		return stats, fmt.Errorf("render frame %d: %w", frame, err)
	}

	d.logger.Debugf("frame %d: %d samples, %d adaptive pixels", frame, stats.TotalSamples(), stats.AdaptivePixels())
	d.logger.Infof("frame %d finished in %s", frame, stats.RenderTime)
	return stats, nil
}

// renderRows executes one row task, recording its work in stats
func (d *Driver) renderRows(task rowTask, film Film, progress Progress, stats *WorkerStats) {
	start := time.Now()
	stats.Worker = task.Worker
	defer func() { stats.RenderTime = time.Since(start) }()

	width := film.Width()
	for _, y := range task.Rows(film.Height()) {
		for x := 0; x < width; x++ {
			stats.Samples += d.samplePixel(film, x, y, d.config.SamplesPerPixel, task.Random)

			if d.config.AdaptiveSamples > 0 && film.StandardDeviation(x, y).MaxComponent() > d.config.AdaptiveThreshold {
				stats.Samples += d.samplePixel(film, x, y, d.config.AdaptiveSamples, task.Random)
				stats.AdaptivePixels++
			}
		}
		stats.Rows++
		progress.Increment()
	}
}

// samplePixel adds count jittered samples to pixel (x, y)
func (d *Driver) samplePixel(film Film, x, y, count int, random *rand.Rand) int {
	width, height := float64(film.Width()), float64(film.Height())
	for i := 0; i < count; i++ {
		u, v := jitter(x, y, width, height, random)
		ray := d.camera.MakeRay(u, v, random)
		color := d.sampler.Sample(ray, random)
		film.AddSample(x, y, core.FlushDenormals(color))
	}
	return count
}

// jitter maps a pixel to a random point inside it in normalized camera
// coordinates; image row 0 is the top, camera v = 1.
func jitter(x, y int, width, height float64, random *rand.Rand) (u, v float64) {
	u = (float64(x) + random.Float64()) / width
	v = 1 - (float64(y)+random.Float64())/height
	return u, v
}
