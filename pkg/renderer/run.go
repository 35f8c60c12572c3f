package renderer

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

// FrameName returns the file name of frame i: zero padded to eight digits
func FrameName(i int, format string) string {
	return fmt.Sprintf("%08d.%s", i, format)
}

// Run renders frames into film, saving a snapshot to outDir after each one.
// With numFrames > 0 it stops after that many frames; otherwise it runs
// until ctx is cancelled. ctx is only checked between frames.
func (d *Driver) Run(ctx context.Context, film SnapshotFilm, numFrames int, outDir string, progress Progress) error {
	for i := 0; numFrames <= 0 || i < numFrames; i++ {
		if err := ctx.Err(); err != nil {
			d.logger.Noticef("stopping after %d frames: %v", i, err)
			return err
		}

		stats, err := d.Render(film, progress)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, FrameName(i, d.config.Format))
		if err := film.Save(path); err != nil {
			return fmt.Errorf("save frame %s: %w", path, err)
		}
		d.logger.Infof("saved %s", path)

		if d.OnFrame != nil {
			d.OnFrame(stats)
		}
	}
	return nil
}

// entryCalls numbers calls to Render and Run so each one draws fresh streams
var entryCalls atomic.Int64

// newEntryDriver builds a driver for a package level call
func newEntryDriver(sampler Sampler, camera Camera, numSamples, numThreads int) *Driver {
	config := DefaultConfig()
	config.SamplesPerPixel = numSamples
	config.NumWorkers = numThreads
	config.Seed = core.MixSeed(config.Seed, int(entryCalls.Add(1)))
	return NewDriver(sampler, camera, config, log.New("renderer"))
}

// Render draws one frame with the default adaptive settings and the given
// sample and worker counts. With numSamples = 0 pixels get no base samples.
// Repeated calls on the same film keep adding independent samples.
func Render(film Film, sampler Sampler, camera Camera, numSamples, numThreads int) error {
	_, err := newEntryDriver(sampler, camera, numSamples, numThreads).Render(film, nil)
	return err
}

// Run renders numFrames frames into the current directory, or runs until
// ctx is cancelled when numFrames <= 0.
func Run(ctx context.Context, film SnapshotFilm, sampler Sampler, camera Camera, numFrames, numSamples, numThreads int) error {
	return newEntryDriver(sampler, camera, numSamples, numThreads).Run(ctx, film, numFrames, ".", nil)
}
