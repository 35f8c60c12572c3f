package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

// NopProgress discards all progress updates
type NopProgress struct{}

func (NopProgress) Start(int) {}
func (NopProgress) Increment() {}
func (NopProgress) Done() {}

// ProgressBar reports rendering progress through a logger in fixed
// percentage steps. Increment is safe for concurrent use.
type ProgressBar struct {
	logger log.Logger
	step   int64 // percentage between two reports

	total    atomic.Int64
	done     atomic.Int64
	reported atomic.Int64
	started  time.Time
}

// NewProgressBar creates a progress bar that logs every step percent
func NewProgressBar(logger log.Logger, step int) *ProgressBar {
	if step <= 0 || step > 100 {
		step = 10
	}
	return &ProgressBar{logger: logger, step: int64(step)}
}

// Start resets the bar for a frame with total units of work
func (p *ProgressBar) Start(total int) {
	p.total.Store(int64(total))
	p.done.Store(0)
	p.reported.Store(0)
	p.started = time.Now()
}

// Increment records one finished unit of work
func (p *ProgressBar) Increment() {
	done := p.done.Add(1)
	total := p.total.Load()
	if total <= 0 {
		return
	}

	bucket := done * 100 / total / p.step
	for {
		last := p.reported.Load()
		if bucket <= last {
			return
		}
		if p.reported.CompareAndSwap(last, bucket) {
			p.logger.Infof("progress %3d%% (%d/%d rows)", bucket*p.step, done, total)
			return
		}
	}
}

// Completed returns the number of units finished so far
func (p *ProgressBar) Completed() int {
	return int(p.done.Load())
}

// Done logs the elapsed time for the frame
func (p *ProgressBar) Done() {
	p.logger.Debugf("frame rows complete in %s", time.Since(p.started))
}
