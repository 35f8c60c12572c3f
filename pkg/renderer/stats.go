package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats contains statistics about one worker during a frame
type WorkerStats struct {
	Worker         int           // Worker index
	Rows           int           // Rows completed
	Samples        int           // Samples taken, including top-ups
	AdaptivePixels int           // Pixels that received the adaptive top-up
	RenderTime     time.Duration // Wall time spent by the worker
}

// FrameStats contains statistics about a rendered frame
type FrameStats struct {
	Frame      int           // Frame index since the driver was created
	Workers    []WorkerStats // Per worker breakdown
	RenderTime time.Duration // Wall time for the whole frame
}

// TotalSamples returns the samples taken by all workers
func (fs FrameStats) TotalSamples() int {
	total := 0
	for _, w := range fs.Workers {
		total += w.Samples
	}
	return total
}

// AdaptivePixels returns the pixels topped up by all workers
func (fs FrameStats) AdaptivePixels() int {
	total := 0
	for _, w := range fs.Workers {
		total += w.AdaptivePixels
	}
	return total
}

// TotalRows returns the rows completed by all workers
func (fs FrameStats) TotalRows() int {
	total := 0
	for _, w := range fs.Workers {
		total += w.Rows
	}
	return total
}

// WriteTable renders the per worker breakdown as a text table
func (fs FrameStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Samples", "Adaptive pixels", "Render time"})
	for _, stat := range fs.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Worker),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%d", stat.AdaptivePixels),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", fs.TotalRows()),
		fmt.Sprintf("%d", fs.TotalSamples()),
		fmt.Sprintf("%d", fs.AdaptivePixels()),
		fs.RenderTime.String(),
	})
	table.Render()
}
