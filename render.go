package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
	"github.com/df07/go-adaptive-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// renderOptions holds the render command flags
type renderOptions struct {
	Scene             string
	Width             int
	Frames            int
	SamplesPerPixel   int
	Threads           int
	Seed              int64
	MaxDepth          int
	AdaptiveThreshold float64
	AdaptiveSamples   int
	OutDir            string
	Format            string
	Stats             bool
}

func optionsFromContext(ctx *cli.Context) renderOptions {
	return renderOptions{
		Scene:             ctx.String("scene"),
		Width:             ctx.Int("width"),
		Frames:            ctx.Int("frames"),
		SamplesPerPixel:   ctx.Int("spp"),
		Threads:           ctx.Int("threads"),
		Seed:              ctx.Int64("seed"),
		MaxDepth:          ctx.Int("max-depth"),
		AdaptiveThreshold: ctx.Float64("adaptive-threshold"),
		AdaptiveSamples:   ctx.Int("adaptive-samples"),
		OutDir:            ctx.String("out"),
		Format:            ctx.String("format"),
		Stats:             ctx.Bool("stats"),
	}
}

// configure applies the options to the scene and returns the driver config
func (o renderOptions) configure(s *scene.Scene) (renderer.Config, error) {
	format := strings.ToLower(o.Format)
	if !slices.Contains(renderer.SupportedFormats(), format) {
		return renderer.Config{}, fmt.Errorf("unsupported image format %q", o.Format)
	}
	if o.Frames < 0 {
		return renderer.Config{}, errors.New("frames must not be negative")
	}

	config := s.RenderConfig
	if o.SamplesPerPixel > 0 {
		config.SamplesPerPixel = o.SamplesPerPixel
	}
	if o.AdaptiveThreshold > 0 {
		config.AdaptiveThreshold = o.AdaptiveThreshold
	}
	if o.AdaptiveSamples >= 0 {
		config.AdaptiveSamples = o.AdaptiveSamples
	}
	config.NumWorkers = o.Threads
	config.Seed = o.Seed
	config.Format = format

	if o.MaxDepth > 0 {
		s.IntegratorConfig.MaxDepth = o.MaxDepth
	}
	return config, nil
}

// Render frames of a scene.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := runRender(runCtx, optionsFromContext(ctx))
	if errors.Is(err, context.Canceled) {
		logger.Notice("interrupted")
		return nil
	}
	return err
}

func runRender(ctx context.Context, opts renderOptions) error {
	s, err := scene.New(opts.Scene, renderer.CameraConfig{Width: opts.Width})
	if err != nil {
		return err
	}

	config, err := opts.configure(s)
	if err != nil {
		return err
	}

	outDir := filepath.Join(opts.OutDir, s.Name)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	width, height := s.CameraConfig.Width, s.CameraConfig.Height()
	film := renderer.NewImage(width, height)
	driver := renderer.NewDriver(s.Integrator(), s.Camera(), config, logger)
	if opts.Stats {
		driver.OnFrame = displayFrameStats
	}

	logger.Noticef("rendering scene %q (%dx%d, %d objects, %d lights) into %s",
		s.Name, width, height, s.ObjectCount(), s.Lights.Len(), outDir)

	progress := renderer.NewProgressBar(logger, 10)
	if err := driver.Run(ctx, film, opts.Frames, outDir, progress); err != nil {
		return err
	}

	logger.Noticef("done: %d samples in %d pixels", film.TotalSamples(), width*height)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("frame %d statistics\n%s", stats.Frame, buf.String())
}

// List the built-in scenes.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	writeSceneTable(os.Stdout)
	return nil
}

func writeSceneTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.Available() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
}
