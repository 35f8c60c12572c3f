package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	// The default version flag claims -v, which is the verbosity flag here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render sphere scenes with an adaptive Monte Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render frames of a scene into numbered images (00000000.png, 00000001.png, ...)
under <out>/<scene>. Every frame adds samples to the same image, so later
frames are less noisy. With --frames 0 rendering continues until interrupted.`,
			Flags:  renderFlags(),
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
	}
	return app
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "scene, s",
			Value:  "default",
			Usage:  "scene to render (see the scenes command)",
			EnvVar: "RAYTRACER_SCENE",
		},
		cli.IntFlag{
			Name:   "width",
			Usage:  "image width, 0 keeps the scene default",
			EnvVar: "RAYTRACER_WIDTH",
		},
		cli.IntFlag{
			Name:   "frames, f",
			Value:  1,
			Usage:  "number of frames to render, 0 renders until interrupted",
			EnvVar: "RAYTRACER_FRAMES",
		},
		cli.IntFlag{
			Name:   "spp",
			Usage:  "samples per pixel per frame, 0 keeps the scene default",
			EnvVar: "RAYTRACER_SPP",
		},
		cli.IntFlag{
			Name:   "threads, t",
			Usage:  "worker goroutines, 0 uses every CPU",
			EnvVar: "RAYTRACER_THREADS",
		},
		cli.Int64Flag{
			Name:   "seed",
			Value:  1,
			Usage:  "base random seed",
			EnvVar: "RAYTRACER_SEED",
		},
		cli.IntFlag{
			Name:   "max-depth",
			Usage:  "maximum path depth, 0 keeps the scene default",
			EnvVar: "RAYTRACER_MAX_DEPTH",
		},
		cli.Float64Flag{
			Name:   "adaptive-threshold",
			Value:  1.0,
			Usage:  "pixel standard deviation that triggers extra samples",
			EnvVar: "RAYTRACER_ADAPTIVE_THRESHOLD",
		},
		cli.IntFlag{
			Name:   "adaptive-samples",
			Value:  256,
			Usage:  "extra samples for noisy pixels, 0 disables adaptive sampling",
			EnvVar: "RAYTRACER_ADAPTIVE_SAMPLES",
		},
		cli.StringFlag{
			Name:   "out, o",
			Value:  "output",
			Usage:  "output directory",
			EnvVar: "RAYTRACER_OUT",
		},
		cli.StringFlag{
			Name:   "format",
			Value:  "png",
			Usage:  "image format: png, bmp, tif or tiff",
			EnvVar: "RAYTRACER_FORMAT",
		},
		cli.BoolFlag{
			Name:   "stats",
			Usage:  "print per worker statistics after each frame",
			EnvVar: "RAYTRACER_STATS",
		},
	}
}
