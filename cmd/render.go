package cmd

import (
	"errors"
	"time"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFlags holds the render command options. Zero width, spp and negative
// depth keep the preset's own values.
type RenderFlags struct {
	Width           int
	Height          int // 0 derives the height from the camera aspect ratio
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	Workers         int
	TileSize        int
	Exposure        float64
	Gamma           float64
	Texture         string
	Out             string
}

func readRenderFlags(ctx *cli.Context) RenderFlags {
	return RenderFlags{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Seed:            ctx.Int64("seed"),
		Workers:         ctx.Int("workers"),
		TileSize:        ctx.Int("tile-size"),
		Exposure:        ctx.Float64("exposure"),
		Gamma:           ctx.Float64("gamma"),
		Texture:         ctx.String("texture"),
		Out:             ctx.String("out"),
	}
}

// Apply overlays the flags on a preset's sampling config
func (f RenderFlags) Apply(base renderer.SamplingConfig, aspectRatio float64) renderer.SamplingConfig {
	config := base
	if f.Width > 0 {
		config.Width = f.Width
		config.Height = scene.HeightFor(f.Width, aspectRatio)
	}
	if f.Height > 0 {
		config.Height = f.Height
	}
	if f.SamplesPerPixel > 0 {
		config.SamplesPerPixel = f.SamplesPerPixel
	}
	if f.MaxDepth >= 0 {
		config.MaxDepth = f.MaxDepth
	}
	config.Seed = f.Seed
	config.NumWorkers = f.Workers
	config.TileSize = f.TileSize
	config.ToneMap.Exposure = f.Exposure
	config.ToneMap.Gamma = f.Gamma
	return config
}

// RenderFrame renders a preset scene to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}
	flags := readRenderFlags(ctx)

	// Fail before rendering rather than after
	if err := loaders.CheckOutputFormat(flags.Out); err != nil {
		return err
	}

	sc, err := scene.New(ctx.Args().First(), scene.Options{
		Seed:        flags.Seed,
		TexturePath: flags.Texture,
		Logger:      log.New("scene"),
	})
	if err != nil {
		return err
	}

	config := flags.Apply(sc.SamplingConfig, sc.CameraConfig.AspectRatio)
	if config.NumWorkers == 0 {
		config.NumWorkers = defaultWorkers()
	}

	start := time.Now()
	built, err := sc.Build()
	if err != nil {
		return err
	}
	logger.Infof("built scene %q in %v: %d primitives, BVH depth %d",
		sc.Name, time.Since(start), built.BVHStats.Primitives, built.BVHStats.MaxDepth)

	r, err := renderer.NewRenderer(built.World, built.Camera, built.Background, config, log.New("renderer"))
	if err != nil {
		return err
	}

	frame, stats := r.Render()
	if err := loaders.SaveImage(flags.Out, frame.Image(config.ToneMap)); err != nil {
		return err
	}
	logger.Noticef("wrote %s", flags.Out)

	// Display stats
	logger.Noticef("frame statistics\n%s", renderer.FormatStats(stats))
	return nil
}
