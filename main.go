package main

import (
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
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
			Usage: "render a scene preset to an image file",
			Description: `
Build one of the scene presets, trace it on a pool of workers and write the
tone mapped frame to disk. The output format follows the file extension
(.png, .bmp, .tif or .tiff).

Zero width, spp and a negative depth keep the preset's own settings.`,
			ArgsUsage: "SCENE",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "width",
					Value:  0,
					Usage:  "frame width (0 = scene default)",
					EnvVar: "PT_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Value:  0,
					Usage:  "frame height (0 = derive from the camera aspect ratio)",
					EnvVar: "PT_HEIGHT",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  0,
					Usage:  "samples per pixel (0 = scene default)",
					EnvVar: "PT_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Value:  -1,
					Usage:  "maximum bounce depth (-1 = scene default)",
					EnvVar: "PT_DEPTH",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  42,
					Usage:  "seed for the scene layout and the pixel samplers",
					EnvVar: "PT_SEED",
				},
				cli.IntFlag{
					Name:   "workers",
					Value:  0,
					Usage:  "number of render workers (0 = physical cores)",
					EnvVar: "PT_WORKERS",
				},
				cli.IntFlag{
					Name:   "tile-size",
					Value:  32,
					Usage:  "edge of a square render tile in pixels (0 = whole rows)",
					EnvVar: "PT_TILE_SIZE",
				},
				cli.Float64Flag{
					Name:   "exposure",
					Value:  1.0,
					Usage:  "camera exposure for tone-mapping",
					EnvVar: "PT_EXPOSURE",
				},
				cli.Float64Flag{
					Name:   "gamma",
					Value:  2.0,
					Usage:  "display gamma for tone-mapping",
					EnvVar: "PT_GAMMA",
				},
				cli.StringFlag{
					Name:   "texture",
					Value:  "earthmap.png",
					Usage:  "image used by the earth texture",
					EnvVar: "PT_TEXTURE",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "frame.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "PT_OUT",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available scene presets",
			Action: cmd.ListScenes,
		},
		{
			Name:   "info",
			Usage:  "show host cpu and memory details",
			Action: cmd.HostInfo,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		cmd.Fatal(err)
	}
}
