package cmd

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the available scene presets.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := scene.DefaultOptions()
	opts.TexturePath = ""

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Group", "Default size", "Description"})
	for _, group := range scene.Groups() {
		for _, info := range group.Scenes {
			size := "-"
			if sc, err := scene.New(info.ID, opts); err == nil {
				config := sc.SamplingConfig
				size = fmt.Sprintf("%dx%d @ %d spp", config.Width, config.Height, config.SamplesPerPixel)
			}
			table.Append([]string{info.ID, group.Name, size, info.Description})
		}
	}
	table.Render()
	return nil
}
