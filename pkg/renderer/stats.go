package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	SamplesPerPixel  int           // Samples taken per pixel
	MaxDepth         int           // Bounce limit used
	Tiles            int           // Number of tiles the image was split into
	AverageLuminance float64       // Mean linear luminance of the framebuffer
	Elapsed          time.Duration // Wall time of the render
	Workers          []WorkerStats // Per-worker breakdown, indexed by worker ID
}

// WorkerStats tracks how much of the image a single worker rendered
type WorkerStats struct {
	ID     int
	Tiles  int
	Pixels int
	Busy   time.Duration
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// SamplesPerSecond returns the sample throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// FormatStats renders the per-worker breakdown and totals as a text table
func FormatStats(stats RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "% of frame", "Busy time"})
	for _, worker := range stats.Workers {
		percent := 0.0
		if stats.TotalPixels > 0 {
			percent = 100 * float64(worker.Pixels) / float64(stats.TotalPixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", worker.ID),
			fmt.Sprintf("%d", worker.Tiles),
			fmt.Sprintf("%d", worker.Pixels),
			fmt.Sprintf("%02.1f %%", percent),
			worker.Busy.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		stats.Elapsed.Round(time.Millisecond).String(),
	})
	table.Render()
	return buf.String()
}
