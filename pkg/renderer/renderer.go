package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Renderer drives a full render of an immutable world. Nothing it reads
// during Render is mutated, so the world, camera and background are shared
// by every worker without locking.
type Renderer struct {
	camera       *Camera
	config       SamplingConfig
	tileRenderer *TileRenderer
	logger       log.Logger
}

// NewRenderer creates a path tracing renderer for world as seen by camera
func NewRenderer(world integrator.Hittable, camera *Camera, background integrator.Background, config SamplingConfig, logger log.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}
	if world == nil || camera == nil || background == nil {
		return nil, fmt.Errorf("renderer needs a world, a camera and a background")
	}

	if logger == nil {
		logger = log.New("renderer")
	}

	tracer := integrator.NewPathTracer(world, background, config.MaxDepth)
	return &Renderer{
		camera:       camera,
		config:       config,
		tileRenderer: NewTileRenderer(camera, tracer, config),
		logger:       logger,
	}, nil
}

// Render renders every tile and returns the linear framebuffer.
// The result depends only on the scene and config, never on the worker count.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	fb := NewFramebuffer(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize)

	pool := NewWorkerPool(r.tileRenderer, len(tiles), r.config.NumWorkers)
	r.logger.Infof("rendering %dx%d at %d spp, depth %d: %d tiles on %d workers",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.MaxDepth,
		len(tiles), pool.GetNumWorkers())

	pool.Start()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Framebuffer: fb})
	}

	stats := RenderStats{
		SamplesPerPixel: r.config.SamplesPerPixel,
		MaxDepth:        r.config.MaxDepth,
		Tiles:           len(tiles),
		Workers:         make([]WorkerStats, pool.GetNumWorkers()),
	}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}

	for completed := 1; completed <= len(tiles); completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalPixels += result.Stats.Pixels
		stats.TotalSamples += result.Stats.Samples

		worker := &stats.Workers[result.WorkerID]
		worker.Tiles++
		worker.Pixels += result.Stats.Pixels
		worker.Busy += result.Elapsed

		r.logger.Debugf("tile %d/%d (%v) done by worker %d in %v",
			completed, len(tiles), tiles[result.TaskID].Bounds, result.WorkerID, result.Elapsed)
	}
	pool.Stop()

	stats.AverageLuminance = fb.AverageLuminance()
	stats.Elapsed = time.Since(start)
	r.logger.Infof("render finished in %v (%.0f samples/s)", stats.Elapsed, stats.SamplesPerSecond())

	return fb, stats
}
