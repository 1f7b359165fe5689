package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image.
// A tileSize of 0 makes every row its own tile.
func NewTileGrid(width, height, tileSize int) []*Tile {
	tileW, tileH := tileSize, tileSize
	if tileSize <= 0 {
		tileW, tileH = width, 1
	}

	// Calculate number of tiles in each dimension
	tilesX := (width + tileW - 1) / tileW // Ceiling division
	tilesY := (height + tileH - 1) / tileH

	tiles := make([]*Tile, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileW
			y0 := tileY * tileH
			x1 := min(x0+tileW, width) // Don't exceed image bounds
			y1 := min(y0+tileH, height)

			tiles = append(tiles, &Tile{ID: len(tiles), Bounds: image.Rect(x0, y0, x1, y1)})
		}
	}

	return tiles
}

// TileStats counts the work done for one tile
type TileStats struct {
	Pixels  int
	Samples int
}

// TileRenderer renders pixels of a shared framebuffer using an integrator.
// It holds no mutable state, so one instance serves every worker.
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewTileRenderer creates a tile renderer over an immutable camera and integrator
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator, config SamplingConfig) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderTileBounds renders every pixel within bounds into fb
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer) TileStats {
	var stats TileStats
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			fb.Set(i, j, tr.RenderPixel(i, j))
			stats.Pixels++
			stats.Samples += tr.config.SamplesPerPixel
		}
	}
	return stats
}

// RenderPixel averages SamplesPerPixel radiance samples for pixel (x, y).
// The pixel's sampler is derived from the seed and its coordinates alone.
func (tr *TileRenderer) RenderPixel(x, y int) core.Vec3 {
	sampler := core.NewPixelSampler(tr.config.Seed, x, y)
	width := float64(tr.config.Width)
	height := float64(tr.config.Height)

	var ps PixelStats
	for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		s := (float64(x) + jitter.X) / width
		// Row 0 is the top of the image, the camera's t = 1
		t := 1 - (float64(y)+jitter.Y)/height

		ray := tr.camera.GetRay(s, t, sampler.Get2D(), sampler.Get1D())
		ps.AddSample(tr.integrator.RayColor(ray, sampler))
	}
	return ps.GetColor()
}
