package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int          // Image width in pixels
	Height          int          // Image height in pixels
	SamplesPerPixel int          // Number of rays per pixel
	MaxDepth        int          // Maximum ray bounce depth
	Seed            int64        // Seed for every pixel's private sampler
	TileSize        int          // Edge of a square tile in pixels, 0 renders whole rows
	NumWorkers      int          // Number of parallel workers (0 = use CPU count)
	ToneMap         core.ToneMap // Exposure and gamma applied on read-out
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		TileSize:        32,
		NumWorkers:      0,
		ToneMap:         core.DefaultToneMap(),
	}
}

// Validate rejects configurations that cannot produce an image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("tile size must not be negative, got %d", c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	if err := c.ToneMap.Validate(); err != nil {
		return fmt.Errorf("tone map: %w", err)
	}
	return nil
}
