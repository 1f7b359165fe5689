package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer is a grid of averaged linear colors.
// Pixels[y*Width+x] holds pixel (x, y); (0, 0) is the top-left pixel.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// Mapped returns a new framebuffer with exposure, gamma and clamping applied
func (fb *Framebuffer) Mapped(toneMap core.ToneMap) *Framebuffer {
	mapped := NewFramebuffer(fb.Width, fb.Height)
	for i, c := range fb.Pixels {
		mapped.Pixels[i] = toneMap.Apply(c)
	}
	return mapped
}

// Image converts the framebuffer to 8-bit RGBA for encoding
func (fb *Framebuffer) Image(toneMap core.ToneMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := toneMap.ToRGBA8(fb.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// AverageLuminance returns the mean linear luminance over all pixels
func (fb *Framebuffer) AverageLuminance() float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range fb.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(fb.Pixels))
}
