package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// debugCyan is returned by image textures that have no pixels
var debugCyan = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return debugCyan
	}

	u := clampUnit(uv.X)
	v := 1.0 - clampUnit(uv.Y) // Flip V so v=1 is the top row

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u or v of exactly 1 lands one past the last texel
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clampUnit(x float64) float64 {
	return max(0, min(1, x))
}
