package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// fillImageTexture builds an image texture by evaluating fn at every texel
func fillImageTexture(width, height int, fn func(x, y int) core.Vec3) *ImageTexture {
	if width <= 0 || height <= 0 {
		return NewImageTexture(0, 0, nil)
	}
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = fn(x, y)
		}
	}
	return NewImageTexture(width, height, pixels)
}

// NewCheckerboardTexture creates an image of alternating square checks
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	if checkSize < 1 {
		checkSize = 1
	}
	return fillImageTexture(width, height, func(x, y int) core.Vec3 {
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugTexture creates a texture showing image coordinates as colors.
// Red grows left to right, green grows top to bottom.
func NewUVDebugTexture(width, height int) *ImageTexture {
	return fillImageTexture(width, height, func(x, y int) core.Vec3 {
		return core.NewVec3(ratio(x, width), ratio(y, height), 0.0)
	})
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	return fillImageTexture(width, height, func(x, y int) core.Vec3 {
		return color1.Lerp(color2, ratio(y, height))
	})
}

// ratio maps i in [0, n-1] onto [0, 1]
func ratio(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
