package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // WebP decoder
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, (0,0) is the top-left pixel
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return FromImage(img), nil
}

// FromImage converts any decoded image to Vec3 colors in [0, 1]
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// SaveImage encodes img to filename, picking the encoder from the extension:
// .png, .bmp, .tif or .tiff
func SaveImage(filename string, img image.Image) error {
	encode, err := encoderFor(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image %s: %w", filename, err)
	}
	return file.Close()
}

// CheckOutputFormat reports whether SaveImage can write filename
func CheckOutputFormat(filename string) error {
	_, err := encoderFor(filename)
	return err
}

type encodeFunc func(f *os.File, img image.Image) error

func encoderFor(filename string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return func(f *os.File, img image.Image) error { return png.Encode(f, img) }, nil
	case ".bmp":
		return func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }, nil
	case ".tif", ".tiff":
		return func(f *os.File, img image.Image) error {
			return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png, .bmp or .tiff)", ext)
	}
}
