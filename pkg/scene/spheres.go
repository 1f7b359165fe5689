package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/noise"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewGroundMetalScene creates a small metal sphere resting on a large diffuse ground sphere under a sky gradient
func NewGroundMetalScene(opts Options) (*Scene, error) {
	camera := renderer.DefaultCameraConfig()
	camera.AspectRatio = 1.0

	s := &Scene{
		Name:           "ground-metal",
		CameraConfig:   camera,
		Background:     integrator.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1)),
		SamplingConfig: samplingFor(200, camera.AspectRatio, 16, 10),
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, metal),
	)
	return s, nil
}

// NewBouncingSpheresScene creates a field of small random spheres around three large ones.
// The diffuse spheres move upward during the shutter interval.
func NewBouncingSpheresScene(opts Options) (*Scene, error) {
	random := opts.random()

	camera := standardCamera()
	s := &Scene{
		Name:           "bouncing-spheres",
		CameraConfig:   camera,
		Background:     skyBlue(),
		SamplingConfig: previewSampling(camera.AspectRatio),
	}

	checker := material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	randomColor := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := randomColor(0.5, 1)
				fuzz := 0.5 * random.Float64()
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s, nil
}

// NewCheckeredSpheresScene creates two huge checkered spheres touching at the origin
func NewCheckeredSpheresScene(opts Options) (*Scene, error) {
	camera := standardCamera()
	s := &Scene{
		Name:           "checkered-spheres",
		CameraConfig:   camera,
		Background:     skyBlue(),
		SamplingConfig: previewSampling(camera.AspectRatio),
	}

	checker := material.NewTexturedLambertian(
		material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.1, 0.3), core.NewVec3(0.9, 0.9, 0.9)),
	)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return s, nil
}

// NewPerlinSpheresScene creates a marble sphere on a marble ground
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	camera := standardCamera()
	s := &Scene{
		Name:           "perlin-spheres",
		CameraConfig:   camera,
		Background:     skyBlue(),
		SamplingConfig: previewSampling(camera.AspectRatio),
	}

	// Sphere and ground get independent noise tables
	random := opts.random()
	marble := func() material.Material {
		return material.NewTexturedLambertian(material.NewNoiseTexture(noise.NewPerlin(random), 4, material.NoiseMarble))
	}
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble()),
		geometry.NewSphere(core.NewVec3(0, -1200, 0), 1200, marble()),
	)
	return s, nil
}

// NewEarthScene creates a globe wrapped in an image texture
func NewEarthScene(opts Options) (*Scene, error) {
	camera := standardCamera()
	s := &Scene{
		Name:           "earth",
		CameraConfig:   camera,
		Background:     skyBlue(),
		SamplingConfig: previewSampling(camera.AspectRatio),
	}

	globe := material.NewTexturedLambertian(earthTexture(opts))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, globe))
	return s, nil
}

// earthTexture loads the configured image, falling back to a UV debug pattern
func earthTexture(opts Options) material.Texture {
	logger := opts.logger()
	if opts.TexturePath == "" {
		logger.Info("No texture path given, using UV debug texture")
		return material.NewUVDebugTexture(256, 128)
	}

	image, err := loaders.LoadImage(opts.TexturePath)
	if err != nil {
		logger.Warningf("Could not load texture, using UV debug texture: %v", err)
		return material.NewUVDebugTexture(256, 128)
	}

	logger.Debugf("Loaded texture %s (%dx%d)", opts.TexturePath, image.Width, image.Height)
	return material.NewImageTexture(image.Width, image.Height, image.Pixels)
}
