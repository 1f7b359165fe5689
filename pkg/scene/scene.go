package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is mutable while
// a preset fills it in; Build turns it into the read-only world the renderer uses.
type Scene struct {
	Name           string
	Shapes         []geometry.Shape // Objects in the scene
	CameraConfig   renderer.CameraConfig
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
}

// Built is the immutable result of Scene.Build, safe to share between render workers
type Built struct {
	World      integrator.Hittable
	Camera     *renderer.Camera
	Background integrator.Background
	BVHStats   geometry.BVHStats
}

// Options controls the inputs shared by every preset
type Options struct {
	Seed        int64      // Seeds scene randomness: sphere layouts, noise tables, box heights
	TexturePath string     // Image used by the earth preset
	Logger      log.Logger // Defaults to the "scene" module logger
}

// DefaultOptions returns the options the command line starts from
func DefaultOptions() Options {
	return Options{Seed: 42, TexturePath: "earthmap.png"}
}

func (o Options) logger() log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New("scene")
}

func (o Options) random() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

// Build validates every shape, builds the acceleration structure and the camera
func (s *Scene) Build() (*Built, error) {
	for i, shape := range s.Shapes {
		if err := geometry.Validate(shape); err != nil {
			return nil, fmt.Errorf("scene %q shape %d: %w", s.Name, i, err)
		}
	}

	background := s.Background
	if background == nil {
		return nil, core.NewInvalidSceneError("scene %q has no background", s.Name)
	}

	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q camera: %w", s.Name, err)
	}

	built := &Built{Camera: camera, Background: background}

	// An empty scene renders the background everywhere
	if len(s.Shapes) == 0 {
		built.World = geometry.NewShapeList()
		return built, nil
	}

	bvh, err := geometry.NewBVH(s.Shapes, s.CameraConfig.Time0, s.CameraConfig.Time1)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	built.World = bvh
	built.BVHStats = bvh.Stats()
	return built, nil
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// samplingFor returns the default sampling config sized to the camera aspect ratio
func samplingFor(width int, aspectRatio float64, samplesPerPixel, maxDepth int) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.Width = width
	config.Height = HeightFor(width, aspectRatio)
	config.SamplesPerPixel = samplesPerPixel
	config.MaxDepth = maxDepth
	return config
}

// previewSampling is the quick setting used by the small showcase presets
func previewSampling(aspectRatio float64) renderer.SamplingConfig {
	return samplingFor(600, aspectRatio, 20, 10)
}

// HeightFor derives an image height from a width and aspect ratio, never below one pixel
func HeightFor(width int, aspectRatio float64) int {
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		return 1
	}
	return height
}

// standardCamera is the view shared by most presets: looking at the origin from +Z
func standardCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 9),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        80,
		AspectRatio: 16.0 / 9.0,
		Time0:       0,
		Time1:       1,
	}
}

// skyBlue is the solid background of the daylight presets
func skyBlue() integrator.Background {
	return integrator.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0))
}

func black() integrator.Background {
	return integrator.NewSolidBackground(core.Vec3{})
}
