package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// NewQuadsScene creates five colored parallelograms forming an open box around the view axis
func NewQuadsScene(opts Options) (*Scene, error) {
	camera := standardCamera()
	s := &Scene{
		Name:           "quads",
		CameraConfig:   camera,
		Background:     skyBlue(),
		SamplingConfig: previewSampling(camera.AspectRatio),
	}

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.Add(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)
	return s, nil
}

// NewSimpleLightScene creates a marble sphere lit only by an emissive quad and an emissive sphere
func NewSimpleLightScene(opts Options) (*Scene, error) {
	camera := standardCamera()
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.VFov = 20

	s := &Scene{
		Name:           "simple-light",
		CameraConfig:   camera,
		Background:     black(),
		SamplingConfig: previewSampling(camera.AspectRatio),
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(noise.NewPerlin(opts.random()), 4, material.NoiseMarble))
	ground := material.NewTexturedLambertian(
		material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.1, 0.3), core.NewVec3(0.9, 0.9, 0.9)),
	)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)
	return s, nil
}
