package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800), // Outside the open front of the box
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
		Time0:       0,
		Time1:       1,
	}
}

// cornellWalls returns the five walls of the box: red left, green right, white floor, ceiling and back
func cornellWalls() []geometry.Shape {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Shape{
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	}
}

// cornellBlocks returns the tall and short blocks, rotated about their corners and placed on the floor
func cornellBlocks(mat material.Material) (tall, short geometry.Shape) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 333, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}

// NewCornellScene creates a classic Cornell box with two rotated blocks and a ceiling light
func NewCornellScene(opts Options) (*Scene, error) {
	camera := cornellCamera()
	s := &Scene{
		Name:           "cornell-box",
		CameraConfig:   camera,
		Background:     black(),
		SamplingConfig: samplingFor(400, camera.AspectRatio, 50, 50),
	}

	s.Add(cornellWalls()...)

	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	s.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-80, 0, 0), core.NewVec3(0, 0, -130), light))

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.Add(tall, short)
	return s, nil
}

// NewCornellSmokeScene replaces the Cornell blocks with white and black smoke under a larger, dimmer light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	camera := cornellCamera()
	s := &Scene{
		Name:           "cornell-smoke",
		CameraConfig:   camera,
		Background:     black(),
		SamplingConfig: samplingFor(600, camera.AspectRatio, 200, 50),
	}

	s.Add(cornellWalls()...)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	// The boundary material is never seen, only the phase function of the medium
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(1, 1, 1)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(0, 0, 0)),
	)
	return s, nil
}
