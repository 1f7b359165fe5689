package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/noise"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene creates the showcase scene combining every primitive, material and texture:
// a field of random-height boxes, a moving sphere, glass, brushed metal, fog, marble,
// a cluster of small spheres and the textured globe.
func NewFinalScene(opts Options) (*Scene, error) {
	random := opts.random()
	logger := opts.logger()

	camera := renderer.CameraConfig{
		LookFrom:    core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 278),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
		Time0:       0,
		Time1:       1,
	}

	s := &Scene{
		Name:           "final",
		CameraConfig:   camera,
		Background:     black(),
		SamplingConfig: samplingFor(1080, camera.AspectRatio, 2500, 50),
	}

	// Ground: 20x20 boxes of random height, grouped under their own hierarchy
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	groundBoxes := make([]geometry.Shape, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			groundBoxes = append(groundBoxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(groundBoxes, camera.Time0, camera.Time1)
	if err != nil {
		return nil, err
	}
	s.Add(groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center0, center1, camera.Time0, camera.Time1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Faint fog filling a glass ball
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(boundary, 0.0001, core.NewVec3(1, 1, 1)))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(noise.NewPerlin(random), 0.2, material.NoiseMarble))
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	// Cluster of small white spheres, rotated and moved as one instance
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Shape, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		center := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster = append(cluster, geometry.NewSphere(center, 10, white))
	}
	clusterBVH, err := geometry.NewBVH(cluster, camera.Time0, camera.Time1)
	if err != nil {
		return nil, err
	}
	s.Add(geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture(opts))))

	logger.Debugf("Final scene: %d ground boxes, %d cluster spheres", len(groundBoxes), len(cluster))
	return s, nil
}
