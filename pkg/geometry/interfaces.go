package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectPadding is the minimum thickness given to the bounding box of flat shapes
const rectPadding = 0.0001

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox must enclose the shape for every ray time in [time0, time1]
	BoundingBox(time0, time1 float64) core.AABB
}

// Validator is implemented by shapes whose parameters can be degenerate.
// Validate returns a *core.InvalidSceneError describing the problem.
type Validator interface {
	Validate() error
}

// Validate checks a shape if it knows how to check itself
func Validate(shape Shape) error {
	if shape == nil {
		return core.NewInvalidSceneError("nil shape")
	}
	if v, ok := shape.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finiteVec(v core.Vec3) bool {
	return v.IsFinite()
}
