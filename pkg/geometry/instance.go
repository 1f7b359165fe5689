package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate places a shape at an offset without copying its geometry
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate creates a translated instance of shape
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into object space, intersects, and moves the hit back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Shape.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) core.AABB {
	box := t.Shape.BoundingBox(time0, time1)
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// Validate checks the offset and the wrapped shape
func (t *Translate) Validate() error {
	if !finiteVec(t.Offset) {
		return core.NewInvalidSceneError("translate has non-finite offset %v", t.Offset)
	}
	return Validate(t.Shape)
}

// rotationSlack covers the rounding between rotating box corners and rotating rays
const rotationSlack = 1e-10

// Rotate turns a shape about one coordinate axis (0=X, 1=Y, 2=Z) through its origin
type Rotate struct {
	Shape   Shape
	Axis    int
	Degrees float64
	radians float64
}

// NewRotate creates a rotated instance of shape
func NewRotate(shape Shape, axis int, degrees float64) *Rotate {
	return &Rotate{Shape: shape, Axis: axis, Degrees: degrees, radians: degrees * math.Pi / 180}
}

// NewRotateY creates an instance of shape rotated about the Y axis
func NewRotateY(shape Shape, degrees float64) *Rotate {
	return NewRotate(shape, 1, degrees)
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := core.NewRayAt(
		ray.Origin.RotateAxis(r.Axis, -r.radians),
		ray.Direction.RotateAxis(r.Axis, -r.radians),
		ray.Time,
	)

	hit, ok := r.Shape.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products, so FrontFace still holds
	hit.Point = hit.Point.RotateAxis(r.Axis, r.radians)
	hit.Normal = hit.Normal.RotateAxis(r.Axis, r.radians)
	return hit, true
}

// BoundingBox returns the box around the eight rotated corners of the inner box
func (r *Rotate) BoundingBox(time0, time1 float64) core.AABB {
	box := r.Shape.BoundingBox(time0, time1)

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		corner := core.NewVec3(
			pick(i&1 != 0, box.Max.X, box.Min.X),
			pick(i&2 != 0, box.Max.Y, box.Min.Y),
			pick(i&4 != 0, box.Max.Z, box.Min.Z),
		)
		corners = append(corners, corner.RotateAxis(r.Axis, r.radians))
	}
	return core.NewAABBFromPoints(corners...).Expand(rotationSlack)
}

// Validate checks the axis and the wrapped shape
func (r *Rotate) Validate() error {
	if r.Axis < 0 || r.Axis > 2 {
		return core.NewInvalidSceneError("rotate axis %d out of range", r.Axis)
	}
	if !finite(r.Degrees) {
		return core.NewInvalidSceneError("rotate has non-finite angle %v", r.Degrees)
	}
	return Validate(r.Shape)
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
