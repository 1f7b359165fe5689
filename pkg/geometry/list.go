package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShapeList tests every shape in turn. It stands in for the BVH when a
// scene has no shapes and serves as the reference the BVH must agree with.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list over the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Hit returns the closest hit across all shapes
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all shape boxes
func (l *ShapeList) BoundingBox(time0, time1 float64) core.AABB {
	box := core.EmptyAABB()
	for _, shape := range l.Shapes {
		box = box.Union(shape.BoundingBox(time0, time1))
	}
	return box
}
