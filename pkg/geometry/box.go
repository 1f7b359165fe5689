package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box built from six rectangles sharing one material.
// Use Rotate and Translate to place it at an angle.
type Box struct {
	Min      core.Vec3
	Max      core.Vec3
	Material material.Material
	faces    [6]*Rect
}

// NewBox creates a box spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	min := core.NewVec3(math.Min(p0.X, p1.X), math.Min(p0.Y, p1.Y), math.Min(p0.Z, p1.Z))
	max := core.NewVec3(math.Max(p0.X, p1.X), math.Max(p0.Y, p1.Y), math.Max(p0.Z, p1.Z))

	box := &Box{Min: min, Max: max, Material: material}

	// Faces on the max side face +axis, faces on the min side are flipped to face -axis
	box.faces = [6]*Rect{
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
	}
	box.faces[1].Flipped = true
	box.faces[3].Flipped = true
	box.faces[5].Flipped = true

	return box
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestT := tMax

	for _, face := range b.faces {
		if hit, isHit := face.Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox(time0, time1 float64) core.AABB {
	return core.NewAABB(b.Min, b.Max).PadToMinimum(rectPadding)
}

// Validate rejects boxes that are flat along any axis
func (b *Box) Validate() error {
	for _, face := range b.faces {
		if err := face.Validate(); err != nil {
			return err
		}
	}
	return nil
}
