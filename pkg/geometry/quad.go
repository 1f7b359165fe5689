package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (U × V normalized)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: normal · p = D
	W        core.Vec3         // n / (n · n), used to recover planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	var w core.Vec3
	if lengthSquared := n.LengthSquared(); lengthSquared > 0 {
		w = n.Divide(lengthSquared)
	}

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        w,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the quad's plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Planar coordinates of the hit point in the (U, V) frame
	hitVector := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the box around the four corners, padded so it is never flat
func (q *Quad) BoundingBox(time0, time1 float64) core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	).PadToMinimum(rectPadding)
}

// Validate rejects quads whose edges are parallel or zero
func (q *Quad) Validate() error {
	if !finiteVec(q.Corner) || !finiteVec(q.U) || !finiteVec(q.V) {
		return core.NewInvalidSceneError("quad at %v has non-finite parameters", q.Corner)
	}
	if q.U.Cross(q.V).NearZero() {
		return core.NewInvalidSceneError("quad at %v has degenerate edges %v, %v", q.Corner, q.U, q.V)
	}
	if q.Material == nil {
		return core.NewInvalidSceneError("quad at %v has no material", q.Corner)
	}
	return nil
}
