package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane selects the coordinate plane an axis-aligned rectangle lies in
type Plane int

const (
	PlaneXY Plane = iota // Fixed Z, extents in X and Y
	PlaneXZ              // Fixed Y, extents in X and Z
	PlaneYZ              // Fixed X, extents in Y and Z
)

// axes returns the (a, b, fixed) axis indices for the plane
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXZ:
		return 0, 2, 1
	case PlaneYZ:
		return 1, 2, 0
	default:
		return 0, 1, 2
	}
}

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "xy"
	}
}

// Rect is an axis-aligned rectangle at coordinate K on the fixed axis,
// spanning [A0,A1] x [B0,B1] on the other two
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Flipped  bool // Outward normal points toward -fixed axis instead of +
	Material material.Material
}

// NewRect creates an axis-aligned rectangle facing the positive fixed axis
func NewRect(plane Plane, a0, a1, b0, b1, k float64, material material.Material) *Rect {
	return &Rect{Plane: plane, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: material}
}

// NewXYRect creates a rectangle at z=k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Rect {
	return NewRect(PlaneXY, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle at y=k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Rect {
	return NewRect(PlaneXZ, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle at x=k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Rect {
	return NewRect(PlaneYZ, y0, y1, z0, z1, k, material)
}

// Hit solves for the plane crossing and checks it against the extents
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	aAxis, bAxis, kAxis := r.Plane.axes()

	direction := ray.Direction.Axis(kAxis)
	if math.Abs(direction) < 1e-12 {
		return nil, false // Parallel to the plane
	}

	t := (r.K - ray.Origin.Axis(kAxis)) / direction
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	a := point.Axis(aAxis)
	b := point.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	normalSign := 1.0
	if r.Flipped {
		normalSign = -1.0
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point.WithAxis(kAxis, r.K),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.Vec3{}.WithAxis(kAxis, normalSign))

	return hitRecord, true
}

// BoundingBox returns the rectangle's extents padded on the fixed axis
func (r *Rect) BoundingBox(time0, time1 float64) core.AABB {
	aAxis, bAxis, kAxis := r.Plane.axes()
	min := core.Vec3{}.WithAxis(aAxis, r.A0).WithAxis(bAxis, r.B0).WithAxis(kAxis, r.K)
	max := core.Vec3{}.WithAxis(aAxis, r.A1).WithAxis(bAxis, r.B1).WithAxis(kAxis, r.K)
	return core.NewAABB(min, max).PadToMinimum(rectPadding)
}

// Validate rejects empty or inverted extents
func (r *Rect) Validate() error {
	if !finite(r.A0, r.A1, r.B0, r.B1, r.K) {
		return core.NewInvalidSceneError("%s rect has non-finite extents", r.Plane)
	}
	if r.A0 >= r.A1 || r.B0 >= r.B1 {
		return core.NewInvalidSceneError("%s rect at k=%v has empty extent [%v,%v]x[%v,%v]",
			r.Plane, r.K, r.A0, r.A1, r.B0, r.B1)
	}
	if r.Material == nil {
		return core.NewInvalidSceneError("%s rect at k=%v has no material", r.Plane, r.K)
	}
	return nil
}
