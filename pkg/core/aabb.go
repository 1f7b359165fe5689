package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the inverted box that acts as the identity for Union.
// It only exists while boxes are being accumulated and never reaches traversal.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	_, ok := aabb.Entry(ray, tMin, tMax)
	return ok
}

// slabSlack widens each slab interval to absorb rounding in its computation,
// so a box never rejects a ray that hits a shape it bounds
const slabSlack = 2 * (3 * epsilon) / (1 - 3*epsilon)

// epsilon is the float64 machine epsilon (half an ulp of 1)
const epsilon = 1.0 / (1 << 53)

// Entry runs the slab test and returns the parameter at which the ray enters
// the box, clipped to [tMin, tMax]
func (aabb AABB) Entry(ray Ray, tMin, tMax float64) (float64, bool) {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		invDirection := 1.0 / direction

		// Ray parallel to this slab: it is inside for all t or never
		if direction == 0 || math.IsInf(invDirection, 0) {
			if origin < min || origin > max {
				return 0, false
			}
			continue
		}

		// Calculate intersection distances for this axis
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection

		// Ensure t1 <= t2 (swap if needed)
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		t1 -= math.Abs(t1) * slabSlack
		t2 += math.Abs(t2) * slabSlack

		// Update overall intersection interval
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		// No intersection if tMin > tMax
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// PadToMinimum widens every axis thinner than delta so the box keeps a
// non-zero thickness. Flat primitives would otherwise be culled by rays
// that graze their plane.
func (aabb AABB) PadToMinimum(delta float64) AABB {
	half := delta / 2
	for axis := 0; axis < 3; axis++ {
		lo, hi := aabb.Min.Axis(axis), aabb.Max.Axis(axis)
		if hi-lo < delta {
			aabb.Min = aabb.Min.WithAxis(axis, lo-half)
			aabb.Max = aabb.Max.WithAxis(axis, hi+half)
		}
	}
	return aabb
}
