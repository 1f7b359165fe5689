package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius flips the normals
// inward, which is how hollow glass spheres are modelled.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) core.AABB {
	return sphereBox(s.Center, s.Radius)
}

// Validate rejects zero-radius and non-finite spheres
func (s *Sphere) Validate() error {
	return validateSphere(s.Center, s.Radius, s.Material)
}

// hitSphere intersects a ray with a sphere and returns the smallest root in [tMin, tMax]
func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	// Dividing by the signed radius points the normal inward for hollow spheres
	outwardNormal := hitRecord.Point.Subtract(center).Divide(radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(hitRecord.Point.Subtract(center).Divide(math.Abs(radius)))

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u wraps around the Y axis starting at -X, v runs from -Y (0) to +Y (1).
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}

func validateSphere(center core.Vec3, radius float64, mat material.Material) error {
	if radius == 0 {
		return core.NewInvalidSceneError("sphere at %v has zero radius", center)
	}
	if !finiteVec(center) || !finite(radius) {
		return core.NewInvalidSceneError("sphere has non-finite parameters: center %v radius %v", center, radius)
	}
	if mat == nil {
		return core.NewInvalidSceneError("sphere at %v has no material", center)
	}
	return nil
}
