package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestBVH_EmptyIsError(t *testing.T) {
	bvh, err := NewBVH(nil, 0, 1)
	if err == nil {
		t.Fatal("Expected error for empty BVH")
	}
	if bvh != nil {
		t.Error("Expected nil BVH on error")
	}
	var sceneErr *core.InvalidSceneError
	if !errors.As(err, &sceneErr) {
		t.Errorf("Expected InvalidSceneError, got %T", err)
	}
}

func TestBVH_RejectsInvalidPrimitives(t *testing.T) {
	inverted := MockShape{boundingBox: core.EmptyAABB(), hitFn: neverHit}
	if _, err := NewBVH([]Shape{inverted}, 0, 1); err == nil {
		t.Error("Expected error for inverted bounding box")
	}

	nan := MockShape{
		boundingBox: core.NewAABB(core.NewVec3(math.NaN(), 0, 0), core.NewVec3(1, 1, 1)),
		hitFn:       neverHit,
	}
	if _, err := NewBVH([]Shape{nan}, 0, 1); err == nil {
		t.Error("Expected error for NaN bounding box")
	}

	if _, err := NewBVH([]Shape{nil}, 0, 1); err == nil {
		t.Error("Expected error for nil primitive")
	}
}

func TestBVH_SingleShape(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, DummyMaterial{})
	bvh, err := NewBVH([]Shape{sphere}, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}

	stats := bvh.Stats()
	if stats.Primitives != 1 || stats.Nodes != 1 || stats.Leaves != 1 || stats.MaxDepth != 0 {
		t.Errorf("Expected single leaf, got %+v", stats)
	}
}

func TestBVH_ClosestOfOverlapping(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -5), 1, DummyMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -10), 3, DummyMaterial{})

	bvh, err := NewBVH([]Shape{far, near}, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest sphere at t=4, got %f", hit.T)
	}
}

func TestBVH_RayHitsBoundingBoxButMissesShapes(t *testing.T) {
	shapes := []Shape{
		MockShape{boundingBox: core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)), hitFn: neverHit},
		MockShape{boundingBox: core.NewAABB(core.NewVec3(2, -1, -1), core.NewVec3(4, 1, 1)), hitFn: neverHit},
	}
	bvh, err := NewBVH(shapes, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := bvh.Hit(core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)), 0.001, 100); ok {
		t.Error("Expected miss when the shapes themselves are never hit")
	}
}

func TestBVH_IdenticalBoundingBoxes(t *testing.T) {
	var shapes []Shape
	for i := 0; i < 8; i++ {
		shapes = append(shapes, NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{}))
	}
	bvh, err := NewBVH(shapes, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := bvh.Stats()
	if stats.Leaves != 8 || stats.Nodes != 15 {
		t.Errorf("Expected 8 leaves and 15 nodes, got %+v", stats)
	}
	if stats.MaxDepth != 3 {
		t.Errorf("Expected balanced depth 3, got %d", stats.MaxDepth)
	}

	if _, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 100); !ok {
		t.Error("Expected hit through stacked spheres")
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	a := NewSphere(core.NewVec3(5, 0, 0), 1, DummyMaterial{})
	b := NewSphere(core.NewVec3(-5, 0, 0), 1, DummyMaterial{})
	shapes := []Shape{a, b}

	if _, err := NewBVH(shapes, 0, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if shapes[0] != a || shapes[1] != b {
		t.Error("Expected caller's slice to be left in its original order")
	}
}

func TestBVH_StatsBalanced(t *testing.T) {
	var shapes []Shape
	for i := 0; i < 100; i++ {
		shapes = append(shapes, NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, DummyMaterial{}))
	}
	bvh, err := NewBVH(shapes, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := bvh.Stats()
	if stats.Primitives != 100 || stats.Leaves != 100 || stats.Nodes != 199 {
		t.Errorf("Expected 100 leaves in 199 nodes, got %+v", stats)
	}
	// Median splits keep depth at ceil(log2(n))
	if stats.MaxDepth != 7 {
		t.Errorf("Expected max depth 7, got %d", stats.MaxDepth)
	}
	if stats.AverageLeafDepth < 6 || stats.AverageLeafDepth > 7 {
		t.Errorf("Expected average leaf depth between 6 and 7, got %f", stats.AverageLeafDepth)
	}

	box := bvh.BoundingBox(0, 1)
	if box.Min.X != -1 || box.Max.X != 298 {
		t.Errorf("Expected root box to span all spheres, got %v", box)
	}
}

// randomShapes builds a mixed scene of spheres, moving spheres, rects and instanced boxes
func randomShapes(random *rand.Rand, count int) []Shape {
	coord := func() float64 { return random.Float64()*20 - 10 }
	var mat material.Material = DummyMaterial{}

	shapes := make([]Shape, 0, count)
	for i := 0; i < count; i++ {
		center := core.NewVec3(coord(), coord(), coord())
		switch i % 5 {
		case 0:
			shapes = append(shapes, NewSphere(center, 0.2+random.Float64(), mat))
		case 1:
			shapes = append(shapes, NewMovingSphere(center, center.Add(core.NewVec3(0, random.Float64(), 0)), 0, 1, 0.5, mat))
		case 2:
			// Integer-aligned rects give grazing rays exact edge coincidences
			x, y, z := math.Round(center.X), math.Round(center.Y), math.Round(center.Z)
			shapes = append(shapes, NewXZRect(x, x+2, z, z+2, y, mat))
		case 3:
			shapes = append(shapes, NewTranslate(NewRotateY(NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 1), mat), random.Float64()*90), center))
		default:
			shapes = append(shapes, NewQuad(center, core.NewVec3(1, 0, 0.5), core.NewVec3(0, 1, 0), mat))
		}
	}
	return shapes
}

func TestBVH_MatchesShapeList(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	shapes := randomShapes(random, 200)

	bvh, err := NewBVH(shapes, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	list := NewShapeList(shapes...)

	checkRay := func(ray core.Ray) {
		t.Helper()
		listHit, listOK := list.Hit(ray, 0.001, math.Inf(1))
		bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))
		if listOK != bvhOK {
			t.Fatalf("Ray %v: list hit=%v, bvh hit=%v", ray, listOK, bvhOK)
		}
		if !listOK {
			return
		}
		if listHit.T != bvhHit.T || listHit.Point != bvhHit.Point {
			t.Fatalf("Ray %v: list hit t=%v at %v, bvh hit t=%v at %v",
				ray, listHit.T, listHit.Point, bvhHit.T, bvhHit.Point)
		}
	}

	// Random rays from outside the scene aimed into it
	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(random.Float64()*60-30, random.Float64()*60-30, random.Float64()*60-30)
		target := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		checkRay(core.NewRayAt(origin, target.Subtract(origin), random.Float64()))
	}

	// Grazing rays aimed at the corners and edges of every bounding box
	for _, shape := range shapes {
		box := shape.BoundingBox(0, 1)
		for corner := 0; corner < 8; corner++ {
			target := core.NewVec3(
				pick(corner&1 != 0, box.Max.X, box.Min.X),
				pick(corner&2 != 0, box.Max.Y, box.Min.Y),
				pick(corner&4 != 0, box.Max.Z, box.Min.Z),
			)
			origin := core.NewVec3(-40, target.Y, -40)
			checkRay(core.NewRay(origin, target.Subtract(origin)))

			// Axis-parallel rays running along box faces
			checkRay(core.NewRay(core.NewVec3(-40, target.Y, target.Z), core.NewVec3(1, 0, 0)))
			checkRay(core.NewRay(core.NewVec3(target.X, 40, target.Z), core.NewVec3(0, -1, 0)))
		}
	}
}
