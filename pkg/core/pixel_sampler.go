package core

import (
	"math/rand/v2"
)

// PixelSampler is a small PCG-backed sampler owned by a single pixel.
// Its stream depends only on the render seed and the pixel coordinates, so
// the samples a pixel sees do not depend on which worker renders it.
type PixelSampler struct {
	random *rand.Rand
}

// NewPixelSampler creates the sampler for pixel (x, y) of a render seeded with seed
func NewPixelSampler(seed int64, x, y int) *PixelSampler {
	key := splitMix64(uint64(seed))
	key = splitMix64(key ^ uint64(uint32(x)))
	key = splitMix64(key ^ uint64(uint32(y))<<32)
	return &PixelSampler{random: rand.New(rand.NewPCG(key, splitMix64(key)))}
}

// Get1D returns a random float64 in [0, 1)
func (p *PixelSampler) Get1D() float64 {
	return p.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (p *PixelSampler) Get2D() Vec2 {
	return NewVec2(p.random.Float64(), p.random.Float64())
}

// splitMix64 is the SplitMix64 finalizer
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
