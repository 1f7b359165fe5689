// Package noise implements coherent gradient noise for procedural textures.
package noise

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// pointCount is the size of the permutation and gradient tables. It must be a power of two.
const pointCount = 256

// Perlin is an immutable gradient noise generator. All tables are filled once
// at construction and only read afterwards, so one generator can be shared by
// every render worker.
type Perlin struct {
	gradients [pointCount]core.Vec3
	permX     [pointCount]int
	permY     [pointCount]int
	permZ     [pointCount]int
}

// NewPerlin creates a noise generator whose tables are drawn from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = randomUnitVector(random)
	}
	p.permX = generatePermutation(random)
	p.permY = generatePermutation(random)
	p.permZ = generatePermutation(random)
	return p
}

// Noise returns smooth noise in roughly [-1, 1] at point p
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz

	// Signed lattice coordinates; & wraps negatives correctly in two's complement
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				index := p.permX[(i+di)&(pointCount-1)] ^
					p.permY[(j+dj)&(pointCount-1)] ^
					p.permZ[(k+dk)&(pointCount-1)]
				c[di][dj][dk] = p.gradients[index]
			}
		}
	}

	return interpolate(&c, u, v, w)
}

// Turbulence sums depth octaves of noise, doubling frequency and halving
// amplitude each time, and returns the magnitude of the sum
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	scaled := point
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(scaled)
		weight *= 0.5
		scaled = scaled.Multiply(2)
	}
	return math.Abs(accum)
}

// interpolate blends the corner gradients with Hermite-smoothed trilinear weights
func interpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				offset := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(offset)
			}
		}
	}
	return accum
}

// generatePermutation returns a Fisher-Yates shuffle of 0..pointCount-1
func generatePermutation(random *rand.Rand) [pointCount]int {
	var perm [pointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

func randomUnitVector(random *rand.Rand) core.Vec3 {
	return core.SampleUnitVector(core.NewVec2(random.Float64(), random.Float64()))
}
