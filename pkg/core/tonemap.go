package core

import (
	"fmt"
	"math"
)

// ToneMap converts linear radiance into displayable [0,1] color
type ToneMap struct {
	Exposure float64 // Linear scale applied before gamma
	Gamma    float64 // Display gamma; 2.0 is the square-root convention
}

// DefaultToneMap returns unit exposure with gamma 2
func DefaultToneMap() ToneMap {
	return ToneMap{Exposure: 1.0, Gamma: 2.0}
}

// Validate rejects exposure or gamma that is not a positive finite number
func (tm ToneMap) Validate() error {
	if !(tm.Exposure > 0) || math.IsInf(tm.Exposure, 0) {
		return fmt.Errorf("exposure must be positive, got %g", tm.Exposure)
	}
	if !(tm.Gamma > 0) || math.IsInf(tm.Gamma, 0) {
		return fmt.Errorf("gamma must be positive, got %g", tm.Gamma)
	}
	return nil
}

// Apply scales by exposure, gamma corrects and clamps to [0,1]
func (tm ToneMap) Apply(color Vec3) Vec3 {
	return color.Multiply(tm.Exposure).GammaCorrect(tm.Gamma).Clamp(0, 1)
}

// ToRGBA8 maps a tone mapped color to 8-bit channels
func (tm ToneMap) ToRGBA8(color Vec3) (r, g, b uint8) {
	c := tm.Apply(color)
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

func toByte(c float64) uint8 {
	return uint8(256 * max(0, min(c, 0.999)))
}
