package chem

import "math"

// VolumeLiters estimates the water volume of a cylindrical pool from its
// diameter and the measured water height. The result is full precision;
// rounding to whole liters is a presentation concern.
func VolumeLiters(diameterMeters, heightCm float64) float64 {
	radius := diameterMeters / 2
	return math.Pi * radius * radius * (heightCm / 100) * 1000
}
