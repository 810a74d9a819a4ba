package chem

import (
	"fmt"

	z "github.com/Oudwins/zog"
)

// Colorimetric test kits only resolve readings inside these scales;
// anything outside is a transcription error, not a chemistry emergency.
const (
	PhScaleMin          = 6.8
	PhScaleMax          = 8.2
	ChlorineScaleMinPpm = 0.0
	ChlorineScaleMaxPpm = 10.0
)

var (
	phScaleSchema       = z.Float64().GTE(PhScaleMin).LTE(PhScaleMax)
	chlorineScaleSchema = z.Float64().GTE(ChlorineScaleMinPpm).LTE(ChlorineScaleMaxPpm)
	heightSchema        = z.Float64().GT(0)
)

// CheckPh rejects pH readings outside the test kit scale.
func CheckPh(measuredPh float64) error {
	v := measuredPh
	if issues := phScaleSchema.Validate(&v); issues != nil {
		return fmt.Errorf("measured pH %.2f is outside the test scale [%.1f, %.1f]", measuredPh, PhScaleMin, PhScaleMax)
	}
	return nil
}

// CheckChlorine rejects free-chlorine readings outside the test kit scale.
func CheckChlorine(measuredPpm float64) error {
	v := measuredPpm
	if issues := chlorineScaleSchema.Validate(&v); issues != nil {
		return fmt.Errorf("measured chlorine %.2f ppm is outside the test scale [%.1f, %.1f]", measuredPpm, ChlorineScaleMinPpm, ChlorineScaleMaxPpm)
	}
	return nil
}

// CheckHeight rejects non-positive water heights, and heights above the
// configured ceiling when one is set (maxHeightCm > 0).
func CheckHeight(heightCm, maxHeightCm float64) error {
	v := heightCm
	if issues := heightSchema.Validate(&v); issues != nil {
		return fmt.Errorf("water height %.1f cm must be greater than 0", heightCm)
	}
	if maxHeightCm > 0 && heightCm > maxHeightCm {
		return fmt.Errorf("water height %.1f cm exceeds the pool maximum of %.1f cm", heightCm, maxHeightCm)
	}
	return nil
}
