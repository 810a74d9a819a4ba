package chem

import "github.com/marcusandresus/piscina/pkg/models"

// Tolerance bands beyond the configured target range. These are fixed
// policy, not configuration: how far outside target a reading may drift
// before it is urgent does not depend on the chosen range.
const (
	PhMildTolerance          = 0.2
	ChlorineMildTolerancePpm = 0.5
)

func classify(measured, targetMin, targetMax, tolerance float64) models.Status {
	if measured >= targetMin && measured <= targetMax {
		return models.StatusOk
	}
	if measured >= targetMin-tolerance && measured <= targetMax+tolerance {
		return models.StatusMild
	}
	return models.StatusActionRequired
}

func ClassifyPh(measuredPh, targetMin, targetMax float64) models.Status {
	return classify(measuredPh, targetMin, targetMax, PhMildTolerance)
}

func ClassifyChlorine(measuredPpm, targetMinPpm, targetMaxPpm float64) models.Status {
	return classify(measuredPpm, targetMinPpm, targetMaxPpm, ChlorineMildTolerancePpm)
}
