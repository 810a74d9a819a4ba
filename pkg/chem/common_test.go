package chem

import "github.com/marcusandresus/piscina/pkg/models"

func testPoolConfig() *models.PoolConfig {
	return &models.PoolConfig{
		PoolDiameterMeters: 3.05,
		MaxWaterHeightCm:   76,

		ChlorineProductName:      "Liquid chlorine 5%",
		ChlorineConcentrationPct: 5,
		ChlorinePresentation:     models.PresentationLiquid,

		AcidProductName:      "Muriatic acid 10%",
		AcidConcentrationPct: 10,

		EstimatedAlkalinityPpm: 100,

		DefaultWaitMinutes:           20,
		MaxWaitMinutes:               30,
		IntensiveCycleEnabled:        true,
		IntensiveMinNights:           3,
		IntensiveMaxOvernightLossPpm: 1.0,

		PhTargetMin:          7.2,
		PhTargetMax:          7.6,
		ChlorineTargetMinPpm: 1,
		ChlorineTargetMaxPpm: 3,
	}
}
