package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/models"
)

var maxSessions int = 1000

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func randomMoment(i int) *models.CheckMoment {
	moments := []models.CheckMoment{
		models.CheckMomentNight,
		models.CheckMomentStartOfDay,
		models.CheckMomentSunHours,
	}
	m := moments[i%len(moments)]
	return &m
}

func main() {
	cfg := &models.PoolConfig{
		PoolDiameterMeters:           3.05,
		MaxWaterHeightCm:             76,
		ChlorineConcentrationPct:     5,
		ChlorinePresentation:         models.PresentationLiquid,
		AcidConcentrationPct:         10,
		EstimatedAlkalinityPpm:       100,
		IntensiveMinNights:           3,
		IntensiveMaxOvernightLossPpm: 1.0,
		PhTargetMin:                  7.2,
		PhTargetMax:                  7.6,
		ChlorineTargetMinPpm:         1,
		ChlorineTargetMaxPpm:         3,
	}

	base := time.Now().Add(-time.Duration(maxSessions) * time.Hour)
	sessions := make([]models.Session, maxSessions)

	startTime := time.Now()
	for i := 0; i < maxSessions; i++ {
		m := chem.Measurements{
			WaterHeightCm: 60 + rnd.Float64()*16,
			Ph:            6.8 + rnd.Float64()*1.4,
			ChlorinePpm:   rnd.Float64() * 5,
		}
		plan := chem.BuildPlan(cfg, m)
		sessions[i] = models.Session{
			ID:                     uuid.NewString(),
			Timestamp:              base.Add(time.Duration(i) * time.Hour),
			Kind:                   models.SessionKindQuickCheck,
			CheckMoment:            randomMoment(i),
			WaterHeightCm:          m.WaterHeightCm,
			MeasuredPh:             m.Ph,
			MeasuredChlorinePpm:    m.ChlorinePpm,
			CalculatedVolumeLiters: plan.VolumeLiters,
			PhDirection:            plan.Ph.Direction,
			PhTotalDose:            plan.Ph.Total.Value,
			PhStage1Dose:           plan.Ph.Stage1.Value,
		}
	}
	usedTime := time.Since(startTime)
	fmt.Printf("built %v plans in %v\n", maxSessions, usedTime)

	startTime = time.Now()
	trends := chem.LossTrendsFor(cfg, sessions)
	eval := chem.EvaluateCycleClosure(cfg, sessions)
	usedTime = time.Since(startTime)

	fmt.Printf("derived analytics in %v\n", usedTime)
	fmt.Printf("overnight pairs: %v (mean loss %.2f ppm)\n", len(trends.Overnight.Pairs), trends.Overnight.MeanLossPpm)
	fmt.Printf("daylight pairs: %v (mean loss %.2f ppm)\n", len(trends.Daylight.Pairs), trends.Daylight.MeanLossPpm)
	fmt.Printf("cycle closable: %v (unmet: %v)\n", eval.CanClose, eval.UnmetCriteria)
}
