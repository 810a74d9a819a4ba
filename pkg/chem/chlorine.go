package chem

import (
	"math"

	"github.com/marcusandresus/piscina/pkg/models"
)

// ChlorineDoses carries the two correction sizes the operator chooses
// between. Maintenance reaches the target range floor, corrective reaches
// the range midpoint. Both are always reported; the engine never picks
// one silently.
type ChlorineDoses struct {
	Maintenance models.Dose `json:"maintenance"`
	Corrective  models.Dose `json:"corrective"`
}

// ChlorineDosesFor sizes both chlorine doses from a mass balance:
// 1 ppm deficit needs 1 mg/L, and a product at concentrationPct yields
// concentrationPct*10 mg of available chlorine per unit. Liquid products
// dose in ml, granular in g; the formula is the same.
func ChlorineDosesFor(measuredPpm, targetMinPpm, targetMaxPpm, volumeLiters, concentrationPct float64, presentation models.Presentation) ChlorineDoses {
	unit := models.UnitFor(presentation)
	if concentrationPct <= 0 {
		return ChlorineDoses{
			Maintenance: models.Dose{Value: 0, Unit: unit},
			Corrective:  models.Dose{Value: 0, Unit: unit},
		}
	}

	targetMid := (targetMinPpm + targetMaxPpm) / 2
	deficitToMin := math.Max(0, targetMinPpm-measuredPpm)
	deficitToMid := math.Max(0, targetMid-measuredPpm)

	mgPerUnit := concentrationPct * 10

	return ChlorineDoses{
		Maintenance: models.Dose{Value: deficitToMin * volumeLiters / mgPerUnit, Unit: unit},
		Corrective:  models.Dose{Value: deficitToMid * volumeLiters / mgPerUnit, Unit: unit},
	}
}
