package chem

import (
	"math"

	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

const (
	// ReferenceAcidConcentrationPct is the commercial muriatic acid
	// strength the reference dose is calibrated for.
	ReferenceAcidConcentrationPct = 31.45

	// ReferenceAcidMlPerTenthPh is the acid dose that lowers pH by 0.1
	// in 10,000 L of water at the reference concentration and TA 100.
	ReferenceAcidMlPerTenthPh = 25.0

	referenceVolumeLiters = 10000.0

	// alkalinityFactorFloor keeps the dose from being underestimated
	// when the assumed TA is very low.
	alkalinityFactorFloor = 0.4

	phStep = 0.1
)

// MlPerTenthPh is the acid dose expected to lower pH by one 0.1 step for
// the given pool volume, product strength, and assumed alkalinity.
// Returns 0 for a non-positive concentration.
func MlPerTenthPh(volumeLiters, acidPct, alkalinityPpm float64) float64 {
	if acidPct <= 0 {
		return 0
	}
	concentrationFactor := ReferenceAcidConcentrationPct / acidPct
	volumeFactor := volumeLiters / referenceVolumeLiters
	alkalinityFactor := math.Max(alkalinityFactorFloor, alkalinityPpm/100)
	return ReferenceAcidMlPerTenthPh * concentrationFactor * volumeFactor * alkalinityFactor
}

// AcidDoseToLower is the total acid dose, in ml, to move measuredPh down
// to targetPhMax. Exactly 0 when no lowering is needed or the product
// concentration is invalid.
func AcidDoseToLower(measuredPh, targetPhMax, volumeLiters, acidPct, alkalinityPpm float64) float64 {
	if measuredPh <= targetPhMax {
		return 0
	}
	perStep := MlPerTenthPh(volumeLiters, acidPct, alkalinityPpm)
	if perStep <= 0 {
		return 0
	}
	return math.Max(0, (measuredPh-targetPhMax)/phStep*perStep)
}

// GramsPerTenthPh is the pH-raiser dose expected to raise pH by one 0.1
// step. referenceDoseGrams is the product's label dose per 0.1 pH per
// 10,000 L at 100 % strength.
func GramsPerTenthPh(volumeLiters, basePct, referenceDoseGrams float64) float64 {
	if basePct <= 0 || referenceDoseGrams <= 0 {
		return 0
	}
	volumeFactor := volumeLiters / referenceVolumeLiters
	return referenceDoseGrams * (100 / basePct) * volumeFactor
}

// BaseDoseToRaise is the total raiser dose, in grams, to move measuredPh
// up to targetPhMin. Exactly 0 when no raising is needed or the product
// configuration is invalid.
func BaseDoseToRaise(measuredPh, targetPhMin, volumeLiters, basePct, referenceDoseGrams float64) float64 {
	if measuredPh >= targetPhMin {
		return 0
	}
	perStep := GramsPerTenthPh(volumeLiters, basePct, referenceDoseGrams)
	if perStep <= 0 {
		return 0
	}
	return math.Max(0, (targetPhMin-measuredPh)/phStep*perStep)
}

// EstimatedPhAfterDose inverts the linear step relation: given an acid
// dose actually applied, back out the expected resulting pH. Returns the
// measured pH unchanged when the dose or the step size is non-positive.
func EstimatedPhAfterDose(measuredPh, appliedDoseMl, volumeLiters, acidPct, alkalinityPpm float64) float64 {
	if appliedDoseMl <= 0 {
		return measuredPh
	}
	perStep := MlPerTenthPh(volumeLiters, acidPct, alkalinityPpm)
	if perStep <= 0 {
		return measuredPh
	}
	return measuredPh - appliedDoseMl/perStep*phStep
}

// PhEstimate is one point of the what-if sensitivity sweep.
type PhEstimate struct {
	AlkalinityPpm float64 `json:"alkalinity_ppm"`
	EstimatedPh   float64 `json:"estimated_ph"`
}

// PhAfterDoseByAlkalinity estimates the post-dose pH across a range of TA
// assumptions. TA is the one unmeasured input, so this sweep is how the
// operator sees the spread of plausible outcomes for one applied dose.
func PhAfterDoseByAlkalinity(measuredPh, appliedDoseMl, volumeLiters, acidPct float64, alkalinities []float64) []PhEstimate {
	return common.Mapper(alkalinities, func(ta float64) PhEstimate {
		return PhEstimate{
			AlkalinityPpm: ta,
			EstimatedPh:   EstimatedPhAfterDose(measuredPh, appliedDoseMl, volumeLiters, acidPct, ta),
		}
	})
}

// PhCorrection is a staged pH correction. Stage1 is always half of Total:
// the protocol is apply stage 1, wait, re-measure, then decide on the
// remainder. There is no single-step variant.
type PhCorrection struct {
	Direction models.PhDirection `json:"direction"`
	Total     models.Dose        `json:"total"`
	Stage1    models.Dose        `json:"stage1"`
}

func newPhCorrection(direction models.PhDirection, total float64, unit models.DoseUnit) PhCorrection {
	return PhCorrection{
		Direction: direction,
		Total:     models.Dose{Value: total, Unit: unit},
		Stage1:    models.Dose{Value: total / 2, Unit: unit},
	}
}

// PhCorrectionFor picks the correction direction for a measurement and
// sizes both stages. Raising requires the base product to be enabled;
// otherwise a low pH yields direction none with zero doses.
func PhCorrectionFor(cfg *models.PoolConfig, measuredPh, volumeLiters float64) PhCorrection {
	lower := AcidDoseToLower(measuredPh, cfg.PhTargetMax, volumeLiters, cfg.AcidConcentrationPct, cfg.EstimatedAlkalinityPpm)
	if lower > 0 {
		return newPhCorrection(models.PhDirectionLower, lower, models.DoseUnitMl)
	}

	if cfg.BaseEnabled {
		raise := BaseDoseToRaise(measuredPh, cfg.PhTargetMin, volumeLiters, cfg.BaseConcentrationPct, cfg.BaseReferenceDoseGramsPer10kL)
		if raise > 0 {
			return newPhCorrection(models.PhDirectionRaise, raise, models.DoseUnitG)
		}
	}

	return newPhCorrection(models.PhDirectionNone, 0, models.DoseUnitMl)
}
