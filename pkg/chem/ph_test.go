package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcusandresus/piscina/pkg/models"
)

func scenarioVolume() float64 {
	return VolumeLiters(3.05, 76) // ~5552.69 L
}

func TestAcidDoseToLowerNoOp(t *testing.T) {
	// pH already at target maximum
	assert.Equal(t, 0.0, AcidDoseToLower(7.6, 7.6, scenarioVolume(), 10, 100))

	// pH below target maximum
	assert.Equal(t, 0.0, AcidDoseToLower(7.2, 7.6, scenarioVolume(), 10, 100))
}

func TestAcidDoseToLowerModerate(t *testing.T) {
	// 7.8 measured against a 7.6 ceiling with 10% acid and TA 100
	total := AcidDoseToLower(7.8, 7.6, scenarioVolume(), 10, 100)
	assert.InDelta(t, 87.32, total, 0.01)
}

func TestAcidDoseZeroConcentrationGuard(t *testing.T) {
	assert.Equal(t, 0.0, AcidDoseToLower(7.8, 7.6, scenarioVolume(), 0, 100))
	assert.Equal(t, 0.0, AcidDoseToLower(7.8, 7.6, scenarioVolume(), -5, 100))
	assert.Equal(t, 0.0, MlPerTenthPh(scenarioVolume(), 0, 100))
}

func TestAcidDoseLinearity(t *testing.T) {
	vol := scenarioVolume()
	oneStep := AcidDoseToLower(7.7, 7.6, vol, 10, 100)
	twoSteps := AcidDoseToLower(7.8, 7.6, vol, 10, 100)
	assert.InDelta(t, 2*oneStep, twoSteps, 1e-9)
}

func TestAcidDoseAlkalinityScaling(t *testing.T) {
	vol := scenarioVolume()
	at100 := AcidDoseToLower(7.8, 7.6, vol, 10, 100)
	at150 := AcidDoseToLower(7.8, 7.6, vol, 10, 150)
	assert.InDelta(t, at100*1.5, at150, 1e-9)
}

func TestAlkalinityFactorFloor(t *testing.T) {
	vol := scenarioVolume()
	// TA 10 and TA 40 both hit the 0.4 floor
	assert.InDelta(t,
		MlPerTenthPh(vol, 10, 10),
		MlPerTenthPh(vol, 10, 40),
		1e-9)
	// above the floor the factor scales
	assert.Greater(t, MlPerTenthPh(vol, 10, 100), MlPerTenthPh(vol, 10, 40))
}

func TestEstimatedPhAfterDoseRoundTrip(t *testing.T) {
	vol := scenarioVolume()
	perStep := MlPerTenthPh(vol, 10, 100)

	for _, steps := range []float64{0, 1, 2, 2.5, 7} {
		estimated := EstimatedPhAfterDose(7.8, steps*perStep, vol, 10, 100)
		assert.InDelta(t, 7.8-steps*0.1, estimated, 1e-9)
	}
}

func TestEstimatedPhAfterDoseGuards(t *testing.T) {
	vol := scenarioVolume()
	assert.Equal(t, 7.8, EstimatedPhAfterDose(7.8, 0, vol, 10, 100))
	assert.Equal(t, 7.8, EstimatedPhAfterDose(7.8, -10, vol, 10, 100))
	assert.Equal(t, 7.8, EstimatedPhAfterDose(7.8, 50, vol, 0, 100))
}

func TestPhAfterDoseByAlkalinity(t *testing.T) {
	vol := scenarioVolume()
	perStep := MlPerTenthPh(vol, 10, 100)

	sweep := PhAfterDoseByAlkalinity(7.8, perStep, vol, 10, []float64{50, 100, 150})
	assert.Len(t, sweep, 3)

	// a higher assumed TA means each ml does less, so less pH drop
	assert.Less(t, sweep[0].EstimatedPh, sweep[1].EstimatedPh)
	assert.Less(t, sweep[1].EstimatedPh, sweep[2].EstimatedPh)
	assert.InDelta(t, 7.7, sweep[1].EstimatedPh, 1e-9)
}

func TestBaseDoseToRaise(t *testing.T) {
	vol := scenarioVolume()

	// 100% product labelled 15 g per 0.1 pH per 10 kL, pH 7.0 against floor 7.2
	dose := BaseDoseToRaise(7.0, 7.2, vol, 100, 15)
	expected := 2 * 15 * (vol / 10000)
	assert.InDelta(t, expected, dose, 1e-9)

	// no-op and guard cases
	assert.Equal(t, 0.0, BaseDoseToRaise(7.3, 7.2, vol, 100, 15))
	assert.Equal(t, 0.0, BaseDoseToRaise(7.0, 7.2, vol, 0, 15))
	assert.Equal(t, 0.0, BaseDoseToRaise(7.0, 7.2, vol, 100, 0))
}

func TestPhCorrectionForTwoStageSplit(t *testing.T) {
	cfg := testPoolConfig()

	correction := PhCorrectionFor(cfg, 7.8, scenarioVolume())
	assert.Equal(t, models.PhDirectionLower, correction.Direction)
	assert.InDelta(t, 87.32, correction.Total.Value, 0.01)
	assert.InDelta(t, 43.66, correction.Stage1.Value, 0.01)
	assert.Equal(t, models.DoseUnitMl, correction.Total.Unit)
	assert.Equal(t, correction.Total.Value/2, correction.Stage1.Value)
}

func TestPhCorrectionForDirectionNone(t *testing.T) {
	cfg := testPoolConfig()

	correction := PhCorrectionFor(cfg, 7.4, scenarioVolume())
	assert.Equal(t, models.PhDirectionNone, correction.Direction)
	assert.Equal(t, 0.0, correction.Total.Value)
	assert.Equal(t, 0.0, correction.Stage1.Value)
}

func TestPhCorrectionForRaiseRequiresBaseProduct(t *testing.T) {
	cfg := testPoolConfig()

	// raiser disabled: low pH resolves to none
	correction := PhCorrectionFor(cfg, 7.0, scenarioVolume())
	assert.Equal(t, models.PhDirectionNone, correction.Direction)

	cfg.BaseEnabled = true
	cfg.BaseConcentrationPct = 100
	cfg.BaseReferenceDoseGramsPer10kL = 15

	correction = PhCorrectionFor(cfg, 7.0, scenarioVolume())
	assert.Equal(t, models.PhDirectionRaise, correction.Direction)
	assert.Equal(t, models.DoseUnitG, correction.Total.Unit)
	assert.Greater(t, correction.Total.Value, 0.0)
	assert.Equal(t, correction.Total.Value/2, correction.Stage1.Value)
}
