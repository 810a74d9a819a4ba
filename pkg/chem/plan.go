package chem

import "github.com/marcusandresus/piscina/pkg/models"

// Measurements is one complete set of raw readings for a check.
type Measurements struct {
	WaterHeightCm float64 `json:"water_height_cm"`
	Ph            float64 `json:"ph"`
	ChlorinePpm   float64 `json:"chlorine_ppm"`
}

// ActionPlan is everything the engine derives from one set of
// measurements. All values are full precision; display rounding happens
// in the presentation layer.
type ActionPlan struct {
	VolumeLiters   float64       `json:"volume_liters"`
	Ph             PhCorrection  `json:"ph"`
	PhStatus       models.Status `json:"ph_status"`
	Chlorine       ChlorineDoses `json:"chlorine"`
	ChlorineStatus models.Status `json:"chlorine_status"`
}

// RequiresAction reports whether the plan asks the operator to dose
// anything. A plan with direction none and no corrective chlorine deficit
// qualifies for the measurement-only save path.
func (p *ActionPlan) RequiresAction() bool {
	return p.Ph.Direction != models.PhDirectionNone || p.Chlorine.Corrective.Value > 0
}

// BuildPlan runs the full derivation chain for one measurement set:
// volume, staged pH correction, chlorine doses, and both status
// classifications. Degenerate configurations produce zero doses, never an
// error.
func BuildPlan(cfg *models.PoolConfig, m Measurements) *ActionPlan {
	volume := VolumeLiters(cfg.PoolDiameterMeters, m.WaterHeightCm)

	return &ActionPlan{
		VolumeLiters: volume,
		Ph:           PhCorrectionFor(cfg, m.Ph, volume),
		PhStatus:     ClassifyPh(m.Ph, cfg.PhTargetMin, cfg.PhTargetMax),
		Chlorine: ChlorineDosesFor(
			m.ChlorinePpm,
			cfg.ChlorineTargetMinPpm,
			cfg.ChlorineTargetMaxPpm,
			volume,
			cfg.ChlorineConcentrationPct,
			cfg.ChlorinePresentation,
		),
		ChlorineStatus: ClassifyChlorine(m.ChlorinePpm, cfg.ChlorineTargetMinPpm, cfg.ChlorineTargetMaxPpm),
	}
}
