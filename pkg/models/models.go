package models

import "time"

type DoseUnit string

const (
	DoseUnitMl DoseUnit = "ml"
	DoseUnitG  DoseUnit = "g"
)

type Presentation string

const (
	PresentationLiquid   Presentation = "liquid"
	PresentationGranular Presentation = "granular"
)

// UnitFor maps a chlorine product presentation to its dosing unit. The
// dose formula is shared; only the label differs.
func UnitFor(p Presentation) DoseUnit {
	if p == PresentationGranular {
		return DoseUnitG
	}
	return DoseUnitMl
}

type PhDirection string

const (
	PhDirectionLower PhDirection = "lower"
	PhDirectionRaise PhDirection = "raise"
	PhDirectionNone  PhDirection = "none"
)

type Status string

const (
	StatusOk             Status = "ok"
	StatusMild           Status = "mild"
	StatusActionRequired Status = "action_required"
)

type SessionKind string

const (
	SessionKindQuickCheck          SessionKind = "quick_check"
	SessionKindAdjustmentPlan      SessionKind = "adjustment_plan"
	SessionKindIntensiveCycleCheck SessionKind = "intensive_cycle_check"
)

type CheckMoment string

const (
	CheckMomentStartOfDay CheckMoment = "start_of_day"
	CheckMomentSunHours   CheckMoment = "sun_hours"
	CheckMomentNight      CheckMoment = "night"
)

// Dose is a product quantity tagged with its dispensing unit.
type Dose struct {
	Value float64  `json:"value"`
	Unit  DoseUnit `json:"unit"`
}

// PoolConfig is the single long-lived pool configuration row. Saving is
// blocked while any cross-field invariant is violated; the previous valid
// row stays in place until the operator corrects the form.
type PoolConfig struct {
	ID uint `gorm:"primaryKey"`

	PoolDiameterMeters float64
	MaxWaterHeightCm   float64

	ChlorineProductName         string
	ChlorineConcentrationPct    float64
	ChlorinePresentation        Presentation `gorm:"type:varchar(10);check:chlorine_presentation IN ('liquid','granular')"`

	AcidProductName      string
	AcidConcentrationPct float64

	BaseEnabled                   bool
	BaseProductName               string
	BaseConcentrationPct          float64
	BaseReferenceDoseGramsPer10kL float64

	EstimatedAlkalinityPpm float64
	UsesCover              bool

	DefaultWaitMinutes           int
	MaxWaitMinutes               int
	IntensiveCycleEnabled        bool
	IntensiveMinNights           int
	IntensiveMaxOvernightLossPpm float64

	PhTargetMin          float64
	PhTargetMax          float64
	ChlorineTargetMinPpm float64
	ChlorineTargetMaxPpm float64

	UpdatedAt time.Time
}

// CurrentSessionSchemaVersion is the shape this package describes. Older
// rows are normalized at the load boundary in pkg/pool.
const CurrentSessionSchemaVersion = 2

// Session is one completed measurement flow. Append-only: rows are never
// updated after Create.
type Session struct {
	ID        string `gorm:"primaryKey"`
	Timestamp time.Time
	Kind      SessionKind `gorm:"type:varchar(30)"`

	CheckMoment *CheckMoment `gorm:"type:varchar(20)"`

	WaterHeightCm          float64
	MeasuredPh             float64
	MeasuredPhIntermediate *float64
	MeasuredChlorinePpm    float64

	CalculatedVolumeLiters float64

	PhDirection  PhDirection `gorm:"type:varchar(10)"`
	PhTotalDose  float64
	PhStage1Dose float64
	PhDoseUnit   DoseUnit `gorm:"type:varchar(5)"`

	ChlorineMaintenanceDose float64
	ChlorineCorrectiveDose  float64
	ChlorineDoseUnit        DoseUnit `gorm:"type:varchar(5)"`

	AppliedPhStage1Dose *float64
	AppliedChlorineDose *float64
	Stage1AppliedAt     *time.Time
	WaitMinutes         int

	ChecklistPumpOn           *bool
	ChecklistDilutedCorrectly *bool
	ChecklistPerimeterApplied *bool
	ChecklistWaitRespected    *bool

	Notes string

	SchemaVersion int
}

// ChecklistComplete reports whether the operator confirmed every item of
// the post-application checklist.
func (s *Session) ChecklistComplete() bool {
	for _, item := range []*bool{
		s.ChecklistPumpOn,
		s.ChecklistDilutedCorrectly,
		s.ChecklistPerimeterApplied,
		s.ChecklistWaitRespected,
	} {
		if item == nil || !*item {
			return false
		}
	}
	return true
}

// IntensiveCycle is the at-most-one open stabilization cycle.
type IntensiveCycle struct {
	ID        uint `gorm:"primaryKey"`
	Active    bool
	Reason    string
	StartedAt time.Time
}

// CycleSummary is the immutable record produced when a cycle closes.
type CycleSummary struct {
	ID              string `gorm:"primaryKey"`
	ClosedAt        time.Time
	Reason          string
	NightsEvaluated int
	AvgLossPpm      float64
	LastLossPpm     float64
	Recommendation  string
}
