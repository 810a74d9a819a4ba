package pool

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

type FlowState string

const (
	FlowCollectingHeight    FlowState = "collecting_height"
	FlowCollectingPh        FlowState = "collecting_ph"
	FlowCollectingChlorine  FlowState = "collecting_chlorine"
	FlowPlanReady           FlowState = "plan_ready"
	FlowPhStage1Guidance    FlowState = "ph_stage1_guidance"
	FlowWaitingForRemeasure FlowState = "waiting_for_remeasure"
	FlowChlorineGuidance    FlowState = "chlorine_guidance"
	FlowPostChecklist       FlowState = "post_checklist"
	FlowSaved               FlowState = "saved"
	FlowAbandoned           FlowState = "abandoned"
)

var (
	ErrInvalidTransition = errors.New("invalid flow transition")
	ErrNotSavable        = errors.New("flow is not ready to save")
)

// Flow is the explicit state-machine context for one measurement workout.
// It holds no references to storage; persistence happens only through
// Pool.SaveFlow, and the flow keeps its draft across failed saves so the
// operator can retry without re-entering anything.
type Flow struct {
	State       FlowState
	Kind        models.SessionKind
	CheckMoment *models.CheckMoment
	Config      *models.PoolConfig

	Measurements           chem.Measurements
	Plan                   *chem.ActionPlan
	MeasuredPhIntermediate *float64

	AppliedPhStage1Dose *float64
	AppliedChlorineDose *float64
	Stage1AppliedAt     *time.Time
	WaitMinutes         int

	ChecklistPumpOn           *bool
	ChecklistDilutedCorrectly *bool
	ChecklistPerimeterApplied *bool
	ChecklistWaitRespected    *bool

	Notes string
}

func NewFlow(cfg *models.PoolConfig, kind models.SessionKind, moment *models.CheckMoment) *Flow {
	return &Flow{
		State:       FlowCollectingHeight,
		Kind:        kind,
		CheckMoment: moment,
		Config:      cfg,
	}
}

func (f *Flow) guard(expected FlowState) error {
	if f.State != expected {
		return fmt.Errorf("%w: in %q, expected %q", ErrInvalidTransition, f.State, expected)
	}
	return nil
}

// SubmitHeight accepts the measured water height and advances the flow.
// The flow state does not move while the value is out of domain.
func (f *Flow) SubmitHeight(heightCm float64) error {
	if err := f.guard(FlowCollectingHeight); err != nil {
		return err
	}
	if err := chem.CheckHeight(heightCm, f.Config.MaxWaterHeightCm); err != nil {
		return err
	}
	f.Measurements.WaterHeightCm = heightCm
	f.State = FlowCollectingPh
	return nil
}

func (f *Flow) SubmitPh(measuredPh float64) error {
	if err := f.guard(FlowCollectingPh); err != nil {
		return err
	}
	if err := chem.CheckPh(measuredPh); err != nil {
		return err
	}
	f.Measurements.Ph = measuredPh
	f.State = FlowCollectingChlorine
	return nil
}

// SubmitChlorine accepts the last measurement and computes the plan via
// the provided planner, reaching plan_ready.
func (f *Flow) SubmitChlorine(measuredPpm float64, planner IPlanner) error {
	if err := f.guard(FlowCollectingChlorine); err != nil {
		return err
	}
	if err := chem.CheckChlorine(measuredPpm); err != nil {
		return err
	}
	f.Measurements.ChlorinePpm = measuredPpm
	f.Plan = planner.BuildPlan(f.Config, f.Measurements)
	f.State = FlowPlanReady
	return nil
}

// AcceptPlan moves from plan_ready into the guidance phase. A plan with a
// pH correction always enters stage-1 guidance first; there is no route
// that applies the full pH dose in one step. Plans that require no action
// at all should use Pool.SaveFlow directly (measurement-only save).
func (f *Flow) AcceptPlan() error {
	if err := f.guard(FlowPlanReady); err != nil {
		return err
	}
	if !f.Plan.RequiresAction() {
		return fmt.Errorf("%w: plan requires no action, save the measurement instead", ErrInvalidTransition)
	}
	if f.Plan.Ph.Direction != models.PhDirectionNone {
		f.State = FlowPhStage1Guidance
	} else {
		f.State = FlowChlorineGuidance
	}
	return nil
}

// RecordStage1Applied records the stage-1 dose the operator actually
// applied (which may differ from the computed one) and starts the
// mandatory wait. waitMinutes 0 means the configured default.
func (f *Flow) RecordStage1Applied(doseApplied float64, appliedAt time.Time, waitMinutes int) error {
	if err := f.guard(FlowPhStage1Guidance); err != nil {
		return err
	}
	if doseApplied < 0 {
		return fmt.Errorf("applied dose must not be negative, got %.2f", doseApplied)
	}
	if waitMinutes == 0 {
		waitMinutes = f.Config.DefaultWaitMinutes
	}
	if waitMinutes < 0 || waitMinutes > f.Config.MaxWaitMinutes {
		return fmt.Errorf("wait of %d minutes outside [0, %d]", waitMinutes, f.Config.MaxWaitMinutes)
	}
	at := appliedAt.UTC()
	f.AppliedPhStage1Dose = &doseApplied
	f.Stage1AppliedAt = &at
	f.WaitMinutes = waitMinutes
	f.State = FlowWaitingForRemeasure
	return nil
}

// Stage1Sensitivity is the what-if view for the waiting operator: the
// expected pH after the applied stage-1 dose across a spread of TA
// assumptions.
func (f *Flow) Stage1Sensitivity(alkalinities []float64) []chem.PhEstimate {
	if f.Plan == nil || f.AppliedPhStage1Dose == nil {
		return nil
	}
	return chem.PhAfterDoseByAlkalinity(
		f.Measurements.Ph,
		*f.AppliedPhStage1Dose,
		f.Plan.VolumeLiters,
		f.Config.AcidConcentrationPct,
		alkalinities,
	)
}

// RecordIntermediatePh records the re-measurement taken after the wait
// and moves on to chlorine guidance.
func (f *Flow) RecordIntermediatePh(measuredPh float64) error {
	if err := f.guard(FlowWaitingForRemeasure); err != nil {
		return err
	}
	if err := chem.CheckPh(measuredPh); err != nil {
		return err
	}
	f.MeasuredPhIntermediate = &measuredPh
	f.State = FlowChlorineGuidance
	return nil
}

// RecordChlorineApplied records the chlorine dose applied, zero when the
// operator skipped it.
func (f *Flow) RecordChlorineApplied(doseApplied float64) error {
	if err := f.guard(FlowChlorineGuidance); err != nil {
		return err
	}
	if doseApplied < 0 {
		return fmt.Errorf("applied dose must not be negative, got %.2f", doseApplied)
	}
	f.AppliedChlorineDose = &doseApplied
	f.State = FlowPostChecklist
	return nil
}

// CompleteChecklist records the post-application answers. The flow stays
// in post_checklist; saving is the terminal step.
func (f *Flow) CompleteChecklist(pumpOn, dilutedCorrectly, perimeterApplied, waitRespected bool) error {
	if err := f.guard(FlowPostChecklist); err != nil {
		return err
	}
	f.ChecklistPumpOn = &pumpOn
	f.ChecklistDilutedCorrectly = &dilutedCorrectly
	f.ChecklistPerimeterApplied = &perimeterApplied
	f.ChecklistWaitRespected = &waitRespected
	return nil
}

func (f *Flow) SetNotes(notes string) {
	f.Notes = notes
}

// Abandon discards the draft. Terminal.
func (f *Flow) Abandon() {
	f.State = FlowAbandoned
}

// savable reports whether the flow may be persisted: either the guidance
// phase completed, or the plan needs no correction and the measurements
// alone are being recorded.
func (f *Flow) savable() bool {
	if f.State == FlowPostChecklist {
		return true
	}
	return f.State == FlowPlanReady && f.Plan != nil && !f.Plan.RequiresAction()
}

func (f *Flow) toSession() *models.Session {
	return &models.Session{
		Timestamp:   time.Now().UTC(),
		Kind:        f.Kind,
		CheckMoment: f.CheckMoment,

		WaterHeightCm:          f.Measurements.WaterHeightCm,
		MeasuredPh:             f.Measurements.Ph,
		MeasuredPhIntermediate: f.MeasuredPhIntermediate,
		MeasuredChlorinePpm:    f.Measurements.ChlorinePpm,

		CalculatedVolumeLiters: f.Plan.VolumeLiters,

		PhDirection:  f.Plan.Ph.Direction,
		PhTotalDose:  f.Plan.Ph.Total.Value,
		PhStage1Dose: f.Plan.Ph.Stage1.Value,
		PhDoseUnit:   f.Plan.Ph.Total.Unit,

		ChlorineMaintenanceDose: f.Plan.Chlorine.Maintenance.Value,
		ChlorineCorrectiveDose:  f.Plan.Chlorine.Corrective.Value,
		ChlorineDoseUnit:        f.Plan.Chlorine.Maintenance.Unit,

		AppliedPhStage1Dose: f.AppliedPhStage1Dose,
		AppliedChlorineDose: f.AppliedChlorineDose,
		Stage1AppliedAt:     f.Stage1AppliedAt,
		WaitMinutes:         f.WaitMinutes,

		ChecklistPumpOn:           f.ChecklistPumpOn,
		ChecklistDilutedCorrectly: f.ChecklistDilutedCorrectly,
		ChecklistPerimeterApplied: f.ChecklistPerimeterApplied,
		ChecklistWaitRespected:    f.ChecklistWaitRespected,

		Notes: f.Notes,
	}
}

// SaveFlow persists the flow as a session, atomically: either the full
// session row lands or nothing does. On failure the flow state is left
// untouched so the operator can retry the save with the draft intact.
func (p *Pool) SaveFlow(f *Flow) (*models.Session, error) {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategorySession),
	)

	if !f.savable() {
		return nil, fmt.Errorf("%w: state %q", ErrNotSavable, f.State)
	}

	session := f.toSession()
	if err := p.Session.AppendSession(session); err != nil {
		logger.Warn("Session save failed, draft retained", zap.Error(err))
		return nil, err
	}

	f.State = FlowSaved
	return session, nil
}
