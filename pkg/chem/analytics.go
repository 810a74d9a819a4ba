package chem

import (
	"fmt"
	"sort"

	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

// daylightRiskMeanLossPpm is the heuristic above which mean daylight loss
// is flagged for an uncovered pool.
const daylightRiskMeanLossPpm = 1.0

// LossPair is one matched pair of moment-tagged readings. LossPpm is the
// earlier reading minus the later one, so positive means consumption.
type LossPair struct {
	FromSessionID string  `json:"from_session_id"`
	ToSessionID   string  `json:"to_session_id"`
	FromPpm       float64 `json:"from_ppm"`
	ToPpm         float64 `json:"to_ppm"`
	LossPpm       float64 `json:"loss_ppm"`
}

// LossSeries is an ordered collection of loss pairs with its headline
// numbers.
type LossSeries struct {
	Pairs       []LossPair `json:"pairs"`
	LastLossPpm float64    `json:"last_loss_ppm"`
	MeanLossPpm float64    `json:"mean_loss_ppm"`
}

// LossTrends is the derived view over the whole session log.
type LossTrends struct {
	Overnight LossSeries `json:"overnight"`
	Daylight  LossSeries `json:"daylight"`

	// DaylightRiskHigh flags sustained daylight loss on a pool without a
	// cover.
	DaylightRiskHigh bool `json:"daylight_risk_high"`
}

func sortedByTimestamp(sessions []models.Session) []models.Session {
	ordered := make([]models.Session, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})
	return ordered
}

func lossSeries(sessions []models.Session, from, to models.CheckMoment) LossSeries {
	// Pairing looks at adjacency among moment-tagged sessions only; an
	// untagged quick check between a night and its morning must not
	// break the pair.
	var tagged []models.Session
	for _, s := range sortedByTimestamp(sessions) {
		if s.CheckMoment != nil {
			tagged = append(tagged, s)
		}
	}

	var pairs []LossPair
	for i := 0; i+1 < len(tagged); i++ {
		earlier, later := tagged[i], tagged[i+1]
		if *earlier.CheckMoment != from || *later.CheckMoment != to {
			continue
		}
		pairs = append(pairs, LossPair{
			FromSessionID: earlier.ID,
			ToSessionID:   later.ID,
			FromPpm:       earlier.MeasuredChlorinePpm,
			ToPpm:         later.MeasuredChlorinePpm,
			LossPpm:       earlier.MeasuredChlorinePpm - later.MeasuredChlorinePpm,
		})
	}

	series := LossSeries{Pairs: pairs}
	if len(pairs) > 0 {
		series.LastLossPpm = pairs[len(pairs)-1].LossPpm
		losses := common.Mapper(pairs, func(p LossPair) float64 { return p.LossPpm })
		series.MeanLossPpm = common.Mean(losses)
	}
	return series
}

// OvernightLossSeries pairs each night reading with the next
// start-of-day reading.
func OvernightLossSeries(sessions []models.Session) LossSeries {
	return lossSeries(sessions, models.CheckMomentNight, models.CheckMomentStartOfDay)
}

// DaylightLossSeries pairs each start-of-day reading with the next
// sun-hours reading.
func DaylightLossSeries(sessions []models.Session) LossSeries {
	return lossSeries(sessions, models.CheckMomentStartOfDay, models.CheckMomentSunHours)
}

// LossTrendsFor derives both series plus the cover heuristic.
func LossTrendsFor(cfg *models.PoolConfig, sessions []models.Session) LossTrends {
	trends := LossTrends{
		Overnight: OvernightLossSeries(sessions),
		Daylight:  DaylightLossSeries(sessions),
	}
	trends.DaylightRiskHigh = !cfg.UsesCover &&
		len(trends.Daylight.Pairs) > 0 &&
		trends.Daylight.MeanLossPpm > daylightRiskMeanLossPpm
	return trends
}

// CycleEvaluation is the closure verdict for an intensive monitoring
// cycle. UnmetCriteria names every failed criterion so the operator sees
// why the cycle stays open.
type CycleEvaluation struct {
	CanClose        bool     `json:"can_close"`
	NightsEvaluated int      `json:"nights_evaluated"`
	AvgLossPpm      float64  `json:"avg_loss_ppm"`
	LastLossPpm     float64  `json:"last_loss_ppm"`
	UnmetCriteria   []string `json:"unmet_criteria,omitempty"`
}

// EvaluateCycleClosure checks the three closure criteria over the most
// recent IntensiveMinNights overnight pairs: enough pairs exist, every
// loss sits in [0, IntensiveMaxOvernightLossPpm], and every morning
// reading is inside the chlorine target range. All three must hold.
func EvaluateCycleClosure(cfg *models.PoolConfig, sessions []models.Session) CycleEvaluation {
	overnight := OvernightLossSeries(sessions)
	minNights := cfg.IntensiveMinNights

	pairs := overnight.Pairs
	if len(pairs) > minNights {
		pairs = pairs[len(pairs)-minNights:]
	}

	eval := CycleEvaluation{NightsEvaluated: len(pairs)}
	if len(pairs) > 0 {
		eval.LastLossPpm = pairs[len(pairs)-1].LossPpm
		eval.AvgLossPpm = common.Mean(common.Mapper(pairs, func(p LossPair) float64 { return p.LossPpm }))
	}

	if len(pairs) < minNights {
		eval.UnmetCriteria = append(eval.UnmetCriteria,
			fmt.Sprintf("only %d overnight pair(s) recorded, %d required", len(pairs), minNights))
	}

	for _, p := range pairs {
		if p.LossPpm < 0 || p.LossPpm > cfg.IntensiveMaxOvernightLossPpm {
			eval.UnmetCriteria = append(eval.UnmetCriteria,
				fmt.Sprintf("overnight loss %.2f ppm outside [0, %.2f]", p.LossPpm, cfg.IntensiveMaxOvernightLossPpm))
		}
		if p.ToPpm < cfg.ChlorineTargetMinPpm || p.ToPpm > cfg.ChlorineTargetMaxPpm {
			eval.UnmetCriteria = append(eval.UnmetCriteria,
				fmt.Sprintf("morning chlorine %.2f ppm outside target [%.2f, %.2f]", p.ToPpm, cfg.ChlorineTargetMinPpm, cfg.ChlorineTargetMaxPpm))
		}
	}

	eval.CanClose = len(eval.UnmetCriteria) == 0
	return eval
}

// Recommendations recorded on a closed cycle's summary.
const (
	RecommendationStabilized  = "stabilized"
	RecommendationExtendCycle = "extend_cycle"
)

// CycleRecommendation compares the average loss over the evaluated nights
// against the instability threshold.
func CycleRecommendation(avgLossPpm, maxOvernightLossPpm float64) string {
	if avgLossPpm <= maxOvernightLossPpm {
		return RecommendationStabilized
	}
	return RecommendationExtendCycle
}
