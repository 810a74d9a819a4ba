package pool

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

// At most one cycle exists; it lives in a pinned row and toggles Active.
const intensiveCycleRowID = 1

var (
	ErrCycleAlreadyActive = errors.New("an intensive cycle is already active")
	ErrNoActiveCycle      = errors.New("no intensive cycle is active")
	ErrCycleNotClosable   = errors.New("intensive cycle closure criteria not met")
)

func (p *Pool) openCycle(reason string, now time.Time) (*models.IntensiveCycle, error) {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategoryCycle),
	)

	active, err := p.activeCycle()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrCycleAlreadyActive
	}

	cycle := models.IntensiveCycle{
		ID:        intensiveCycleRowID,
		Active:    true,
		Reason:    reason,
		StartedAt: now.UTC(),
	}

	if err := p.Db.Conn.Save(&cycle).Error; err != nil {
		return nil, fmt.Errorf("open cycle: %w", err)
	}

	logger.Info("Intensive cycle opened", zap.Reflect("cycle", cycle))
	return &cycle, nil
}

func (p *Pool) activeCycle() (*models.IntensiveCycle, error) {
	var cycle models.IntensiveCycle
	err := p.Db.Conn.First(&cycle, "id = ?", intensiveCycleRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !cycle.Active {
		return nil, nil
	}
	return &cycle, nil
}

// closeCycle verifies the closure criteria against the current session
// log and, when they hold, writes the immutable summary and resets the
// cycle state in one transaction.
func (p *Pool) closeCycle(cfg *models.PoolConfig, now time.Time) (*models.CycleSummary, error) {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategoryCycle),
	)

	cycle, err := p.activeCycle()
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, ErrNoActiveCycle
	}

	sessions, err := p.listSessions()
	if err != nil {
		return nil, err
	}

	eval := chem.EvaluateCycleClosure(cfg, sessions)
	if !eval.CanClose {
		logger.Info("Cycle closure refused", zap.Strings("unmet", eval.UnmetCriteria))
		return nil, fmt.Errorf("%w: %s", ErrCycleNotClosable, strings.Join(eval.UnmetCriteria, "; "))
	}

	summary := models.CycleSummary{
		ID:              uuid.NewString(),
		ClosedAt:        now.UTC(),
		Reason:          cycle.Reason,
		NightsEvaluated: eval.NightsEvaluated,
		AvgLossPpm:      eval.AvgLossPpm,
		LastLossPpm:     eval.LastLossPpm,
		Recommendation:  chem.CycleRecommendation(eval.AvgLossPpm, cfg.IntensiveMaxOvernightLossPpm),
	}

	err = p.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&summary).Error; err != nil {
			return err
		}
		cycle.Active = false
		return tx.Save(cycle).Error
	})
	if err != nil {
		return nil, fmt.Errorf("close cycle: %w", err)
	}

	logger.Info("Intensive cycle closed", zap.Reflect("summary", summary))
	return &summary, nil
}

type ICycleImpl struct {
	pool *Pool
}

func (ic *ICycleImpl) OpenCycle(reason string, now time.Time) (*models.IntensiveCycle, error) {
	return ic.pool.openCycle(reason, now)
}

func (ic *ICycleImpl) ActiveCycle() (*models.IntensiveCycle, error) {
	return ic.pool.activeCycle()
}

func (ic *ICycleImpl) CloseCycle(cfg *models.PoolConfig, now time.Time) (*models.CycleSummary, error) {
	return ic.pool.closeCycle(cfg, now)
}

func (p *Pool) GetICycle() ICycle {
	return &ICycleImpl{pool: p}
}
