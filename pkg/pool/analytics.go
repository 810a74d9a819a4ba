package pool

import (
	"go.uber.org/zap"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

func (p *Pool) lossTrends(cfg *models.PoolConfig, sessions []models.Session) chem.LossTrends {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategoryAnalytics),
	)

	trends := chem.LossTrendsFor(cfg, sessions)

	logger.Info("Loss trends derived",
		zap.Int("sessions", len(sessions)),
		zap.Int("overnight_pairs", len(trends.Overnight.Pairs)),
		zap.Int("daylight_pairs", len(trends.Daylight.Pairs)),
		zap.Bool("daylight_risk_high", trends.DaylightRiskHigh))

	return trends
}

func (p *Pool) evaluateCycleClosure(cfg *models.PoolConfig, sessions []models.Session) chem.CycleEvaluation {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategoryAnalytics),
	)

	eval := chem.EvaluateCycleClosure(cfg, sessions)

	logger.Info("Cycle closure evaluated", zap.Reflect("evaluation", eval))

	return eval
}

type IAnalyticsImpl struct {
	pool *Pool
}

func (ia *IAnalyticsImpl) LossTrends(cfg *models.PoolConfig, sessions []models.Session) chem.LossTrends {
	return ia.pool.lossTrends(cfg, sessions)
}

func (ia *IAnalyticsImpl) EvaluateCycleClosure(cfg *models.PoolConfig, sessions []models.Session) chem.CycleEvaluation {
	return ia.pool.evaluateCycleClosure(cfg, sessions)
}

func (p *Pool) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{pool: p}
}
