package pool

import (
	"go.uber.org/zap"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

func (p *Pool) buildPlan(cfg *models.PoolConfig, m chem.Measurements) *chem.ActionPlan {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategoryPlan),
	)

	plan := chem.BuildPlan(cfg, m)

	logger.Info("Plan computed",
		zap.Reflect("measurements", m),
		zap.Reflect("plan", plan))

	return plan
}

type IPlannerImpl struct {
	pool *Pool
}

func (ip *IPlannerImpl) BuildPlan(cfg *models.PoolConfig, m chem.Measurements) *chem.ActionPlan {
	return ip.pool.buildPlan(cfg, m)
}

func (p *Pool) GetIPlanner() IPlanner {
	return &IPlannerImpl{pool: p}
}
