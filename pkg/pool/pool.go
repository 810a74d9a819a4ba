package pool

import (
	"time"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/db"
	"github.com/marcusandresus/piscina/pkg/models"
)

type IConfig interface {
	SaveConfig(input *models.PoolConfig) error
	LoadConfig() (*models.PoolConfig, error)
}

type ISession interface {
	AppendSession(session *models.Session) error
	ListSessions() ([]models.Session, error)
	LatestSession() (*models.Session, error)
}

type IPlanner interface {
	BuildPlan(cfg *models.PoolConfig, m chem.Measurements) *chem.ActionPlan
}

type IAnalytics interface {
	LossTrends(cfg *models.PoolConfig, sessions []models.Session) chem.LossTrends
	EvaluateCycleClosure(cfg *models.PoolConfig, sessions []models.Session) chem.CycleEvaluation
}

type ICycle interface {
	OpenCycle(reason string, now time.Time) (*models.IntensiveCycle, error)
	ActiveCycle() (*models.IntensiveCycle, error)
	CloseCycle(cfg *models.PoolConfig, now time.Time) (*models.CycleSummary, error)
}

type Pool struct {
	Db        db.DB
	Config    IConfig
	Session   ISession
	Planner   IPlanner
	Analytics IAnalytics
	Cycle     ICycle
}

type ServiceOpts struct {
	Config    IConfig
	Session   ISession
	Planner   IPlanner
	Analytics IAnalytics
	Cycle     ICycle
}

func (p *Pool) WithServices(opts ServiceOpts) *Pool {
	if opts.Config != nil {
		p.Config = opts.Config
	}
	if opts.Session != nil {
		p.Session = opts.Session
	}
	if opts.Planner != nil {
		p.Planner = opts.Planner
	}
	if opts.Analytics != nil {
		p.Analytics = opts.Analytics
	}
	if opts.Cycle != nil {
		p.Cycle = opts.Cycle
	}
	return p
}
