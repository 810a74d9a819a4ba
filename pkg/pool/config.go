package pool

import (
	"errors"
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

// There is one pool, so one config row.
const poolConfigRowID = 1

var ErrConfigInvalid = errors.New("pool configuration invalid")

// DefaultPoolConfig is used when no configuration has been saved yet:
// the stock 3.05 m round pool with common retail products.
func DefaultPoolConfig() *models.PoolConfig {
	return &models.PoolConfig{
		ID:                 poolConfigRowID,
		PoolDiameterMeters: 3.05,
		MaxWaterHeightCm:   76,

		ChlorineProductName:      "Liquid chlorine 5%",
		ChlorineConcentrationPct: 5,
		ChlorinePresentation:     models.PresentationLiquid,

		AcidProductName:      "Muriatic acid 10%",
		AcidConcentrationPct: 10,

		EstimatedAlkalinityPpm: 100,

		DefaultWaitMinutes:           20,
		MaxWaitMinutes:               30,
		IntensiveCycleEnabled:        true,
		IntensiveMinNights:           3,
		IntensiveMaxOvernightLossPpm: 1.0,

		PhTargetMin:          7.2,
		PhTargetMax:          7.6,
		ChlorineTargetMinPpm: 1,
		ChlorineTargetMaxPpm: 3,
	}
}

var poolConfigSchema = z.Struct(z.Shape{
	"PoolDiameterMeters":           z.Float64().GT(0),
	"ChlorineConcentrationPct":     z.Float64().GT(0),
	"AcidConcentrationPct":         z.Float64().GT(0),
	"EstimatedAlkalinityPpm":       z.Float64().GT(0),
	"DefaultWaitMinutes":           z.Int().GTE(15).LTE(60),
	"MaxWaitMinutes":               z.Int().GTE(15).LTE(60),
	"IntensiveMinNights":           z.Int().GTE(2),
	"IntensiveMaxOvernightLossPpm": z.Float64().GT(0),
	"PhTargetMin":                  z.Float64().GTE(chem.PhScaleMin).LTE(chem.PhScaleMax),
	"PhTargetMax":                  z.Float64().GTE(chem.PhScaleMin).LTE(chem.PhScaleMax),
	"ChlorineTargetMinPpm":         z.Float64().GTE(chem.ChlorineScaleMinPpm).LTE(chem.ChlorineScaleMaxPpm),
	"ChlorineTargetMaxPpm":         z.Float64().GTE(chem.ChlorineScaleMinPpm).LTE(chem.ChlorineScaleMaxPpm),
})

// ValidatePoolConfig checks field domains first, then the cross-field
// invariants. The returned error lists every violated rule so the
// operator can fix the form in one pass.
func ValidatePoolConfig(cfg *models.PoolConfig) error {
	var problems []string

	if issues := poolConfigSchema.Validate(cfg); issues != nil {
		for field := range issues {
			if field == "$first" {
				continue
			}
			problems = append(problems, fmt.Sprintf("%s out of allowed range", field))
		}
	}

	if cfg.ChlorinePresentation != models.PresentationLiquid && cfg.ChlorinePresentation != models.PresentationGranular {
		problems = append(problems, "chlorine presentation must be liquid or granular")
	}
	if cfg.PhTargetMin >= cfg.PhTargetMax {
		problems = append(problems, "pH target minimum must be below the maximum")
	}
	if cfg.ChlorineTargetMinPpm >= cfg.ChlorineTargetMaxPpm {
		problems = append(problems, "chlorine target minimum must be below the maximum")
	}
	if cfg.DefaultWaitMinutes > cfg.MaxWaitMinutes {
		problems = append(problems, "default wait must not exceed the maximum wait")
	}
	if cfg.MaxWaterHeightCm < 0 {
		problems = append(problems, "maximum water height must not be negative")
	}
	if cfg.BaseEnabled {
		if cfg.BaseConcentrationPct <= 0 {
			problems = append(problems, "pH raiser concentration must be positive when the raiser is enabled")
		}
		if cfg.BaseReferenceDoseGramsPer10kL <= 0 {
			problems = append(problems, "pH raiser reference dose must be positive when the raiser is enabled")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func (p *Pool) saveConfig(input *models.PoolConfig) error {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategoryConfig),
	)

	if err := ValidatePoolConfig(input); err != nil {
		logger.Warn("Rejected configuration", zap.Error(err))
		return err
	}

	config := *input
	config.ID = poolConfigRowID

	logger.Info("Received configuration", zap.Reflect("config", config))

	err := p.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&config).Error

	if err == nil {
		logger.Info("Saved configuration", zap.Reflect("config", config))
	}

	return err
}

func (p *Pool) loadConfig() (*models.PoolConfig, error) {
	var config models.PoolConfig
	err := p.Db.Conn.First(&config, "id = ?", poolConfigRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultPoolConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

type IConfigImpl struct {
	pool *Pool
}

func (ic *IConfigImpl) SaveConfig(input *models.PoolConfig) error {
	return ic.pool.saveConfig(input)
}

func (ic *IConfigImpl) LoadConfig() (*models.PoolConfig, error) {
	return ic.pool.loadConfig()
}

func (p *Pool) GetIConfig() IConfig {
	return &IConfigImpl{pool: p}
}
