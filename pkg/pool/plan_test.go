package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/marcusandresus/piscina/pkg/chem"
	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
	_ "github.com/marcusandresus/piscina/pkg/testing"
)

func TestPlannerDelegatesToChem(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, poolObj, _, _, _ := GetMockPoolWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	cfg := DefaultPoolConfig()
	plan := poolObj.Planner.BuildPlan(cfg, chem.Measurements{WaterHeightCm: 76, Ph: 7.8, ChlorinePpm: 0.2})

	assert.InDelta(t, 5552.69, plan.VolumeLiters, 0.01)
	assert.Equal(t, models.PhDirectionLower, plan.Ph.Direction)
	assert.InDelta(t, 87.32, plan.Ph.Total.Value, 0.01)
}

func TestPlannerBuildPlan_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, poolObj, _, _, _ := GetMockPoolWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	cfg := DefaultPoolConfig()
	poolObj.Planner.BuildPlan(cfg, chem.Measurements{WaterHeightCm: 76, Ph: 7.8, ChlorinePpm: 0.2})

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "plan" &&
			lobj["logger"] == "pool_core" &&
			lobj["msg"] == "Plan computed" &&
			lobj["measurements"].(map[string]any)["ph"] == 7.8 {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}
