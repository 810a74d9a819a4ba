package pool

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
	_ "github.com/marcusandresus/piscina/pkg/testing"
)

func TestAppendSessionFillsIdentityAndVersion(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, poolObj, _, _, _ := GetMockPoolWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	session := &models.Session{
		Kind:                models.SessionKindQuickCheck,
		WaterHeightCm:       76,
		MeasuredPh:          7.4,
		MeasuredChlorinePpm: 2,
	}

	assert.NoError(t, poolObj.Session.AppendSession(session))
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.Timestamp.IsZero())
	assert.Equal(t, models.CurrentSessionSchemaVersion, session.SchemaVersion)

	var saved models.Session
	assert.NoError(t, poolObj.Db.Conn.First(&saved, "id = ?", session.ID).Error)
	assert.Equal(t, 7.4, saved.MeasuredPh)
}

func TestListSessionsNewestFirst(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, poolObj, _, _, _ := GetMockPoolWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	older := &models.Session{
		ID:        uuid.NewString(),
		Timestamp: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		Kind:      models.SessionKindQuickCheck,
	}
	newer := &models.Session{
		ID:        uuid.NewString(),
		Timestamp: time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC),
		Kind:      models.SessionKindQuickCheck,
	}

	assert.NoError(t, poolObj.Session.AppendSession(older))
	assert.NoError(t, poolObj.Session.AppendSession(newer))

	sessions, err := poolObj.Session.ListSessions()
	assert.NoError(t, err)

	position := map[string]int{}
	for i, s := range sessions {
		position[s.ID] = i
	}
	assert.Less(t, position[newer.ID], position[older.ID])
}

func TestLatestSession(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, poolObj, _, _, _ := GetMockPoolWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	// far in the future so it outranks sessions from other tests
	future := &models.Session{
		ID:                  uuid.NewString(),
		Timestamp:           time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC),
		Kind:                models.SessionKindQuickCheck,
		MeasuredChlorinePpm: 2.2,
	}
	assert.NoError(t, poolObj.Session.AppendSession(future))

	latest, err := poolObj.Session.LatestSession()
	assert.NoError(t, err)
	assert.NotNil(t, latest)
	assert.Equal(t, future.ID, latest.ID)
	assert.Equal(t, 2.2, latest.MeasuredChlorinePpm)
}

func TestNormalizeSessionLegacyRows(t *testing.T) {
	legacyLower := &models.Session{
		SchemaVersion: 1,
		PhTotalDose:   80,
		PhDoseUnit:    models.DoseUnitMl,
	}
	normalizeSession(legacyLower)
	assert.Equal(t, models.PhDirectionLower, legacyLower.PhDirection)
	assert.Equal(t, models.CurrentSessionSchemaVersion, legacyLower.SchemaVersion)

	legacyRaise := &models.Session{
		SchemaVersion: 1,
		PhTotalDose:   30,
		PhDoseUnit:    models.DoseUnitG,
	}
	normalizeSession(legacyRaise)
	assert.Equal(t, models.PhDirectionRaise, legacyRaise.PhDirection)

	legacyIdle := &models.Session{SchemaVersion: 1}
	normalizeSession(legacyIdle)
	assert.Equal(t, models.PhDirectionNone, legacyIdle.PhDirection)
	assert.Equal(t, models.DoseUnitMl, legacyIdle.PhDoseUnit)
	assert.Equal(t, models.DoseUnitMl, legacyIdle.ChlorineDoseUnit)

	// current rows pass through untouched
	current := &models.Session{
		SchemaVersion: models.CurrentSessionSchemaVersion,
		PhDirection:   models.PhDirectionLower,
	}
	normalizeSession(current)
	assert.Equal(t, models.PhDirectionLower, current.PhDirection)
}
