package pool

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marcusandresus/piscina/pkg/common"
	"github.com/marcusandresus/piscina/pkg/models"
)

// appendSession persists one completed measurement flow. The log is
// append-only: no update path exists anywhere in the package.
func (p *Pool) appendSession(session *models.Session) error {
	logger := common.GetLoggerWith(
		common.LoggerNamePoolCore,
		zap.String(common.LoggerFieldPoolCategory, common.LoggerCategorySession),
	)

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Timestamp.IsZero() {
		session.Timestamp = time.Now().UTC()
	}
	session.SchemaVersion = models.CurrentSessionSchemaVersion

	logger.Info("Received session", zap.Reflect("session", session))

	if err := p.Db.Conn.Create(session).Error; err != nil {
		return fmt.Errorf("append session: %w", err)
	}

	logger.Info("Appended session", zap.Reflect("session", session))
	return nil
}

// normalizeSession upgrades rows written by older schema versions to the
// current shape, in memory only. Version 1 rows predate the pH direction
// field; the direction is inferred from the stored doses.
func normalizeSession(session *models.Session) {
	if session.SchemaVersion >= models.CurrentSessionSchemaVersion {
		return
	}

	if session.PhDirection == "" {
		switch {
		case session.PhTotalDose <= 0:
			session.PhDirection = models.PhDirectionNone
		case session.PhDoseUnit == models.DoseUnitG:
			session.PhDirection = models.PhDirectionRaise
		default:
			session.PhDirection = models.PhDirectionLower
		}
	}
	if session.PhDoseUnit == "" {
		session.PhDoseUnit = models.DoseUnitMl
	}
	if session.ChlorineDoseUnit == "" {
		session.ChlorineDoseUnit = models.DoseUnitMl
	}
	session.SchemaVersion = models.CurrentSessionSchemaVersion
}

// listSessions returns the whole log, newest first. Analytics re-sorts by
// timestamp itself, so this ordering is for display.
func (p *Pool) listSessions() ([]models.Session, error) {
	var sessions []models.Session
	err := p.Db.Conn.
		Order("timestamp desc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		normalizeSession(&sessions[i])
	}
	return sessions, nil
}

// latestSession returns the most recent session, or nil when the log is
// empty.
func (p *Pool) latestSession() (*models.Session, error) {
	var session models.Session
	err := p.Db.Conn.
		Order("timestamp desc").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	normalizeSession(&session)
	return &session, nil
}

type ISessionImpl struct {
	pool *Pool
}

func (is *ISessionImpl) AppendSession(session *models.Session) error {
	return is.pool.appendSession(session)
}

func (is *ISessionImpl) ListSessions() ([]models.Session, error) {
	return is.pool.listSessions()
}

func (is *ISessionImpl) LatestSession() (*models.Session, error) {
	return is.pool.latestSession()
}

func (p *Pool) GetISession() ISession {
	return &ISessionImpl{pool: p}
}
