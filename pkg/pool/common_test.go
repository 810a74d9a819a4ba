package pool

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"github.com/marcusandresus/piscina/pkg/db"
	"github.com/marcusandresus/piscina/pkg/pool/mocks"
)

func GetMockPoolWithMemorySqliteDialector(t *testing.T, useMockConfig, useMockSession, useMockPlanner bool) (
	*gomock.Controller,
	*Pool,
	*mocks.MockIConfig,
	*mocks.MockISession,
	*mocks.MockIPlanner,
) {
	ctrl := gomock.NewController(t)

	mockIConfig := mocks.NewMockIConfig(ctrl)
	mockISession := mocks.NewMockISession(ctrl)
	mockIPlanner := mocks.NewMockIPlanner(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	poolInstance := (&Pool{Db: *dbInstance})

	configService := poolInstance.GetIConfig()
	if useMockConfig {
		configService = mockIConfig
	}

	sessionService := poolInstance.GetISession()
	if useMockSession {
		sessionService = mockISession
	}

	plannerService := poolInstance.GetIPlanner()
	if useMockPlanner {
		plannerService = mockIPlanner
	}

	poolInstance.WithServices(ServiceOpts{
		Config:    configService,
		Session:   sessionService,
		Planner:   plannerService,
		Analytics: poolInstance.GetIAnalytics(),
		Cycle:     poolInstance.GetICycle(),
	})

	return ctrl, poolInstance, mockIConfig, mockISession, mockIPlanner
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
