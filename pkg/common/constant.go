package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyPiscinaDbPath string = "PISCINA_DB_PATH"
	EnvKeyPiscinaLogDir string = "PISCINA_LOG_DIR"

	LoggerNamePoolCore      string = "pool_core"
	LoggerFieldPoolCategory string = "category"

	LoggerCategoryConfig    string = "config"
	LoggerCategorySession   string = "session"
	LoggerCategoryPlan      string = "plan"
	LoggerCategoryAnalytics string = "analytics"
	LoggerCategoryCycle     string = "cycle"
)
