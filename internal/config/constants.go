package config

// Environment variable names
const (
	EnvLogLevel                  = "LOG_LEVEL"
	EnvLogFormat                 = "LOG_FORMAT"
	EnvLogFile                   = "LOG_FILE"
	EnvEnvironment               = "ENVIRONMENT"
	EnvServiceName               = "SERVICE_NAME"
	EnvVersion                   = "VERSION"
	EnvTickInterval              = "TICK_INTERVAL"
	EnvClearScreen               = "CLEAR_SCREEN"
	EnvColor                     = "COLOR"
	EnvRandomSeed                = "RANDOM_SEED"
	EnvCatalogPath               = "CATALOG_PATH"
	EnvHistorySize               = "HISTORY_SIZE"
	EnvHistoryTTL                = "HISTORY_TTL"
	EnvMetricsPort               = "METRICS_PORT"
	EnvTapeWearOnInvalidInterval = "TAPE_WEAR_ON_INVALID_INTERVAL"
)

// Defaults
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultLogFile      = "logs/toolbox.log"
	DefaultEnvironment  = EnvironmentDev
	DefaultServiceName  = "toolbox"
	DefaultVersion      = "dev"
	DefaultTickInterval = "1s"
	DefaultHistorySize  = 16
)

// Environment names accepted in ENVIRONMENT
const (
	EnvironmentDev  = "dev"
	EnvironmentTest = "test"
	EnvironmentProd = "prod"
)

// environmentAliases maps long-form names onto the accepted ones
var environmentAliases = map[string]string{
	"development": EnvironmentDev,
	"testing":     EnvironmentTest,
	"production":  EnvironmentProd,
}
