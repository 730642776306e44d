package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. The env tag names the
// variable each field is read from and is used in validation errors.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=text json"`
	LogFile     string `env:"LOG_FILE"`
	Environment string `env:"ENVIRONMENT" validate:"oneof=dev test prod"`
	ServiceName string `env:"SERVICE_NAME" validate:"required"`
	Version     string `env:"VERSION" validate:"required"`

	// TickInterval paces countdowns; zero renders them instantly
	TickInterval time.Duration `env:"TICK_INTERVAL" validate:"gte=0"`
	ClearScreen  bool          `env:"CLEAR_SCREEN"`
	Color        bool          `env:"COLOR"`

	// RandomSeed of zero seeds from the clock
	RandomSeed  int64  `env:"RANDOM_SEED"`
	CatalogPath string `env:"CATALOG_PATH" validate:"omitempty,file"`

	HistorySize int           `env:"HISTORY_SIZE" validate:"min=1,max=1024"`
	HistoryTTL  time.Duration `env:"HISTORY_TTL" validate:"gte=0"`

	// MetricsPort of zero disables the metrics server
	MetricsPort int `env:"METRICS_PORT" validate:"min=0,max=65535"`

	TapeWearOnInvalidInterval bool `env:"TAPE_WEAR_ON_INVALID_INTERVAL"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:                  strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:                 strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogFile:                   getEnv(EnvLogFile, DefaultLogFile),
		Environment:               normalizeEnvironment(getEnv(EnvEnvironment, DefaultEnvironment)),
		ServiceName:               getEnv(EnvServiceName, DefaultServiceName),
		Version:                   getEnv(EnvVersion, DefaultVersion),
		TickInterval:              getEnvAsDuration(EnvTickInterval, DefaultTickInterval),
		ClearScreen:               getEnvAsBool(EnvClearScreen, true),
		Color:                     getEnvAsBool(EnvColor, true),
		RandomSeed:                int64(getEnvAsInt(EnvRandomSeed, 0)),
		CatalogPath:               getEnv(EnvCatalogPath, ""),
		HistorySize:               getEnvAsInt(EnvHistorySize, DefaultHistorySize),
		HistoryTTL:                getEnvAsDuration(EnvHistoryTTL, "0"),
		MetricsPort:               getEnvAsInt(EnvMetricsPort, 0),
		TapeWearOnInvalidInterval: getEnvAsBool(EnvTapeWearOnInvalidInterval, false),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDev reports whether the app runs in the dev environment
func (c *Config) IsDev() bool {
	return c.Environment == EnvironmentDev
}

// MetricsEnabled reports whether the metrics server should run
func (c *Config) MetricsEnabled() bool {
	return c.MetricsPort > 0
}

func normalizeEnvironment(env string) string {
	env = strings.ToLower(strings.TrimSpace(env))
	if alias, ok := environmentAliases[env]; ok {
		return alias
	}
	return env
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean variable, falling back to the default when unset or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable. A bare integer is read as
// seconds. Invalid values fall back to the default.
func getEnvAsDuration(key, defaultValue string) time.Duration {
	raw := getEnv(key, defaultValue)
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}
