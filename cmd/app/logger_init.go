package main

import (
	"github.com/osse101/Toolbox_Go/internal/config"
	"github.com/osse101/Toolbox_Go/internal/logger"
)

// initLogger initializes the logger from app configuration. Source
// locations are only recorded in dev. Logs go to cfg.LogFile so they stay
// off the operator's screen; an empty path logs to stderr. The returned
// func closes the log file.
func initLogger(cfg *config.Config) (func(), error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDev(),
	)

	if cfg.LogFile == "" {
		logger.InitLogger(loggerConfig)
		return func() {}, nil
	}

	f, err := logger.OpenLogFile(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	logger.InitLoggerWithWriter(loggerConfig, f)
	return func() { _ = f.Close() }, nil
}
