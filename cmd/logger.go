package cmd

import (
	"go.uber.org/zap"
)

func developmentLogger(debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}
