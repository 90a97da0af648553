package config

import (
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/logging"
)

// setLogger builds the logger for the given environment and replaces the
// global zap logger with it
func setLogger(environment string) (*zap.Logger, error) {
	logger, err := logging.New(environment)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
