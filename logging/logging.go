package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New creates a new zap logger for the given environment. Production gets the
// JSON production config, development the console development config and
// anything else (local, test) the example logger which logs at debug level.
func New(environment string) (*zap.Logger, error) {
	switch strings.ToLower(environment) {
	case "production", "prod":
		return zap.NewProduction()
	case "development", "dev":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
