package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the application logger. JSON output by default; set
// LOG_MODE=development for console output with caller info.
func New() *zap.Logger {
	var (
		lg  *zap.Logger
		err error
	)
	if os.Getenv("LOG_MODE") == "development" {
		lg, err = zap.NewDevelopment()
	} else {
		lg, err = zap.NewProduction()
	}
	if err != nil {
		// zap.NewProduction only fails on bad sink paths; fall back to no-op
		return zap.NewNop()
	}
	return lg
}
