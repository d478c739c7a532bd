package logger

import (
	"go.uber.org/zap"
)

// New returns the JSON production logger for "production" and the
// human-readable development logger otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
