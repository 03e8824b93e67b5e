// Package logging builds the zap logger shared across the CLI.
package logging

import (
	"go.uber.org/zap"
)

// New returns a console-encoded sugared logger. Non-debug runs log at warn
// level so diagnostics (skip-set load problems, path anomalies) show up
// without drowning the progress output.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
