package cliconfig

import "github.com/bft-labs/kalliopectl/pkg/log"

// NewLogger builds the CLI logger from the log level and log file settings.
func NewLogger(cfg Config) (*log.ZerologAdapter, error) {
	return log.NewZerologAdapterWithOptions(log.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	})
}
