// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// File extensions used by the assembler.
const (
	SourceExtension  = ".c8s"
	BinaryExtension  = ".ch8"
	ListingExtension = ".lst"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
