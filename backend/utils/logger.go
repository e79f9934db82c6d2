package utils

import (
	"log"
	"os"
)

// LoggerConfig controls the optional logger setup.
type LoggerConfig struct {
	Output *os.File
}

// InitLogger returns the process-wide logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	return log.New(cfg.Output, "[Portfolio] ", log.LstdFlags|log.LUTC)
}
