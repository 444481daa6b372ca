package utils

import (
	"log"
	"os"
)

// LoggerConfig holds the logger options.
type LoggerConfig struct {
	// Output stream (os.Stdout, a file, etc.)
	Output *os.File
	// Include caller file/line
	ShortFile bool
}

// InitLogger initializes and returns the service logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	flags := log.LstdFlags | log.LUTC
	if cfg.ShortFile {
		flags |= log.Lshortfile
	}

	return log.New(cfg.Output, "[Study Vault] ", flags)
}
