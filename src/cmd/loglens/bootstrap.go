// FILE: loglens/src/cmd/loglens/bootstrap.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"loglens/src/internal/config"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

// initializeLogger sets up the diagnostic logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	logCfg, err := buildLogConfig(cfg)
	if err != nil {
		return err
	}

	if err := logger.ApplyConfig(logCfg); err != nil {
		return fmt.Errorf("failed to apply log config: %w", err)
	}
	return logger.Start()
}

// buildLogConfig maps the logging section onto the logger's configuration
func buildLogConfig(cfg *config.Config) (*log.Config, error) {
	logCfg := log.DefaultConfig()
	// The logger creates its directory even with file output disabled
	logCfg.Directory = os.TempDir()
	logCfg.Name = "loglens"

	if cfg.Quiet {
		// In quiet mode, disable ALL logging output
		logCfg.DisableFile = true
		logCfg.EnableConsole = false
		logCfg.Level = log.LevelError
		return logCfg, nil
	}

	level, err := log.Level(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logCfg.Level = level

	switch cfg.Logging.Output {
	case "none":
		logCfg.DisableFile = true
		logCfg.EnableConsole = false

	case "stdout", "stderr":
		logCfg.DisableFile = true
		logCfg.EnableConsole = true
		logCfg.ConsoleTarget = cfg.Logging.Output

	case "file":
		logCfg.EnableConsole = false
		configureFileLogging(logCfg, cfg)

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if cfg.Logging.Console != nil && cfg.Logging.Console.Format != "" {
		logCfg.Format = cfg.Logging.Console.Format
	}

	return logCfg, nil
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(logCfg *log.Config, cfg *config.Config) {
	if cfg.Logging.File == nil {
		return
	}
	logCfg.DisableFile = false
	logCfg.Directory = cfg.Logging.File.Directory
	logCfg.Name = cfg.Logging.File.Name
	logCfg.MaxSizeKB = cfg.Logging.File.MaxSizeMB * 1000
	logCfg.MaxTotalSizeKB = cfg.Logging.File.MaxTotalSizeMB * 1000
	if cfg.Logging.File.RetentionHours > 0 {
		logCfg.RetentionPeriodHrs = cfg.Logging.File.RetentionHours
	}
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Error("Logger shutdown error: %v\n", err)
		}
	}
}

func parseLogLevel(level string) (int64, error) {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return log.Level(level)
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
