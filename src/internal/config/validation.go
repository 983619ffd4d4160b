// FILE: loglens/src/internal/config/validation.go
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// validateConfig is the centralized validator for the entire configuration
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("no input file specified")
	}

	if err := validateReport(&cfg.Report); err != nil {
		return fmt.Errorf("report config: %w", err)
	}

	for i := range cfg.Filters {
		if err := validateFilter(i, &cfg.Filters[i]); err != nil {
			return err
		}
	}

	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func validateReport(cfg *ReportConfig) error {
	switch cfg.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format '%s' (must be 'text' or 'json')", cfg.Format)
	}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode '%s' (must be 'auto', 'always' or 'never')", cfg.Color)
	}

	if cfg.Top < 1 {
		return fmt.Errorf("top must be positive: %d", cfg.Top)
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Output == "file" {
		if cfg.File == nil {
			return fmt.Errorf("file output requires [logging.file] settings")
		}
		if strings.TrimSpace(cfg.File.Directory) == "" {
			return fmt.Errorf("file output requires 'directory'")
		}
		if strings.TrimSpace(cfg.File.Name) == "" {
			return fmt.Errorf("file output requires 'name'")
		}
	}

	if cfg.Console != nil {
		validFormats := map[string]bool{
			"txt": true, "json": true, "": true,
		}
		if !validFormats[cfg.Console.Format] {
			return fmt.Errorf("invalid console format: %s", cfg.Console.Format)
		}
	}

	return nil
}

func validateFilter(filterIndex int, cfg *FilterConfig) error {
	// Validate filter type
	switch cfg.Type {
	case FilterTypeInclude, FilterTypeExclude, "":
		// Valid types
	default:
		return fmt.Errorf("filter[%d]: invalid type '%s' (must be 'include' or 'exclude')",
			filterIndex, cfg.Type)
	}

	// Validate filter logic
	switch cfg.Logic {
	case FilterLogicOr, FilterLogicAnd, "":
		// Valid logic
	default:
		return fmt.Errorf("filter[%d]: invalid logic '%s' (must be 'or' or 'and')",
			filterIndex, cfg.Logic)
	}

	switch cfg.Field {
	case FieldMessage, FieldSource, FieldLevel, FieldAny, "":
	default:
		return fmt.Errorf("filter[%d]: invalid field '%s' (must be 'message', 'source', 'level' or 'any')",
			filterIndex, cfg.Field)
	}

	// Validate regex patterns
	for i, pattern := range cfg.Patterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("filter[%d] pattern[%d] '%s': invalid regex: %w",
				filterIndex, i, pattern, err)
		}
	}

	return nil
}
