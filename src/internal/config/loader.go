// FILE: loglens/src/internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

// Overrides carries command-line values. Nil fields were not given.
type Overrides struct {
	Input     string
	Levels    []string
	Sources   []string
	CSV       *string
	Top       *int64
	Format    *string
	Color     *string
	Quiet     bool
	LogLevel  *string
	LogOutput *string

	// Pattern filters from --grep/--exclude, appended after configured filters
	Grep       []string
	Exclude    []string
	MatchField string
	IgnoreCase bool
}

// LoadWithCLI builds the configuration from defaults, the config file and
// LOGLENS_ environment variables, then applies command-line overrides.
// Precedence: CLI > Env > File > Defaults. A missing config file is not an error.
func LoadWithCLI(configPath string, cli *Overrides) (*Config, error) {
	if configPath == "" {
		configPath = GetConfigPath()
	}

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("LOGLENS_").
		WithFile(configPath).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil && !errors.Is(err, lconfig.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	if finalConfig.Logging == nil {
		finalConfig.Logging = DefaultLogConfig()
	}

	if cli != nil {
		cli.apply(finalConfig)
	}

	if err := validateConfig(finalConfig); err != nil {
		return nil, err
	}
	return finalConfig, nil
}

// apply copies every given command-line value onto cfg
func (o *Overrides) apply(cfg *Config) {
	if o.Input != "" {
		cfg.Input = o.Input
	}
	if o.Levels != nil {
		cfg.Levels = o.Levels
	}
	if o.Sources != nil {
		cfg.Sources = o.Sources
	}
	if o.CSV != nil {
		cfg.Export.CSV = *o.CSV
	}
	if o.Top != nil {
		cfg.Report.Top = *o.Top
	}
	if o.Format != nil {
		cfg.Report.Format = *o.Format
	}
	if o.Color != nil {
		cfg.Report.Color = *o.Color
	}
	if o.Quiet {
		cfg.Quiet = true
	}
	if o.LogLevel != nil {
		cfg.Logging.Level = *o.LogLevel
	}
	if o.LogOutput != nil {
		cfg.Logging.Output = *o.LogOutput
	}
	if len(o.Grep) > 0 {
		cfg.Filters = append(cfg.Filters, FilterConfig{
			Type:       FilterTypeInclude,
			Logic:      FilterLogicOr,
			Field:      o.MatchField,
			IgnoreCase: o.IgnoreCase,
			Patterns:   o.Grep,
		})
	}
	if len(o.Exclude) > 0 {
		cfg.Filters = append(cfg.Filters, FilterConfig{
			Type:       FilterTypeExclude,
			Logic:      FilterLogicOr,
			Field:      o.MatchField,
			IgnoreCase: o.IgnoreCase,
			Patterns:   o.Exclude,
		})
	}
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = "LOGLENS_" + env
	return env
}

// GetConfigPath resolves the default config file location
func GetConfigPath() string {
	if configFile := os.Getenv("LOGLENS_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("LOGLENS_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("LOGLENS_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "loglens.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "loglens.toml")
	}

	return "loglens.toml"
}
