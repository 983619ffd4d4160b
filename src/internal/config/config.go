// FILE: loglens/src/internal/config/config.go
package config

import "loglens/src/internal/core"

// Config is the resolved configuration for one analyzer run
type Config struct {
	// Input log file path
	Input string `toml:"input"`

	// Level allow-list, case-insensitive (empty = all levels)
	Levels []string `toml:"levels"`

	// Source allow-list, exact match (empty = all sources)
	Sources []string `toml:"sources"`

	// Message pattern filters, all must pass
	Filters []FilterConfig `toml:"filters"`

	Export ExportConfig `toml:"export"`
	Report ReportConfig `toml:"report"`

	// Suppress all console output, including errors
	Quiet bool `toml:"quiet"`

	Logging *LogConfig `toml:"logging"`
}

// ExportConfig controls the CSV export
type ExportConfig struct {
	// Destination path, empty disables export
	CSV string `toml:"csv"`
}

// ReportConfig controls the console summary
type ReportConfig struct {
	// Summary format: "text" or "json"
	Format string `toml:"format"`

	// Number of top sources to show
	Top int64 `toml:"top"`

	// Color mode: "auto", "always", "never"
	Color string `toml:"color"`
}

// Filter types, logic and record fields
const (
	FilterTypeInclude = "include"
	FilterTypeExclude = "exclude"
	FilterLogicOr     = "or"
	FilterLogicAnd    = "and"

	FieldMessage = "message"
	FieldSource  = "source"
	FieldLevel   = "level"
	FieldAny     = "any"
)

// FilterConfig describes a regex filter over one field of a record
type FilterConfig struct {
	// "include" keeps matches, "exclude" drops them
	Type string `toml:"type"`

	// "or" matches any pattern, "and" requires all
	Logic string `toml:"logic"`

	// Record field the patterns run against, "message" when empty
	Field string `toml:"field"`

	IgnoreCase bool `toml:"ignore_case"`

	Patterns []string `toml:"patterns"`
}

func defaults() *Config {
	return &Config{
		Report: ReportConfig{
			Format: "text",
			Top:    core.DefaultTopLimit,
			Color:  "auto",
		},
		Logging: DefaultLogConfig(),
	}
}
