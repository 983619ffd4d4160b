// FILE: loglens/src/cmd/loglens/flags.go
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"loglens/src/internal/config"
	"loglens/src/internal/filter"
)

// FlagConfig holds the parsed command line
type FlagConfig struct {
	Input       string
	ConfigFile  string
	ShowVersion bool
	Quiet       bool

	// Values below are applied only when the flag was given
	levels    string
	sources   string
	csv       string
	top       int64
	format    string
	color     string
	logLevel  string
	logOutput string
	grep      listFlag
	exclude   listFlag
	field     string
	icase     bool
	set       map[string]bool
}

// listFlag collects every occurrence of a repeatable flag
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// ParseFlags parses args (without the program name). Flags may appear before
// or after the input path. Returns flag.ErrHelp for -h/--help.
func ParseFlags(args []string) (*FlagConfig, error) {
	fc := &FlagConfig{set: make(map[string]bool)}

	fs := flag.NewFlagSet("loglens", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&fc.levels, "level", "", "Level allow-list, comma separated, case-insensitive")
	fs.StringVar(&fc.sources, "ip", "", "Source allow-list, comma separated, exact match")
	fs.StringVar(&fc.csv, "csv", "", "Write filtered records to this CSV file")
	fs.Int64Var(&fc.top, "top", 0, "Number of top sources to show")
	fs.StringVar(&fc.format, "format", "", "Summary format: text, json")
	fs.StringVar(&fc.color, "color", "", "Color mode: auto, always, never")
	fs.StringVar(&fc.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&fc.logOutput, "log-output", "", "Log output: stderr, stdout, file, none")
	fs.Var(&fc.grep, "grep", "Keep records matching this regex (repeatable)")
	fs.Var(&fc.exclude, "exclude", "Drop records matching this regex (repeatable)")
	fs.StringVar(&fc.field, "field", "", "Field for --grep/--exclude: message, source, level, any")
	fs.BoolVar(&fc.icase, "ignore-case", false, "Case-insensitive --grep/--exclude")
	fs.BoolVar(&fc.icase, "i", false, "Case-insensitive --grep/--exclude (shorthand)")
	fs.StringVar(&fc.ConfigFile, "config", "", "Config file path")
	fs.StringVar(&fc.ConfigFile, "c", "", "Config file path (shorthand)")
	fs.BoolVar(&fc.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&fc.ShowVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&fc.Quiet, "quiet", false, "Suppress all console output")
	fs.BoolVar(&fc.Quiet, "q", false, "Suppress all console output (shorthand)")

	// Re-parse after each positional so flags may follow the input path
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	fs.Visit(func(f *flag.Flag) {
		fc.set[f.Name] = true
	})

	switch len(positional) {
	case 0:
	case 1:
		fc.Input = positional[0]
	default:
		return nil, fmt.Errorf("unexpected argument: %s", positional[1])
	}

	if err := fc.validate(); err != nil {
		return nil, err
	}

	return fc, nil
}

func (fc *FlagConfig) validate() error {
	if fc.set["format"] {
		if fc.format != "text" && fc.format != "json" {
			return fmt.Errorf("invalid format: %s (valid: text, json)", fc.format)
		}
	}

	if fc.set["color"] {
		validModes := map[string]bool{"auto": true, "always": true, "never": true}
		if !validModes[fc.color] {
			return fmt.Errorf("invalid color: %s (valid: auto, always, never)", fc.color)
		}
	}

	if fc.set["top"] && fc.top < 1 {
		return fmt.Errorf("invalid top: %d (must be positive)", fc.top)
	}

	if fc.set["field"] {
		validFields := map[string]bool{
			config.FieldMessage: true, config.FieldSource: true, config.FieldLevel: true, config.FieldAny: true,
		}
		if !validFields[fc.field] {
			return fmt.Errorf("invalid field: %s (valid: message, source, level, any)", fc.field)
		}
	}

	if fc.set["log-level"] {
		if _, err := parseLogLevel(fc.logLevel); err != nil {
			return fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", fc.logLevel)
		}
	}

	if fc.set["log-output"] {
		validOutputs := map[string]bool{
			"file": true, "stdout": true, "stderr": true, "none": true,
		}
		if !validOutputs[fc.logOutput] {
			return fmt.Errorf("invalid log-output: %s (valid: file, stdout, stderr, none)", fc.logOutput)
		}
	}

	return nil
}

// Overrides converts the given flags into config overrides
func (fc *FlagConfig) Overrides() *config.Overrides {
	o := &config.Overrides{
		Input:      fc.Input,
		Quiet:      fc.Quiet,
		Grep:       fc.grep,
		Exclude:    fc.exclude,
		MatchField: fc.field,
		IgnoreCase: fc.icase,
	}

	if fc.set["level"] {
		o.Levels = splitOrEmpty(fc.levels)
	}
	if fc.set["ip"] {
		o.Sources = splitOrEmpty(fc.sources)
	}
	if fc.set["csv"] {
		o.CSV = &fc.csv
	}
	if fc.set["top"] {
		o.Top = &fc.top
	}
	if fc.set["format"] {
		o.Format = &fc.format
	}
	if fc.set["color"] {
		o.Color = &fc.color
	}
	if fc.set["log-level"] {
		level := strings.ToLower(fc.logLevel)
		o.LogLevel = &level
	}
	if fc.set["log-output"] {
		o.LogOutput = &fc.logOutput
	}

	return o
}

// splitOrEmpty keeps an explicitly empty flag distinct from an absent one
func splitOrEmpty(value string) []string {
	list := filter.SplitList(value)
	if list == nil {
		return []string{}
	}
	return list
}
