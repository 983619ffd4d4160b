// FILE: loglens/src/internal/filter/pattern.go
package filter

import (
	"fmt"
	"regexp"
	"sync/atomic"

	"loglens/src/internal/config"
	"loglens/src/internal/core"

	"github.com/lixenwraith/log"
)

// PatternFilter keeps or drops records by matching regular expressions
// against one field of the record, or against all of them with "any".
type PatternFilter struct {
	mode     string
	logic    string
	field    string
	patterns []*regexp.Regexp
	logger   *log.Logger

	// Statistics
	totalChecked atomic.Uint64
	totalMatched atomic.Uint64
	totalDropped atomic.Uint64
}

// NewPatternFilter compiles cfg. Empty type, logic and field default to
// include, or and message.
func NewPatternFilter(cfg config.FilterConfig, logger *log.Logger) (*PatternFilter, error) {
	pf := &PatternFilter{
		mode:     orDefault(cfg.Type, config.FilterTypeInclude),
		logic:    orDefault(cfg.Logic, config.FilterLogicOr),
		field:    orDefault(cfg.Field, config.FieldMessage),
		patterns: make([]*regexp.Regexp, 0, len(cfg.Patterns)),
		logger:   logger,
	}

	switch pf.field {
	case config.FieldMessage, config.FieldSource, config.FieldLevel, config.FieldAny:
	default:
		return nil, fmt.Errorf("unknown field '%s'", pf.field)
	}

	for i, expr := range cfg.Patterns {
		if cfg.IgnoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern[%d] '%s': %w", i, cfg.Patterns[i], err)
		}
		pf.patterns = append(pf.patterns, re)
	}

	logger.Debug("msg", "Pattern filter created",
		"component", "pattern_filter",
		"type", pf.mode,
		"logic", pf.logic,
		"field", pf.field,
		"pattern_count", len(pf.patterns))

	return pf, nil
}

// Apply reports whether rec passes. A filter without patterns passes everything.
func (pf *PatternFilter) Apply(rec core.LogRecord) bool {
	pf.totalChecked.Add(1)

	if len(pf.patterns) == 0 {
		return true
	}

	matched := pf.match(rec)
	if matched {
		pf.totalMatched.Add(1)
	}

	pass := matched
	if pf.mode == config.FilterTypeExclude {
		pass = !matched
	}
	if !pass {
		pf.totalDropped.Add(1)
	}
	return pass
}

func (pf *PatternFilter) match(rec core.LogRecord) bool {
	if pf.logic == config.FilterLogicAnd {
		for _, re := range pf.patterns {
			if !pf.hit(re, rec) {
				return false
			}
		}
		return true
	}

	for _, re := range pf.patterns {
		if pf.hit(re, rec) {
			return true
		}
	}
	return false
}

// hit tests one pattern against the selected field
func (pf *PatternFilter) hit(re *regexp.Regexp, rec core.LogRecord) bool {
	switch pf.field {
	case config.FieldSource:
		return re.MatchString(rec.Source)
	case config.FieldLevel:
		return re.MatchString(rec.Level)
	case config.FieldAny:
		return re.MatchString(rec.Level) || re.MatchString(rec.Source) || re.MatchString(rec.Message)
	default:
		return re.MatchString(rec.Message)
	}
}

// GetStats returns filter statistics
func (pf *PatternFilter) GetStats() map[string]any {
	return map[string]any{
		"type":          pf.mode,
		"logic":         pf.logic,
		"field":         pf.field,
		"pattern_count": len(pf.patterns),
		"total_checked": pf.totalChecked.Load(),
		"total_matched": pf.totalMatched.Load(),
		"total_dropped": pf.totalDropped.Load(),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
