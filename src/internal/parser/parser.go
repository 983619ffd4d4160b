// FILE: loglens/src/internal/parser/parser.go
package parser

import (
	"regexp"
	"sync/atomic"
	"time"

	"loglens/src/internal/core"

	"github.com/lixenwraith/log"
)

// Fixed line grammar: <timestamp> [<level>] [<source>] <message>
var linePattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}) \[([\p{L}\p{Mn}\p{Nd}\p{Pc}]+)\] \[([^\]]+)\] (.+)$`)

// Parse decodes a single line without its trailing newline.
// Lines that do not match the grammar, or whose timestamp is not a real
// instant (e.g. month 13), yield false.
func Parse(line string) (core.LogRecord, bool) {
	rec, ok, _ := parse(line)
	return rec, ok
}

// parse also reports whether the line matched lexically but carried an invalid timestamp
func parse(line string) (rec core.LogRecord, ok bool, badTime bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return core.LogRecord{}, false, false
	}

	ts, err := time.Parse(core.InputTimeLayout, m[1])
	if err != nil {
		return core.LogRecord{}, false, true
	}

	return core.LogRecord{
		Time:    ts,
		Level:   m[2],
		Source:  m[3],
		Message: m[4],
	}, true, false
}

// Parser wraps Parse with line statistics
type Parser struct {
	logger *log.Logger

	// Statistics
	totalLines   atomic.Uint64
	totalMatched atomic.Uint64
	totalSkipped atomic.Uint64
	invalidTime  atomic.Uint64
}

// New creates a parser reporting to the given logger
func New(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse decodes one line and updates statistics
func (p *Parser) Parse(line string) (core.LogRecord, bool) {
	n := p.totalLines.Add(1)

	rec, ok, badTime := parse(line)
	switch {
	case ok:
		p.totalMatched.Add(1)
	case badTime:
		p.invalidTime.Add(1)
		p.totalSkipped.Add(1)
		p.logger.Debug("msg", "Skipping line with invalid timestamp",
			"component", "parser",
			"line", n)
	default:
		p.totalSkipped.Add(1)
	}

	return rec, ok
}

// GetStats returns parser statistics
func (p *Parser) GetStats() map[string]any {
	return map[string]any{
		"total_lines":   p.totalLines.Load(),
		"total_matched": p.totalMatched.Load(),
		"total_skipped": p.totalSkipped.Load(),
		"invalid_time":  p.invalidTime.Load(),
	}
}
