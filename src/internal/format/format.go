// FILE: loglens/src/internal/format/format.go
package format

import (
	"fmt"

	"loglens/src/internal/aggregate"

	"github.com/lixenwraith/log"
)

// Formatter renders a run summary for the console.
type Formatter interface {
	// Format takes a Summary and returns the rendered report
	Format(summary aggregate.Summary) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// Options tune formatter output
type Options struct {
	// Color level names in text output
	Color bool

	// JSON indentation, empty for compact output
	Indent string
}

// NewFormatter creates a Formatter by name. Empty name selects text.
func NewFormatter(name string, opts *Options, logger *log.Logger) (Formatter, error) {
	if opts == nil {
		opts = &Options{}
	}

	switch name {
	case "text", "":
		return NewTextFormatter(opts, logger)
	case "json":
		return NewJSONFormatter(opts, logger)
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
