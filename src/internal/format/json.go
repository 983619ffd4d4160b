// FILE: loglens/src/internal/format/json.go
package format

import (
	"encoding/json"
	"fmt"

	"loglens/src/internal/aggregate"

	"github.com/lixenwraith/log"
)

// JSONFormatter renders the summary as a single JSON document.
type JSONFormatter struct {
	options *Options
	logger  *log.Logger
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts *Options, logger *log.Logger) (*JSONFormatter, error) {
	return &JSONFormatter{
		options: opts,
		logger:  logger,
	}, nil
}

// Format encodes the summary, keeping level and source order.
func (f *JSONFormatter) Format(summary aggregate.Summary) ([]byte, error) {
	if summary.Levels == nil {
		summary.Levels = []aggregate.Count{}
	}
	if summary.TopSources == nil {
		summary.TopSources = []aggregate.Count{}
	}

	var (
		out []byte
		err error
	)
	if f.options.Indent != "" {
		out, err = json.MarshalIndent(summary, "", f.options.Indent)
	} else {
		out, err = json.Marshal(summary)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}

	return append(out, '\n'), nil
}

// Name returns the formatter's type name.
func (f *JSONFormatter) Name() string {
	return "json"
}
