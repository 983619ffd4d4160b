// FILE: loglens/src/internal/format/text.go
package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"loglens/src/internal/aggregate"

	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/log"
)

const summaryTemplate = "Total events: {{.Total}}\n" +
	"By level:{{range .Levels}}\n  {{Level .Key}}: {{.Count}}{{end}}\n" +
	"Top {{.TopLimit}} sources:{{range .TopSources}}\n  {{.Key}}: {{.Count}}{{end}}\n"

var (
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))            // yellow
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // gray
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
)

// Produces the human-readable summary
type TextFormatter struct {
	options  *Options
	template *template.Template
	logger   *log.Logger
}

// Creates a new text formatter
func NewTextFormatter(opts *Options, logger *log.Logger) (*TextFormatter, error) {
	f := &TextFormatter{
		options: opts,
		logger:  logger,
	}

	funcMap := template.FuncMap{
		"Level": f.level,
	}

	tmpl, err := template.New("summary").Funcs(funcMap).Parse(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	f.template = tmpl
	return f, nil
}

// Formats the summary using the template
func (f *TextFormatter) Format(summary aggregate.Summary) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.template.Execute(&buf, summary); err != nil {
		return nil, fmt.Errorf("failed to render summary: %w", err)
	}
	return buf.Bytes(), nil
}

// Returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}

func (f *TextFormatter) level(name string) string {
	if !f.options.Color {
		return name
	}
	return styleLevel(name)
}

func styleLevel(level string) string {
	switch strings.ToLower(level) {
	case "error", "err", "fatal", "critical", "crit", "panic":
		return styleError.Render(level)
	case "warn", "warning":
		return styleWarn.Render(level)
	case "debug", "trace", "verbose":
		return styleDebug.Render(level)
	default:
		return styleInfo.Render(level)
	}
}
