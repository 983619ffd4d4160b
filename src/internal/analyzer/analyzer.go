// FILE: loglens/src/internal/analyzer/analyzer.go
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"loglens/src/internal/aggregate"
	"loglens/src/internal/config"
	"loglens/src/internal/core"
	"loglens/src/internal/filter"
	"loglens/src/internal/parser"
	"loglens/src/internal/sink"
	"loglens/src/internal/source"

	"github.com/lixenwraith/log"
)

// ErrInputNotFound is returned by Run when the input file does not exist
var ErrInputNotFound = errors.New("input file not found")

// Analyzer runs parse, filter, export and aggregation over one log file
type Analyzer struct {
	Config      *config.Config
	Parser      *parser.Parser
	FilterChain *filter.Chain
	Sink        sink.Sink
	Stdin       io.Reader // read when the input path is "-"
	logger      *log.Logger
}

// Result is the outcome of one run. ExportErr is set when the export failed;
// the summary is still valid in that case.
type Result struct {
	Summary    aggregate.Summary
	Exported   int
	ExportPath string
	ExportErr  error
	Stats      RunStats
}

// RunStats contains statistics for a run
type RunStats struct {
	StartTime   time.Time
	Duration    time.Duration
	LinesRead   uint64
	Parsed      int
	Passed      int
	SourceStats source.SourceStats
	ParserStats map[string]any
	FilterStats map[string]any
}

// New creates an analyzer for cfg
func New(cfg *config.Config, logger *log.Logger) (*Analyzer, error) {
	chain, err := filter.NewChain(cfg.Levels, cfg.Sources, cfg.Filters, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter chain: %w", err)
	}

	a := &Analyzer{
		Config:      cfg,
		Parser:      parser.New(logger),
		FilterChain: chain,
		Stdin:       os.Stdin,
		logger:      logger,
	}

	if cfg.Export.CSV != "" {
		csvSink, err := sink.NewCSVSink(cfg.Export.CSV, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create csv sink: %w", err)
		}
		a.Sink = csvSink
	}

	return a, nil
}

// Run processes the input file. A missing input returns an error wrapping
// ErrInputNotFound before any record is read.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		ExportPath: a.Config.Export.CSV,
		Stats:      RunStats{StartTime: time.Now()},
	}

	records, srcStats, err := a.read(ctx)
	if err != nil {
		return nil, err
	}
	result.Stats.SourceStats = srcStats
	result.Stats.LinesRead = srcStats.TotalLines
	result.Stats.Parsed = len(records)

	filtered := a.FilterChain.Records(records)
	result.Stats.Passed = len(filtered)

	if a.Sink != nil {
		n, err := a.Sink.Export(filtered)
		if err != nil {
			a.logger.Error("msg", "Export failed",
				"component", "analyzer",
				"path", a.Config.Export.CSV,
				"error", err)
			result.ExportErr = err
		} else {
			result.Exported = n
		}
	}

	result.Summary = aggregate.Summarize(filtered, int(a.Config.Report.Top))
	result.Stats.Duration = time.Since(result.Stats.StartTime)
	result.Stats.ParserStats = a.Parser.GetStats()
	result.Stats.FilterStats = a.FilterChain.GetStats()

	a.logger.Info("msg", "Analysis complete",
		"component", "analyzer",
		"input", a.Config.Input,
		"lines", result.Stats.LinesRead,
		"parsed", result.Stats.Parsed,
		"passed", result.Stats.Passed,
		"duration", result.Stats.Duration)

	return result, nil
}

// read parses every matching line of the input. The file is closed before returning.
func (a *Analyzer) read(ctx context.Context) ([]core.LogRecord, source.SourceStats, error) {
	src, err := a.open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, source.SourceStats{}, fmt.Errorf("%w: %s", ErrInputNotFound, a.Config.Input)
		}
		return nil, source.SourceStats{}, err
	}
	defer src.Close()

	var records []core.LogRecord
	for line := range src.Lines() {
		if err := ctx.Err(); err != nil {
			return nil, src.GetStats(), err
		}
		if rec, ok := a.Parser.Parse(line); ok {
			records = append(records, rec)
		}
	}

	if err := src.Err(); err != nil {
		return nil, src.GetStats(), err
	}

	return records, src.GetStats(), nil
}

func (a *Analyzer) open() (source.Source, error) {
	if a.Config.Input == source.StdinPath {
		return source.NewStdinSource(a.Stdin, a.logger), nil
	}
	return source.Open(a.Config.Input, a.logger)
}
