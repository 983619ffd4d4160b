// FILE: loglens/src/internal/sink/csv.go
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"loglens/src/internal/core"

	"github.com/lixenwraith/log"
)

// CSVSink writes records to a delimited file, one row per record.
// Every field is quoted and embedded quotes are doubled.
type CSVSink struct {
	path   string
	logger *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewCSVSink creates a sink for path. The file is created on Export.
func NewCSVSink(path string, logger *log.Logger) (*CSVSink, error) {
	if path == "" {
		return nil, fmt.Errorf("csv sink requires a destination path")
	}

	cs := &CSVSink{
		path:   path,
		logger: logger,
	}
	cs.lastProcessed.Store(time.Time{})
	return cs, nil
}

// Export overwrites the destination with a header and one row per record.
// On failure the partially written file is removed, best effort.
func (cs *CSVSink) Export(records []core.LogRecord) (int, error) {
	f, err := os.Create(cs.path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", cs.path, err)
	}

	n, err := WriteCSV(f, records)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", cs.path, closeErr)
	}

	if err != nil {
		if rmErr := os.Remove(cs.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			cs.logger.Warn("msg", "Failed to remove partial export",
				"component", "csv_sink",
				"path", cs.path,
				"error", rmErr)
		}
		return 0, err
	}

	cs.totalProcessed.Add(uint64(n))
	cs.lastProcessed.Store(time.Now())

	cs.logger.Info("msg", "CSV export written",
		"component", "csv_sink",
		"path", cs.path,
		"rows", n)

	return n, nil
}

// WriteCSV writes the header and rows to w and returns the row count
func WriteCSV(w io.Writer, records []core.LogRecord) (int, error) {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(core.CSVHeader, ",") + "\n"); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		row := quote(rec.Time.UTC().Format(core.ExportTimeLayout)) + "," +
			quote(rec.Level) + "," +
			quote(rec.Source) + "," +
			quote(rec.Message) + "\n"
		if _, err := bw.WriteString(row); err != nil {
			return i, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}
	return len(records), nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// GetStats returns sink statistics
func (cs *CSVSink) GetStats() SinkStats {
	lastProc, _ := cs.lastProcessed.Load().(time.Time)

	return SinkStats{
		Type:           "csv",
		TotalProcessed: cs.totalProcessed.Load(),
		LastProcessed:  lastProc,
		Details: map[string]any{
			"path": cs.path,
		},
	}
}
