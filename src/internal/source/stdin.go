// FILE: loglens/src/internal/source/stdin.go
package source

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
)

// Reads log lines from standard input
type StdinSource struct {
	reader *bufio.Reader
	err    error
	logger *log.Logger

	totalLines   atomic.Uint64
	totalBytes   atomic.Uint64
	startTime    time.Time
	lastLineTime atomic.Value // time.Time
}

// NewStdinSource reads from r, normally os.Stdin
func NewStdinSource(r io.Reader, logger *log.Logger) *StdinSource {
	source := &StdinSource{
		reader:    bufio.NewReaderSize(r, readBufferSize),
		logger:    logger,
		startTime: time.Now(),
	}
	source.lastLineTime.Store(time.Time{})

	logger.Debug("msg", "Stdin source opened", "component", "stdin_source")
	return source
}

func (s *StdinSource) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.err != nil {
			return
		}

		err := scanLines(s.reader, yield, func(n int) {
			s.totalBytes.Add(uint64(n))
			s.totalLines.Add(1)
			s.lastLineTime.Store(time.Now())
		})
		if err != nil {
			s.err = fmt.Errorf("failed to read stdin: %w", err)
			s.logger.Error("msg", "Scanner error reading stdin",
				"component", "stdin_source",
				"error", err)
		}
	}
}

func (s *StdinSource) Err() error {
	return s.err
}

// Close is a no-op; standard input is owned by the process
func (s *StdinSource) Close() error {
	s.logger.Debug("msg", "Stdin source closed",
		"component", "stdin_source",
		"lines", s.totalLines.Load())
	return nil
}

func (s *StdinSource) GetStats() SourceStats {
	lastLine, _ := s.lastLineTime.Load().(time.Time)

	return SourceStats{
		Type:         "stdin",
		TotalLines:   s.totalLines.Load(),
		TotalBytes:   s.totalBytes.Load(),
		StartTime:    s.startTime,
		LastLineTime: lastLine,
		Details:      map[string]any{},
	}
}
