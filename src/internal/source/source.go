// FILE: loglens/src/internal/source/source.go
package source

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"time"
)

// StdinPath is the input path that selects standard input
const StdinPath = "-"

// Represents a forward-only stream of text lines
type Source interface {
	// Returns a lazy sequence of lines, newline terminators stripped
	Lines() iter.Seq[string]

	// Returns the first read error encountered by Lines, if any
	Err() error

	// Releases the underlying handle
	Close() error

	// Returns source statistics
	GetStats() SourceStats
}

// Contains statistics about a source
type SourceStats struct {
	Type         string
	TotalLines   uint64
	TotalBytes   uint64
	StartTime    time.Time
	LastLineTime time.Time
	Details      map[string]any
}

// scanLines reads r to the end, yielding each line without its terminator.
// count receives the raw byte length of every line read. Returns nil at EOF
// or when yield stops the iteration.
func scanLines(r *bufio.Reader, yield func(string) bool, count func(int)) error {
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			count(len(line))

			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
