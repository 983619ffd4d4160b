// FILE: loglens/src/internal/sink/sink.go
package sink

import (
	"time"

	"loglens/src/internal/core"
)

// Sink persists a collection of records
type Sink interface {
	// Export writes all records and returns the number of rows written
	Export(records []core.LogRecord) (int, error)

	// GetStats returns sink statistics
	GetStats() SinkStats
}

// SinkStats contains statistics about a sink
type SinkStats struct {
	Type           string
	TotalProcessed uint64
	LastProcessed  time.Time
	Details        map[string]any
}
