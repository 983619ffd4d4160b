// FILE: loglens/src/internal/core/record.go
package core

import "time"

// LogRecord is one decoded log line
type LogRecord struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
}
