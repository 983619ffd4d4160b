// FILE: loglens/src/internal/core/const.go
package core

// Timestamp layouts
const (
	// Input layout of the leading timestamp, millisecond precision, no offset
	InputTimeLayout = "2006-01-02T15:04:05.000"

	// Export layout, fixed width and re-parseable with time.RFC3339Nano
	ExportTimeLayout = "2006-01-02T15:04:05.0000000Z07:00"
)

// CSVHeader is the first row of every export
var CSVHeader = []string{"Timestamp", "Level", "Source", "Message"}

const DefaultTopLimit = 5
