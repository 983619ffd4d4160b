// FILE: loglens/src/internal/parser/parser_test.go
package parser

import (
	"testing"
	"time"

	"loglens/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestParse_Match(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected core.LogRecord
	}{
		{
			name: "BracketedIPSource",
			line: "2024-01-15T10:30:00.123 [Error] [192.168.1.5] Connection refused",
			expected: core.LogRecord{
				Time:    time.Date(2024, 1, 15, 10, 30, 0, 123_000_000, time.UTC),
				Level:   "Error",
				Source:  "192.168.1.5",
				Message: "Connection refused",
			},
		},
		{
			name: "SourceWithColonsAndSpaces",
			line: "2023-12-31T23:59:59.999 [WARN_2] [api gw:8080/v1] slow [request] \"x\"",
			expected: core.LogRecord{
				Time:    time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
				Level:   "WARN_2",
				Source:  "api gw:8080/v1",
				Message: "slow [request] \"x\"",
			},
		},
		{
			name: "MessageKeepsSurroundingSpaces",
			line: "2024-02-29T00:00:00.000 [Info] [db]   padded  ",
			expected: core.LogRecord{
				Time:    time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
				Level:   "Info",
				Source:  "db",
				Message: "  padded  ",
			},
		},
		{
			name: "LevelWithCombiningMarkAndConnector",
			line: "2024-01-01T12:00:00.001 [Cafe\u0301\u203fLog] [node-1] ok",
			expected: core.LogRecord{
				Time:    time.Date(2024, 1, 1, 12, 0, 0, 1_000_000, time.UTC),
				Level:   "Cafe\u0301\u203fLog",
				Source:  "node-1",
				Message: "ok",
			},
		},
		{
			name: "UnicodeLevel",
			line: "2024-01-01T12:00:00.001 [Ошибка] [node-1] сбой",
			expected: core.LogRecord{
				Time:    time.Date(2024, 1, 1, 12, 0, 0, 1_000_000, time.UTC),
				Level:   "Ошибка",
				Source:  "node-1",
				Message: "сбой",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := Parse(tc.line)
			require.True(t, ok)
			assert.Equal(t, tc.expected, rec)
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "PlainText", line: "not a log line"},
		{name: "LevelWithSuperscriptDigit", line: "2024-01-15T10:30:00.123 [Lvl²] [src] msg"},
		{name: "Empty", line: ""},
		{name: "MissingLevelBrackets", line: "2024-01-15T10:30:00.123 Error [src] msg"},
		{name: "MissingSourceBrackets", line: "2024-01-15T10:30:00.123 [Error] src msg"},
		{name: "EmptyMessage", line: "2024-01-15T10:30:00.123 [Error] [src] "},
		{name: "NoMessageSeparator", line: "2024-01-15T10:30:00.123 [Error] [src]"},
		{name: "TwoDigitMillis", line: "2024-01-15T10:30:00.12 [Error] [src] msg"},
		{name: "NoMillis", line: "2024-01-15T10:30:00 [Error] [src] msg"},
		{name: "TimezoneOffset", line: "2024-01-15T10:30:00.123Z [Error] [src] msg"},
		{name: "SpaceSeparatedDate", line: "2024-01-15 10:30:00.123 [Error] [src] msg"},
		{name: "LevelWithDash", line: "2024-01-15T10:30:00.123 [Err-or] [src] msg"},
		{name: "EmptySource", line: "2024-01-15T10:30:00.123 [Error] [] msg"},
		{name: "LeadingSpace", line: " 2024-01-15T10:30:00.123 [Error] [src] msg"},
		{name: "EmbeddedNewline", line: "2024-01-15T10:30:00.123 [Error] [src] a\nb"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Parse(tc.line)
			assert.False(t, ok)
		})
	}
}

func TestParse_InvalidTimestamp(t *testing.T) {
	lines := []string{
		"9999-99-99T99:99:99.999 [Error] [src] msg",
		"2024-13-01T00:00:00.000 [Error] [src] msg",
		"2023-02-29T00:00:00.000 [Error] [src] msg",
		"2024-01-15T25:00:00.000 [Error] [src] msg",
	}

	for _, line := range lines {
		t.Run(line[:23], func(t *testing.T) {
			_, ok := Parse(line)
			assert.False(t, ok)
		})
	}
}

func TestParser_Stats(t *testing.T) {
	p := New(newTestLogger())

	_, ok := p.Parse("2024-01-15T10:30:00.123 [Error] [a] one")
	assert.True(t, ok)
	_, ok = p.Parse("garbage")
	assert.False(t, ok)
	_, ok = p.Parse("2024-13-15T10:30:00.123 [Error] [a] bad month")
	assert.False(t, ok)

	stats := p.GetStats()
	assert.Equal(t, uint64(3), stats["total_lines"])
	assert.Equal(t, uint64(1), stats["total_matched"])
	assert.Equal(t, uint64(2), stats["total_skipped"])
	assert.Equal(t, uint64(1), stats["invalid_time"])
}
