// FILE: loglens/src/internal/filter/allowlist_test.go
package filter

import (
	"testing"

	"loglens/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestAllowList_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		levels   []string
		sources  []string
		rec      core.LogRecord
		expected bool
	}{
		{name: "EmptyPassesAll", rec: core.LogRecord{Level: "Debug", Source: "x"}, expected: true},
		{name: "LevelExact", levels: []string{"Error"}, rec: core.LogRecord{Level: "Error"}, expected: true},
		{name: "LevelLower", levels: []string{"Error"}, rec: core.LogRecord{Level: "error"}, expected: true},
		{name: "LevelUpper", levels: []string{"error"}, rec: core.LogRecord{Level: "ERROR"}, expected: true},
		{name: "LevelMiss", levels: []string{"Error", "Warning"}, rec: core.LogRecord{Level: "Info"}, expected: false},
		{name: "SourceExact", sources: []string{"10.0.0.1"}, rec: core.LogRecord{Source: "10.0.0.1"}, expected: true},
		{name: "SourceCaseSensitive", sources: []string{"api"}, rec: core.LogRecord{Source: "API"}, expected: false},
		{name: "SourceNoPrefixMatch", sources: []string{"10.0.0.1"}, rec: core.LogRecord{Source: "10.0.0.10"}, expected: false},
		{name: "BothPass", levels: []string{"warn"}, sources: []string{"db"}, rec: core.LogRecord{Level: "Warn", Source: "db"}, expected: true},
		{name: "LevelPassSourceFail", levels: []string{"warn"}, sources: []string{"db"}, rec: core.LogRecord{Level: "Warn", Source: "api"}, expected: false},
		{name: "SourcePassLevelFail", levels: []string{"warn"}, sources: []string{"db"}, rec: core.LogRecord{Level: "Info", Source: "db"}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAllowList(tc.levels, tc.sources)
			assert.Equal(t, tc.expected, a.Apply(tc.rec))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(",,"))
	assert.Equal(t, []string{"Error", "Warning"}, SplitList("Error,Warning"))
	assert.Equal(t, []string{"Error", "Info"}, SplitList("Error,,Info,"))
	assert.Equal(t, []string{" spaced"}, SplitList(" spaced"))
}
