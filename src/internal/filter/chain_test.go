// FILE: loglens/src/internal/filter/chain_test.go
package filter

import (
	"testing"
	"time"

	"loglens/src/internal/config"
	"loglens/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []core.LogRecord {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return []core.LogRecord{
		{Time: base, Level: "Error", Source: "10.0.0.1", Message: "connection refused"},
		{Time: base.Add(time.Second), Level: "Info", Source: "10.0.0.2", Message: "started"},
		{Time: base.Add(2 * time.Second), Level: "ERROR", Source: "10.0.0.2", Message: "disk full"},
		{Time: base.Add(3 * time.Second), Level: "Warning", Source: "10.0.0.1", Message: "slow query"},
		{Time: base.Add(4 * time.Second), Level: "error", Source: "10.0.0.3", Message: "timeout"},
	}
}

func TestNewChain(t *testing.T) {
	logger := newTestLogger()

	t.Run("Success", func(t *testing.T) {
		configs := []config.FilterConfig{
			{Type: config.FilterTypeInclude, Patterns: []string{"apple"}},
			{Type: config.FilterTypeExclude, Patterns: []string{"banana"}},
		}
		chain, err := NewChain(nil, nil, configs, logger)
		assert.NoError(t, err)
		assert.NotNil(t, chain)
		assert.Len(t, chain.filters, 2)
	})

	t.Run("ErrorInvalidRegexInChain", func(t *testing.T) {
		configs := []config.FilterConfig{
			{Patterns: []string{"apple"}},
			{Patterns: []string{"["}},
		}
		chain, err := NewChain(nil, nil, configs, logger)
		assert.Error(t, err)
		assert.Nil(t, chain)
		assert.Contains(t, err.Error(), "filter[1]")
	})
}

func TestChain_Records(t *testing.T) {
	logger := newTestLogger()
	records := sampleRecords()

	t.Run("IdentityWithoutFilters", func(t *testing.T) {
		chain, err := NewChain(nil, nil, nil, logger)
		require.NoError(t, err)
		assert.Equal(t, records, chain.Records(records))
	})

	t.Run("LevelCaseInsensitive", func(t *testing.T) {
		chain, err := NewChain([]string{"Error"}, nil, nil, logger)
		require.NoError(t, err)

		out := chain.Records(records)
		require.Len(t, out, 3)
		assert.Equal(t, "Error", out[0].Level)
		assert.Equal(t, "ERROR", out[1].Level)
		assert.Equal(t, "error", out[2].Level)
	})

	t.Run("SourceAndLevel", func(t *testing.T) {
		chain, err := NewChain([]string{"error"}, []string{"10.0.0.2"}, nil, logger)
		require.NoError(t, err)

		out := chain.Records(records)
		require.Len(t, out, 1)
		assert.Equal(t, "disk full", out[0].Message)
	})

	t.Run("AllowListAndPatterns", func(t *testing.T) {
		configs := []config.FilterConfig{{Type: config.FilterTypeExclude, Patterns: []string{"^disk"}}}
		chain, err := NewChain([]string{"error"}, nil, configs, logger)
		require.NoError(t, err)

		out := chain.Records(records)
		require.Len(t, out, 2)
		assert.Equal(t, "connection refused", out[0].Message)
		assert.Equal(t, "timeout", out[1].Message)
	})

	t.Run("Idempotent", func(t *testing.T) {
		chain, err := NewChain([]string{"error", "warning"}, []string{"10.0.0.1", "10.0.0.3"}, nil, logger)
		require.NoError(t, err)

		once := chain.Records(records)
		assert.Equal(t, once, chain.Records(once))
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		before := sampleRecords()
		chain, err := NewChain([]string{"Info"}, nil, nil, logger)
		require.NoError(t, err)

		chain.Records(records)
		assert.Equal(t, before, records)
	})

	t.Run("NoMatches", func(t *testing.T) {
		chain, err := NewChain([]string{"Fatal"}, nil, nil, logger)
		require.NoError(t, err)
		assert.Empty(t, chain.Records(records))
	})
}

func TestChain_Stats(t *testing.T) {
	chain, err := NewChain([]string{"Info"}, nil, nil, newTestLogger())
	require.NoError(t, err)

	chain.Records(sampleRecords())

	stats := chain.GetStats()
	assert.Equal(t, uint64(5), stats["total_processed"])
	assert.Equal(t, uint64(1), stats["total_passed"])
	assert.Equal(t, true, stats["allow_list"])
	assert.Equal(t, 0, stats["filter_count"])
}
