// FILE: loglens/src/internal/filter/chain.go
package filter

import (
	"fmt"
	"sync/atomic"

	"loglens/src/internal/config"
	"loglens/src/internal/core"

	"github.com/lixenwraith/log"
)

// Chain combines the level/source allow-list with pattern filters.
// A record passes only if every stage passes.
type Chain struct {
	allow   *AllowList
	filters []*PatternFilter
	logger  *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	totalPassed    atomic.Uint64
}

// NewChain creates a filter chain from allow-lists and pattern filter configurations.
func NewChain(levels, sources []string, configs []config.FilterConfig, logger *log.Logger) (*Chain, error) {
	chain := &Chain{
		allow:   NewAllowList(levels, sources),
		filters: make([]*PatternFilter, 0, len(configs)),
		logger:  logger,
	}

	for i, cfg := range configs {
		filter, err := NewPatternFilter(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("filter[%d]: %w", i, err)
		}
		chain.filters = append(chain.filters, filter)
	}

	logger.Debug("msg", "Filter chain created",
		"component", "filter_chain",
		"levels", levels,
		"sources", sources,
		"filter_count", len(configs))
	return chain, nil
}

// Apply runs a record through the allow-list and all pattern filters.
func (c *Chain) Apply(rec core.LogRecord) bool {
	c.totalProcessed.Add(1)

	if !c.allow.Apply(rec) {
		return false
	}

	for _, filter := range c.filters {
		if !filter.Apply(rec) {
			return false
		}
	}

	c.totalPassed.Add(1)
	return true
}

// Records returns the records that pass the chain, in their original order.
// The input slice is not modified.
func (c *Chain) Records(records []core.LogRecord) []core.LogRecord {
	out := make([]core.LogRecord, 0, len(records))
	for _, rec := range records {
		if c.Apply(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// GetStats returns aggregated statistics for the entire chain.
func (c *Chain) GetStats() map[string]any {
	filterStats := make([]map[string]any, len(c.filters))
	for i, filter := range c.filters {
		filterStats[i] = filter.GetStats()
	}

	return map[string]any{
		"filter_count":    len(c.filters),
		"allow_list":      !c.allow.Empty(),
		"total_processed": c.totalProcessed.Load(),
		"total_passed":    c.totalPassed.Load(),
		"filters":         filterStats,
	}
}
