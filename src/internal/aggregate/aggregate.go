// FILE: loglens/src/internal/aggregate/aggregate.go
package aggregate

import (
	"cmp"
	"slices"

	"loglens/src/internal/core"
)

// Summary holds the statistics reported for one run
type Summary struct {
	Total      int     `json:"total"`
	Levels     []Count `json:"levels"`
	TopSources []Count `json:"top_sources"`
	TopLimit   int     `json:"top_limit"`
}

// Total returns the number of records
func Total(records []core.LogRecord) int {
	return len(records)
}

// ByLevel groups records by their literal level, in first-seen order.
func ByLevel(records []core.LogRecord) []Count {
	counter := NewOrderedCounter()
	for _, rec := range records {
		counter.Add(rec.Level)
	}
	return counter.Counts()
}

// TopSources returns at most limit sources ordered by descending count.
// Equal counts keep first-seen order. limit <= 0 returns every source.
func TopSources(records []core.LogRecord, limit int) []Count {
	counter := NewOrderedCounter()
	for _, rec := range records {
		counter.Add(rec.Source)
	}
	return rank(counter.Counts(), limit)
}

func rank(counts []Count, limit int) []Count {
	slices.SortStableFunc(counts, func(a, b Count) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// Summarize computes all statistics in a single pass over records
func Summarize(records []core.LogRecord, limit int) Summary {
	levels := NewOrderedCounter()
	sources := NewOrderedCounter()
	for _, rec := range records {
		levels.Add(rec.Level)
		sources.Add(rec.Source)
	}

	return Summary{
		Total:      len(records),
		Levels:     levels.Counts(),
		TopSources: rank(sources.Counts(), limit),
		TopLimit:   limit,
	}
}
