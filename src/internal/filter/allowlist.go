// FILE: loglens/src/internal/filter/allowlist.go
package filter

import (
	"strings"

	"loglens/src/internal/core"
)

// AllowList admits records by level and source. An empty list admits everything.
type AllowList struct {
	levels  []string
	sources map[string]struct{}
}

// NewAllowList builds an allow-list. Levels compare case-insensitively,
// sources exactly.
func NewAllowList(levels, sources []string) *AllowList {
	a := &AllowList{
		levels: append([]string(nil), levels...),
	}
	if len(sources) > 0 {
		a.sources = make(map[string]struct{}, len(sources))
		for _, s := range sources {
			a.sources[s] = struct{}{}
		}
	}
	return a
}

// Apply reports whether the record passes both lists
func (a *AllowList) Apply(rec core.LogRecord) bool {
	return a.levelAllowed(rec.Level) && a.sourceAllowed(rec.Source)
}

// Empty reports whether the allow-list restricts nothing
func (a *AllowList) Empty() bool {
	return len(a.levels) == 0 && len(a.sources) == 0
}

func (a *AllowList) levelAllowed(level string) bool {
	if len(a.levels) == 0 {
		return true
	}
	for _, l := range a.levels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

func (a *AllowList) sourceAllowed(source string) bool {
	if len(a.sources) == 0 {
		return true
	}
	_, ok := a.sources[source]
	return ok
}

// SplitList splits a comma separated flag value, dropping empty entries
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
