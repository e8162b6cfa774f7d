package nutrition

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MinSimilarity is the cutoff below which a fuzzy name match is rejected
const MinSimilarity = 0.6

// Table is an in-memory lookup of per-100g nutrient values keyed by
// lowercase ingredient name. A nil or empty table degrades gracefully:
// every lookup misses and callers report estimated results.
type Table struct {
	entries map[string]Facts
}

// NewTable builds a table from name to per-100g facts. Keys are
// lowercased and trimmed.
func NewTable(entries map[string]Facts) *Table {
	normalized := make(map[string]Facts, len(entries))
	for name, facts := range entries {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			normalized[name] = facts
		}
	}
	return &Table{entries: normalized}
}

// Len returns the number of reference entries
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Loaded reports whether the table holds any reference data
func (t *Table) Loaded() bool {
	return t.Len() > 0
}

// Lookup finds the per-100g facts for an ingredient name. It tries an
// exact match first, then the closest fuzzy match at or above
// MinSimilarity. The boolean reports whether anything matched.
func (t *Table) Lookup(name string) (Facts, bool) {
	if t == nil || len(t.entries) == 0 {
		return Facts{}, false
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Facts{}, false
	}

	if facts, ok := t.entries[name]; ok {
		return facts, true
	}

	var (
		best      Facts
		bestScore float64
	)
	for key, facts := range t.entries {
		if score := similarity(name, key); score > bestScore {
			best = facts
			bestScore = score
		}
	}
	if bestScore >= MinSimilarity {
		return best, true
	}
	return Facts{}, false
}

// similarity computes normalized string similarity between 0 and 1
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
