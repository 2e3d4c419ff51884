package search

import (
	"strings"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/store"
	"github.com/sahilm/fuzzy"
)

// Entry is one searchable entity name
type Entry struct {
	Type domain.DataType
	ID   int64
	Name string
}

// Match is a local filter hit
type Match struct {
	Entry
	MatchedIndexes []int
	Score          int
}

// FilterIndex implements sahilm/fuzzy.Source over entity names
type FilterIndex struct {
	entries []Entry
	lower   []string
}

// String returns the lowercase name at index i (implements fuzzy.Source)
func (idx *FilterIndex) String(i int) string { return idx.lower[i] }

// Len returns the number of entries (implements fuzzy.Source)
func (idx *FilterIndex) Len() int { return len(idx.entries) }

// BuildIndex snapshots the names of every mirrored entity of the given types
func BuildIndex(entities *store.EntityStore, types []domain.DataType) *FilterIndex {
	idx := &FilterIndex{}
	for _, t := range types {
		for _, id := range entities.IDs(t) {
			name := entities.Name(t, id)
			if name == "" {
				continue
			}
			idx.entries = append(idx.entries, Entry{Type: t, ID: id, Name: name})
			idx.lower = append(idx.lower, strings.ToLower(name))
		}
	}
	return idx
}

// Filter returns entries matching query, best first
func (idx *FilterIndex) Filter(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || idx.Len() == 0 {
		return nil
	}

	found := fuzzy.FindFrom(query, idx)
	out := make([]Match, len(found))
	for i, m := range found {
		out[i] = Match{
			Entry:          idx.entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return out
}
