package store

import (
	"sort"

	"github.com/mmcdole/muse/internal/domain"
)

// Table holds the latest snapshot of every entity of one type, keyed by id.
type Table[E domain.Entity] struct {
	rows map[int64]E
}

// NewTable creates an empty table
func NewTable[E domain.Entity]() *Table[E] {
	return &Table[E]{rows: make(map[int64]E)}
}

// Upsert replaces each listed entity wholesale. Entities not listed are untouched.
func (t *Table[E]) Upsert(entities []E) {
	for _, e := range entities {
		t.rows[e.EntityID()] = e
	}
}

// Get returns the entity with the given id
func (t *Table[E]) Get(id int64) (E, bool) {
	e, ok := t.rows[id]
	return e, ok
}

// Has reports whether id is present
func (t *Table[E]) Has(id int64) bool {
	_, ok := t.rows[id]
	return ok
}

// Len returns the number of stored entities
func (t *Table[E]) Len() int {
	return len(t.rows)
}

// IDs returns every stored id in ascending order
func (t *Table[E]) IDs() []int64 {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Resolve maps ids to entities, skipping ids that are not present yet
func (t *Table[E]) Resolve(ids []int64) []E {
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		if e, ok := t.rows[id]; ok {
			out = append(out, e)
		}
	}
	return out
}
