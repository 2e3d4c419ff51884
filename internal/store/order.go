package store

import "github.com/mmcdole/muse/internal/domain"

// OrderEntry is the materialized result of the last order requested for one type
type OrderEntry struct {
	Spec domain.SortSpec
	IDs  []int64
}

// OrderIndex holds one OrderEntry per queryable type.
//
// Replace always overwrites: the backend owns collation and filtering, so a
// newly arrived order (even a filtered subset) supersedes whatever was shown.
type OrderIndex struct {
	entries map[domain.DataType]OrderEntry
}

// NewOrderIndex creates an empty index
func NewOrderIndex() *OrderIndex {
	return &OrderIndex{entries: make(map[domain.DataType]OrderEntry)}
}

// Replace overwrites the order for t. Duplicate ids keep their first position.
func (x *OrderIndex) Replace(t domain.DataType, spec domain.SortSpec, ids []int64) {
	x.entries[t] = OrderEntry{
		Spec: spec.Clone(),
		IDs:  dedupe(ids),
	}
}

// Get returns the current order for t
func (x *OrderIndex) Get(t domain.DataType) (OrderEntry, bool) {
	e, ok := x.entries[t]
	return e, ok
}

// IDs returns the ordered ids for t, or nil when no order has arrived
func (x *OrderIndex) IDs(t domain.DataType) []int64 {
	return x.entries[t].IDs
}

// Spec returns the sort specification for t
func (x *OrderIndex) Spec(t domain.DataType) domain.SortSpec {
	return x.entries[t].Spec
}

func dedupe(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
