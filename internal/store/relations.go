package store

import "github.com/mmcdole/muse/internal/domain"

// Relations holds the owner→related-ids collections (artist→albums,
// artist/composer/genre→tracks). Each owner's list is replaced wholesale.
type Relations struct {
	kinds map[domain.RelationKind]map[int64][]int64
}

// NewRelations creates empty relation collections
func NewRelations() *Relations {
	return &Relations{kinds: make(map[domain.RelationKind]map[int64][]int64)}
}

// Replace overwrites the related ids of every listed owner
func (r *Relations) Replace(kind domain.RelationKind, entries []domain.Relation) {
	m, ok := r.kinds[kind]
	if !ok {
		m = make(map[int64][]int64)
		r.kinds[kind] = m
	}
	for _, e := range entries {
		ids := make([]int64, len(e.IDs))
		copy(ids, e.IDs)
		m[e.ID] = ids
	}
}

// Get returns the related ids of owner id
func (r *Relations) Get(kind domain.RelationKind, id int64) ([]int64, bool) {
	ids, ok := r.kinds[kind][id]
	return ids, ok
}

// OwnerOf returns the lowest owner id whose related ids contain id
func (r *Relations) OwnerOf(kind domain.RelationKind, id int64) (int64, bool) {
	var (
		owner int64
		found bool
	)
	for o, ids := range r.kinds[kind] {
		if found && o >= owner {
			continue
		}
		for _, v := range ids {
			if v == id {
				owner, found = o, true
				break
			}
		}
	}
	return owner, found
}
