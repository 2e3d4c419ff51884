package store

import "github.com/mmcdole/muse/internal/domain"

// Library bundles everything the data push event can touch
type Library struct {
	Entities  *EntityStore
	Orders    *OrderIndex
	Relations *Relations

	Queue     []int64
	Search    domain.SearchResults
	SpaceTime domain.SpaceTime
}

// NewLibrary creates an empty library mirror
func NewLibrary() *Library {
	return &Library{
		Entities:  NewEntityStore(),
		Orders:    NewOrderIndex(),
		Relations: NewRelations(),
	}
}

// OrderedNames resolves the order index for t to display names, skipping ids
// that have not arrived yet
func (l *Library) OrderedNames(t domain.DataType) (ids []int64, names []string) {
	for _, id := range l.Orders.IDs(t) {
		if _, ok := l.Entities.Get(t, id); !ok {
			continue
		}
		ids = append(ids, id)
		names = append(names, l.Entities.Name(t, id))
	}
	return ids, names
}
