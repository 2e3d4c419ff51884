// Package search backs the search overlay: a local fuzzy quick-filter over
// mirrored names, replaced by backend hits once they arrive.
package search

import (
	"log/slog"
	"strings"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/store"
)

// Service runs searches for the overlay
type Service struct {
	library   *store.Library
	counters  *state.Counters
	requester domain.Requester
	logger    *slog.Logger

	term     string
	types    []domain.DataType
	local    []Match
	awaiting uint64 // search counter value once every sent query is answered
}

// NewService creates a new search service
func NewService(
	library *store.Library,
	counters *state.Counters,
	requester domain.Requester,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		library:   library,
		counters:  counters,
		requester: requester,
		logger:    logger,
	}
}

// Query filters locally and asks the backend for term. An empty term
// clears the results without a request.
func (s *Service) Query(term string, types []domain.DataType) {
	s.term = strings.TrimSpace(term)
	s.types = append([]domain.DataType(nil), types...)
	s.local = nil
	if s.term == "" {
		return
	}

	s.local = BuildIndex(s.library.Entities, s.types).Filter(s.term)
	// Replies carry no term, so a query is answered only once every
	// earlier query has been answered too.
	s.awaiting = max(s.awaiting, s.counters.Get(domain.FieldSearch)) + 1
	s.logger.Debug("searching", "term", s.term, "local", len(s.local))
	s.requester.Send(domain.Search{Term: s.term, Types: s.types})
}

// Term returns the last queried term
func (s *Service) Term() string { return s.term }

// Pending reports whether backend hits for the current term are outstanding
func (s *Service) Pending() bool {
	return s.term != "" && s.counters.Get(domain.FieldSearch) < s.awaiting
}

// Results returns the hits of type t: local matches ranked by name while
// the backend is pending, then the backend's hits in the backend's order.
func (s *Service) Results(t domain.DataType) []Entry {
	if s.term == "" {
		return nil
	}

	ents := s.library.Entities
	name := func(id int64) string { return ents.Name(t, id) }

	if s.Pending() {
		var ids []int64
		for _, m := range s.local {
			if m.Type == t {
				ids = append(ids, m.ID)
			}
		}
		out := make([]Entry, 0, len(ids))
		for _, id := range Rank(s.term, ids, name) {
			out = append(out, Entry{Type: t, ID: id, Name: name(id)})
		}
		return out
	}

	ids := s.library.Search.For(t)
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		if _, ok := ents.Get(t, id); !ok {
			continue
		}
		out = append(out, Entry{Type: t, ID: id, Name: name(id)})
	}
	return out
}
