package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Rank orders ids by how well their names match query. Lower scores sort
// first; ties keep the input order.
func Rank(query string, ids []int64, name func(int64) string) []int64 {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(ids) == 0 || query == "" {
		return ids
	}

	type ranked struct {
		id    int64
		score int
	}
	scored := make([]ranked, len(ids))
	for i, id := range ids {
		scored[i] = ranked{id: id, score: matchScore(strings.ToLower(name(id)), query)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score < scored[j].score
	})

	out := make([]int64, len(scored))
	for i, r := range scored {
		out[i] = r.id
	}
	return out
}

// matchScore: lower is better
func matchScore(name, query string) int {
	switch {
	case name == query:
		return 0
	case strings.HasPrefix(name, query):
		return 10
	case strings.Contains(name, query):
		return 50
	case fuzzy.MatchFold(query, name):
		return 75 + fuzzy.RankMatchFold(query, name)
	default:
		return 100 + fuzzy.LevenshteinDistance(query, name)
	}
}
