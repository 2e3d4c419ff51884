package search

import (
	"testing"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sent []domain.Request
}

func (r *recorder) Send(req domain.Request) { r.sent = append(r.sent, req) }

func newLibrary() *store.Library {
	lib := store.NewLibrary()
	lib.Entities.Albums.Upsert([]domain.Album{
		{ID: 1, Name: "Blue Train"},
		{ID: 2, Name: "Kind of Blue"},
		{ID: 3, Name: "Giant Steps"},
	})
	lib.Entities.Artists.Upsert([]domain.Artist{
		{ID: 10, Name: "John Coltrane"},
		{ID: 11, Name: "Miles Davis"},
	})
	return lib
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestFilterIndex(t *testing.T) {
	idx := BuildIndex(newLibrary().Entities, []domain.DataType{domain.DataTypeAlbum, domain.DataTypeArtist})
	require.Equal(t, 5, idx.Len())

	matches := idx.Filter("blue")
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, domain.DataTypeAlbum, m.Type)
		assert.Contains(t, m.Name, "Blue")
	}

	assert.Nil(t, idx.Filter("   "))
	assert.Empty(t, idx.Filter("zzzz"))
}

func TestFilterIndex_RestrictedTypes(t *testing.T) {
	idx := BuildIndex(newLibrary().Entities, []domain.DataType{domain.DataTypeArtist})
	assert.Equal(t, 2, idx.Len())
	assert.Empty(t, idx.Filter("blue"))
}

func TestRank(t *testing.T) {
	lookup := map[int64]string{1: "Blue Train", 2: "Kind of Blue", 3: "blue", 4: "Giant Steps"}
	name := func(id int64) string { return lookup[id] }

	got := Rank("blue", []int64{4, 2, 1, 3}, name)

	assert.Equal(t, []int64{3, 1, 2, 4}, got)
	assert.Equal(t, []int64{4, 2}, Rank("", []int64{4, 2}, name))
}

func TestService_LocalUntilBackendAnswers(t *testing.T) {
	lib := newLibrary()
	counters := state.NewCounters()
	req := &recorder{}
	svc := NewService(lib, counters, req, nil)

	types := []domain.DataType{domain.DataTypeAlbum}
	svc.Query("blue", types)

	require.Len(t, req.sent, 1)
	assert.Equal(t, domain.Search{Term: "blue", Types: types}, req.sent[0])
	assert.True(t, svc.Pending())
	assert.ElementsMatch(t, []string{"Blue Train", "Kind of Blue"}, names(svc.Results(domain.DataTypeAlbum)))

	lib.Search = domain.SearchResults{Albums: []int64{2, 1, 99}}
	counters.Bump(domain.FieldSearch)

	assert.False(t, svc.Pending())
	assert.Equal(t, []string{"Kind of Blue", "Blue Train"}, names(svc.Results(domain.DataTypeAlbum)))
}

func TestService_LateReplyForEarlierTermKeepsPending(t *testing.T) {
	lib := newLibrary()
	counters := state.NewCounters()
	svc := NewService(lib, counters, &recorder{}, nil)
	types := []domain.DataType{domain.DataTypeAlbum}

	svc.Query("blue", types)
	svc.Query("kind", types)

	// answer to "blue"
	lib.Search = domain.SearchResults{Albums: []int64{1, 2}}
	counters.Bump(domain.FieldSearch)
	assert.True(t, svc.Pending())
	assert.Equal(t, []string{"Kind of Blue"}, names(svc.Results(domain.DataTypeAlbum)))

	// answer to "kind"
	lib.Search = domain.SearchResults{Albums: []int64{2}}
	counters.Bump(domain.FieldSearch)
	assert.False(t, svc.Pending())
	assert.Equal(t, []string{"Kind of Blue"}, names(svc.Results(domain.DataTypeAlbum)))

	// a later query waits for its own reply
	svc.Query("blue", types)
	assert.True(t, svc.Pending())
}

func TestService_EmptyTerm(t *testing.T) {
	req := &recorder{}
	svc := NewService(newLibrary(), state.NewCounters(), req, nil)

	svc.Query("  ", nil)

	assert.Empty(t, req.sent)
	assert.False(t, svc.Pending())
	assert.Nil(t, svc.Results(domain.DataTypeAlbum))
}
