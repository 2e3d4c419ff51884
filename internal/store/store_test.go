package store

import (
	"testing"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStore_UpsertReplacesWholesale(t *testing.T) {
	s := NewEntityStore()
	s.Albums.Upsert([]domain.Album{
		{ID: 1, Name: "Blue Train", Year: 1957, CoverID: 9},
		{ID: 2, Name: "Kind of Blue"},
	})

	// Second snapshot omits Year and CoverID: the record is replaced, not patched.
	s.Albums.Upsert([]domain.Album{{ID: 1, Name: "Blue Train (Remaster)"}})

	got, ok := s.Albums.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Blue Train (Remaster)", got.Name)
	assert.Zero(t, got.Year)
	assert.Zero(t, got.CoverID)

	other, ok := s.Albums.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Kind of Blue", other.Name)
	assert.Equal(t, 2, s.Len(domain.DataTypeAlbum))
}

func TestEntityStore_GetByType(t *testing.T) {
	s := NewEntityStore()
	s.Tracks.Upsert([]domain.Track{{ID: 7, Name: "So What"}})

	e, ok := s.Get(domain.DataTypeTrack, 7)
	require.True(t, ok)
	assert.Equal(t, int64(7), e.EntityID())
	assert.Equal(t, "So What", s.Name(domain.DataTypeTrack, 7))

	_, ok = s.Get(domain.DataTypeTrack, 8)
	assert.False(t, ok)
	_, ok = s.Get(domain.DataTypeVideo, 7)
	assert.False(t, ok)
	assert.Equal(t, "", s.Name(domain.DataTypeCover, 7))
}

func TestTable_ResolveSkipsMissing(t *testing.T) {
	tbl := NewTable[domain.Genre]()
	tbl.Upsert([]domain.Genre{{ID: 1, Name: "Jazz"}, {ID: 3, Name: "Blues"}})

	got := tbl.Resolve([]int64{3, 2, 1})
	require.Len(t, got, 2)
	assert.Equal(t, "Blues", got[0].Name)
	assert.Equal(t, "Jazz", got[1].Name)
	assert.Equal(t, []int64{1, 3}, tbl.IDs())
}

func TestOrderIndex_ReplaceIsNonMerging(t *testing.T) {
	x := NewOrderIndex()
	x.Replace(domain.DataTypeAlbum, domain.SortSpec{domain.OrderByName}, []int64{1, 2, 3, 4})
	x.Replace(domain.DataTypeAlbum, domain.SortSpec{domain.OrderByAddedDateInverse}, []int64{4, 2})

	e, ok := x.Get(domain.DataTypeAlbum)
	require.True(t, ok)
	assert.Equal(t, domain.SortSpec{domain.OrderByAddedDateInverse}, e.Spec)
	assert.Equal(t, []int64{4, 2}, e.IDs)

	// Replaying the same result is idempotent.
	x.Replace(domain.DataTypeAlbum, domain.SortSpec{domain.OrderByAddedDateInverse}, []int64{4, 2})
	assert.Equal(t, []int64{4, 2}, x.IDs(domain.DataTypeAlbum))
}

func TestOrderIndex_TypesAreIndependent(t *testing.T) {
	x := NewOrderIndex()
	x.Replace(domain.DataTypeTrack, domain.SortSpec{domain.OrderByTime}, []int64{5})
	x.Replace(domain.DataTypeGenre, domain.SortSpec{domain.OrderByName}, []int64{1, 2})

	assert.Equal(t, []int64{5}, x.IDs(domain.DataTypeTrack))
	assert.Equal(t, domain.SortSpec{domain.OrderByName}, x.Spec(domain.DataTypeGenre))
	assert.Nil(t, x.IDs(domain.DataTypeArtist))
}

func TestOrderIndex_DropsDuplicateIDs(t *testing.T) {
	x := NewOrderIndex()
	x.Replace(domain.DataTypeArtist, domain.SortSpec{domain.OrderByName}, []int64{3, 1, 3, 2, 1})
	assert.Equal(t, []int64{3, 1, 2}, x.IDs(domain.DataTypeArtist))
}

func TestOrderIndex_SpecIsCopied(t *testing.T) {
	x := NewOrderIndex()
	spec := domain.SortSpec{domain.OrderByName}
	x.Replace(domain.DataTypeArtist, spec, nil)
	spec[0] = domain.OrderByTime
	assert.Equal(t, domain.OrderByName, x.Spec(domain.DataTypeArtist).Primary())
}

func TestRelations_ReplacePerOwner(t *testing.T) {
	r := NewRelations()
	r.Replace(domain.RelationArtistAlbums, []domain.Relation{
		{ID: 1, IDs: []int64{10, 11, 12}},
		{ID: 2, IDs: []int64{20}},
	})
	r.Replace(domain.RelationArtistAlbums, []domain.Relation{{ID: 1, IDs: []int64{12}}})

	ids, ok := r.Get(domain.RelationArtistAlbums, 1)
	require.True(t, ok)
	assert.Equal(t, []int64{12}, ids)

	ids, ok = r.Get(domain.RelationArtistAlbums, 2)
	require.True(t, ok)
	assert.Equal(t, []int64{20}, ids)

	_, ok = r.Get(domain.RelationGenreTracks, 1)
	assert.False(t, ok)
}

func TestRelations_OwnerOf(t *testing.T) {
	r := NewRelations()
	r.Replace(domain.RelationComposerTracks, []domain.Relation{
		{ID: 9, IDs: []int64{1, 2}},
		{ID: 4, IDs: []int64{2, 3}},
	})

	owner, ok := r.OwnerOf(domain.RelationComposerTracks, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(4), owner)

	owner, ok = r.OwnerOf(domain.RelationComposerTracks, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(9), owner)

	_, ok = r.OwnerOf(domain.RelationGenreTracks, 1)
	assert.False(t, ok)
}
