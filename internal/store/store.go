package store

import (
	"github.com/mmcdole/muse/internal/domain"
)

// EntityStore is the normalized, per-type mirror of backend entities.
// It is a pure data container: callers pair every upsert with a change
// counter bump. Not safe for concurrent use; the event loop owns it.
type EntityStore struct {
	Tracks    *Table[domain.Track]
	Albums    *Table[domain.Album]
	Artists   *Table[domain.Artist]
	Composers *Table[domain.Composer]
	Genres    *Table[domain.Genre]
	Playlists *Table[domain.Playlist]
	Covers    *Table[domain.Cover]
}

// NewEntityStore creates an empty store
func NewEntityStore() *EntityStore {
	return &EntityStore{
		Tracks:    NewTable[domain.Track](),
		Albums:    NewTable[domain.Album](),
		Artists:   NewTable[domain.Artist](),
		Composers: NewTable[domain.Composer](),
		Genres:    NewTable[domain.Genre](),
		Playlists: NewTable[domain.Playlist](),
		Covers:    NewTable[domain.Cover](),
	}
}

// Get looks up an entity by type and id
func (s *EntityStore) Get(t domain.DataType, id int64) (domain.Entity, bool) {
	switch t {
	case domain.DataTypeTrack:
		return lookup(s.Tracks, id)
	case domain.DataTypeAlbum:
		return lookup(s.Albums, id)
	case domain.DataTypeArtist:
		return lookup(s.Artists, id)
	case domain.DataTypeComposer:
		return lookup(s.Composers, id)
	case domain.DataTypeGenre:
		return lookup(s.Genres, id)
	case domain.DataTypePlaylist:
		return lookup(s.Playlists, id)
	case domain.DataTypeCover:
		return lookup(s.Covers, id)
	default:
		return nil, false
	}
}

func lookup[E domain.Entity](t *Table[E], id int64) (domain.Entity, bool) {
	e, ok := t.Get(id)
	if !ok {
		return nil, false
	}
	return e, true
}

// Name returns an entity's display name, or "" when absent or unnamed
func (s *EntityStore) Name(t domain.DataType, id int64) string {
	e, ok := s.Get(t, id)
	if !ok {
		return ""
	}
	if n, ok := e.(domain.Named); ok {
		return n.DisplayName()
	}
	return ""
}

// Len returns the number of stored entities of one type
func (s *EntityStore) Len(t domain.DataType) int {
	switch t {
	case domain.DataTypeTrack:
		return s.Tracks.Len()
	case domain.DataTypeAlbum:
		return s.Albums.Len()
	case domain.DataTypeArtist:
		return s.Artists.Len()
	case domain.DataTypeComposer:
		return s.Composers.Len()
	case domain.DataTypeGenre:
		return s.Genres.Len()
	case domain.DataTypePlaylist:
		return s.Playlists.Len()
	case domain.DataTypeCover:
		return s.Covers.Len()
	default:
		return 0
	}
}

// IDs returns every stored id of one type
func (s *EntityStore) IDs(t domain.DataType) []int64 {
	switch t {
	case domain.DataTypeTrack:
		return s.Tracks.IDs()
	case domain.DataTypeAlbum:
		return s.Albums.IDs()
	case domain.DataTypeArtist:
		return s.Artists.IDs()
	case domain.DataTypeComposer:
		return s.Composers.IDs()
	case domain.DataTypeGenre:
		return s.Genres.IDs()
	case domain.DataTypePlaylist:
		return s.Playlists.IDs()
	case domain.DataTypeCover:
		return s.Covers.IDs()
	default:
		return nil
	}
}
