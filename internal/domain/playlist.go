package domain

// MaxPlaylistTracks is the largest playlist the backend accepts
const MaxPlaylistTracks = 1024

// Playlist is a user-curated, ordered list of tracks
type Playlist struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tracks      []int64 `json:"tracks"`
}

func (p Playlist) EntityID() int64 { return p.ID }

// CanAdd reports whether n more tracks fit in the playlist
func (p Playlist) CanAdd(n int) bool {
	return len(p.Tracks)+n <= MaxPlaylistTracks
}

// RelationKind names a relation collection
type RelationKind int

const (
	RelationArtistAlbums RelationKind = iota
	RelationArtistTracks
	RelationComposerTracks
	RelationGenreTracks
)

func (k RelationKind) String() string {
	switch k {
	case RelationArtistAlbums:
		return "artist_albums"
	case RelationArtistTracks:
		return "artist_tracks"
	case RelationComposerTracks:
		return "composer_tracks"
	case RelationGenreTracks:
		return "genre_tracks"
	default:
		return "unknown"
	}
}

// Relation maps one owner id to its ordered related ids
type Relation struct {
	ID  int64
	IDs []int64
}
