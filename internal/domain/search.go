package domain

// SearchResults holds backend search hits per entity type
type SearchResults struct {
	Tracks    []int64 `json:"tracks"`
	Albums    []int64 `json:"albums"`
	Genres    []int64 `json:"genres"`
	Artists   []int64 `json:"artists"`
	Composers []int64 `json:"composers"`
	Playlists []int64 `json:"playlists"`
}

// For returns the hits for one type
func (s SearchResults) For(t DataType) []int64 {
	switch t {
	case DataTypeTrack:
		return s.Tracks
	case DataTypeAlbum:
		return s.Albums
	case DataTypeGenre:
		return s.Genres
	case DataTypeArtist:
		return s.Artists
	case DataTypeComposer:
		return s.Composers
	case DataTypePlaylist:
		return s.Playlists
	default:
		return nil
	}
}

// SpaceTime aggregates library size on disk and total play time
type SpaceTime struct {
	Space *int64 `json:"space"`
	Time  *int64 `json:"time"`
}
