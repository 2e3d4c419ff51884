package domain

import (
	"strings"
	"time"
)

// DataType distinguishes the entity kinds mirrored from the backend
type DataType string

const (
	DataTypeArtist   DataType = "Artist"
	DataTypeComposer DataType = "Composer"
	DataTypeAlbum    DataType = "Album"
	DataTypeCover    DataType = "Cover"
	DataTypeGenre    DataType = "Genre"
	DataTypeTrack    DataType = "Track"
	DataTypeVideo    DataType = "Video"
	DataTypePlaylist DataType = "Playlist"
	DataTypeNone     DataType = "None"
)

// Entity is a flat, immutable record keyed by a backend-assigned id
type Entity interface {
	EntityID() int64
}

// Track is a single audio file in the library
type Track struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ArtistID      int64  `json:"artist_id"`
	AlbumArtistID int64  `json:"album_artist_id"`
	AlbumID       int64  `json:"album_id"`
	GenreID       int64  `json:"genre_id"`
	TotalTime     int64  `json:"total_time"` // milliseconds
	DiscNumber    int    `json:"disc_number"`
	TrackNumber   int    `json:"track_number"`
}

func (t Track) EntityID() int64 { return t.ID }

// Duration returns the track length
func (t Track) Duration() time.Duration {
	return time.Duration(t.TotalTime) * time.Millisecond
}

// Album groups tracks released together
type Album struct {
	ID           int64   `json:"id"`
	ArtistID     int64   `json:"artist_id"`
	Name         string  `json:"name"`
	SortAlbum    string  `json:"sort_album"`
	GenreID      int64   `json:"genre_id"`
	Year         int     `json:"year"`
	ReleaseDate  string  `json:"release_date"`
	DateModified string  `json:"date_modified"`
	DateAdded    string  `json:"date_added"`
	Tracks       []int64 `json:"tracks"`
	CoverID      int64   `json:"cover_id"`
}

func (a Album) EntityID() int64 { return a.ID }

// dateLayouts are the timestamp formats the backend is known to emit.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AddedAt parses DateAdded. ok is false when the field is empty or unparseable.
func (a Album) AddedAt() (t time.Time, ok bool) {
	return parseDate(a.DateAdded)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Cover is an album's artwork, base64 encoded
type Cover struct {
	ID      int64  `json:"id"`
	AlbumID int64  `json:"album_id"`
	Data    string `json:"data"`
}

func (c Cover) EntityID() int64 { return c.ID }

// Artist is a performing artist
type Artist struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	SortArtist string `json:"sort_artist"`
}

func (a Artist) EntityID() int64 { return a.ID }

// Composer is a track's composer
type Composer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c Composer) EntityID() int64 { return c.ID }

// Genre is a musical genre
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (g Genre) EntityID() int64 { return g.ID }

// Named is implemented by entities that carry a display name
type Named interface {
	Entity
	DisplayName() string
}

func (t Track) DisplayName() string    { return t.Name }
func (a Album) DisplayName() string    { return a.Name }
func (a Artist) DisplayName() string   { return a.Name }
func (c Composer) DisplayName() string { return c.Name }
func (g Genre) DisplayName() string    { return g.Name }
func (p Playlist) DisplayName() string { return p.Name }

// Context identifies the entity an action targets
type Context struct {
	ID   int64    `json:"id"`
	Type DataType `json:"type"`
}
