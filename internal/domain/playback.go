package domain

// RepeatMode controls what happens at the end of the queue
type RepeatMode string

const (
	RepeatTrack RepeatMode = "RepeatTrack"
	RepeatQueue RepeatMode = "RepeatQueue"
	RepeatNone  RepeatMode = "RepeatNone"
)

// Output is an audio output device
type Output struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AudioStatePayload is a sparse audio_state push event. nil fields are absent.
type AudioStatePayload struct {
	IsPlaying    *bool       `json:"is_playing"`
	IsMuted      *bool       `json:"is_muted"`
	Volume       *int        `json:"volume"`
	Output       *Output     `json:"output"`
	Position     *int64      `json:"position"` // milliseconds
	ShuffleMode  *bool       `json:"shuffle_mode"`
	RepeatMode   *RepeatMode `json:"repeat_mode"`
	CurrentTrack *int64      `json:"current_track"`
	Queue        []int64     `json:"queue"`
	History      []int64     `json:"history"`
}

// DBStatePayload carries aggregate library counts. Zero values are treated as absent.
type DBStatePayload struct {
	TracksMax    *int64  `json:"tracks_max"`
	AlbumsMax    *int64  `json:"albums_max"`
	ArtistsMax   *int64  `json:"artists_max"`
	GenresMax    *int64  `json:"genres_max"`
	PlaylistsMax *int64  `json:"playlists_max"`
	MediaPath    *string `json:"media_path"`
}
