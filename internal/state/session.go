// Package state holds the client session mirrors observed by the rendering
// layer: configuration, playback, database stats, backend messages, the
// active view and the change counters.
package state

import "github.com/mmcdole/muse/internal/domain"

// AudioState mirrors the backend player
type AudioState struct {
	IsPlaying    bool
	IsMuted      bool
	Volume       int
	Output       domain.Output
	Position     int64 // milliseconds
	ShuffleMode  bool
	RepeatMode   domain.RepeatMode
	CurrentTrack int64
	Queue        []int64
	History      []int64
}

// DBState mirrors aggregate library counts
type DBState struct {
	TracksMax    int64
	AlbumsMax    int64
	ArtistsMax   int64
	GenresMax    int64
	PlaylistsMax int64
	MediaPath    string
}

// NotificationState is the last backend notification and whether it is shown
type NotificationState struct {
	Visible      bool
	Notification domain.Notification
}

// ProgressState is the last reported backend job progress
type ProgressState struct {
	Active bool
	Data   domain.Progress
}

// Session is the per-process client state outside the entity store
type Session struct {
	Config             domain.ConfigState
	CustomColorsBackup domain.ThemeColors
	ReceivedConfig     bool

	View     ViewState
	Audio    AudioState
	DB       DBState
	Notice   NotificationState
	Progress ProgressState

	// Inert slots; surfaced to the user by the rendering layer only
	LastError   string
	LastWarning string

	Counters *Counters
	Covers   *CoverRequests
}

// NewSession creates the state present at process start
func NewSession() *Session {
	return &Session{
		Config: domain.DefaultConfigState(),
		View:   NewViewState(),
		Audio: AudioState{
			Volume:     100,
			RepeatMode: domain.RepeatNone,
		},
		Notice:   NotificationState{Notification: domain.NotificationNone},
		Progress: ProgressState{Data: domain.Progress{Info: domain.ProgressNone}},
		Counters: NewCounters(),
		Covers:   NewCoverRequests(),
	}
}
