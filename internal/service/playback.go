package service

import (
	"log/slog"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/state"
)

const (
	// VolumeStep is the change applied per volume key press
	VolumeStep = 10
	// SeekStep is the position change per seek key press, in milliseconds
	SeekStep int64 = 10000
)

// PlaybackService issues audio requests relative to the mirrored player state
type PlaybackService struct {
	session   *state.Session
	requester domain.Requester
	logger    *slog.Logger
}

// NewPlaybackService creates a new playback service
func NewPlaybackService(session *state.Session, requester domain.Requester, logger *slog.Logger) *PlaybackService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaybackService{
		session:   session,
		requester: requester,
		logger:    logger,
	}
}

// TogglePlay asks for the opposite of the mirrored play state
func (s *PlaybackService) TogglePlay() {
	s.requester.Send(domain.PlayPause{Play: !s.session.Audio.IsPlaying})
}

// Next skips to the next track
func (s *PlaybackService) Next() { s.requester.Send(domain.Next{}) }

// Prev returns to the previous track
func (s *PlaybackService) Prev() { s.requester.Send(domain.Prev{}) }

// VolumeUp raises the volume by one step, capped at 100
func (s *PlaybackService) VolumeUp() {
	s.SetVolume(s.session.Audio.Volume + VolumeStep)
}

// VolumeDown lowers the volume by one step, floored at 0
func (s *PlaybackService) VolumeDown() {
	s.SetVolume(s.session.Audio.Volume - VolumeStep)
}

// Silence sets the volume to 0
func (s *PlaybackService) Silence() { s.SetVolume(0) }

// SetVolume requests level clamped to [0, 100]
func (s *PlaybackService) SetVolume(level int) {
	level = max(0, min(100, level))
	s.requester.Send(domain.Volume{Level: level})
}

// SeekForward moves the position one step ahead. The upper bound is left
// to the backend.
func (s *PlaybackService) SeekForward() {
	s.requester.Send(domain.Seek{Position: s.session.Audio.Position + SeekStep})
}

// SeekBackward moves the position one step back, not below 0
func (s *PlaybackService) SeekBackward() {
	s.requester.Send(domain.Seek{Position: max(0, s.session.Audio.Position-SeekStep)})
}

// QueueMove submits the reordered queue
func (s *PlaybackService) QueueMove(ids []int64) {
	s.requester.Send(domain.QueueMove{IDs: ids})
}

// SetShuffle turns shuffle on or off
func (s *PlaybackService) SetShuffle(on bool) {
	s.requester.Send(domain.Shuffle{On: on})
}

// CycleRepeat advances none → queue → track → none
func (s *PlaybackService) CycleRepeat() {
	next := domain.RepeatQueue
	switch s.session.Audio.RepeatMode {
	case domain.RepeatQueue:
		next = domain.RepeatTrack
	case domain.RepeatTrack:
		next = domain.RepeatNone
	}
	s.requester.Send(domain.Repeat{Mode: next})
}

// ToggleMute flips the mirrored mute state
func (s *PlaybackService) ToggleMute() {
	s.requester.Send(domain.Mute{Muted: !s.session.Audio.IsMuted})
}

// Init starts the audio subsystem
func (s *PlaybackService) Init() {
	s.logger.Debug("initializing audio backend")
	s.requester.Send(domain.InitAudio{})
}
