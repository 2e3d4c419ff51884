package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/store"
)

// ErrPlaylistFull is returned when tracks would push a playlist past its limit
var ErrPlaylistFull = errors.New("playlist full")

// PlaylistService creates and edits playlists
type PlaylistService struct {
	library   *store.Library
	requester domain.Requester
	logger    *slog.Logger
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService(library *store.Library, requester domain.Requester, logger *slog.Logger) *PlaylistService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaylistService{
		library:   library,
		requester: requester,
		logger:    logger,
	}
}

// CreatePlaylist creates a playlist holding trackIDs
func (s *PlaylistService) CreatePlaylist(name, description string, trackIDs []int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("create playlist: empty name")
	}
	if len(trackIDs) > domain.MaxPlaylistTracks {
		return fmt.Errorf("create playlist %q: %d tracks: %w", name, len(trackIDs), ErrPlaylistFull)
	}
	s.requester.Send(domain.NewPlaylist{Playlist: domain.Playlist{
		Name:        name,
		Description: description,
		Tracks:      append([]int64{}, trackIDs...),
	}})
	return nil
}

// AddToPlaylist appends trackIDs to an existing playlist
func (s *PlaylistService) AddToPlaylist(playlistID int64, trackIDs []int64) error {
	p, ok := s.library.Entities.Playlists.Get(playlistID)
	if !ok {
		return fmt.Errorf("add to playlist %d: not loaded", playlistID)
	}
	if !p.CanAdd(len(trackIDs)) {
		return fmt.Errorf("add %d tracks to %q: %w", len(trackIDs), p.Name, ErrPlaylistFull)
	}

	tracks := make([]int64, 0, len(p.Tracks)+len(trackIDs))
	tracks = append(tracks, p.Tracks...)
	tracks = append(tracks, trackIDs...)
	p.Tracks = tracks

	s.logger.Info("adding to playlist", "playlist", p.Name, "count", len(trackIDs))
	s.requester.Send(domain.UpdatePlaylist{Playlist: p})
	return nil
}

// RemoveFromPlaylist drops every occurrence of trackID
func (s *PlaylistService) RemoveFromPlaylist(playlistID, trackID int64) error {
	p, ok := s.library.Entities.Playlists.Get(playlistID)
	if !ok {
		return fmt.Errorf("remove from playlist %d: not loaded", playlistID)
	}
	tracks := make([]int64, 0, len(p.Tracks))
	for _, id := range p.Tracks {
		if id != trackID {
			tracks = append(tracks, id)
		}
	}
	p.Tracks = tracks
	s.requester.Send(domain.UpdatePlaylist{Playlist: p})
	return nil
}

// UpdatePlaylist submits an edited playlist
func (s *PlaylistService) UpdatePlaylist(p domain.Playlist) error {
	if len(p.Tracks) > domain.MaxPlaylistTracks {
		return fmt.Errorf("update playlist %q: %w", p.Name, ErrPlaylistFull)
	}
	s.requester.Send(domain.UpdatePlaylist{Playlist: p})
	return nil
}
