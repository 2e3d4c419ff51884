// Package contextmenu resolves and dispatches per-entity context menu actions.
package contextmenu

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/store"
)

var (
	albumActions = []domain.ContextAction{
		domain.ActionPlay,
		domain.ActionPlayRandom,
		domain.ActionPlayNext,
		domain.ActionAddQueue,
		domain.ActionAddPlaylist,
		domain.ActionEdit,
		domain.ActionShowArtist,
		domain.ActionShowAlbum,
		domain.ActionShowGenre,
		domain.ActionExtractCover,
	}
	trackActions = []domain.ContextAction{
		domain.ActionPlay,
		domain.ActionPlayNext,
		domain.ActionAddQueue,
		domain.ActionAddPlaylist,
		domain.ActionEdit,
		domain.ActionOpenPath,
		domain.ActionShowArtist,
		domain.ActionShowComposer,
		domain.ActionShowAlbum,
		domain.ActionShowGenre,
	}
	playlistActions = []domain.ContextAction{
		domain.ActionPlay,
		domain.ActionPlayRandom,
		domain.ActionPlayNext,
		domain.ActionAddQueue,
		domain.ActionAddPlaylist,
		domain.ActionEdit,
		domain.ActionShowPlaylist,
	}
	commonActions = []domain.ContextAction{
		domain.ActionPlay,
		domain.ActionPlayRandom,
		domain.ActionPlayNext,
		domain.ActionAddQueue,
		domain.ActionAddPlaylist,
		domain.ActionEdit,
	}
)

// Actions computes the menu for an entity type. The delete entry depends on
// cfg and is evaluated on every call.
func Actions(t domain.DataType, cfg domain.ConfigState) []domain.ContextAction {
	var base []domain.ContextAction
	switch t {
	case domain.DataTypeAlbum:
		base = albumActions
	case domain.DataTypeTrack:
		base = trackActions
	case domain.DataTypePlaylist:
		base = playlistActions
	case domain.DataTypeArtist, domain.DataTypeComposer, domain.DataTypeGenre:
		base = commonActions
	}

	out := make([]domain.ContextAction, len(base), len(base)+1)
	copy(out, base)
	if cfg.AllowDeleteFromDB {
		out = append(out, domain.ActionDelete)
	}
	return out
}

// Open stamps the target and pointer position into the menu and shows it
func Open(stack *overlay.Stack, cfg domain.ConfigState, target domain.Context, x, y int) {
	stack.Menu = overlay.MenuState{
		Target:   target,
		Actions:  Actions(target.Type, cfg),
		Position: overlay.Point{X: x, Y: y},
	}
	stack.Show(overlay.ContextMenu)
}

// Dispatcher carries out a chosen menu action
type Dispatcher struct {
	library   *store.Library
	session   *state.Session
	stack     *overlay.Stack
	requester domain.Requester
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher over the shared client state
func NewDispatcher(
	library *store.Library,
	session *state.Session,
	stack *overlay.Stack,
	requester domain.Requester,
	logger *slog.Logger,
) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		library:   library,
		session:   session,
		stack:     stack,
		requester: requester,
		logger:    logger,
	}
}

// Dispatch runs action against the menu's current target and closes the menu
func (d *Dispatcher) Dispatch(action domain.ContextAction) error {
	target := d.stack.Menu.Target
	d.stack.Hide(overlay.ContextMenu)

	if !d.allowed(action) {
		return fmt.Errorf("action %s not offered for %s", action, target.Type)
	}
	d.logger.Debug("context action", "action", action, "type", target.Type, "id", target.ID)

	ids := []int64{target.ID}
	switch action {
	case domain.ActionPlay:
		d.requester.Send(domain.Play{Type: target.Type, IDs: ids})
	case domain.ActionPlayRandom:
		d.requester.Send(domain.Shuffle{On: true})
		d.requester.Send(domain.Play{Type: target.Type, IDs: ids})
	case domain.ActionPlayNext:
		// The head of the queue is the playing track.
		var index *int
		if len(d.session.Audio.Queue) > 0 {
			next := 1
			index = &next
		}
		d.requester.Send(domain.QueueInsert{Type: target.Type, IDs: ids, Index: index})
	case domain.ActionAddQueue:
		d.requester.Send(domain.QueueInsert{Type: target.Type, IDs: ids})
	case domain.ActionAddPlaylist:
		d.stack.OpenPlaylistSelect(d.trackIDs(target))
	case domain.ActionEdit:
		d.stack.OpenEdit(target)
	case domain.ActionDelete:
		d.stack.OpenDelete(target)
	case domain.ActionExtractCover:
		d.requester.Send(domain.ExtractCover{AlbumID: target.ID})
	case domain.ActionOpenPath:
		d.requester.Send(domain.OpenContainingDir{Type: target.Type, ID: target.ID})
	case domain.ActionShowArtist, domain.ActionShowComposer, domain.ActionShowAlbum,
		domain.ActionShowGenre, domain.ActionShowPlaylist:
		return d.show(action, target)
	}
	return nil
}

func (d *Dispatcher) allowed(action domain.ContextAction) bool {
	for _, a := range d.stack.Menu.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// trackIDs expands target to the tracks it contains
func (d *Dispatcher) trackIDs(target domain.Context) []int64 {
	ents := d.library.Entities
	switch target.Type {
	case domain.DataTypeTrack:
		return []int64{target.ID}
	case domain.DataTypeAlbum:
		if a, ok := ents.Albums.Get(target.ID); ok {
			return a.Tracks
		}
	case domain.DataTypePlaylist:
		if p, ok := ents.Playlists.Get(target.ID); ok {
			return p.Tracks
		}
	case domain.DataTypeArtist:
		ids, _ := d.library.Relations.Get(domain.RelationArtistTracks, target.ID)
		return ids
	case domain.DataTypeComposer:
		ids, _ := d.library.Relations.Get(domain.RelationComposerTracks, target.ID)
		return ids
	case domain.DataTypeGenre:
		ids, _ := d.library.Relations.Get(domain.RelationGenreTracks, target.ID)
		return ids
	}
	return nil
}

// show navigates to the view of an entity related to target
func (d *Dispatcher) show(action domain.ContextAction, target domain.Context) error {
	ents := d.library.Entities
	var (
		track    domain.Track
		album    domain.Album
		hasTrack bool
		hasAlbum bool
	)
	switch target.Type {
	case domain.DataTypeTrack:
		track, hasTrack = ents.Tracks.Get(target.ID)
		if hasTrack {
			album, hasAlbum = ents.Albums.Get(track.AlbumID)
		}
	case domain.DataTypeAlbum:
		album, hasAlbum = ents.Albums.Get(target.ID)
	}

	view := &d.session.View
	switch {
	case action == domain.ActionShowPlaylist:
		view.Select(domain.ActiveViewPlaylists, domain.DataTypePlaylist, target.ID)
	case action == domain.ActionShowArtist && hasTrack:
		view.Select(domain.ActiveViewArtists, domain.DataTypeArtist, track.ArtistID)
	case action == domain.ActionShowArtist && hasAlbum:
		view.Select(domain.ActiveViewArtists, domain.DataTypeArtist, album.ArtistID)
	case action == domain.ActionShowAlbum && hasAlbum:
		view.Select(domain.ActiveViewAlbums, domain.DataTypeAlbum, album.ID)
	case action == domain.ActionShowGenre && hasTrack:
		view.Select(domain.ActiveViewGenres, domain.DataTypeGenre, track.GenreID)
	case action == domain.ActionShowGenre && hasAlbum:
		view.Select(domain.ActiveViewGenres, domain.DataTypeGenre, album.GenreID)
	case action == domain.ActionShowComposer && hasTrack:
		owner, ok := d.library.Relations.OwnerOf(domain.RelationComposerTracks, track.ID)
		if !ok {
			return fmt.Errorf("no composer known for track %d", track.ID)
		}
		view.Select(domain.ActiveViewComposers, domain.DataTypeComposer, owner)
	default:
		return fmt.Errorf("%s %d not loaded", target.Type, target.ID)
	}
	return nil
}
