package service

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/store"
)

// LibraryService issues database requests against the mirrored library.
// Every method is fire-and-forget: results land later through the ingest
// pipeline.
type LibraryService struct {
	library   *store.Library
	session   *state.Session
	requester domain.Requester
	logger    *slog.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(
	library *store.Library,
	session *state.Session,
	requester domain.Requester,
	logger *slog.Logger,
) *LibraryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LibraryService{
		library:   library,
		session:   session,
		requester: requester,
		logger:    logger,
	}
}

// DefaultOrder is the order requested when the caller gives none
func DefaultOrder(view domain.ActiveView) domain.SortSpec {
	if view == domain.ActiveViewRecents {
		return domain.SortSpec{domain.OrderByAddedDateInverse}
	}
	return domain.SortSpec{domain.OrderByName}
}

// GetDataOrder requests the ordered ids of t. An empty order falls back to
// the active view's default.
func (s *LibraryService) GetDataOrder(t domain.DataType, order domain.SortSpec) {
	if len(order) == 0 {
		order = DefaultOrder(s.session.View.View)
	}
	s.logger.Debug("requesting data order", "type", t, "order", order)
	s.requester.Send(domain.GetDataOrder{Type: t, Order: order.Clone()})
}

// RefreshView requests the order backing the active view
func (s *LibraryService) RefreshView() {
	view := s.session.View.View
	t := domain.DataTypeFor(view)
	if t == domain.DataTypeNone {
		return
	}
	s.GetDataOrder(t, nil)
}

// ToggleOrder flips a column between its two directions. up is requested
// unless it is already active.
func (s *LibraryService) ToggleOrder(up, down domain.Order, t domain.DataType) {
	if s.session.View.Order.Has(up) {
		s.GetDataOrder(t, domain.SortSpec{down})
		return
	}
	s.GetDataOrder(t, domain.SortSpec{up})
}

// GetCover returns the cover when it is mirrored. Otherwise it requests it,
// at most once while a request is outstanding.
func (s *LibraryService) GetCover(id int64) (domain.Cover, bool) {
	if c, ok := s.library.Entities.Covers.Get(id); ok {
		return c, true
	}
	if id != 0 && s.session.Covers.Mark(id) {
		s.requester.Send(domain.GetCoversByID{IDs: []int64{id}})
	}
	return domain.Cover{}, false
}

// Play replaces the queue with ids of type t
func (s *LibraryService) Play(t domain.DataType, ids ...int64) {
	s.requester.Send(domain.Play{Type: t, IDs: ids})
}

// PlayShuffled enables shuffle then plays ids
func (s *LibraryService) PlayShuffled(t domain.DataType, ids ...int64) {
	s.requester.Send(domain.Shuffle{On: true})
	s.requester.Send(domain.Play{Type: t, IDs: ids})
}

// Enqueue appends ids of type t to the play queue, or inserts them at index
func (s *LibraryService) Enqueue(t domain.DataType, index *int, ids ...int64) {
	s.requester.Send(domain.QueueInsert{Type: t, IDs: ids, Index: index})
}

// UpdateTracks submits edited tracks with their free-text relation names.
// The name slices are parallel to tracks.
func (s *LibraryService) UpdateTracks(tracks []domain.Track, artists, albums, genres []string) error {
	n := len(tracks)
	if len(artists) != n || len(albums) != n || len(genres) != n {
		return fmt.Errorf("update tracks: %d tracks but %d/%d/%d names",
			n, len(artists), len(albums), len(genres))
	}
	s.requester.Send(domain.UpdateTracks{
		Tracks:      tracks,
		ArtistNames: artists,
		AlbumNames:  albums,
		GenreNames:  genres,
	})
	return nil
}

// UpdateAlbum submits an edited album
func (s *LibraryService) UpdateAlbum(album domain.Album, artist, genre string) {
	s.requester.Send(domain.UpdateAlbum{Album: album, ArtistName: artist, GenreName: genre})
}

// UpdateArtist submits an edited artist
func (s *LibraryService) UpdateArtist(a domain.Artist) {
	s.requester.Send(domain.UpdateArtist{Artist: a})
}

// UpdateComposer submits an edited composer
func (s *LibraryService) UpdateComposer(c domain.Composer) {
	s.requester.Send(domain.UpdateComposer{Composer: c})
}

// UpdateGenre submits an edited genre
func (s *LibraryService) UpdateGenre(g domain.Genre) {
	s.requester.Send(domain.UpdateGenre{Genre: g})
}

// Delete removes entities from the database, and their files when the
// configuration allows it
func (s *LibraryService) Delete(target domain.Context) error {
	cfg := s.session.Config
	if !cfg.AllowDeleteFromDB {
		return fmt.Errorf("delete %s %d: deleting from the library is disabled", target.Type, target.ID)
	}
	s.logger.Info("deleting", "type", target.Type, "id", target.ID, "files", cfg.AllowDeleteFiles)
	s.requester.Send(domain.DeleteByID{
		Type:        target.Type,
		IDs:         []int64{target.ID},
		DeleteFiles: cfg.AllowDeleteFiles,
	})
	return nil
}

// ImportLibrary imports an exported XML library. Progress arrives as
// backend_message events.
func (s *LibraryService) ImportLibrary(path string) error {
	path = strings.TrimSpace(path)
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return fmt.Errorf("import %q: expected an .xml library export", path)
	}
	s.logger.Info("importing library", "path", path)
	s.requester.Send(domain.ImportLibrary{Path: path})
	return nil
}

// AddToLibrary scans paths into the library, skipping blank entries
func (s *LibraryService) AddToLibrary(paths ...string) {
	var clean []string
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			clean = append(clean, p)
		}
	}
	if len(clean) == 0 {
		return
	}
	s.requester.Send(domain.AddToLibrary{Paths: clean})
}

// Init starts the database subsystem
func (s *LibraryService) Init() {
	s.requester.Send(domain.InitDB{})
}
