// Package app wires the client state, ingest pipeline and services into
// one unit driven by a backend connection.
package app

import (
	"log/slog"
	"time"

	"github.com/mmcdole/muse/internal/contextmenu"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/ingest"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/router"
	"github.com/mmcdole/muse/internal/search"
	"github.com/mmcdole/muse/internal/sections"
	"github.com/mmcdole/muse/internal/service"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/store"
)

// Recorder persists inbound events
type Recorder interface {
	Record(ev domain.PushEvent) error
}

// Options configures an App
type Options struct {
	Requester    domain.Requester
	AlbumColumns int
	Recorder     Recorder // optional
	Now          func() time.Time
	Logger       *slog.Logger
}

// App is one client session
type App struct {
	Library  *store.Library
	Session  *state.Session
	Sections *sections.Materializer
	Overlays *overlay.Stack

	Pipeline *ingest.Pipeline
	Router   *router.Router
	Menu     *contextmenu.Dispatcher
	Search   *search.Service

	LibrarySvc  *service.LibraryService
	PlaybackSvc *service.PlaybackService
	PlaylistSvc *service.PlaylistService
	ConfigSvc   *service.ConfigService

	recorder Recorder
	logger   *slog.Logger
	events   uint64
}

// New builds an App with empty mirrors
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	req := opts.Requester

	lib := store.NewLibrary()
	session := state.NewSession()
	mat := sections.NewMaterializer(opts.AlbumColumns, opts.Now, logger.With("component", "sections"))
	stack := overlay.NewStack()
	playback := service.NewPlaybackService(session, req, logger)

	return &App{
		Library:  lib,
		Session:  session,
		Sections: mat,
		Overlays: stack,

		Pipeline: ingest.NewPipeline(lib, session, mat, req, logger.With("component", "ingest")),
		Router:   router.New(stack, playback, logger),
		Menu:     contextmenu.NewDispatcher(lib, session, stack, req, logger),
		Search:   search.NewService(lib, session.Counters, req, logger),

		LibrarySvc:  service.NewLibraryService(lib, session, req, logger),
		PlaybackSvc: playback,
		PlaylistSvc: service.NewPlaylistService(lib, req, logger),
		ConfigSvc:   service.NewConfigService(session, req, logger),

		recorder: opts.Recorder,
		logger:   logger,
	}
}

// Start issues the one-time init requests to both backend subsystems
func (a *App) Start() {
	a.PlaybackSvc.Init()
	a.LibrarySvc.Init()
	a.ConfigSvc.Get()
}

// Handle records ev when recording, then applies it. A recording failure
// is logged and does not stop the event from being applied. When the
// event switched screens, the new screen's order is requested.
func (a *App) Handle(ev domain.PushEvent) {
	if a.recorder != nil {
		if err := a.recorder.Record(ev); err != nil {
			a.logger.Error("failed to record event", "event", ev.Name(), "error", err)
		}
	}
	a.events++
	before := a.Session.View.View
	a.Pipeline.Handle(ev)
	if after := a.Session.View.View; after != before {
		a.LibrarySvc.RefreshView()
	}
}

// Events returns how many events have been handled
func (a *App) Events() uint64 { return a.events }

// OpenView switches to view and requests its order
func (a *App) OpenView(view domain.ActiveView) {
	a.Session.View.View = view
	a.LibrarySvc.RefreshView()
}

// Summary is a snapshot of the mirrored library for headless runs
type Summary struct {
	Events    uint64
	View      string
	Tracks    int
	Albums    int
	Artists   int
	Composers int
	Genres    int
	Playlists int
	Covers    int
	Sections  int
	Counters  map[domain.Field]uint64
}

// Summary reports what the session has mirrored so far
func (a *App) Summary() Summary {
	ents := a.Library.Entities
	return Summary{
		Events:    a.events,
		View:      a.Session.View.View.String(),
		Tracks:    ents.Tracks.Len(),
		Albums:    ents.Albums.Len(),
		Artists:   ents.Artists.Len(),
		Composers: ents.Composers.Len(),
		Genres:    ents.Genres.Len(),
		Playlists: ents.Playlists.Len(),
		Covers:    ents.Covers.Len(),
		Sections:  len(a.Sections.Sections()),
		Counters:  a.Session.Counters.Snapshot(),
	}
}
