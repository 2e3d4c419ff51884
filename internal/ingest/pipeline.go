// Package ingest applies backend push events to the client mirrors.
package ingest

import (
	"log/slog"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/sections"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/store"
)

// Status is the pipeline's processing state
type Status int

const (
	StatusIdle Status = iota
	StatusProcessing
)

// Pipeline consumes push events strictly one at a time, in arrival order.
// An event delivered while another is being applied (for example by a
// requester that answers synchronously) is queued and applied afterwards.
type Pipeline struct {
	library   *store.Library
	session   *state.Session
	sections  *sections.Materializer
	requester domain.Requester
	logger    *slog.Logger

	status  Status
	pending []domain.PushEvent
}

// NewPipeline wires the pipeline to the mirrors it mutates
func NewPipeline(
	library *store.Library,
	session *state.Session,
	materializer *sections.Materializer,
	requester domain.Requester,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		library:   library,
		session:   session,
		sections:  materializer,
		requester: requester,
		logger:    logger,
	}
}

// Status reports whether an event is being applied
func (p *Pipeline) Status() Status { return p.status }

// Handle applies ev and any events queued while it was being applied
func (p *Pipeline) Handle(ev domain.PushEvent) {
	p.pending = append(p.pending, ev)
	if p.status == StatusProcessing {
		return
	}

	p.status = StatusProcessing
	for len(p.pending) > 0 {
		next := p.pending[0]
		p.pending = p.pending[1:]
		p.dispatch(next)
	}
	p.pending = nil
	p.status = StatusIdle
}

func (p *Pipeline) dispatch(ev domain.PushEvent) {
	switch e := ev.(type) {
	case domain.DataEvent:
		p.handleData(e.Payload)
	case domain.ConfigStateEvent:
		p.handleConfig(e.Config)
	case domain.DBStateEvent:
		p.handleDBState(e.Payload)
	case domain.AudioStateEvent:
		p.handleAudioState(e.Payload)
	case domain.BackendMessageEvent:
		p.handleBackendMessage(e.Payload)
	default:
		p.logger.Warn("ignoring unknown push event", "type", ev)
	}
}

func (p *Pipeline) handleData(payload domain.DataPayload) {
	// The config reply can race ahead of the listener at startup, so the
	// first data event asks for it again until it lands.
	if !p.session.ReceivedConfig && p.requester != nil {
		p.requester.Send(domain.GetConfig{})
	}

	// A field bumps once per event even when several updates touch it.
	touched := make(map[domain.Field]bool)
	var fields []string
	for _, u := range payload.Updates() {
		p.apply(u)
		if f := u.Field(); !touched[f] {
			touched[f] = true
			p.session.Counters.Bump(f)
			fields = append(fields, string(f))
		}
	}
	p.session.Counters.Bump(domain.FieldData)

	p.logger.Debug("applied data event", "fields", fields)
}

func (p *Pipeline) apply(u domain.FieldUpdate) {
	lib := p.library
	switch u := u.(type) {
	case domain.QueueUpdate:
		lib.Queue = u.IDs
	case domain.TracksUpdate:
		lib.Entities.Tracks.Upsert(u.Tracks)
	case domain.AlbumsUpdate:
		lib.Entities.Albums.Upsert(u.Albums)
	case domain.ArtistsUpdate:
		lib.Entities.Artists.Upsert(u.Artists)
	case domain.ComposersUpdate:
		lib.Entities.Composers.Upsert(u.Composers)
	case domain.GenresUpdate:
		lib.Entities.Genres.Upsert(u.Genres)
	case domain.PlaylistsUpdate:
		lib.Entities.Playlists.Upsert(u.Playlists)
	case domain.CoversUpdate:
		lib.Entities.Covers.Upsert(u.Covers)
		received := make([]int64, len(u.Covers))
		for i, c := range u.Covers {
			received[i] = c.ID
		}
		p.session.Covers.Reconcile(received)
	case domain.SearchUpdate:
		lib.Search = u.Results
	case domain.SpaceTimeUpdate:
		lib.SpaceTime = u.Stats
	case domain.RelationUpdate:
		lib.Relations.Replace(u.Kind, u.Entries)
	case domain.OrderUpdate:
		p.applyOrder(u)
	}
}

func (p *Pipeline) applyOrder(u domain.OrderUpdate) {
	p.library.Orders.Replace(u.Type, u.Pair.Spec, u.Pair.IDs)

	if u.Type == domain.DataTypeAlbum && u.Pair.Spec.IsAddedDateDescending() && p.sections != nil {
		p.sections.Rebuild(p.library.Orders.IDs(domain.DataTypeAlbum), p.library.Entities.Albums)
		p.session.Counters.Bump(domain.FieldSections)
	}

	if p.session.View.Displays(u.Type) {
		p.session.View.Republish(u.Pair.Spec)
		p.session.Counters.Bump(domain.FieldOrder)
		p.logger.Debug("republished order",
			"type", u.Type,
			"view", p.session.View.View.String(),
			"order", u.Pair.Spec)
	}
}

func (p *Pipeline) handleConfig(cfg domain.ConfigState) {
	s := p.session
	s.Config = cfg
	s.CustomColorsBackup = cfg.CustomColors
	s.Counters.Bump(domain.FieldConfig)

	switch {
	case cfg.IsNew:
		s.View.View = domain.ActiveViewFirst
	case !s.ReceivedConfig:
		s.ReceivedConfig = true
		s.View.View = domain.ActiveViewFor(cfg.StartupView)
		p.logger.Info("selected startup view", "view", s.View.View.String())
	}
}

func (p *Pipeline) handleDBState(payload domain.DBStatePayload) {
	db := &p.session.DB
	setCount := func(dst *int64, src *int64) {
		if src != nil && *src != 0 {
			*dst = *src
		}
	}
	setCount(&db.TracksMax, payload.TracksMax)
	setCount(&db.AlbumsMax, payload.AlbumsMax)
	setCount(&db.ArtistsMax, payload.ArtistsMax)
	setCount(&db.GenresMax, payload.GenresMax)
	setCount(&db.PlaylistsMax, payload.PlaylistsMax)
	if payload.MediaPath != nil && *payload.MediaPath != "" {
		db.MediaPath = *payload.MediaPath
	}
	p.session.Counters.Bump(domain.FieldDB)
}

func (p *Pipeline) handleAudioState(payload domain.AudioStatePayload) {
	a := &p.session.Audio
	if payload.IsPlaying != nil {
		a.IsPlaying = *payload.IsPlaying
	}
	if payload.IsMuted != nil {
		a.IsMuted = *payload.IsMuted
	}
	if payload.Volume != nil && *payload.Volume >= 0 {
		a.Volume = *payload.Volume
	}
	if payload.Output != nil {
		a.Output = *payload.Output
	}
	if payload.Position != nil {
		a.Position = *payload.Position
	}
	if payload.ShuffleMode != nil {
		a.ShuffleMode = *payload.ShuffleMode
	}
	if payload.RepeatMode != nil {
		a.RepeatMode = *payload.RepeatMode
	}
	if payload.CurrentTrack != nil {
		a.CurrentTrack = *payload.CurrentTrack
	}
	if payload.Queue != nil {
		a.Queue = payload.Queue
	}
	if payload.History != nil {
		a.History = payload.History
	}
	p.session.Counters.Bump(domain.FieldAudio)
}

func (p *Pipeline) handleBackendMessage(msg domain.BackendMessagePayload) {
	s := p.session
	if msg.Notification != nil {
		s.Notice = state.NotificationState{Visible: true, Notification: *msg.Notification}
	}
	if msg.Error != nil {
		s.LastError = *msg.Error
		p.logger.Warn("backend reported error", "error", *msg.Error)
	}
	if msg.Warning != nil {
		s.LastWarning = *msg.Warning
		p.logger.Warn("backend reported warning", "warning", *msg.Warning)
	}
	if msg.Progress != nil {
		s.Progress = state.ProgressState{Active: true, Data: *msg.Progress}
	}
	s.Counters.Bump(domain.FieldMessages)
}
