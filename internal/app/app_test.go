package app

import (
	"errors"
	"testing"
	"time"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requests struct{ sent []domain.Request }

func (r *requests) Send(req domain.Request) { r.sent = append(r.sent, req) }

type memRecorder struct {
	events []domain.PushEvent
	err    error
}

func (m *memRecorder) Record(ev domain.PushEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, ev)
	return nil
}

func newApp(rec Recorder) (*App, *requests) {
	req := &requests{}
	a := New(Options{
		Requester:    req,
		AlbumColumns: 3,
		Recorder:     rec,
		Now:          func() time.Time { return time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC) },
	})
	return a, req
}

func TestApp_StartSendsInitRequests(t *testing.T) {
	a, req := newApp(nil)
	a.Start()

	require.Len(t, req.sent, 3)
	assert.IsType(t, domain.InitAudio{}, req.sent[0])
	assert.IsType(t, domain.InitDB{}, req.sent[1])
	assert.IsType(t, domain.GetConfig{}, req.sent[2])
}

func TestApp_HandleRecordsThenApplies(t *testing.T) {
	rec := &memRecorder{}
	a, _ := newApp(rec)

	a.Handle(domain.DataEvent{Payload: domain.DataPayload{Tracks: []domain.Track{{ID: 7, Name: "Seven"}}}})

	require.Len(t, rec.events, 1)
	assert.Equal(t, uint64(1), a.Events())
	assert.True(t, a.Library.Entities.Tracks.Has(7))
}

func TestApp_RecordFailureStillApplies(t *testing.T) {
	a, _ := newApp(&memRecorder{err: errors.New("disk full")})

	a.Handle(domain.DataEvent{Payload: domain.DataPayload{Tracks: []domain.Track{{ID: 1}}}})

	assert.True(t, a.Library.Entities.Tracks.Has(1))
}

func TestApp_StartupViewRequestsItsOrder(t *testing.T) {
	a, req := newApp(nil)

	a.Handle(domain.ConfigStateEvent{Config: domain.ConfigState{StartupView: domain.ViewAlbums}})

	assert.Equal(t, domain.ActiveViewAlbums, a.Session.View.View)
	require.NotEmpty(t, req.sent)
	last, ok := req.sent[len(req.sent)-1].(domain.GetDataOrder)
	require.True(t, ok)
	assert.Equal(t, domain.DataTypeAlbum, last.Type)
}

func TestApp_SameViewSendsNothing(t *testing.T) {
	a, req := newApp(nil)
	a.Session.View.View = domain.ActiveViewTracks
	a.Session.ReceivedConfig = true

	a.Handle(domain.DataEvent{Payload: domain.DataPayload{Tracks: []domain.Track{{ID: 1}}}})

	assert.Empty(t, req.sent)
}

func TestApp_OpenViewAndSummary(t *testing.T) {
	a, req := newApp(nil)
	a.OpenView(domain.ActiveViewGenres)
	require.Len(t, req.sent, 1)
	assert.Equal(t, domain.DataTypeGenre, req.sent[0].(domain.GetDataOrder).Type)

	a.Handle(domain.DataEvent{Payload: domain.DataPayload{
		Genres: []domain.Genre{{ID: 1, Name: "Jazz"}, {ID: 2, Name: "Rock"}},
		Albums: []domain.Album{{ID: 3, Name: "Blue"}},
	}})

	s := a.Summary()
	assert.Equal(t, "genres", s.View)
	assert.Equal(t, 2, s.Genres)
	assert.Equal(t, 1, s.Albums)
	assert.Equal(t, uint64(1), s.Events)
	assert.Equal(t, uint64(1), s.Counters[domain.FieldGenres])
}
