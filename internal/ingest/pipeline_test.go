package ingest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/sections"
	"github.com/mmcdole/muse/internal/state"
	"github.com/mmcdole/muse/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

type recorder struct {
	sent []domain.Request
}

func (r *recorder) Send(req domain.Request) { r.sent = append(r.sent, req) }

type fixture struct {
	lib      *store.Library
	session  *state.Session
	mat      *sections.Materializer
	req      *recorder
	pipeline *Pipeline
}

func newFixture() *fixture {
	f := &fixture{
		lib:     store.NewLibrary(),
		session: state.NewSession(),
		mat:     sections.NewMaterializer(4, func() time.Time { return testNow }, nil),
		req:     &recorder{},
	}
	f.pipeline = NewPipeline(f.lib, f.session, f.mat, f.req, nil)
	return f
}

func data(p domain.DataPayload) domain.DataEvent { return domain.DataEvent{Payload: p} }

func ptr[T any](v T) *T { return &v }

func TestPipeline_CounterBumpsOncePerEvent(t *testing.T) {
	f := newFixture()
	tracks := []domain.Track{{ID: 1, Name: "A"}}

	for i := 0; i < 5; i++ {
		f.pipeline.Handle(data(domain.DataPayload{Tracks: tracks}))
	}

	c := f.session.Counters
	assert.Equal(t, uint64(5), c.Get(domain.FieldTracks))
	assert.Equal(t, uint64(5), c.Get(domain.FieldData))
	assert.Zero(t, c.Get(domain.FieldAlbums))
	assert.Equal(t, 1, f.lib.Entities.Tracks.Len())
}

func TestPipeline_EmptySliceIsPresentNullIsAbsent(t *testing.T) {
	f := newFixture()
	f.lib.Queue = []int64{1, 2}

	ev, err := domain.DecodeEvent(domain.EventData, json.RawMessage(`{"queue": null, "tracks": []}`))
	require.NoError(t, err)
	f.pipeline.Handle(ev)

	assert.Equal(t, []int64{1, 2}, f.lib.Queue)
	assert.Zero(t, f.session.Counters.Get(domain.FieldQueue))
	assert.Equal(t, uint64(1), f.session.Counters.Get(domain.FieldTracks))

	ev, err = domain.DecodeEvent(domain.EventData, json.RawMessage(`{"queue": []}`))
	require.NoError(t, err)
	f.pipeline.Handle(ev)
	assert.Empty(t, f.lib.Queue)
	assert.Equal(t, uint64(1), f.session.Counters.Get(domain.FieldQueue))
}

func TestPipeline_AddedDateOrderMaterializesSections(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(data(domain.DataPayload{
		Albums: []domain.Album{
			{ID: 1, DateAdded: testNow.Add(-2 * time.Hour).Format(time.RFC3339)},
			{ID: 2, DateAdded: testNow.Add(-50 * time.Hour).Format(time.RFC3339)},
		},
		AlbumsOrder: &domain.OrderPair{
			Spec: domain.SortSpec{domain.OrderByAddedDateInverse},
			IDs:  []int64{1, 2},
		},
	}))

	require.Len(t, f.mat.Sections(), 2)
	assert.Equal(t, "today", f.mat.Sections()[0].Title)
	assert.Equal(t, "lastweek", f.mat.Sections()[1].Title)
	assert.Len(t, f.mat.Rows(), 4)
	assert.Equal(t, uint64(1), f.session.Counters.Get(domain.FieldSections))
	assert.Equal(t, uint64(1), f.session.Counters.Get(domain.OrderField(domain.DataTypeAlbum)))
}

func TestPipeline_OtherOrdersOnlyUpdateIndex(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(data(domain.DataPayload{
		AlbumsOrder: &domain.OrderPair{Spec: domain.SortSpec{domain.OrderByName}, IDs: []int64{3, 1}},
	}))

	assert.Empty(t, f.mat.Sections())
	assert.Zero(t, f.session.Counters.Get(domain.FieldSections))
	assert.Equal(t, []int64{3, 1}, f.lib.Orders.IDs(domain.DataTypeAlbum))
}

func TestPipeline_RepublishesOrderForActiveView(t *testing.T) {
	f := newFixture()
	f.session.View.View = domain.ActiveViewGenres

	f.pipeline.Handle(data(domain.DataPayload{
		ArtistsOrder: &domain.OrderPair{Spec: domain.SortSpec{domain.OrderByName}, IDs: []int64{1}},
	}))
	assert.Nil(t, f.session.View.Order)
	assert.Zero(t, f.session.Counters.Get(domain.FieldOrder))

	f.pipeline.Handle(data(domain.DataPayload{
		TracksOrder: &domain.OrderPair{Spec: domain.SortSpec{domain.OrderByTimeInverse}, IDs: []int64{9, 8}},
	}))
	assert.Equal(t, domain.SortSpec{domain.OrderByTimeInverse}, f.session.View.Order)
	assert.Equal(t, state.IndicatorUp, f.session.View.Headers.Time)
	assert.Equal(t, uint64(1), f.session.Counters.Get(domain.FieldOrder))
}

func TestPipeline_StartupViewChosenOnce(t *testing.T) {
	f := newFixture()

	f.pipeline.Handle(domain.ConfigStateEvent{Config: domain.ConfigState{StartupView: domain.ViewAlbums}})
	assert.Equal(t, domain.ActiveViewAlbums, f.session.View.View)
	assert.True(t, f.session.ReceivedConfig)

	f.session.View.View = domain.ActiveViewTracks
	f.pipeline.Handle(domain.ConfigStateEvent{Config: domain.ConfigState{
		StartupView:       domain.ViewGenres,
		AllowDeleteFromDB: true,
	}})
	assert.Equal(t, domain.ActiveViewTracks, f.session.View.View)
	assert.True(t, f.session.Config.AllowDeleteFromDB)
	assert.Equal(t, uint64(2), f.session.Counters.Get(domain.FieldConfig))
}

func TestPipeline_NewInstallShowsSetup(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(domain.ConfigStateEvent{Config: domain.ConfigState{IsNew: true, StartupView: domain.ViewAlbums}})

	assert.Equal(t, domain.ActiveViewFirst, f.session.View.View)
	assert.False(t, f.session.ReceivedConfig)
}

func TestPipeline_UnknownStartupViewFallsBackToRecents(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(domain.ConfigStateEvent{Config: domain.ConfigState{StartupView: "Videos"}})
	assert.Equal(t, domain.ActiveViewRecents, f.session.View.View)
}

func TestPipeline_DataRequestsConfigUntilReceived(t *testing.T) {
	f := newFixture()

	f.pipeline.Handle(data(domain.DataPayload{}))
	f.pipeline.Handle(data(domain.DataPayload{}))
	require.Len(t, f.req.sent, 2)
	assert.Equal(t, domain.GetConfig{}, f.req.sent[0])

	f.pipeline.Handle(domain.ConfigStateEvent{Config: domain.ConfigState{}})
	f.pipeline.Handle(data(domain.DataPayload{}))
	assert.Len(t, f.req.sent, 2)
}

func TestPipeline_CoversReconcileOutstanding(t *testing.T) {
	f := newFixture()
	f.session.Covers.Mark(1)
	f.session.Covers.Mark(2)

	f.pipeline.Handle(data(domain.DataPayload{Covers: []domain.Cover{{ID: 1, Data: "aGk="}}}))

	assert.False(t, f.session.Covers.Pending(1))
	assert.True(t, f.session.Covers.Pending(2))
	assert.True(t, f.lib.Entities.Covers.Has(1))
	assert.Equal(t, uint64(1), f.session.Counters.Get(domain.FieldCovers))
}

func TestPipeline_RelationsAndSearch(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(data(domain.DataPayload{
		ArtistAlbums: []domain.ArtistAlbums{{ID: 1, Albums: []int64{5, 6}}},
		GenreTracks:  []domain.OwnerTracks{{ID: 2, Tracks: []int64{7}}},
		Search:       &domain.SearchResults{Albums: []int64{5}},
		SpaceTime:    &domain.SpaceTime{Space: ptr(int64(1024))},
	}))

	ids, ok := f.lib.Relations.Get(domain.RelationArtistAlbums, 1)
	require.True(t, ok)
	assert.Equal(t, []int64{5, 6}, ids)
	ids, ok = f.lib.Relations.Get(domain.RelationGenreTracks, 2)
	require.True(t, ok)
	assert.Equal(t, []int64{7}, ids)
	assert.Equal(t, []int64{5}, f.lib.Search.For(domain.DataTypeAlbum))
	assert.Equal(t, int64(1024), *f.lib.SpaceTime.Space)
	assert.Equal(t, uint64(1), f.session.Counters.Get(domain.FieldRelations))
}

func TestPipeline_DBStateIgnoresZeroes(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(domain.DBStateEvent{Payload: domain.DBStatePayload{
		TracksMax: ptr(int64(120)),
		MediaPath: ptr("/music"),
	}})
	f.pipeline.Handle(domain.DBStateEvent{Payload: domain.DBStatePayload{
		TracksMax: ptr(int64(0)),
		AlbumsMax: ptr(int64(12)),
		MediaPath: ptr(""),
	}})

	assert.Equal(t, int64(120), f.session.DB.TracksMax)
	assert.Equal(t, int64(12), f.session.DB.AlbumsMax)
	assert.Equal(t, "/music", f.session.DB.MediaPath)
}

func TestPipeline_AudioStateSparse(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(domain.AudioStateEvent{Payload: domain.AudioStatePayload{
		IsPlaying: ptr(true),
		Volume:    ptr(40),
		Position:  ptr(int64(5000)),
	}})
	f.pipeline.Handle(domain.AudioStateEvent{Payload: domain.AudioStatePayload{
		Volume: ptr(-1),
	}})

	a := f.session.Audio
	assert.True(t, a.IsPlaying)
	assert.Equal(t, 40, a.Volume)
	assert.Equal(t, int64(5000), a.Position)
	assert.Equal(t, domain.RepeatNone, a.RepeatMode)
}

func TestPipeline_BackendMessageSlots(t *testing.T) {
	f := newFixture()
	f.pipeline.Handle(domain.BackendMessageEvent{Payload: domain.BackendMessagePayload{
		Notification: ptr(domain.NotificationLibraryImport),
		Error:        ptr("disk full"),
		Progress:     &domain.Progress{Info: domain.ProgressCoverExtract, Value: ptr(0.5)},
	}})

	s := f.session
	assert.True(t, s.Notice.Visible)
	assert.Equal(t, domain.NotificationLibraryImport, s.Notice.Notification)
	assert.Equal(t, "disk full", s.LastError)
	assert.True(t, s.Progress.Active)
	assert.Equal(t, domain.ProgressCoverExtract, s.Progress.Data.Info)
}

// echoRequester answers a config request synchronously, from inside Handle.
type echoRequester struct {
	pipeline *Pipeline
	seen     []domain.ActiveView
	session  *state.Session
}

func (e *echoRequester) Send(req domain.Request) {
	if _, ok := req.(domain.GetConfig); ok {
		e.pipeline.Handle(domain.ConfigStateEvent{Config: domain.ConfigState{StartupView: domain.ViewArtists}})
		e.seen = append(e.seen, e.session.View.View)
	}
}

func TestPipeline_ReentrantEventsAreQueued(t *testing.T) {
	lib := store.NewLibrary()
	session := state.NewSession()
	echo := &echoRequester{session: session}
	p := NewPipeline(lib, session, nil, echo, nil)
	echo.pipeline = p

	p.Handle(data(domain.DataPayload{Tracks: []domain.Track{{ID: 1}}}))

	// The config event was not applied while the data event was in flight.
	require.Len(t, echo.seen, 1)
	assert.Equal(t, domain.ActiveViewLoading, echo.seen[0])
	assert.Equal(t, domain.ActiveViewArtists, session.View.View)
	assert.Equal(t, StatusIdle, p.Status())
}
