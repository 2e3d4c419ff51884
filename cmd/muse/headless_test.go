package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/muse/internal/adapter"
	"github.com/mmcdole/muse/internal/app"
	"github.com/mmcdole/muse/internal/backend"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/journal"
	"github.com/mmcdole/muse/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayHeadless(t *testing.T) {
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	rec, err := j.NewSession(time.Now())
	require.NoError(t, err)
	require.NoError(t, rec.Record(domain.ConfigStateEvent{Config: domain.ConfigState{StartupView: domain.ViewTracks}}))
	require.NoError(t, rec.Record(domain.DataEvent{Payload: domain.DataPayload{
		Tracks: []domain.Track{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}},
		Albums: []domain.Album{{ID: 9, Name: "Nine"}},
	}}))

	events, errFn := replayEvents(context.Background(), j, rec.ID())
	a := app.New(app.Options{Requester: backend.Discard, AlbumColumns: 2})

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), a, tui.Source{Events: events, Err: errFn}, &out))

	assert.Equal(t, uint64(2), a.Events())
	assert.Contains(t, out.String(), "tracks")
	assert.Regexp(t, `tracks\s+2`, out.String())
	assert.Regexp(t, `view\s+tracks`, out.String())
}

func TestReplayUnknownSession(t *testing.T) {
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	events, errFn := replayEvents(context.Background(), j, "missing")
	a := app.New(app.Options{Requester: backend.Discard})

	var out bytes.Buffer
	err = runHeadless(context.Background(), a, tui.Source{Events: events, Err: errFn}, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrJournalNotFound))
}

func TestHeadlessStopsOnCancel(t *testing.T) {
	// A live backend never closes its stream on its own
	events := make(chan domain.PushEvent)
	a := app.New(app.Options{Requester: backend.Discard})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runHeadless(ctx, a, tui.Source{Events: events, Err: func() error { return nil }}, &out)
	require.NoError(t, err)
	assert.Regexp(t, `events\s+0`, out.String())
}

func TestWriteSummarySortsCounters(t *testing.T) {
	var out bytes.Buffer
	writeSummary(&out, app.Summary{
		Events: 3,
		View:   "albums",
		Counters: map[domain.Field]uint64{
			domain.FieldTracks: 1,
			domain.FieldAlbums: 2,
		},
	})

	s := out.String()
	assert.Less(t, bytes.Index([]byte(s), []byte("counter albums")), bytes.Index([]byte(s), []byte("counter tracks")))
}

func TestSeedTheme(t *testing.T) {
	a := app.New(app.Options{Requester: backend.Discard})
	seedTheme(a, "light")
	assert.Equal(t, domain.ThemeLight, a.Session.Config.Theme)

	seedTheme(a, "default")
	assert.Equal(t, domain.ThemeLight, a.Session.Config.Theme)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	opts := &options{configPath: path}

	cmd := configInitCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	// A second run refuses to overwrite
	again := configInitCmd(opts)
	again.SetArgs([]string{})
	again.SetOut(&out)
	again.SetErr(&out)
	require.Error(t, again.Execute())

	cfg, err := adapter.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, adapter.DefaultConfig().Backend.Command, cfg.Backend.Command)
}
