package journal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndReplay_PreservesOrder(t *testing.T) {
	j := openTemp(t)
	rec, err := j.NewSession(time.Now())
	require.NoError(t, err)

	volume := 30
	events := []domain.PushEvent{
		domain.ConfigStateEvent{Config: domain.ConfigState{StartupView: domain.ViewAlbums}},
		domain.DataEvent{Payload: domain.DataPayload{
			Tracks:      []domain.Track{{ID: 1, Name: "One"}},
			TracksOrder: &domain.OrderPair{Spec: domain.SortSpec{domain.OrderByName}, IDs: []int64{1}},
		}},
		domain.AudioStateEvent{Payload: domain.AudioStatePayload{Volume: &volume}},
	}
	for _, ev := range events {
		require.NoError(t, rec.Record(ev))
	}

	var got []domain.PushEvent
	require.NoError(t, j.Replay(rec.ID(), func(ev domain.PushEvent) error {
		got = append(got, ev)
		return nil
	}))

	assert.Equal(t, events, got)
}

func TestSessions(t *testing.T) {
	j := openTemp(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	second, err := j.NewSession(base.Add(time.Hour))
	require.NoError(t, err)
	first, err := j.NewSession(base)
	require.NoError(t, err)
	require.NoError(t, first.Record(domain.DBStateEvent{}))
	require.NoError(t, first.Record(domain.DBStateEvent{}))

	sessions, err := j.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID(), sessions[0].ID)
	assert.Equal(t, uint64(2), sessions[0].Events)
	assert.Equal(t, second.ID(), sessions[1].ID)
	assert.Zero(t, sessions[1].Events)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestReplay_UnknownSession(t *testing.T) {
	j := openTemp(t)
	err := j.Replay("missing", func(domain.PushEvent) error { return nil })
	assert.ErrorIs(t, err, domain.ErrJournalNotFound)
}

func TestReplay_StopsOnCallbackError(t *testing.T) {
	j := openTemp(t)
	rec, err := j.NewSession(time.Now())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, rec.Record(domain.DBStateEvent{}))
	}

	stop := errors.New("stop")
	calls := 0
	err = j.Replay(rec.ID(), func(domain.PushEvent) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestDelete(t *testing.T) {
	j := openTemp(t)
	rec, err := j.NewSession(time.Now())
	require.NoError(t, err)

	require.NoError(t, j.Delete(rec.ID()))
	assert.ErrorIs(t, j.Delete(rec.ID()), domain.ErrJournalNotFound)

	sessions, err := j.Sessions()
	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.ErrorIs(t, rec.Record(domain.DBStateEvent{}), domain.ErrJournalNotFound)
}

func TestReopenKeepsSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	rec, err := j.NewSession(time.Now())
	require.NoError(t, err)
	require.NoError(t, rec.Record(domain.DBStateEvent{}))
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	calls := 0
	require.NoError(t, j.Replay(rec.ID(), func(domain.PushEvent) error { calls++; return nil }))
	assert.Equal(t, 1, calls)
}
