package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/mmcdole/muse/internal/app"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/journal"
	"github.com/mmcdole/muse/internal/tui"
)

var nowFunc = time.Now

// errReplayDone ends a replayed stream the way io.EOF ends a live one
var errReplayDone = errors.New("replay finished")

// replayEvents streams a recorded session into a channel shaped like a
// live backend connection
func replayEvents(ctx context.Context, j *journal.Journal, id string) (<-chan domain.PushEvent, func() error) {
	events := make(chan domain.PushEvent)
	var (
		mu  sync.Mutex
		err error
	)

	go func() {
		defer close(events)
		replayErr := j.Replay(id, func(ev domain.PushEvent) error {
			select {
			case events <- ev:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if replayErr == nil {
			replayErr = errReplayDone
		}
		mu.Lock()
		err = replayErr
		mu.Unlock()
	}()

	return events, func() error {
		mu.Lock()
		defer mu.Unlock()
		return err
	}
}

// runHeadless applies every event until the source closes or ctx is done,
// then prints what the session mirrored
func runHeadless(ctx context.Context, a *app.App, source tui.Source, out io.Writer) error {
	var err error
loop:
	for {
		select {
		case ev, ok := <-source.Events:
			if !ok {
				err = source.Err()
				break loop
			}
			a.Handle(ev)
		case <-ctx.Done():
			err = ctx.Err()
			break loop
		}
	}
	writeSummary(out, a.Summary())

	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, errReplayDone), errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("event stream: %w", err)
	}
}

func writeSummary(out io.Writer, s app.Summary) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "events\t%d\n", s.Events)
	fmt.Fprintf(w, "view\t%s\n", s.View)
	fmt.Fprintf(w, "tracks\t%d\n", s.Tracks)
	fmt.Fprintf(w, "albums\t%d\n", s.Albums)
	fmt.Fprintf(w, "artists\t%d\n", s.Artists)
	fmt.Fprintf(w, "composers\t%d\n", s.Composers)
	fmt.Fprintf(w, "genres\t%d\n", s.Genres)
	fmt.Fprintf(w, "playlists\t%d\n", s.Playlists)
	fmt.Fprintf(w, "covers\t%d\n", s.Covers)
	fmt.Fprintf(w, "sections\t%d\n", s.Sections)

	fields := make([]string, 0, len(s.Counters))
	for f := range s.Counters {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "counter %s\t%d\n", f, s.Counters[domain.Field(f)])
	}
}
