package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/overlay"
	"github.com/mmcdole/muse/internal/service"
	"github.com/mmcdole/muse/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sent []domain.Request
}

func (r *recorder) Send(req domain.Request) { r.sent = append(r.sent, req) }

type fixture struct {
	session *state.Session
	stack   *overlay.Stack
	req     *recorder
	router  *Router
}

func newFixture() *fixture {
	f := &fixture{
		session: state.NewSession(),
		stack:   overlay.NewStack(),
		req:     &recorder{},
	}
	playback := service.NewPlaybackService(f.session, f.req, nil)
	f.router = New(f.stack, playback, nil)
	return f
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestHandleKey_Quit(t *testing.T) {
	f := newFixture()
	assert.Equal(t, Quit, f.router.HandleKey(keyMsg(tea.KeyCtrlQ)))
	assert.Equal(t, Quit, f.router.HandleKey(keyMsg(tea.KeyCtrlW)))

	f.stack.Show(overlay.Search)
	assert.Equal(t, Quit, f.router.HandleKey(keyMsg(tea.KeyCtrlQ)))
}

func TestHandleKey_SearchToggles(t *testing.T) {
	f := newFixture()

	f.router.HandleKey(keyMsg(tea.KeyCtrlF))
	assert.True(t, f.stack.Visible(overlay.Search))
	f.router.HandleKey(keyMsg(tea.KeyCtrlF))
	assert.False(t, f.stack.Visible(overlay.Search))
}

func TestHandleKey_Volume(t *testing.T) {
	tests := []struct {
		name   string
		volume int
		key    tea.KeyType
		want   int
	}{
		{"up", 50, tea.KeyCtrlUp, 60},
		{"up capped", 95, tea.KeyCtrlUp, 100},
		{"up with shift", 50, tea.KeyCtrlShiftUp, 60},
		{"down", 50, tea.KeyCtrlDown, 40},
		{"down floored", 5, tea.KeyCtrlDown, 0},
		{"silence", 70, tea.KeyCtrlShiftDown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.session.Audio.Volume = tt.volume

			assert.Equal(t, Handled, f.router.HandleKey(keyMsg(tt.key)))
			assert.Equal(t, []domain.Request{domain.Volume{Level: tt.want}}, f.req.sent)
		})
	}
}

func TestHandleKey_VolumeNotSuppressedWhileTyping(t *testing.T) {
	f := newFixture()
	f.stack.Show(overlay.Edit)

	f.router.HandleKey(keyMsg(tea.KeyCtrlUp))
	assert.Len(t, f.req.sent, 1)
}

func TestHandleKey_TrackNavigationVsSeek(t *testing.T) {
	f := newFixture()
	f.session.Audio.Position = 30000

	f.router.HandleKey(keyMsg(tea.KeyShiftLeft))
	f.router.HandleKey(keyMsg(tea.KeyShiftRight))
	f.router.HandleKey(keyMsg(tea.KeyCtrlShiftLeft))
	f.router.HandleKey(keyMsg(tea.KeyCtrlShiftRight))

	assert.Equal(t, []domain.Request{
		domain.Prev{},
		domain.Next{},
		domain.Seek{Position: 20000},
		domain.Seek{Position: 40000},
	}, f.req.sent)
}

func TestHandleKey_SeekBackClampsAtZero(t *testing.T) {
	f := newFixture()
	f.session.Audio.Position = 3000

	f.router.HandleKey(keyMsg(tea.KeyCtrlShiftLeft))
	assert.Equal(t, []domain.Request{domain.Seek{Position: 0}}, f.req.sent)
}

func TestHandleKey_SpaceTogglesPlay(t *testing.T) {
	f := newFixture()
	f.session.Audio.IsPlaying = true

	assert.Equal(t, Handled, f.router.HandleKey(keyMsg(tea.KeySpace)))
	assert.Equal(t, []domain.Request{domain.PlayPause{Play: false}}, f.req.sent)
}

func TestHandleKey_TransportSuppressedWhileTyping(t *testing.T) {
	for _, id := range []overlay.ID{overlay.Edit, overlay.PlaylistSelect, overlay.Search} {
		t.Run(id.String(), func(t *testing.T) {
			f := newFixture()
			f.stack.Show(id)

			for _, k := range []tea.KeyType{tea.KeySpace, tea.KeyShiftLeft, tea.KeyCtrlShiftRight, tea.KeyCtrlShiftDown} {
				assert.Equal(t, Ignored, f.router.HandleKey(keyMsg(k)))
			}
			assert.Empty(t, f.req.sent)
		})
	}
}

func TestHandleKey_TransportAllowedUnderNonTextOverlay(t *testing.T) {
	f := newFixture()
	f.stack.Show(overlay.Queue)

	f.router.HandleKey(keyMsg(tea.KeySpace))
	assert.Len(t, f.req.sent, 1)
}

func TestHandleKey_NewPlaylist(t *testing.T) {
	f := newFixture()

	f.router.HandleKey(keyMsg(tea.KeyCtrlN))

	require.True(t, f.stack.Visible(overlay.Edit))
	assert.Equal(t, domain.Context{ID: 0, Type: domain.DataTypePlaylist}, f.stack.Edit.Target)
}

func TestHandleKey_CancelUsesPrecedence(t *testing.T) {
	f := newFixture()
	f.stack.Show(overlay.ContextMenu)
	f.stack.Show(overlay.Settings)

	assert.Equal(t, Handled, f.router.HandleKey(keyMsg(tea.KeyEsc)))
	assert.False(t, f.stack.Visible(overlay.ContextMenu))
	assert.True(t, f.stack.Visible(overlay.Settings))

	assert.Equal(t, Handled, f.router.HandleKey(keyMsg(tea.KeyEsc)))
	assert.False(t, f.stack.Visible(overlay.Settings))

	assert.Equal(t, Ignored, f.router.HandleKey(keyMsg(tea.KeyEsc)))
}

func TestHandleKey_UnboundKeyIgnored(t *testing.T) {
	f := newFixture()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	assert.Equal(t, Ignored, f.router.HandleKey(msg))
	assert.Empty(t, f.req.sent)
}
