package overlay

import (
	"testing"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack_AllHidden(t *testing.T) {
	s := NewStack()
	for id := ContextMenu; id < numOverlays; id++ {
		assert.False(t, s.Visible(id), id.String())
	}
	assert.False(t, s.AnyVisible())
	assert.Len(t, s.Search.Types, 6)
}

func TestDismissTop_ContextMenuBeforeSettings(t *testing.T) {
	s := NewStack()
	s.Show(Settings)
	s.Show(ContextMenu)

	hidden := s.DismissTop()

	assert.Equal(t, []ID{ContextMenu}, hidden)
	assert.False(t, s.Visible(ContextMenu))
	assert.True(t, s.Visible(Settings))
}

func TestDismissTop_Precedence(t *testing.T) {
	s := NewStack()
	s.Show(Search)
	s.Show(CustomColor)
	s.Show(MediaPath)

	assert.Equal(t, []ID{MediaPath}, s.DismissTop())
	assert.Equal(t, []ID{CustomColor}, s.DismissTop())
	assert.Equal(t, []ID{Search}, s.DismissTop())
	assert.Nil(t, s.DismissTop())
}

func TestDismissTop_LastGroupTogether(t *testing.T) {
	s := NewStack()
	s.Show(Edit)
	s.Show(Queue)
	s.Show(Delete)

	hidden := s.DismissTop()

	assert.ElementsMatch(t, []ID{Edit, Queue, Delete}, hidden)
	assert.False(t, s.AnyVisible())
}

func TestShow_DoesNotCloseOthers(t *testing.T) {
	s := NewStack()
	s.Show(Queue)
	s.Show(Settings)

	assert.True(t, s.Visible(Queue))
	assert.True(t, s.Visible(Settings))

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, Queue, top)
}

func TestTextEntryVisible(t *testing.T) {
	tests := []struct {
		name string
		show []ID
		want bool
	}{
		{"none", nil, false},
		{"edit", []ID{Edit}, true},
		{"playlist select", []ID{PlaylistSelect}, true},
		{"search", []ID{Search}, true},
		{"queue only", []ID{Queue}, false},
		{"context menu over search", []ID{ContextMenu, Search}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			for _, id := range tt.show {
				s.Show(id)
			}
			assert.Equal(t, tt.want, s.TextEntryVisible())
		})
	}
}

func TestOpenHelpers(t *testing.T) {
	s := NewStack()
	target := domain.Context{ID: 7, Type: domain.DataTypeAlbum}

	s.OpenEdit(target)
	s.OpenDelete(target)
	ids := []int64{1, 2}
	s.OpenPlaylistSelect(ids)
	ids[0] = 99

	assert.True(t, s.Visible(Edit))
	assert.Equal(t, target, s.Edit.Target)
	assert.True(t, s.Visible(Delete))
	assert.Equal(t, target, s.DeleteTarget)
	assert.Equal(t, []int64{1, 2}, s.PlaylistTracks)
}

func TestToggle(t *testing.T) {
	s := NewStack()
	s.Toggle(Search)
	assert.True(t, s.Visible(Search))
	s.Toggle(Search)
	assert.False(t, s.Visible(Search))
	assert.Equal(t, "unknown", ID(42).String())
	assert.False(t, s.Visible(ID(-1)))
}
