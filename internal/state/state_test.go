package state

import (
	"testing"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHeadersFor(t *testing.T) {
	tests := []struct {
		name string
		spec domain.SortSpec
		want ColumnHeaders
	}{
		{
			name: "empty",
			spec: nil,
			want: ColumnHeaders{},
		},
		{
			name: "plain key points down",
			spec: domain.SortSpec{domain.OrderByName},
			want: ColumnHeaders{Name: IndicatorDown},
		},
		{
			name: "inverse key points up",
			spec: domain.SortSpec{domain.OrderByAddedDateInverse},
			want: ColumnHeaders{AddedDate: IndicatorUp},
		},
		{
			name: "plain wins over inverse",
			spec: domain.SortSpec{domain.OrderByTimeInverse, domain.OrderByTime},
			want: ColumnHeaders{Time: IndicatorDown},
		},
		{
			name: "multi key",
			spec: domain.SortSpec{domain.OrderByArtist, domain.OrderByAlbumInverse, domain.OrderByReleaseDate},
			want: ColumnHeaders{Artist: IndicatorDown, Album: IndicatorUp, ReleaseDate: IndicatorDown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeadersFor(tt.spec))
		})
	}
}

func TestViewState_Displays(t *testing.T) {
	v := NewViewState()
	v.View = domain.ActiveViewGenres

	assert.True(t, v.Displays(domain.DataTypeGenre))
	assert.True(t, v.Displays(domain.DataTypeTrack))
	assert.False(t, v.Displays(domain.DataTypeAlbum))

	v.View = domain.ActiveViewRecents
	assert.False(t, v.Displays(domain.DataTypeAlbum))
	assert.False(t, v.Displays(domain.DataTypeTrack))
}

func TestViewState_ToggleSplit(t *testing.T) {
	v := NewViewState()
	v.ToggleSplit(4)
	assert.Equal(t, int64(4), v.OpenSplit)
	v.ToggleSplit(5)
	assert.Equal(t, int64(5), v.OpenSplit)
	v.ToggleSplit(5)
	assert.Equal(t, int64(-1), v.OpenSplit)
}

func TestCounters_Monotonic(t *testing.T) {
	c := NewCounters()
	for i := 0; i < 3; i++ {
		c.Bump(domain.FieldTracks)
	}
	assert.Equal(t, uint64(3), c.Get(domain.FieldTracks))
	assert.Zero(t, c.Get(domain.FieldAlbums))

	snap := c.Snapshot()
	c.Bump(domain.FieldTracks)
	assert.Equal(t, uint64(3), snap[domain.FieldTracks])
}

func TestCoverRequests(t *testing.T) {
	c := NewCoverRequests()
	assert.True(t, c.Mark(3))
	assert.False(t, c.Mark(3))
	assert.True(t, c.Mark(4))
	assert.Equal(t, 2, c.Len())

	c.Reconcile([]int64{3, 99})
	assert.False(t, c.Pending(3))
	assert.True(t, c.Pending(4))
	assert.True(t, c.Mark(3))
}
