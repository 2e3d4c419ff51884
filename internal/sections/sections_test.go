package sections

import (
	"testing"
	"time"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func albumAdded(id int64, ago time.Duration) domain.Album {
	return domain.Album{
		ID:        id,
		Name:      "album",
		DateAdded: testNow.Add(-ago).Format(time.RFC3339),
	}
}

func days(n float64) time.Duration {
	return time.Duration(n * 24 * float64(time.Hour))
}

func tableOf(albums ...domain.Album) *store.Table[domain.Album] {
	t := store.NewTable[domain.Album]()
	t.Upsert(albums)
	return t
}

func TestBuild_BucketsByElapsedDays(t *testing.T) {
	albums := tableOf(
		albumAdded(1, days(0.5)),
		albumAdded(2, days(3)),
		albumAdded(3, days(40)),
		albumAdded(4, days(400)),
	)

	got := Build([]int64{1, 2, 3, 4}, albums, testNow)

	assert.Equal(t, []Section{
		{Title: "today", Albums: []int64{1}},
		{Title: "lastweek", Albums: []int64{2}},
		{Title: "last3months", Albums: []int64{3}},
		{Title: "2025", Albums: []int64{4}},
	}, got)
}

func TestBuild_BucketsOnlyWiden(t *testing.T) {
	albums := tableOf(
		albumAdded(1, days(2)),
		albumAdded(2, days(5)),
		albumAdded(3, days(20)),
		albumAdded(4, days(25)),
		albumAdded(5, days(100)),
		albumAdded(6, days(200)),
	)

	got := Build([]int64{1, 2, 3, 4, 5, 6}, albums, testNow)

	require.Len(t, got, 4)
	assert.Equal(t, Section{Title: "lastweek", Albums: []int64{1, 2}}, got[0])
	assert.Equal(t, Section{Title: "lastmonth", Albums: []int64{3, 4}}, got[1])
	assert.Equal(t, Section{Title: "last6months", Albums: []int64{5}}, got[2])
	assert.Equal(t, Section{Title: "thisyear", Albums: []int64{6}}, got[3])
}

func TestBuild_OlderYearsSectionByCalendarYear(t *testing.T) {
	albums := tableOf(
		domain.Album{ID: 1, DateAdded: "2024-12-31T10:00:00Z"},
		domain.Album{ID: 2, DateAdded: "2024-03-01T10:00:00Z"},
		domain.Album{ID: 3, DateAdded: "2023-06-01"},
		domain.Album{ID: 4, DateAdded: "2019-01-01 08:00:00"},
	)

	got := Build([]int64{1, 2, 3, 4}, albums, testNow)

	assert.Equal(t, []Section{
		{Title: "2024", Albums: []int64{1, 2}},
		{Title: "2023", Albums: []int64{3}},
		{Title: "2019", Albums: []int64{4}},
	}, got)
}

func TestBuild_SkipsMissingAndUndatedAlbums(t *testing.T) {
	albums := tableOf(
		albumAdded(1, days(0.1)),
		domain.Album{ID: 2, DateAdded: ""},
		albumAdded(4, days(0.2)),
	)

	got := Build([]int64{1, 2, 3, 4}, albums, testNow)

	assert.Equal(t, []Section{{Title: "today", Albums: []int64{1, 4}}}, got)
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil, tableOf(), testNow))
	assert.Empty(t, Build([]int64{1, 2}, tableOf(), testNow))
}

func TestBuild_PartitionsContiguously(t *testing.T) {
	var (
		list []domain.Album
		ids  []int64
	)
	for i := int64(1); i <= 50; i++ {
		list = append(list, albumAdded(i, days(float64(i*i))))
		ids = append(ids, i)
	}

	got := Build(ids, tableOf(list...), testNow)

	var flat []int64
	for _, s := range got {
		require.NotEmpty(t, s.Albums, "section %q", s.Title)
		flat = append(flat, s.Albums...)
	}
	assert.Equal(t, ids, flat)
}

func TestRows_ChunksByColumnCount(t *testing.T) {
	s := []Section{{Title: "today", Albums: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}}

	rows := Rows(s, 4)

	require.Len(t, rows, 4)
	assert.True(t, rows[0].IsTitle())
	assert.Equal(t, "today", rows[0].Title)
	assert.Equal(t, []int64{1, 2, 3, 4}, rows[1].Albums)
	assert.Equal(t, []int64{5, 6, 7, 8}, rows[2].Albums)
	assert.Equal(t, []int64{9, 10}, rows[3].Albums)
}

func TestRows_InterleavesTitles(t *testing.T) {
	s := []Section{
		{Title: "today", Albums: []int64{1}},
		{Title: "2024", Albums: []int64{2, 3, 4}},
	}

	rows := Rows(s, 2)

	var shape []string
	for _, r := range rows {
		if r.IsTitle() {
			shape = append(shape, r.Title)
		} else {
			shape = append(shape, "chunk")
		}
	}
	assert.Equal(t, []string{"today", "chunk", "2024", "chunk", "chunk"}, shape)
}

func TestMaterializer_SetColumnsRechunks(t *testing.T) {
	albums := tableOf(
		albumAdded(1, days(0.1)),
		albumAdded(2, days(0.2)),
		albumAdded(3, days(0.3)),
	)
	m := NewMaterializer(4, func() time.Time { return testNow }, nil)
	m.Rebuild([]int64{1, 2, 3}, albums)

	require.Len(t, m.Rows(), 2)
	assert.Equal(t, 1, m.RowOf(3))

	m.SetColumns(1)
	require.Len(t, m.Rows(), 4)
	assert.Equal(t, 3, m.RowOf(3))
	assert.Equal(t, -1, m.RowOf(99))
	assert.Len(t, m.Sections(), 1)
}

func TestBucketFor_PastLastRelativeBucket(t *testing.T) {
	assert.Equal(t, 0, bucketFor(0.5))
	assert.Equal(t, len(buckets)-1, bucketFor(300))
	assert.Equal(t, yearMode, bucketFor(365))
	assert.Equal(t, yearMode, bucketFor(4000))
}
