// Package sections derives the "recently added" view from the albums order:
// date-bucketed sections and a fixed-width grid of rows.
package sections

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/mmcdole/muse/internal/domain"
)

// Section is a contiguous, date-bucketed run of album ids
type Section struct {
	Title  string
	Albums []int64
}

// Row is one grid line: either a section title or a chunk of album ids
type Row struct {
	Title  string
	Albums []int64
}

// IsTitle reports whether the row is a section heading
func (r Row) IsTitle() bool {
	return r.Albums == nil
}

// AlbumLookup resolves album ids against the entity store
type AlbumLookup interface {
	Get(id int64) (domain.Album, bool)
}

// bucket is a relative-age grouping; buckets only widen as the walk proceeds
type bucket struct {
	title string
	days  float64 // exclusive upper bound in elapsed days
}

var buckets = [...]bucket{
	{"today", 1},
	{"lastweek", 7},
	{"lastmonth", 30},
	{"last3months", 91},
	{"last6months", 182},
	{"thisyear", 365},
}

// yearMode marks that the walk has moved past the relative buckets
const yearMode = len(buckets)

func bucketFor(days float64) int {
	for i, b := range buckets {
		if days < b.days {
			return i
		}
	}
	return yearMode
}

// BucketTitles returns the relative bucket titles, newest first
func BucketTitles() []string {
	titles := make([]string, len(buckets))
	for i, b := range buckets {
		titles[i] = b.title
	}
	return titles
}

// Build walks ids once, left to right, and groups them by age relative to now.
// ids must already be sorted by added date, newest first. Albums that are
// missing from the store or carry no parsable added date are skipped.
func Build(ids []int64, albums AlbumLookup, now time.Time) []Section {
	var (
		out      []Section
		current  Section
		started  bool
		cur      int
		thisYear = now.Year()
		lastYear = thisYear
	)

	open := func(title string) {
		if started {
			out = append(out, current)
		}
		current = Section{Title: title}
		started = true
	}

	for _, id := range ids {
		album, ok := albums.Get(id)
		if !ok {
			continue
		}
		added, ok := album.AddedAt()
		if !ok {
			continue
		}
		added = added.In(now.Location())
		days := now.Sub(added).Hours() / 24
		year := added.Year()

		if b := bucketFor(days); year == thisYear && b < yearMode && (!started || b > cur) {
			cur = b
			open(buckets[b].title)
		} else if year != lastYear || !started {
			cur = yearMode
			lastYear = year
			open(strconv.Itoa(year))
		}

		current.Albums = append(current.Albums, album.ID)
	}

	if started {
		out = append(out, current)
	}
	return out
}

// Rows flattens sections into a title row followed by chunks of at most
// columns album ids, for every section.
func Rows(sections []Section, columns int) []Row {
	if columns < 1 {
		columns = 1
	}
	var rows []Row
	for _, s := range sections {
		rows = append(rows, Row{Title: s.Title})
		for i := 0; i < len(s.Albums); i += columns {
			end := min(i+columns, len(s.Albums))
			chunk := make([]int64, end-i)
			copy(chunk, s.Albums[i:end])
			rows = append(rows, Row{Albums: chunk})
		}
	}
	return rows
}

// Materializer keeps the current sections and rows for the recently-added view.
// Both are rebuilt from scratch on every call; there is no incremental diff.
type Materializer struct {
	now     func() time.Time
	logger  *slog.Logger
	columns int

	sections []Section
	rows     []Row
}

// NewMaterializer creates a materializer laying rows out in columns.
// now may be nil, in which case time.Now is used.
func NewMaterializer(columns int, now func() time.Time, logger *slog.Logger) *Materializer {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	if columns < 1 {
		columns = 1
	}
	return &Materializer{now: now, logger: logger, columns: columns}
}

// Rebuild recomputes sections and rows from the albums order
func (m *Materializer) Rebuild(ids []int64, albums AlbumLookup) {
	m.sections = Build(ids, albums, m.now())
	m.rows = Rows(m.sections, m.columns)
	m.logger.Debug("materialized sections",
		"albums", len(ids),
		"sections", len(m.sections),
		"rows", len(m.rows))
}

// SetColumns changes the grid width and re-chunks the current sections
func (m *Materializer) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	if columns == m.columns {
		return
	}
	m.columns = columns
	m.rows = Rows(m.sections, m.columns)
}

// Columns returns the grid width
func (m *Materializer) Columns() int { return m.columns }

// Sections returns the current sections
func (m *Materializer) Sections() []Section { return m.sections }

// Rows returns the current grid rows
func (m *Materializer) Rows() []Row { return m.rows }

// RowOf returns the index of the row holding albumID, or -1
func (m *Materializer) RowOf(albumID int64) int {
	for i, r := range m.rows {
		for _, id := range r.Albums {
			if id == albumID {
				return i
			}
		}
	}
	return -1
}
