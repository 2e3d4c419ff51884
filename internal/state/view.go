package state

import "github.com/mmcdole/muse/internal/domain"

// Indicator is a column header's sort arrow
type Indicator string

const (
	IndicatorNone Indicator = ""
	IndicatorDown Indicator = "down"
	IndicatorUp   Indicator = "up"
)

// ColumnHeaders holds the sort indicator of every sortable table column
type ColumnHeaders struct {
	Name        Indicator
	Artist      Indicator
	AlbumArtist Indicator
	Album       Indicator
	Genre       Indicator
	Time        Indicator
	ReleaseDate Indicator
	AddedDate   Indicator
}

// indicatorFor: the plain key wins over its inverse when both are present
func indicatorFor(spec domain.SortSpec, key domain.Order) Indicator {
	switch {
	case spec.Has(key):
		return IndicatorDown
	case spec.Has(key.Inverse()):
		return IndicatorUp
	default:
		return IndicatorNone
	}
}

// HeadersFor computes header indicators for an active order
func HeadersFor(spec domain.SortSpec) ColumnHeaders {
	return ColumnHeaders{
		Name:        indicatorFor(spec, domain.OrderByName),
		Artist:      indicatorFor(spec, domain.OrderByArtist),
		AlbumArtist: indicatorFor(spec, domain.OrderByAlbumArtist),
		Album:       indicatorFor(spec, domain.OrderByAlbum),
		Genre:       indicatorFor(spec, domain.OrderByGenre),
		Time:        indicatorFor(spec, domain.OrderByTime),
		ReleaseDate: indicatorFor(spec, domain.OrderByReleaseDate),
		AddedDate:   indicatorFor(spec, domain.OrderByAddedDate),
	}
}

// orderViews lists, per order type, the views that display that order.
// Track lists appear inside the composer, genre and playlist views too.
var orderViews = map[domain.DataType][]domain.ActiveView{
	domain.DataTypeAlbum:    {domain.ActiveViewAlbums},
	domain.DataTypeArtist:   {domain.ActiveViewArtists},
	domain.DataTypeComposer: {domain.ActiveViewComposers},
	domain.DataTypeGenre:    {domain.ActiveViewGenres},
	domain.DataTypePlaylist: {domain.ActiveViewPlaylists},
	domain.DataTypeTrack: {
		domain.ActiveViewTracks,
		domain.ActiveViewComposers,
		domain.ActiveViewGenres,
		domain.ActiveViewPlaylists,
	},
}

// ViewState is the active screen, its order, and per-type selections
type ViewState struct {
	View      domain.ActiveView
	Order     domain.SortSpec
	Headers   ColumnHeaders
	Selected  map[domain.DataType]int64
	OpenSplit int64 // album id expanded in the grid, -1 when none
}

// NewViewState starts on the loading screen
func NewViewState() ViewState {
	return ViewState{
		View:      domain.ActiveViewLoading,
		Selected:  make(map[domain.DataType]int64),
		OpenSplit: -1,
	}
}

// Displays reports whether an order for t belongs to the active view
func (v *ViewState) Displays(t domain.DataType) bool {
	for _, view := range orderViews[t] {
		if view == v.View {
			return true
		}
	}
	return false
}

// Republish makes spec the active order and recomputes header indicators
func (v *ViewState) Republish(spec domain.SortSpec) {
	v.Order = spec.Clone()
	v.Headers = HeadersFor(v.Order)
}

// Select switches to view and remembers the selected entity
func (v *ViewState) Select(view domain.ActiveView, t domain.DataType, id int64) {
	v.View = view
	v.Selected[t] = id
}

// ToggleSplit expands albumID, or collapses it if it is already expanded
func (v *ViewState) ToggleSplit(albumID int64) {
	if v.OpenSplit == albumID {
		v.OpenSplit = -1
		return
	}
	v.OpenSplit = albumID
}
