// Package overlay tracks the modal surfaces layered above the main view.
//
// Overlays are not nested. Each has its own visibility flag and any number
// may be visible at once; only cancel-key dismissal is ordered, by a fixed
// precedence table.
package overlay

import "github.com/mmcdole/muse/internal/domain"

// ID names an overlay surface
type ID int

const (
	ContextMenu ID = iota
	MediaPath
	CustomColor
	Edit
	Import
	PlaylistSelect
	Queue
	Search
	Settings
	Delete
	numOverlays
)

var names = [...]string{
	ContextMenu:    "context-menu",
	MediaPath:      "media-path",
	CustomColor:    "custom-color",
	Edit:           "edit",
	Import:         "import",
	PlaylistSelect: "playlist-select",
	Queue:          "queue",
	Search:         "search",
	Settings:       "settings",
	Delete:         "delete",
}

func (id ID) String() string {
	if id < 0 || id >= numOverlays {
		return "unknown"
	}
	return names[id]
}

// Precedence lists dismissal groups from top to bottom. A cancel key
// dismisses the first group with a visible member, and every member of
// that group at once.
var Precedence = [][]ID{
	{ContextMenu},
	{MediaPath},
	{CustomColor},
	{Edit, Import, PlaylistSelect, Queue, Search, Settings, Delete},
}

// textEntry overlays own the keyboard while visible
var textEntry = []ID{Edit, PlaylistSelect, Search}

// Point is a pointer position in cells
type Point struct {
	X, Y int
}

// MenuState is the context menu payload
type MenuState struct {
	Target   domain.Context
	Actions  []domain.ContextAction
	Position Point
}

// EditState is the edit dialog payload. ID 0 creates a new entity.
type EditState struct {
	Target domain.Context
}

// SearchState is the search overlay payload
type SearchState struct {
	Term  string
	Types []domain.DataType
}

// QueueState is the queue/history panel payload
type QueueState struct {
	Position    int
	ShowHistory bool
}

// DefaultSearchTypes is the set of types a fresh search covers
func DefaultSearchTypes() []domain.DataType {
	return []domain.DataType{
		domain.DataTypeAlbum,
		domain.DataTypeArtist,
		domain.DataTypeComposer,
		domain.DataTypeGenre,
		domain.DataTypePlaylist,
		domain.DataTypeTrack,
	}
}

// Stack holds every overlay's visibility flag and payload
type Stack struct {
	visible [numOverlays]bool

	Menu           MenuState
	Edit           EditState
	Search         SearchState
	Queue          QueueState
	ImportPath     string
	MediaPath      string
	PlaylistTracks []int64
	DeleteTarget   domain.Context
}

// NewStack creates a stack with every overlay hidden
func NewStack() *Stack {
	return &Stack{
		Menu:   MenuState{Target: domain.Context{Type: domain.DataTypeNone}},
		Edit:   EditState{Target: domain.Context{Type: domain.DataTypeNone}},
		Search: SearchState{Types: DefaultSearchTypes()},
		Queue:  QueueState{ShowHistory: true},

		DeleteTarget: domain.Context{Type: domain.DataTypeNone},
	}
}

// Visible reports whether id is shown
func (s *Stack) Visible(id ID) bool {
	if id < 0 || id >= numOverlays {
		return false
	}
	return s.visible[id]
}

// Show makes id visible. Other overlays are left alone.
func (s *Stack) Show(id ID) {
	if id >= 0 && id < numOverlays {
		s.visible[id] = true
	}
}

// Hide makes id invisible
func (s *Stack) Hide(id ID) {
	if id >= 0 && id < numOverlays {
		s.visible[id] = false
	}
}

// Toggle flips id's visibility
func (s *Stack) Toggle(id ID) {
	if id >= 0 && id < numOverlays {
		s.visible[id] = !s.visible[id]
	}
}

// AnyVisible reports whether at least one overlay is shown
func (s *Stack) AnyVisible() bool {
	for _, v := range s.visible {
		if v {
			return true
		}
	}
	return false
}

// TextEntryVisible reports whether an overlay that takes typed input is shown
func (s *Stack) TextEntryVisible() bool {
	for _, id := range textEntry {
		if s.visible[id] {
			return true
		}
	}
	return false
}

// DismissTop hides the highest-precedence visible group and returns the
// overlays it hid. It returns nil when nothing was visible.
func (s *Stack) DismissTop() []ID {
	for _, group := range Precedence {
		var hidden []ID
		for _, id := range group {
			if s.visible[id] {
				hidden = append(hidden, id)
			}
		}
		if len(hidden) == 0 {
			continue
		}
		for _, id := range group {
			s.visible[id] = false
		}
		return hidden
	}
	return nil
}

// Top returns the highest-precedence visible overlay
func (s *Stack) Top() (ID, bool) {
	for _, group := range Precedence {
		for _, id := range group {
			if s.visible[id] {
				return id, true
			}
		}
	}
	return 0, false
}

// OpenEdit shows the edit dialog for target
func (s *Stack) OpenEdit(target domain.Context) {
	s.Edit.Target = target
	s.Show(Edit)
}

// OpenPlaylistSelect shows the playlist picker for trackIDs
func (s *Stack) OpenPlaylistSelect(trackIDs []int64) {
	s.PlaylistTracks = append([]int64(nil), trackIDs...)
	s.Show(PlaylistSelect)
}

// OpenDelete shows the delete confirmation for target
func (s *Stack) OpenDelete(target domain.Context) {
	s.DeleteTarget = target
	s.Show(Delete)
}
