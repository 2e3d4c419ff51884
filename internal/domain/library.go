package domain

// View is the persisted startup view choice
type View string

const (
	ViewRecents   View = "Recents"
	ViewTracks    View = "Tracks"
	ViewAlbums    View = "Albums"
	ViewArtists   View = "Artists"
	ViewComposers View = "Composers"
	ViewGenres    View = "Genres"
	ViewPlaylists View = "Playlists"
)

// ActiveView is the screen currently shown by the rendering layer
type ActiveView int

const (
	ActiveViewLoading ActiveView = iota
	ActiveViewFirst
	ActiveViewRecents
	ActiveViewTracks
	ActiveViewAlbums
	ActiveViewArtists
	ActiveViewComposers
	ActiveViewGenres
	ActiveViewPlaylists
)

func (v ActiveView) String() string {
	switch v {
	case ActiveViewLoading:
		return "loading"
	case ActiveViewFirst:
		return "setup"
	case ActiveViewRecents:
		return "recents"
	case ActiveViewTracks:
		return "tracks"
	case ActiveViewAlbums:
		return "albums"
	case ActiveViewArtists:
		return "artists"
	case ActiveViewComposers:
		return "composers"
	case ActiveViewGenres:
		return "genres"
	case ActiveViewPlaylists:
		return "playlists"
	default:
		return "unknown"
	}
}

// ActiveViewFor maps a startup view to its screen. Unknown values fall back to Recents.
func ActiveViewFor(v View) ActiveView {
	switch v {
	case ViewTracks:
		return ActiveViewTracks
	case ViewAlbums:
		return ActiveViewAlbums
	case ViewArtists:
		return ActiveViewArtists
	case ViewComposers:
		return ActiveViewComposers
	case ViewGenres:
		return ActiveViewGenres
	case ViewPlaylists:
		return ActiveViewPlaylists
	default:
		return ActiveViewRecents
	}
}

// DataTypeFor returns the entity type a list view displays
func DataTypeFor(v ActiveView) DataType {
	switch v {
	case ActiveViewRecents, ActiveViewAlbums:
		return DataTypeAlbum
	case ActiveViewTracks:
		return DataTypeTrack
	case ActiveViewArtists:
		return DataTypeArtist
	case ActiveViewComposers:
		return DataTypeComposer
	case ActiveViewGenres:
		return DataTypeGenre
	case ActiveViewPlaylists:
		return DataTypePlaylist
	default:
		return DataTypeNone
	}
}

// Theme selects the color scheme
type Theme string

const (
	ThemeSystem Theme = "System"
	ThemeLight  Theme = "Light"
	ThemeDark   Theme = "Dark"
	ThemeCustom Theme = "Custom"
)

// ThemeColors holds the user's custom palette
type ThemeColors struct {
	Background       string `json:"background"`
	BackgroundActive string `json:"background_active"`
	BackgroundHover  string `json:"background_hover"`
	BackgroundButton string `json:"background_button"`
	BorderColor      string `json:"border_color"`
	AccentInput      string `json:"accent_input"`
	Warn             string `json:"warn"`
	Text             string `json:"text"`
	TextDim          string `json:"text_dim"`
	TextHighlight    string `json:"text_highlight"`
	Shadow           string `json:"shadow"`
}

// LightColors returns the default light palette
func LightColors() ThemeColors {
	return ThemeColors{
		Background:       "#ffffff",
		BackgroundActive: "#eae1e1",
		BackgroundHover:  "#efe8e8",
		BackgroundButton: "#f7f3f3",
		BorderColor:      "#d7d1d1",
		AccentInput:      "#d7d1d1",
		Warn:             "#aa0000",
		Text:             "#222222",
		TextDim:          "#787878",
		TextHighlight:    "#3b3b3b",
		Shadow:           "#00000020",
	}
}

// DarkColors returns the default dark palette
func DarkColors() ThemeColors {
	return ThemeColors{
		Background:       "#2b2b2b",
		BackgroundActive: "#222222",
		BackgroundHover:  "#1d1d1d",
		BackgroundButton: "#363636",
		BorderColor:      "#161616",
		AccentInput:      "#161616",
		Warn:             "#aa0000",
		Text:             "#ffffff",
		TextDim:          "#787878",
		TextHighlight:    "#d7d7d7",
		Shadow:           "#00000030",
	}
}

// Version is the backend's semantic version
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// ConfigState mirrors the backend's persisted configuration
type ConfigState struct {
	Version           Version     `json:"version"`
	Theme             Theme       `json:"theme"`
	CustomColors      ThemeColors `json:"custom_colors"`
	StartupView       View        `json:"startup_view"`
	Language          string      `json:"language"`
	LookForUpdates    bool        `json:"look_for_updates"`
	MediaPath         string      `json:"media_path"`
	ManageFolders     bool        `json:"manage_folders"`
	AllowDeleteFromDB bool        `json:"allow_delete_from_db"`
	AllowDeleteFiles  bool        `json:"allow_delete_files"`
	IsNew             bool        `json:"is_new"`
}

// DefaultConfigState is the mirror's value before the first config_state arrives
func DefaultConfigState() ConfigState {
	return ConfigState{
		Theme:       ThemeDark,
		StartupView: ViewRecents,
		Language:    "System",
	}
}
