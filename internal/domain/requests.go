package domain

// Channel is the backend subsystem a request is addressed to
type Channel string

const (
	ChannelAudio  Channel = "audio"
	ChannelDB     Channel = "db"
	ChannelConfig Channel = "config"
)

// Request is a fire-and-forget command to the backend. Frame returns the
// request in the backend's externally tagged form: a bare string for unit
// variants, {"Variant": payload} otherwise.
type Request interface {
	Channel() Channel
	Frame() any
}

// Requester: Outbound, fire-and-forget.
// Send never waits for the backend; every effect arrives later as a push event.
type Requester interface {
	Send(req Request)
}

// RequesterFunc adapts a function to Requester
type RequesterFunc func(Request)

func (f RequesterFunc) Send(req Request) { f(req) }

func tagged(name string, payload any) map[string]any {
	return map[string]any{name: payload}
}

// === Database requests ===

type Play struct {
	Type  DataType
	IDs   []int64
	Order SortSpec // optional; composers and genres honor it
}

type QueueInsert struct {
	Type  DataType
	IDs   []int64
	Index *int
}

type GetDataOrder struct {
	Type  DataType
	Order SortSpec
}

type GetCoversByID struct{ IDs []int64 }

type UpdateTracks struct {
	Tracks      []Track
	ArtistNames []string
	AlbumNames  []string
	GenreNames  []string
}

type UpdateAlbum struct {
	Album      Album
	ArtistName string
	GenreName  string
}

type UpdateArtist struct{ Artist Artist }
type UpdateComposer struct{ Composer Composer }
type UpdateGenre struct{ Genre Genre }
type UpdatePlaylist struct{ Playlist Playlist }
type NewPlaylist struct{ Playlist Playlist }

type DeleteByID struct {
	Type        DataType
	IDs         []int64
	DeleteFiles bool
}

type Search struct {
	Term  string
	Types []DataType
}

type ExtractCover struct{ AlbumID int64 }

type OpenContainingDir struct {
	Type DataType
	ID   int64
}

// ImportLibrary imports an exported XML library file
type ImportLibrary struct{ Path string }

// AddToLibrary scans files or directories into the library
type AddToLibrary struct{ Paths []string }

type InitDB struct{}

func (Play) Channel() Channel              { return ChannelDB }
func (QueueInsert) Channel() Channel       { return ChannelDB }
func (GetDataOrder) Channel() Channel      { return ChannelDB }
func (GetCoversByID) Channel() Channel     { return ChannelDB }
func (UpdateTracks) Channel() Channel      { return ChannelDB }
func (UpdateAlbum) Channel() Channel       { return ChannelDB }
func (UpdateArtist) Channel() Channel      { return ChannelDB }
func (UpdateComposer) Channel() Channel    { return ChannelDB }
func (UpdateGenre) Channel() Channel       { return ChannelDB }
func (UpdatePlaylist) Channel() Channel    { return ChannelDB }
func (NewPlaylist) Channel() Channel       { return ChannelDB }
func (DeleteByID) Channel() Channel        { return ChannelDB }
func (Search) Channel() Channel            { return ChannelDB }
func (ExtractCover) Channel() Channel      { return ChannelDB }
func (OpenContainingDir) Channel() Channel { return ChannelDB }
func (ImportLibrary) Channel() Channel     { return ChannelDB }
func (AddToLibrary) Channel() Channel      { return ChannelDB }
func (InitDB) Channel() Channel            { return ChannelDB }

func (r Play) Frame() any {
	var order any
	if len(r.Order) > 0 {
		order = r.Order
	}
	return tagged("Play", []any{r.Type, r.IDs, order})
}

func (r QueueInsert) Frame() any {
	var idx any
	if r.Index != nil {
		idx = *r.Index
	}
	return tagged("QueueInsert", []any{r.Type, r.IDs, idx, nil})
}

func (r GetDataOrder) Frame() any { return tagged("GetDataOrder", []any{r.Type, r.Order}) }
func (r GetCoversByID) Frame() any {
	return tagged("GetCoversById", r.IDs)
}
func (r UpdateTracks) Frame() any {
	return tagged("UpdateTracks", []any{r.Tracks, r.ArtistNames, r.AlbumNames, r.GenreNames})
}
func (r UpdateAlbum) Frame() any {
	return tagged("UpdateAlbum", []any{r.Album, r.ArtistName, r.GenreName})
}
func (r UpdateArtist) Frame() any   { return tagged("UpdateArtist", r.Artist) }
func (r UpdateComposer) Frame() any { return tagged("UpdateComposer", r.Composer) }
func (r UpdateGenre) Frame() any    { return tagged("UpdateGenre", r.Genre) }
func (r UpdatePlaylist) Frame() any { return tagged("UpdatePlaylist", r.Playlist) }
func (r NewPlaylist) Frame() any    { return tagged("NewPlaylist", r.Playlist) }
func (r DeleteByID) Frame() any {
	return tagged("DeleteById", []any{r.Type, r.IDs, r.DeleteFiles})
}
func (r Search) Frame() any {
	var types any
	if len(r.Types) > 0 {
		types = r.Types
	}
	return tagged("Search", []any{r.Term, types, nil})
}
func (r ExtractCover) Frame() any      { return tagged("ExtractCover", r.AlbumID) }
func (r OpenContainingDir) Frame() any { return tagged("OpenContainingDir", []any{r.Type, r.ID}) }
func (r ImportLibrary) Frame() any     { return tagged("ImportLibrary", r.Path) }
func (r AddToLibrary) Frame() any      { return tagged("AddToLibrary", r.Paths) }
func (InitDB) Frame() any              { return "Init" }

// === Audio requests ===

type PlayPause struct{ Play bool }
type Next struct{}
type Prev struct{}
type QueueMove struct{ IDs []int64 }
type Mute struct{ Muted bool }
type Volume struct{ Level int }
type Seek struct{ Position int64 } // milliseconds
type Shuffle struct{ On bool }
type Repeat struct{ Mode RepeatMode }
type InitAudio struct{}

func (PlayPause) Channel() Channel { return ChannelAudio }
func (Next) Channel() Channel      { return ChannelAudio }
func (Prev) Channel() Channel      { return ChannelAudio }
func (QueueMove) Channel() Channel { return ChannelAudio }
func (Mute) Channel() Channel      { return ChannelAudio }
func (Volume) Channel() Channel    { return ChannelAudio }
func (Seek) Channel() Channel      { return ChannelAudio }
func (Shuffle) Channel() Channel   { return ChannelAudio }
func (Repeat) Channel() Channel    { return ChannelAudio }
func (InitAudio) Channel() Channel { return ChannelAudio }

func (r PlayPause) Frame() any { return tagged("PlayPause", r.Play) }
func (Next) Frame() any        { return "Next" }
func (Prev) Frame() any        { return "Prev" }
func (r QueueMove) Frame() any { return tagged("QueueMove", r.IDs) }
func (r Mute) Frame() any      { return tagged("Mute", r.Muted) }
func (r Volume) Frame() any    { return tagged("Volume", r.Level) }
func (r Seek) Frame() any      { return tagged("Seek", r.Position) }
func (r Shuffle) Frame() any   { return tagged("Shuffle", r.On) }
func (r Repeat) Frame() any    { return tagged("Repeat", r.Mode) }
func (InitAudio) Frame() any   { return "Init" }

// === Config requests ===

type GetConfig struct{}
type SetConfig struct{ Config ConfigState }

func (GetConfig) Channel() Channel { return ChannelConfig }
func (SetConfig) Channel() Channel { return ChannelConfig }

func (GetConfig) Frame() any   { return "Get" }
func (r SetConfig) Frame() any { return tagged("Set", r.Config) }
