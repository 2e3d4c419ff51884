package domain

// ContextAction is an entry of an entity's context menu
type ContextAction string

const (
	ActionPlay         ContextAction = "Play"
	ActionPlayRandom   ContextAction = "PlayRandom"
	ActionPlayNext     ContextAction = "PlayNext"
	ActionAddQueue     ContextAction = "AddQueue"
	ActionAddPlaylist  ContextAction = "AddPlaylist"
	ActionEdit         ContextAction = "Edit"
	ActionOpenPath     ContextAction = "OpenPath"
	ActionShowArtist   ContextAction = "ShowArtist"
	ActionShowComposer ContextAction = "ShowComposer"
	ActionShowAlbum    ContextAction = "ShowAlbum"
	ActionShowGenre    ContextAction = "ShowGenre"
	ActionShowPlaylist ContextAction = "ShowPlaylist"
	ActionExtractCover ContextAction = "ExtractCover"
	ActionDelete       ContextAction = "Delete"
)
