package domain

// Field names one change-counted slice of client state
type Field string

const (
	FieldData      Field = "data"
	FieldQueue     Field = "queue"
	FieldTracks    Field = "tracks"
	FieldAlbums    Field = "albums"
	FieldArtists   Field = "artists"
	FieldComposers Field = "composers"
	FieldGenres    Field = "genres"
	FieldPlaylists Field = "playlists"
	FieldCovers    Field = "covers"
	FieldRelations Field = "relations"
	FieldSearch    Field = "search"
	FieldSpaceTime Field = "spacetime"
	FieldSections  Field = "sections"
	FieldConfig    Field = "config"
	FieldAudio     Field = "audio"
	FieldDB        Field = "db"
	FieldMessages  Field = "messages"

	// FieldOrder is bumped when the active view's order is republished
	FieldOrder Field = "order"
)

// OrderField returns the counter key for one type's order index
func OrderField(t DataType) Field {
	return Field("order:" + string(t))
}

// FieldUpdate is one present field of a sparse data payload
type FieldUpdate interface {
	Field() Field
}

type (
	QueueUpdate     struct{ IDs []int64 }
	TracksUpdate    struct{ Tracks []Track }
	AlbumsUpdate    struct{ Albums []Album }
	ArtistsUpdate   struct{ Artists []Artist }
	ComposersUpdate struct{ Composers []Composer }
	GenresUpdate    struct{ Genres []Genre }
	PlaylistsUpdate struct{ Playlists []Playlist }
	CoversUpdate    struct{ Covers []Cover }
	SearchUpdate    struct{ Results SearchResults }
	SpaceTimeUpdate struct{ Stats SpaceTime }

	RelationUpdate struct {
		Kind    RelationKind
		Entries []Relation
	}

	OrderUpdate struct {
		Type DataType
		Pair OrderPair
	}
)

func (QueueUpdate) Field() Field     { return FieldQueue }
func (TracksUpdate) Field() Field    { return FieldTracks }
func (AlbumsUpdate) Field() Field    { return FieldAlbums }
func (ArtistsUpdate) Field() Field   { return FieldArtists }
func (ComposersUpdate) Field() Field { return FieldComposers }
func (GenresUpdate) Field() Field    { return FieldGenres }
func (PlaylistsUpdate) Field() Field { return FieldPlaylists }
func (CoversUpdate) Field() Field    { return FieldCovers }
func (SearchUpdate) Field() Field    { return FieldSearch }
func (SpaceTimeUpdate) Field() Field { return FieldSpaceTime }
func (RelationUpdate) Field() Field  { return FieldRelations }
func (u OrderUpdate) Field() Field   { return OrderField(u.Type) }

// Updates splits the payload into its present fields. Entity fields come
// before order pairs so that a materialization triggered by an order sees
// entities delivered in the same event.
func (p DataPayload) Updates() []FieldUpdate {
	var out []FieldUpdate

	if p.Queue != nil {
		out = append(out, QueueUpdate{IDs: p.Queue})
	}
	if p.Tracks != nil {
		out = append(out, TracksUpdate{Tracks: p.Tracks})
	}
	if p.Albums != nil {
		out = append(out, AlbumsUpdate{Albums: p.Albums})
	}
	if p.Artists != nil {
		out = append(out, ArtistsUpdate{Artists: p.Artists})
	}
	if p.Composers != nil {
		out = append(out, ComposersUpdate{Composers: p.Composers})
	}
	if p.Covers != nil {
		out = append(out, CoversUpdate{Covers: p.Covers})
	}
	if p.Genres != nil {
		out = append(out, GenresUpdate{Genres: p.Genres})
	}
	if p.Playlists != nil {
		out = append(out, PlaylistsUpdate{Playlists: p.Playlists})
	}
	if p.SpaceTime != nil {
		out = append(out, SpaceTimeUpdate{Stats: *p.SpaceTime})
	}
	if p.Search != nil {
		out = append(out, SearchUpdate{Results: *p.Search})
	}

	if p.ArtistAlbums != nil {
		entries := make([]Relation, len(p.ArtistAlbums))
		for i, e := range p.ArtistAlbums {
			entries[i] = Relation{ID: e.ID, IDs: e.Albums}
		}
		out = append(out, RelationUpdate{Kind: RelationArtistAlbums, Entries: entries})
	}
	for _, r := range []struct {
		kind    RelationKind
		entries []OwnerTracks
	}{
		{RelationArtistTracks, p.ArtistTracks},
		{RelationComposerTracks, p.ComposerTracks},
		{RelationGenreTracks, p.GenreTracks},
	} {
		if r.entries == nil {
			continue
		}
		entries := make([]Relation, len(r.entries))
		for i, e := range r.entries {
			entries[i] = Relation{ID: e.ID, IDs: e.Tracks}
		}
		out = append(out, RelationUpdate{Kind: r.kind, Entries: entries})
	}

	for _, o := range []struct {
		t    DataType
		pair *OrderPair
	}{
		{DataTypeAlbum, p.AlbumsOrder},
		{DataTypeArtist, p.ArtistsOrder},
		{DataTypeComposer, p.ComposersOrder},
		{DataTypeGenre, p.GenresOrder},
		{DataTypePlaylist, p.PlaylistsOrder},
		{DataTypeTrack, p.TracksOrder},
	} {
		if o.pair != nil {
			out = append(out, OrderUpdate{Type: o.t, Pair: *o.pair})
		}
	}

	return out
}
