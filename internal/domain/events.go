package domain

import (
	"encoding/json"
	"fmt"
)

// EventName identifies an inbound push event channel
type EventName string

const (
	EventConfigState    EventName = "config_state"
	EventData           EventName = "data"
	EventDBState        EventName = "db_state"
	EventAudioState     EventName = "audio_state"
	EventBackendMessage EventName = "backend_message"
)

// PushEvent is an asynchronous backend notification carrying a sparse payload
type PushEvent interface {
	Name() EventName
}

// ConfigStateEvent carries the full configuration mirror
type ConfigStateEvent struct{ Config ConfigState }

// DataEvent carries any subset of entity, order, relation, search and stats fields
type DataEvent struct{ Payload DataPayload }

// DBStateEvent carries aggregate counts and the media path
type DBStateEvent struct{ Payload DBStatePayload }

// AudioStateEvent carries sparse playback fields
type AudioStateEvent struct{ Payload AudioStatePayload }

// BackendMessageEvent carries notification, error and progress slots
type BackendMessageEvent struct{ Payload BackendMessagePayload }

func (ConfigStateEvent) Name() EventName    { return EventConfigState }
func (DataEvent) Name() EventName           { return EventData }
func (DBStateEvent) Name() EventName        { return EventDBState }
func (AudioStateEvent) Name() EventName     { return EventAudioState }
func (BackendMessageEvent) Name() EventName { return EventBackendMessage }

// DecodeEvent turns a named JSON payload into a typed push event
func DecodeEvent(name EventName, payload json.RawMessage) (PushEvent, error) {
	var (
		ev  PushEvent
		err error
	)
	switch name {
	case EventConfigState:
		var e ConfigStateEvent
		err = json.Unmarshal(payload, &e.Config)
		ev = e
	case EventData:
		var e DataEvent
		err = json.Unmarshal(payload, &e.Payload)
		ev = e
	case EventDBState:
		var e DBStateEvent
		err = json.Unmarshal(payload, &e.Payload)
		ev = e
	case EventAudioState:
		var e AudioStateEvent
		err = json.Unmarshal(payload, &e.Payload)
		ev = e
	case EventBackendMessage:
		var e BackendMessageEvent
		err = json.Unmarshal(payload, &e.Payload)
		ev = e
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEvent)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrMalformedPayload, err)
	}
	return ev, nil
}

// EncodeEvent is the inverse of DecodeEvent
func EncodeEvent(ev PushEvent) (json.RawMessage, error) {
	var v any
	switch e := ev.(type) {
	case ConfigStateEvent:
		v = e.Config
	case DataEvent:
		v = e.Payload
	case DBStateEvent:
		v = e.Payload
	case AudioStateEvent:
		v = e.Payload
	case BackendMessageEvent:
		v = e.Payload
	default:
		return nil, fmt.Errorf("%T: %w", ev, ErrUnknownEvent)
	}
	return json.Marshal(v)
}

// ArtistAlbums is the wire form of one artist→albums relation entry
type ArtistAlbums struct {
	ID     int64   `json:"id"`
	Albums []int64 `json:"albums"`
}

// OwnerTracks is the wire form of one artist/composer/genre→tracks relation entry
type OwnerTracks struct {
	ID     int64   `json:"id"`
	Tracks []int64 `json:"tracks"`
}

// DataPayload is the sparse data push event. Absent fields decode to nil.
type DataPayload struct {
	Queue          []int64        `json:"queue"`
	Search         *SearchResults `json:"search"`
	Tracks         []Track        `json:"tracks"`
	Albums         []Album        `json:"albums"`
	Artists        []Artist       `json:"artists"`
	ArtistAlbums   []ArtistAlbums `json:"artist_albums"`
	ArtistTracks   []OwnerTracks  `json:"artist_tracks"`
	Composers      []Composer     `json:"composers"`
	ComposerTracks []OwnerTracks  `json:"composer_tracks"`
	Covers         []Cover        `json:"covers"`
	Genres         []Genre        `json:"genres"`
	GenreTracks    []OwnerTracks  `json:"genre_tracks"`
	Playlists      []Playlist     `json:"playlists"`
	SpaceTime      *SpaceTime     `json:"spacetime"`
	AlbumsOrder    *OrderPair     `json:"albums_order"`
	ArtistsOrder   *OrderPair     `json:"artists_order"`
	ComposersOrder *OrderPair     `json:"composers_order"`
	GenresOrder    *OrderPair     `json:"genres_order"`
	PlaylistsOrder *OrderPair     `json:"playlists_order"`
	TracksOrder    *OrderPair     `json:"tracks_order"`
}
