package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Order is a single sort key understood by the backend
type Order string

const (
	OrderByName         Order = "ByName"
	OrderByReleaseDate  Order = "ByReleaseDate"
	OrderByAddedDate    Order = "ByAddedDate"
	OrderByModifiedDate Order = "ByModifiedDate"
	OrderByArtist       Order = "ByArtist"
	OrderByAlbumArtist  Order = "ByAlbumArtist"
	OrderByComposer     Order = "ByComposer"
	OrderByAlbum        Order = "ByAlbum"
	OrderByGenre        Order = "ByGenre"
	OrderBySize         Order = "BySize"
	OrderByTime         Order = "ByTime"

	OrderByNameInverse         Order = "ByNameInverse"
	OrderByReleaseDateInverse  Order = "ByReleaseDateInverse"
	OrderByAddedDateInverse    Order = "ByAddedDateInverse"
	OrderByModifiedDateInverse Order = "ByModifiedDateInverse"
	OrderByArtistInverse       Order = "ByArtistInverse"
	OrderByAlbumArtistInverse  Order = "ByAlbumArtistInverse"
	OrderByComposerInverse     Order = "ByComposerInverse"
	OrderByAlbumInverse        Order = "ByAlbumInverse"
	OrderByGenreInverse        Order = "ByGenreInverse"
	OrderBySizeInverse         Order = "BySizeInverse"
	OrderByTimeInverse         Order = "ByTimeInverse"
)

const inverseSuffix = "Inverse"

// IsInverse reports whether the key sorts descending
func (o Order) IsInverse() bool {
	return strings.HasSuffix(string(o), inverseSuffix)
}

// Inverse returns the opposite direction of the same key
func (o Order) Inverse() Order {
	if o.IsInverse() {
		return Order(strings.TrimSuffix(string(o), inverseSuffix))
	}
	return o + inverseSuffix
}

// SortSpec is an ordered sequence of sort keys; the first key is primary
type SortSpec []Order

// Has reports whether the spec contains key o
func (s SortSpec) Has(o Order) bool {
	for _, k := range s {
		if k == o {
			return true
		}
	}
	return false
}

// Primary returns the leading key, or "" for an empty spec
func (s SortSpec) Primary() Order {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// IsAddedDateDescending reports whether the spec drives the recently-added view
func (s SortSpec) IsAddedDateDescending() bool {
	return s.Primary() == OrderByAddedDateInverse
}

// Equal compares two specs key by key
func (s SortSpec) Equal(other SortSpec) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (s SortSpec) Clone() SortSpec {
	if s == nil {
		return nil
	}
	out := make(SortSpec, len(s))
	copy(out, s)
	return out
}

// OrderPair is a (sort-specification, ordered-id-sequence) result from the backend.
// On the wire it is a two element array: [[orders...], [ids...]].
type OrderPair struct {
	Spec SortSpec
	IDs  []int64
}

// UnmarshalJSON decodes the two element array form
func (p *OrderPair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("order pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("order pair: want 2 elements, got %d: %w", len(raw), ErrMalformedPayload)
	}
	if err := json.Unmarshal(raw[0], &p.Spec); err != nil {
		return fmt.Errorf("order pair spec: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.IDs); err != nil {
		return fmt.Errorf("order pair ids: %w", err)
	}
	return nil
}

// MarshalJSON encodes the two element array form
func (p OrderPair) MarshalJSON() ([]byte, error) {
	spec := p.Spec
	if spec == nil {
		spec = SortSpec{}
	}
	ids := p.IDs
	if ids == nil {
		ids = []int64{}
	}
	return json.Marshal([]any{spec, ids})
}
