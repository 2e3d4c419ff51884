// Package journal records push events to a bbolt file and replays them.
//
// Each session is a nested bucket under "events" keyed by the session's
// UUID. Entries are keyed by a big-endian sequence number, so a cursor walk
// returns them in arrival order. Values are inbound wire frames.
package journal

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/muse/internal/backend"
	"github.com/mmcdole/muse/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketEvents   = []byte("events")
	bucketSessions = []byte("sessions")
)

// SessionInfo describes one recorded session
type SessionInfo struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Events    uint64    `json:"events"`
}

// Journal is an open journal file
type Journal struct {
	db *bolt.DB
}

// Open opens or creates the journal at path
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketEvents, bucketSessions} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{db: db}, nil
}

// Close closes the journal file
func (j *Journal) Close() error {
	return j.db.Close()
}

// Recorder appends events to one session
type Recorder struct {
	db *bolt.DB
	mu sync.Mutex

	info SessionInfo
}

// NewSession starts a new session with a fresh id
func (j *Journal) NewSession(now time.Time) (*Recorder, error) {
	info := SessionInfo{ID: uuid.NewString(), StartedAt: now.UTC()}

	err := j.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.Bucket(bucketEvents).CreateBucket([]byte(info.ID)); err != nil {
			return err
		}
		return putInfo(tx, info)
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &Recorder{db: j.db, info: info}, nil
}

// ID returns the session id
func (r *Recorder) ID() string { return r.info.ID }

// Record appends ev
func (r *Recorder) Record(ev domain.PushEvent) error {
	frame, err := backend.EncodeEvent(ev)
	if err != nil {
		return fmt.Errorf("record %s: %w", ev.Name(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEvents).Bucket([]byte(r.info.ID))
		if b == nil {
			return fmt.Errorf("session %s: %w", r.info.ID, domain.ErrJournalNotFound)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(seqKey(seq), frame); err != nil {
			return err
		}
		r.info.Events = seq
		return putInfo(tx, r.info)
	})
}

// Sessions lists recorded sessions, oldest first
func (j *Journal) Sessions() ([]SessionInfo, error) {
	var out []SessionInfo
	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).ForEach(func(_, v []byte) error {
			var info SessionInfo
			if err := json.Unmarshal(v, &info); err != nil {
				return err
			}
			out = append(out, info)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, k int) bool {
		return out[i].StartedAt.Before(out[k].StartedAt)
	})
	return out, nil
}

// Replay calls fn with every event of session id, in recorded order.
// It stops at the first error fn returns.
func (j *Journal) Replay(id string, fn func(domain.PushEvent) error) error {
	// Decode inside the transaction but call fn outside it, so fn may
	// record into the same journal.
	var events []domain.PushEvent
	err := j.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEvents).Bucket([]byte(id))
		if b == nil {
			return fmt.Errorf("session %s: %w", id, domain.ErrJournalNotFound)
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			ev, err := backend.DecodeEvent(v)
			if err != nil {
				return fmt.Errorf("entry %d: %w", binary.BigEndian.Uint64(k), err)
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, ev := range events {
		if err := fn(ev); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a session and its events
func (j *Journal) Delete(id string) error {
	return j.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketEvents).DeleteBucket([]byte(id)); err != nil {
			if errors.Is(err, bolt.ErrBucketNotFound) {
				return fmt.Errorf("session %s: %w", id, domain.ErrJournalNotFound)
			}
			return err
		}
		return tx.Bucket(bucketSessions).Delete([]byte(id))
	})
}

func putInfo(tx *bolt.Tx, info SessionInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketSessions).Put([]byte(info.ID), data)
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
