// internal/store/memory.go
//
// In-memory store for live game sessions.
//
// Characteristics:
//   - Stores *Entry values keyed by ID in a map.
//   - Map access is guarded by an RWMutex; each Entry carries its own mutex
//     so submissions to one session are serialized without blocking others.
//   - State is lost when the process restarts. Finished games are persisted
//     separately by the stats store.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

// ErrNotFound is returned for unknown IDs and for entries of other owners.
var ErrNotFound = errors.New("session not found")

// Kind separates free-play sessions from daily-challenge sessions.
type Kind string

const (
	KindClassic Kind = "classic"
	KindDaily   Kind = "daily"
)

// Entry is one live session and its bookkeeping.
type Entry struct {
	ID        string
	Owner     string
	Kind      Kind
	Date      string // daily only
	StartedAt time.Time

	mu      sync.Mutex
	session *game.Session
}

// NewEntry wraps s with a fresh ID.
func NewEntry(owner string, kind Kind, s *game.Session) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Owner:     owner,
		Kind:      kind,
		StartedAt: time.Now(),
		session:   s,
	}
}

// With runs fn while holding the entry lock.
func (e *Entry) With(fn func(s *game.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Store defines the persistence interface for live sessions.
type Store interface {
	// Save persists or replaces an entry.
	Save(ctx context.Context, e *Entry) error

	// Get retrieves an entry owned by owner.
	Get(ctx context.Context, id, owner string) (*Entry, error)

	// Delete removes an entry; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Reassign moves every entry of from to owner to, reporting how many moved.
	Reassign(ctx context.Context, from, to string) int

	// Prune removes entries started before cutoff and reports how many.
	Prune(ctx context.Context, cutoff time.Time) int
}

type memory struct {
	mu      sync.RWMutex      // guards entries
	entries map[string]*Entry // keyed by Entry.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Save(ctx context.Context, e *Entry) error {
	if e == nil || e.ID == "" {
		return errors.New("entry without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *memory) Get(ctx context.Context, id, owner string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if e.Owner != owner {
		return nil, ErrNotFound
	}
	return e, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *memory) Reassign(ctx context.Context, from, to string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.Owner == from {
			e.Owner = to
			n++
		}
	}
	return n
}

func (m *memory) Prune(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		if e.StartedAt.Before(cutoff) {
			delete(m.entries, id)
			n++
		}
	}
	return n
}
