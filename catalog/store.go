package catalog

import (
	"sync/atomic"
	"time"

	"tripx/models"
)

// Source loads raw destination rows from some backing store. Loading
// validates required columns; preprocessing happens after load.
type Source interface {
	Load() ([]models.Destination, error)
	Name() string
}

// Snapshot is one immutable, fully preprocessed catalog. Once published
// it is never written again; a refresh builds a whole new snapshot.
type Snapshot struct {
	Destinations []models.Destination
	Source       string
	LoadedAt     time.Time
}

// Store publishes catalog snapshots to readers. Writers build a complete
// snapshot and swap it in atomically; readers always see a consistent
// catalog with normalization bounds frozen at its build time.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns an empty store; Current returns nil until the first Swap.
func NewStore() *Store {
	return &Store{}
}

// Swap publishes a new snapshot.
func (s *Store) Swap(snap *Snapshot) {
	s.current.Store(snap)
}

// Current returns the latest published snapshot, or nil before first load.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}
