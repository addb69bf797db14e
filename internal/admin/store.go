package admin

import (
	"sync"
	"time"

	"github.com/festy23/tournament_portal/internal/model"
)

// Snapshot is the dashboard view model: every collection as last loaded.
type Snapshot struct {
	Teams       []model.Team       `json:"teams"`
	Tournaments []model.Tournament `json:"tournaments"`
	Matches     []model.Match      `json:"matches"`
	Players     []model.Player     `json:"players"`
	Standings   []model.Standing   `json:"standings"`
	Blogs       []model.BlogPost   `json:"blogs"`
	Rules       model.Rules        `json:"rules"`
	Admins      []model.Admin      `json:"admins"`
	LoadedAt    time.Time          `json:"loaded_at"`
}

// Team looks up a loaded team by id.
func (s Snapshot) Team(id string) (model.Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return model.Team{}, false
}

// Tournament looks up a loaded tournament by id.
func (s Snapshot) Tournament(id string) (model.Tournament, bool) {
	for _, t := range s.Tournaments {
		if t.ID == id {
			return t, true
		}
	}
	return model.Tournament{}, false
}

// Store holds the current Snapshot. Snapshots are replaced wholesale and
// never modified in place, so readers may keep the slices they get.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// Loaded reports whether any snapshot has been stored yet.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.snap.LoadedAt.IsZero()
}
