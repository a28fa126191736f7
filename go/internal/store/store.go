// Package store holds the canonical in-memory collections of the club:
// players, staff, and matches. All mutation funnels through it; every write
// replaces the affected collection wholesale so readers only ever observe a
// fully applied state.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

// ErrNotFound is returned when an identifier does not match any entity.
var ErrNotFound = errors.New("entity not found")

// Store is the single source of truth for club state. Identifiers are
// generated centrally here, never by callers.
type Store struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	players []models.Player
	staff   []models.Staff
	matches []models.Match
}

// New creates an empty Store. The clock stamps entity creation times.
func New(clock clockwork.Clock) *Store {
	return &Store{clock: clock}
}

// Snapshot is a deep copy of the full store state, safe for callers to read
// and fold over without holding any lock.
type Snapshot struct {
	Players []models.Player
	Staff   []models.Staff
	Matches []models.Match
}

// Snapshot returns a deep copy of all collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Players: make([]models.Player, len(s.players)),
		Staff:   make([]models.Staff, len(s.staff)),
		Matches: make([]models.Match, len(s.matches)),
	}
	for i, p := range s.players {
		snap.Players[i] = clonePlayer(p)
	}
	for i, st := range s.staff {
		snap.Staff[i] = cloneStaff(st)
	}
	for i, m := range s.matches {
		snap.Matches[i] = cloneMatch(m)
	}
	return snap
}

// Load replaces all collections at once, used to hydrate the store from the
// persistence collaborator at startup.
func (s *Store) Load(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make([]models.Player, len(snap.Players))
	for i, p := range snap.Players {
		s.players[i] = clonePlayer(p)
	}
	s.staff = make([]models.Staff, len(snap.Staff))
	for i, st := range snap.Staff {
		s.staff[i] = cloneStaff(st)
	}
	s.matches = make([]models.Match, len(snap.Matches))
	for i, m := range snap.Matches {
		s.matches[i] = cloneMatch(m)
	}
}

// AddPlayer assigns a fresh identifier and creation time, then appends the
// player to the collection. The stored copy is returned.
func (s *Store) AddPlayer(p models.Player) (models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = s.clock.Now()
	stored := clonePlayer(p)

	next := make([]models.Player, len(s.players)+1)
	copy(next, s.players)
	next[len(s.players)] = stored
	s.players = next

	return clonePlayer(stored), nil
}

// GetPlayer retrieves a player by identifier.
func (s *Store) GetPlayer(id uuid.UUID) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.players {
		if p.ID == id {
			out := clonePlayer(p)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// UpdatePlayer replaces the player with a matching identifier.
func (s *Store) UpdatePlayer(p models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Player, len(s.players))
	found := false
	for i, cur := range s.players {
		if cur.ID == p.ID {
			next[i] = clonePlayer(p)
			found = true
			continue
		}
		next[i] = cur
	}
	if !found {
		return ErrNotFound
	}
	s.players = next
	return nil
}

// DeletePlayer removes the player with a matching identifier.
func (s *Store) DeletePlayer(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Player, 0, len(s.players))
	found := false
	for _, cur := range s.players {
		if cur.ID == id {
			found = true
			continue
		}
		next = append(next, cur)
	}
	if !found {
		return ErrNotFound
	}
	s.players = next
	return nil
}

// AddStaff assigns a fresh identifier and creation time, then appends the
// staff member to the collection.
func (s *Store) AddStaff(st models.Staff) (models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.ID = uuid.New()
	st.CreatedAt = s.clock.Now()
	stored := cloneStaff(st)

	next := make([]models.Staff, len(s.staff)+1)
	copy(next, s.staff)
	next[len(s.staff)] = stored
	s.staff = next

	return cloneStaff(stored), nil
}

// GetStaff retrieves a staff member by identifier.
func (s *Store) GetStaff(id uuid.UUID) (*models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.staff {
		if st.ID == id {
			out := cloneStaff(st)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateStaff replaces the staff member with a matching identifier.
func (s *Store) UpdateStaff(st models.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Staff, len(s.staff))
	found := false
	for i, cur := range s.staff {
		if cur.ID == st.ID {
			next[i] = cloneStaff(st)
			found = true
			continue
		}
		next[i] = cur
	}
	if !found {
		return ErrNotFound
	}
	s.staff = next
	return nil
}

// DeleteStaff removes the staff member with a matching identifier.
func (s *Store) DeleteStaff(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Staff, 0, len(s.staff))
	found := false
	for _, cur := range s.staff {
		if cur.ID == id {
			found = true
			continue
		}
		next = append(next, cur)
	}
	if !found {
		return ErrNotFound
	}
	s.staff = next
	return nil
}

// AddMatch assigns a fresh identifier and appends the match to the
// collection.
func (s *Store) AddMatch(m models.Match) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.New()
	stored := cloneMatch(m)

	next := make([]models.Match, len(s.matches)+1)
	copy(next, s.matches)
	next[len(s.matches)] = stored
	s.matches = next

	return cloneMatch(stored), nil
}

// GetMatch retrieves a match by identifier.
func (s *Store) GetMatch(id uuid.UUID) (*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.matches {
		if m.ID == id {
			out := cloneMatch(m)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateMatch replaces the match with a matching identifier. The caller is
// expected to have mutated a copy obtained from GetMatch or Snapshot, so the
// event log and derived score are swapped in as one unit.
func (s *Store) UpdateMatch(m models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Match, len(s.matches))
	found := false
	for i, cur := range s.matches {
		if cur.ID == m.ID {
			next[i] = cloneMatch(m)
			found = true
			continue
		}
		next[i] = cur
	}
	if !found {
		return ErrNotFound
	}
	s.matches = next
	return nil
}

// DeleteMatch removes the match with a matching identifier.
func (s *Store) DeleteMatch(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Match, 0, len(s.matches))
	found := false
	for _, cur := range s.matches {
		if cur.ID == id {
			found = true
			continue
		}
		next = append(next, cur)
	}
	if !found {
		return ErrNotFound
	}
	s.matches = next
	return nil
}

func clonePlayer(p models.Player) models.Player {
	out := p
	out.Documents = append([]models.TeamDocument(nil), p.Documents...)
	out.Achievements = append([]string(nil), p.Achievements...)
	return out
}

func cloneStaff(st models.Staff) models.Staff {
	out := st
	out.Documents = append([]models.TeamDocument(nil), st.Documents...)
	return out
}

func cloneMatch(m models.Match) models.Match {
	out := m
	out.Events = append([]models.MatchEvent(nil), m.Events...)
	if m.Venue != nil {
		venue := *m.Venue
		out.Venue = &venue
	}
	if m.FinishedAt != nil {
		finishedAt := *m.FinishedAt
		out.FinishedAt = &finishedAt
	}
	return out
}
