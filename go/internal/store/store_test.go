package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

func newTestStore() *Store {
	return New(clockwork.NewFakeClock())
}

func TestAddPlayer_AssignsIdentifier(t *testing.T) {
	s := newTestStore()

	p, err := s.AddPlayer(models.Player{Name: "Ana", Department: models.DepartmentFemale})
	if err != nil {
		t.Fatalf("AddPlayer() error = %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("AddPlayer() did not assign an identifier")
	}
	if p.CreatedAt.IsZero() {
		t.Error("AddPlayer() did not stamp creation time")
	}

	got, err := s.GetPlayer(p.ID)
	if err != nil {
		t.Fatalf("GetPlayer() error = %v", err)
	}
	if got.Name != "Ana" {
		t.Errorf("GetPlayer().Name = %q, want %q", got.Name, "Ana")
	}
}

func TestUpdatePlayer_ReplacesByIdentifier(t *testing.T) {
	s := newTestStore()
	p, _ := s.AddPlayer(models.Player{Name: "Ana", JerseyNumber: 7})

	p.JerseyNumber = 10
	if err := s.UpdatePlayer(p); err != nil {
		t.Fatalf("UpdatePlayer() error = %v", err)
	}

	got, _ := s.GetPlayer(p.ID)
	if got.JerseyNumber != 10 {
		t.Errorf("JerseyNumber = %d, want 10", got.JerseyNumber)
	}
}

func TestUpdatePlayer_UnknownIdentifier(t *testing.T) {
	s := newTestStore()
	s.AddPlayer(models.Player{Name: "Ana"})

	err := s.UpdatePlayer(models.Player{ID: uuid.New(), Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdatePlayer() error = %v, want ErrNotFound", err)
	}

	// Collection untouched
	snap := s.Snapshot()
	if len(snap.Players) != 1 || snap.Players[0].Name != "Ana" {
		t.Errorf("players = %+v, want single unchanged player", snap.Players)
	}
}

func TestDeletePlayer(t *testing.T) {
	s := newTestStore()
	p, _ := s.AddPlayer(models.Player{Name: "Ana"})
	keep, _ := s.AddPlayer(models.Player{Name: "Bea"})

	if err := s.DeletePlayer(p.ID); err != nil {
		t.Fatalf("DeletePlayer() error = %v", err)
	}
	if _, err := s.GetPlayer(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPlayer(deleted) error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetPlayer(keep.ID); err != nil {
		t.Errorf("GetPlayer(kept) error = %v", err)
	}

	if err := s.DeletePlayer(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeletePlayer(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s := newTestStore()
	m, _ := s.AddMatch(models.Match{
		Opponent:   "Rivals",
		Department: models.DepartmentMale,
		Discipline: models.DisciplineFootball,
		Events: []models.MatchEvent{
			{Type: models.EventGoal, PlayerID: uuid.New(), Minute: 12},
		},
	})

	snap := s.Snapshot()
	snap.Matches[0].Events[0].Minute = 99
	snap.Matches[0].Opponent = "Tampered"

	got, _ := s.GetMatch(m.ID)
	if got.Opponent != "Rivals" {
		t.Errorf("Opponent = %q after snapshot tamper, want %q", got.Opponent, "Rivals")
	}
	if got.Events[0].Minute != 12 {
		t.Errorf("Events[0].Minute = %d after snapshot tamper, want 12", got.Events[0].Minute)
	}
}

func TestStaffRoundTrip(t *testing.T) {
	s := newTestStore()
	st, err := s.AddStaff(models.Staff{Name: "Coach", Role: models.StaffRoleHeadCoach, Department: models.DepartmentYouth})
	if err != nil {
		t.Fatalf("AddStaff() error = %v", err)
	}

	st.Role = models.StaffRoleManager
	if err := s.UpdateStaff(st); err != nil {
		t.Fatalf("UpdateStaff() error = %v", err)
	}

	got, _ := s.GetStaff(st.ID)
	if got.Role != models.StaffRoleManager {
		t.Errorf("Role = %s, want %s", got.Role, models.StaffRoleManager)
	}

	if err := s.DeleteStaff(st.ID); err != nil {
		t.Fatalf("DeleteStaff() error = %v", err)
	}
	if _, err := s.GetStaff(st.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetStaff(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestLoad_HydratesAllCollections(t *testing.T) {
	s := newTestStore()
	s.AddPlayer(models.Player{Name: "Old"})

	s.Load(Snapshot{
		Players: []models.Player{{ID: uuid.New(), Name: "New"}},
		Matches: []models.Match{{ID: uuid.New(), Opponent: "Rivals"}},
	})

	snap := s.Snapshot()
	if len(snap.Players) != 1 || snap.Players[0].Name != "New" {
		t.Errorf("players after Load = %+v", snap.Players)
	}
	if len(snap.Staff) != 0 {
		t.Errorf("staff after Load = %+v, want empty", snap.Staff)
	}
	if len(snap.Matches) != 1 {
		t.Errorf("matches after Load = %+v", snap.Matches)
	}
}
