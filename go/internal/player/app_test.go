package player

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/store"
)

type fakeCopywriter struct {
	text string
	err  error
}

func (c *fakeCopywriter) PlayerBio(ctx context.Context, p models.Player) (string, error) {
	return c.text, c.err
}

func newTestApp(t *testing.T) (*App, *store.Store) {
	t.Helper()
	s := store.New(clockwork.NewFakeClock())
	return NewApp(s, nil), s
}

func TestCreatePlayer(t *testing.T) {
	app, _ := newTestApp(t)

	created, err := app.CreatePlayer(CreatePlayerRequest{
		Name:         "Ana Costa",
		JerseyNumber: 9,
		Position:     models.PositionForward,
		Department:   models.DepartmentFemale,
	})
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("created player has no ID")
	}
	if created.Department != models.DepartmentFemale {
		t.Errorf("Department = %s, want FEMALE", created.Department)
	}
}

func TestCreatePlayer_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name string
		req  CreatePlayerRequest
	}{
		{"missing name", CreatePlayerRequest{Position: models.PositionForward, Department: models.DepartmentMale}},
		{"bad department", CreatePlayerRequest{Name: "x", Position: models.PositionForward, Department: models.Department("MIXED")}},
		{"bad position", CreatePlayerRequest{Name: "x", Position: models.Position("STRIKER"), Department: models.DepartmentMale}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := app.CreatePlayer(tt.req); err == nil {
				t.Fatal("CreatePlayer() error = nil, want validation error")
			}
		})
	}
}

func TestUpdatePlayer_PartialFields(t *testing.T) {
	app, _ := newTestApp(t)
	created, err := app.CreatePlayer(CreatePlayerRequest{
		Name:         "Ana Costa",
		JerseyNumber: 9,
		Position:     models.PositionForward,
		Department:   models.DepartmentFemale,
	})
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}

	number := 11
	updated, err := app.UpdatePlayer(created.ID, UpdatePlayerRequest{JerseyNumber: &number})
	if err != nil {
		t.Fatalf("UpdatePlayer() error = %v", err)
	}
	if updated.JerseyNumber != 11 {
		t.Errorf("JerseyNumber = %d, want 11", updated.JerseyNumber)
	}
	if updated.Name != "Ana Costa" {
		t.Errorf("Name = %q, untouched field changed", updated.Name)
	}
}

func TestUpdatePlayer_UnknownID(t *testing.T) {
	app, _ := newTestApp(t)
	name := "x"
	if _, err := app.UpdatePlayer(uuid.New(), UpdatePlayerRequest{Name: &name}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("UpdatePlayer() error = %v, want ErrNotFound", err)
	}
}

func TestCareerStats_RecomputesAndCaches(t *testing.T) {
	app, s := newTestApp(t)
	created, err := app.CreatePlayer(CreatePlayerRequest{
		Name:       "Ana Costa",
		Position:   models.PositionForward,
		Department: models.DepartmentFemale,
	})
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}

	other := uuid.New()
	addMatch := func(events ...models.MatchEvent) {
		t.Helper()
		if _, err := s.AddMatch(models.Match{
			Opponent:    "Rivals",
			Competition: models.CompetitionFriendly,
			Department:  models.DepartmentFemale,
			Discipline:  models.DisciplineFootball,
			Events:      events,
		}); err != nil {
			t.Fatalf("AddMatch() error = %v", err)
		}
	}
	addMatch(
		models.MatchEvent{Type: models.EventGoal, PlayerID: created.ID, Minute: 10},
		models.MatchEvent{Type: models.EventGoal, PlayerID: created.ID, Minute: 40},
		models.MatchEvent{Type: models.EventGoal, PlayerID: other, Minute: 70},
	)
	addMatch(
		models.MatchEvent{Type: models.EventAssist, PlayerID: created.ID, Minute: 5},
		models.MatchEvent{Type: models.EventCardYellow, PlayerID: created.ID, Minute: 30},
	)
	addMatch(
		models.MatchEvent{Type: models.EventGoal, PlayerID: other, Minute: 88},
	)

	totals, err := app.CareerStats(created.ID)
	if err != nil {
		t.Fatalf("CareerStats() error = %v", err)
	}
	want := models.PlayerStats{Goals: 2, Assists: 1, Matches: 2}
	if totals != want {
		t.Fatalf("CareerStats() = %+v, want %+v", totals, want)
	}

	stored, err := s.GetPlayer(created.ID)
	if err != nil {
		t.Fatalf("GetPlayer() error = %v", err)
	}
	if stored.Stats != want {
		t.Errorf("cached stats = %+v, want %+v", stored.Stats, want)
	}
}

func TestBio_FallsBackOnCopywriterFailure(t *testing.T) {
	s := store.New(clockwork.NewFakeClock())

	tests := []struct {
		name       string
		copywriter Copywriter
		want       string
	}{
		{"no copywriter configured", nil, BioFallback},
		{"copywriter error", &fakeCopywriter{err: fmt.Errorf("timeout")}, BioFallback},
		{"empty response", &fakeCopywriter{text: ""}, BioFallback},
		{"happy path", &fakeCopywriter{text: "Club legend in the making."}, "Club legend in the making."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(s, tt.copywriter)
			created, err := app.CreatePlayer(CreatePlayerRequest{
				Name:       "Ana Costa",
				Position:   models.PositionForward,
				Department: models.DepartmentFemale,
			})
			if err != nil {
				t.Fatalf("CreatePlayer() error = %v", err)
			}

			got, err := app.Bio(context.Background(), created.ID)
			if err != nil {
				t.Fatalf("Bio() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Bio() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreatePlayer_AcceptsFutsalPositions(t *testing.T) {
	app, _ := newTestApp(t)

	for _, position := range models.ValidPositions(models.DisciplineFutsal) {
		if _, err := app.CreatePlayer(CreatePlayerRequest{
			Name:       "Ana Costa",
			Position:   position,
			Department: models.DepartmentFemale,
		}); err != nil {
			t.Errorf("CreatePlayer(%s) error = %v", position, err)
		}
	}
}

func TestCareerStats_NoEvents(t *testing.T) {
	app, _ := newTestApp(t)
	created, err := app.CreatePlayer(CreatePlayerRequest{
		Name:       "Bruno Dias",
		Position:   models.PositionGoalkeeper,
		Department: models.DepartmentMale,
	})
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}

	totals, err := app.CareerStats(created.ID)
	if err != nil {
		t.Fatalf("CareerStats() error = %v", err)
	}
	if totals != (models.PlayerStats{}) {
		t.Errorf("CareerStats() = %+v, want zero totals", totals)
	}
}
