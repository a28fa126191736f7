package ledger

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

func openMatch() models.Match {
	return models.Match{
		ID:         uuid.New(),
		Opponent:   "Rivals",
		Department: models.DepartmentMale,
		Discipline: models.DisciplineFootball,
	}
}

func TestAppend_DerivedScoreTracksGoalCount(t *testing.T) {
	m := openMatch()
	playerID := uuid.New()

	steps := []struct {
		event     models.MatchEvent
		wantHome  int
		wantCount int
	}{
		{models.MatchEvent{Type: models.EventGoal, PlayerID: playerID, Minute: 10}, 1, 1},
		{models.MatchEvent{Type: models.EventAssist, PlayerID: playerID, Minute: 15}, 1, 2},
		{models.MatchEvent{Type: models.EventCardYellow, PlayerID: playerID, Minute: 30}, 1, 3},
		{models.MatchEvent{Type: models.EventGoal, PlayerID: playerID, Minute: 80}, 2, 4},
	}

	for i, step := range steps {
		if err := Append(&m, step.event); err != nil {
			t.Fatalf("step %d: Append() error = %v", i, err)
		}
		if got := m.HomeScore(); got != step.wantHome {
			t.Errorf("step %d: HomeScore() = %d, want %d", i, got, step.wantHome)
		}
		if got := len(m.Events); got != step.wantCount {
			t.Errorf("step %d: len(Events) = %d, want %d", i, got, step.wantCount)
		}
	}
}

func TestRemove_DerivedScoreTracksGoalCount(t *testing.T) {
	m := openMatch()
	playerID := uuid.New()
	Append(&m, models.MatchEvent{Type: models.EventGoal, PlayerID: playerID, Minute: 10})
	Append(&m, models.MatchEvent{Type: models.EventAssist, PlayerID: playerID, Minute: 15})
	Append(&m, models.MatchEvent{Type: models.EventGoal, PlayerID: playerID, Minute: 70})

	removed, err := Remove(&m, 0)
	if err != nil {
		t.Fatalf("Remove(0) error = %v", err)
	}
	if removed.Type != models.EventGoal {
		t.Errorf("Remove(0) removed %s, want %s", removed.Type, models.EventGoal)
	}
	if got := m.HomeScore(); got != 1 {
		t.Errorf("HomeScore() after goal removal = %d, want 1", got)
	}

	// Removing a non-goal event leaves the score untouched
	if _, err := Remove(&m, 0); err != nil {
		t.Fatalf("Remove(0) error = %v", err)
	}
	if got := m.HomeScore(); got != 1 {
		t.Errorf("HomeScore() after assist removal = %d, want 1", got)
	}
	if len(m.Events) != 1 || m.Events[0].Minute != 70 {
		t.Errorf("remaining events = %+v, want single goal at minute 70", m.Events)
	}
}

func TestRemove_IndexOutOfRange(t *testing.T) {
	m := openMatch()
	Append(&m, models.MatchEvent{Type: models.EventGoal, PlayerID: uuid.New(), Minute: 10})

	for _, index := range []int{-1, 1, 99} {
		if _, err := Remove(&m, index); !errors.Is(err, ErrEventIndex) {
			t.Errorf("Remove(%d) error = %v, want ErrEventIndex", index, err)
		}
	}
	if len(m.Events) != 1 {
		t.Errorf("len(Events) = %d, want 1 (log must be untouched)", len(m.Events))
	}
}

func TestRemoveThenReAdd_AppendsToEnd(t *testing.T) {
	m := openMatch()
	playerID := uuid.New()
	Append(&m, models.MatchEvent{Type: models.EventGoal, PlayerID: playerID, Minute: 10})
	Append(&m, models.MatchEvent{Type: models.EventAssist, PlayerID: playerID, Minute: 15})

	removed, err := Remove(&m, 0)
	if err != nil {
		t.Fatalf("Remove(0) error = %v", err)
	}
	if err := Append(&m, removed); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// The log is append-only, not a sorted set: the re-added event lands at
	// the end, not back at its original position.
	if m.Events[0].Type != models.EventAssist || m.Events[1].Type != models.EventGoal {
		t.Errorf("log order = [%s %s], want [ASSIST GOAL]", m.Events[0].Type, m.Events[1].Type)
	}
}

func TestFinalize_TerminalState(t *testing.T) {
	m := openMatch()
	Append(&m, models.MatchEvent{Type: models.EventGoal, PlayerID: uuid.New(), Minute: 10})

	if err := Finalize(&m); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if !m.Finished {
		t.Fatal("Finished = false after Finalize()")
	}

	// Second finalize is rejected but leaves state identical
	if err := Finalize(&m); !errors.Is(err, ErrMatchFinished) {
		t.Errorf("second Finalize() error = %v, want ErrMatchFinished", err)
	}
	if !m.Finished {
		t.Error("Finished flipped back after second Finalize()")
	}

	// No log mutation succeeds after finalization
	if err := Append(&m, models.MatchEvent{Type: models.EventGoal, PlayerID: uuid.New(), Minute: 90}); !errors.Is(err, ErrMatchFinished) {
		t.Errorf("Append() after finalize error = %v, want ErrMatchFinished", err)
	}
	if _, err := Remove(&m, 0); !errors.Is(err, ErrMatchFinished) {
		t.Errorf("Remove() after finalize error = %v, want ErrMatchFinished", err)
	}
	if len(m.Events) != 1 || m.HomeScore() != 1 {
		t.Errorf("log mutated after finalize: events=%d score=%d", len(m.Events), m.HomeScore())
	}
}

func TestDisplayOrder_DoesNotMutateStoredOrder(t *testing.T) {
	m := openMatch()
	playerID := uuid.New()
	Append(&m, models.MatchEvent{Type: models.EventGoal, PlayerID: playerID, Minute: 80})
	Append(&m, models.MatchEvent{Type: models.EventAssist, PlayerID: playerID, Minute: 5})
	Append(&m, models.MatchEvent{Type: models.EventCardYellow, PlayerID: playerID, Minute: 40})

	display := DisplayOrder(m)

	wantMinutes := []int{5, 40, 80}
	for i, want := range wantMinutes {
		if display[i].Minute != want {
			t.Errorf("display[%d].Minute = %d, want %d", i, display[i].Minute, want)
		}
	}

	// Stored order must stay insertion order or removal-by-index breaks
	storedMinutes := []int{80, 5, 40}
	for i, want := range storedMinutes {
		if m.Events[i].Minute != want {
			t.Errorf("stored[%d].Minute = %d, want %d", i, m.Events[i].Minute, want)
		}
	}
}
