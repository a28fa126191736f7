package stats

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

func TestCareer_CountsByType(t *testing.T) {
	playerID := uuid.New()
	otherID := uuid.New()

	matches := []models.Match{
		{
			ID: uuid.New(),
			Events: []models.MatchEvent{
				{Type: models.EventGoal, PlayerID: playerID, Minute: 10},
				{Type: models.EventGoal, PlayerID: playerID, Minute: 40},
				{Type: models.EventAssist, PlayerID: playerID, Minute: 60},
				{Type: models.EventGoal, PlayerID: otherID, Minute: 70},
			},
		},
		{
			ID: uuid.New(),
			Events: []models.MatchEvent{
				{Type: models.EventCardYellow, PlayerID: playerID, Minute: 20},
			},
		},
		{
			ID: uuid.New(),
			Events: []models.MatchEvent{
				{Type: models.EventGoal, PlayerID: otherID, Minute: 5},
			},
		},
	}

	got := Career(playerID, matches)
	want := models.PlayerStats{Goals: 2, Assists: 1, Matches: 2}
	if got != want {
		t.Errorf("Career() = %+v, want %+v", got, want)
	}
}

func TestCareer_NoEvents(t *testing.T) {
	got := Career(uuid.New(), []models.Match{{ID: uuid.New()}})
	if got != (models.PlayerStats{}) {
		t.Errorf("Career() = %+v, want zero totals", got)
	}
}

func TestCareer_OrderIndependent(t *testing.T) {
	playerID := uuid.New()

	matches := make([]models.Match, 0, 6)
	for i := 0; i < 6; i++ {
		matches = append(matches, models.Match{
			ID: uuid.New(),
			Events: []models.MatchEvent{
				{Type: models.EventGoal, PlayerID: playerID, Minute: i * 10},
				{Type: models.EventAssist, PlayerID: playerID, Minute: i*10 + 5},
			},
		})
	}
	baseline := Career(playerID, matches)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]models.Match(nil), matches...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		for i := range shuffled {
			events := append([]models.MatchEvent(nil), shuffled[i].Events...)
			rng.Shuffle(len(events), func(a, b int) {
				events[a], events[b] = events[b], events[a]
			})
			shuffled[i].Events = events
		}

		if got := Career(playerID, shuffled); got != baseline {
			t.Fatalf("trial %d: Career() = %+v, want %+v (order must not matter)", trial, got, baseline)
		}
	}
}

func TestCareer_Idempotent(t *testing.T) {
	playerID := uuid.New()
	matches := []models.Match{
		{
			ID: uuid.New(),
			Events: []models.MatchEvent{
				{Type: models.EventGoal, PlayerID: playerID, Minute: 10},
			},
		},
	}

	first := Career(playerID, matches)
	second := Career(playerID, matches)
	if first != second {
		t.Errorf("Career() not idempotent: %+v vs %+v", first, second)
	}
}

func TestSyncPlayer_RefreshesCache(t *testing.T) {
	p := models.Player{ID: uuid.New(), Stats: models.PlayerStats{Goals: 99}}
	matches := []models.Match{
		{
			ID: uuid.New(),
			Events: []models.MatchEvent{
				{Type: models.EventGoal, PlayerID: p.ID, Minute: 10},
			},
		},
	}

	SyncPlayer(&p, matches)

	want := models.PlayerStats{Goals: 1, Matches: 1}
	if p.Stats != want {
		t.Errorf("Stats after sync = %+v, want %+v", p.Stats, want)
	}
}
