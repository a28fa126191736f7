package models

import (
	"time"

	"github.com/google/uuid"
)

// Match represents a scheduled or played fixture against an opponent.
//
// The home score is not stored. It is derived from the event log (one GOAL
// event equals one home goal), so the log and the score can never drift
// apart. The away score has no deriving source (opponent events are not
// tracked) and is entered directly.
type Match struct {
	ID          uuid.UUID       `json:"id"`
	Opponent    string          `json:"opponent"`
	KickoffAt   time.Time       `json:"kickoff_at"`
	Venue       *string         `json:"venue,omitempty"`
	Competition CompetitionType `json:"competition"`
	Department  Department      `json:"department"`
	Discipline  Discipline      `json:"discipline"`

	// Events is the ledger: append-mostly, insertion-ordered. Removal is
	// by index, so the stored order must never be rewritten.
	Events []MatchEvent `json:"events"`

	ScoreAway  int        `json:"score_away"`
	Finished   bool       `json:"finished"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// HomeScore returns the derived home score: the count of GOAL events in the
// ledger.
func (m Match) HomeScore() int {
	goals := 0
	for _, ev := range m.Events {
		if ev.Type == EventGoal {
			goals++
		}
	}
	return goals
}

// MatchEvent is one entry in a match's event ledger. Events carry no
// identifier; they are addressed by position in the insertion-ordered log.
type MatchEvent struct {
	Type     EventType `json:"type"`
	PlayerID uuid.UUID `json:"player_id"`
	Minute   int       `json:"minute"`
}

// EventType represents the kind of ledger entry
type EventType string

const (
	EventGoal       EventType = "GOAL"
	EventAssist     EventType = "ASSIST"
	EventCardYellow EventType = "CARD_YELLOW"
	EventCardRed    EventType = "CARD_RED"
)

// CompetitionType distinguishes official fixtures from friendlies
type CompetitionType string

const (
	CompetitionOfficial CompetitionType = "OFFICIAL"
	CompetitionFriendly CompetitionType = "FRIENDLY"
)
