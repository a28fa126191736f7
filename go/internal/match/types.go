package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

// CreateMatchRequest represents the data needed to schedule a match
type CreateMatchRequest struct {
	Opponent    string                 `json:"opponent"`
	KickoffAt   time.Time              `json:"kickoff_at"`
	Venue       *string                `json:"venue,omitempty"`
	Competition models.CompetitionType `json:"competition"`
	Department  models.Department      `json:"department"`
	Discipline  models.Discipline      `json:"discipline"`
}

// UpdateMatchRequest represents the fields that can be changed on an open
// match. Nil fields are left untouched. The away score is entered directly
// here; it has no deriving event source.
type UpdateMatchRequest struct {
	Opponent  *string    `json:"opponent,omitempty"`
	KickoffAt *time.Time `json:"kickoff_at,omitempty"`
	Venue     *string    `json:"venue,omitempty"`
	ScoreAway *int       `json:"score_away,omitempty"`
}

// RecordEventRequest represents a ledger entry to append. Minute arrives as
// the raw form string and is parsed here; an unparsable value rejects the
// whole request before anything is written.
type RecordEventRequest struct {
	MatchID  uuid.UUID        `json:"match_id"`
	PlayerID uuid.UUID        `json:"player_id"`
	Minute   string           `json:"minute"`
	Type     models.EventType `json:"type"`
}

// RemoveEventRequest addresses a ledger entry by its position in the
// insertion-ordered log
type RemoveEventRequest struct {
	MatchID uuid.UUID `json:"match_id"`
	Index   int       `json:"index"`
}
