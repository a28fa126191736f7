package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LedgerEvent represents a match ledger change announced to subscribers
type LedgerEvent struct {
	ID        uuid.UUID       `json:"id"`
	MatchID   uuid.UUID       `json:"match_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Ledger event types
const (
	EventTypeEventRecorded  = "EventRecorded"
	EventTypeEventRemoved   = "EventRemoved"
	EventTypeMatchFinalized = "MatchFinalized"
)

// EventRecordedPayload carries the appended ledger entry
type EventRecordedPayload struct {
	Type      string `json:"type"`
	PlayerID  string `json:"player_id"`
	Minute    int    `json:"minute"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

// EventRemovedPayload carries the removed ledger entry and its index
type EventRemovedPayload struct {
	Index     int    `json:"index"`
	Type      string `json:"type"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

// MatchFinalizedPayload carries the authoritative final score
type MatchFinalizedPayload struct {
	Opponent  string `json:"opponent"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}
