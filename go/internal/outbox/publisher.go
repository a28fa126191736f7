package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// Publisher announces ledger events to interested consumers. Publishing is
// best-effort: the ledger mutation it describes has already been applied
// locally, and a publish failure must never roll it back.
type Publisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
}

// JetStreamPublisher publishes ledger events to NATS JetStream
type JetStreamPublisher struct {
	js            jetstream.JetStream
	subjectPrefix string
}

// NewJetStreamPublisher creates a publisher over an existing JetStream
// context. Subjects are <prefix>.match.<event_type>.
func NewJetStreamPublisher(js jetstream.JetStream, subjectPrefix string) *JetStreamPublisher {
	return &JetStreamPublisher{
		js:            js,
		subjectPrefix: subjectPrefix,
	}
}

func (p *JetStreamPublisher) Publish(ctx context.Context, event LedgerEvent) error {
	subject := fmt.Sprintf("%s.match.%s", p.subjectPrefix, event.EventType)

	messageBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, messageBytes); err != nil {
		return fmt.Errorf("failed to publish ledger event: %w", err)
	}

	log.Debug().
		Str("subject", subject).
		Str("match_id", event.MatchID.String()).
		Msg("ledger event published")
	return nil
}

// NopPublisher discards events, used in tests and when NATS is not
// configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event LedgerEvent) error {
	log.Debug().
		Str("event_type", event.EventType).
		Str("match_id", event.MatchID.String()).
		Msg("ledger event dropped (no publisher configured)")
	return nil
}
