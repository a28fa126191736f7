package match

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/clubhouse/go/internal/ledger"
	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/outbox"
)

// PreviewFallback is returned whenever the copywriter collaborator fails or
// produces nothing. Match mutation never waits on that call.
const PreviewFallback = "Match day. Come support the club!"

// MatchRepository defines what the app layer needs from the entity store
type MatchRepository interface {
	AddMatch(m models.Match) (models.Match, error)
	GetMatch(id uuid.UUID) (*models.Match, error)
	UpdateMatch(m models.Match) error
	DeleteMatch(id uuid.UUID) error
}

// Copywriter generates marketing copy for a match. Implementations call an
// external service and fail independently of the core.
type Copywriter interface {
	MatchPreview(ctx context.Context, m models.Match) (string, error)
}

// App handles match scheduling and the event ledger
type App struct {
	repo       MatchRepository
	publisher  outbox.Publisher
	copywriter Copywriter
	clock      clockwork.Clock
}

// NewApp creates a new match App
func NewApp(repo MatchRepository, publisher outbox.Publisher, copywriter Copywriter, clock clockwork.Clock) *App {
	return &App{
		repo:       repo,
		publisher:  publisher,
		copywriter: copywriter,
		clock:      clock,
	}
}

// CreateMatch schedules a new match with validation
func (a *App) CreateMatch(req CreateMatchRequest) (*models.Match, error) {
	if err := a.validateCreateMatchRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created, err := a.repo.AddMatch(models.Match{
		Opponent:    req.Opponent,
		KickoffAt:   req.KickoffAt,
		Venue:       req.Venue,
		Competition: req.Competition,
		Department:  req.Department,
		Discipline:  req.Discipline,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().
		Str("match_id", created.ID.String()).
		Str("opponent", created.Opponent).
		Str("department", string(created.Department)).
		Str("discipline", string(created.Discipline)).
		Msg("match scheduled")
	return &created, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(id uuid.UUID) (*models.Match, error) {
	m, err := a.repo.GetMatch(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// UpdateMatch applies the non-nil request fields to an open match
func (a *App) UpdateMatch(id uuid.UUID, req UpdateMatchRequest) (*models.Match, error) {
	m, err := a.repo.GetMatch(id)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}
	if m.Finished {
		return nil, ledger.ErrMatchFinished
	}

	if req.Opponent != nil {
		m.Opponent = *req.Opponent
	}
	if req.KickoffAt != nil {
		m.KickoffAt = *req.KickoffAt
	}
	if req.Venue != nil {
		m.Venue = req.Venue
	}
	if req.ScoreAway != nil {
		m.ScoreAway = *req.ScoreAway
	}

	if err := a.repo.UpdateMatch(*m); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	log.Info().Str("match_id", m.ID.String()).Msg("match updated")
	return m, nil
}

// DeleteMatch removes a match and its event log
func (a *App) DeleteMatch(id uuid.UUID) error {
	if err := a.repo.DeleteMatch(id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	log.Info().Str("match_id", id.String()).Msg("match deleted")
	return nil
}

// RecordEvent validates and appends a ledger entry, then writes the match
// back as one unit. The event append and the (derived) score move together
// because the score is computed from the log it just joined.
func (a *App) RecordEvent(ctx context.Context, req RecordEventRequest) (*models.Match, error) {
	minute, err := a.validateRecordEventRequest(req)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	m, err := a.repo.GetMatch(req.MatchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}

	ev := models.MatchEvent{
		Type:     req.Type,
		PlayerID: req.PlayerID,
		Minute:   minute,
	}
	if err := ledger.Append(m, ev); err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	if err := a.repo.UpdateMatch(*m); err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	a.announce(ctx, m.ID, outbox.EventTypeEventRecorded, outbox.EventRecordedPayload{
		Type:      string(ev.Type),
		PlayerID:  ev.PlayerID.String(),
		Minute:    ev.Minute,
		HomeScore: m.HomeScore(),
		AwayScore: m.ScoreAway,
	})

	log.Info().
		Str("match_id", m.ID.String()).
		Str("type", string(ev.Type)).
		Int("minute", ev.Minute).
		Int("home_score", m.HomeScore()).
		Msg("event recorded")
	return m, nil
}

// RemoveEvent deletes the ledger entry at the requested index. The index
// addresses the insertion-ordered log, not the minute-sorted display order.
func (a *App) RemoveEvent(ctx context.Context, req RemoveEventRequest) (*models.Match, error) {
	m, err := a.repo.GetMatch(req.MatchID)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}

	removed, err := ledger.Remove(m, req.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to remove event: %w", err)
	}

	if err := a.repo.UpdateMatch(*m); err != nil {
		return nil, fmt.Errorf("failed to remove event: %w", err)
	}

	a.announce(ctx, m.ID, outbox.EventTypeEventRemoved, outbox.EventRemovedPayload{
		Index:     req.Index,
		Type:      string(removed.Type),
		HomeScore: m.HomeScore(),
		AwayScore: m.ScoreAway,
	})

	log.Info().
		Str("match_id", m.ID.String()).
		Int("index", req.Index).
		Str("type", string(removed.Type)).
		Msg("event removed")
	return m, nil
}

// FinalizeMatch closes the event log for good. There is no reopen.
func (a *App) FinalizeMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	m, err := a.repo.GetMatch(id)
	if err != nil {
		return nil, fmt.Errorf("match not found: %w", err)
	}

	if err := ledger.Finalize(m); err != nil {
		return nil, fmt.Errorf("failed to finalize match: %w", err)
	}
	finishedAt := a.clock.Now()
	m.FinishedAt = &finishedAt

	if err := a.repo.UpdateMatch(*m); err != nil {
		return nil, fmt.Errorf("failed to finalize match: %w", err)
	}

	a.announce(ctx, m.ID, outbox.EventTypeMatchFinalized, outbox.MatchFinalizedPayload{
		Opponent:  m.Opponent,
		HomeScore: m.HomeScore(),
		AwayScore: m.ScoreAway,
	})

	log.Info().
		Str("match_id", m.ID.String()).
		Int("home_score", m.HomeScore()).
		Int("away_score", m.ScoreAway).
		Msg("match finalized")
	return m, nil
}

// Timeline returns the event log in display order (minute ascending).
func (a *App) Timeline(id uuid.UUID) ([]models.MatchEvent, error) {
	m, err := a.repo.GetMatch(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return ledger.DisplayOrder(*m), nil
}

// Preview asks the copywriter collaborator for match-day copy. Any failure
// or empty response falls back to a fixed string.
func (a *App) Preview(ctx context.Context, id uuid.UUID) (string, error) {
	m, err := a.repo.GetMatch(id)
	if err != nil {
		return "", fmt.Errorf("failed to get match: %w", err)
	}

	if a.copywriter == nil {
		return PreviewFallback, nil
	}

	text, err := a.copywriter.MatchPreview(ctx, *m)
	if err != nil || text == "" {
		if err != nil {
			log.Warn().Err(err).Str("match_id", id.String()).Msg("copywriter failed, using fallback")
		}
		return PreviewFallback, nil
	}
	return text, nil
}

// announce publishes a ledger event best-effort. The local mutation has
// already been applied; a publish failure is logged and swallowed.
func (a *App) announce(ctx context.Context, matchID uuid.UUID, eventType string, payload interface{}) {
	if a.publisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("failed to marshal ledger event payload")
		return
	}

	event := outbox.LedgerEvent{
		ID:        uuid.New(),
		MatchID:   matchID,
		EventType: eventType,
		Payload:   data,
		CreatedAt: a.clock.Now(),
	}
	if err := a.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish ledger event")
	}
}

// Validation methods

func (a *App) validateCreateMatchRequest(req CreateMatchRequest) error {
	if req.Opponent == "" {
		return fmt.Errorf("opponent is required")
	}
	if err := a.validateCompetition(req.Competition); err != nil {
		return err
	}
	if err := a.validateDepartment(req.Department); err != nil {
		return err
	}
	return a.validateDiscipline(req.Discipline)
}

// validateRecordEventRequest returns the parsed minute on success. An empty
// player reference or an unparsable minute rejects the request with nothing
// written.
func (a *App) validateRecordEventRequest(req RecordEventRequest) (int, error) {
	if req.PlayerID == uuid.Nil {
		return 0, fmt.Errorf("player_id is required")
	}
	minute, err := strconv.Atoi(req.Minute)
	if err != nil {
		return 0, fmt.Errorf("invalid minute %q: %w", req.Minute, err)
	}
	if err := a.validateEventType(req.Type); err != nil {
		return 0, err
	}
	return minute, nil
}

func (a *App) validateEventType(eventType models.EventType) error {
	switch eventType {
	case models.EventGoal, models.EventAssist, models.EventCardYellow, models.EventCardRed:
		return nil
	default:
		return fmt.Errorf("invalid event type: %s", eventType)
	}
}

func (a *App) validateCompetition(competition models.CompetitionType) error {
	switch competition {
	case models.CompetitionOfficial, models.CompetitionFriendly:
		return nil
	default:
		return fmt.Errorf("invalid competition type: %s", competition)
	}
}

func (a *App) validateDepartment(department models.Department) error {
	switch department {
	case models.DepartmentMale, models.DepartmentFemale, models.DepartmentYouth:
		return nil
	default:
		return fmt.Errorf("invalid department: %s", department)
	}
}

func (a *App) validateDiscipline(discipline models.Discipline) error {
	switch discipline {
	case models.DisciplineFootball, models.DisciplineFutsal, models.DisciplineSevenASide:
		return nil
	default:
		return fmt.Errorf("invalid discipline: %s", discipline)
	}
}
