// Package persistence is the remote table store collaborator. It offers
// read-all and insert-one per entity kind; every operation returns
// (data, error) and a non-nil error means the operation did not happen.
// The in-memory store stays the source of truth for the running session;
// callers must never treat a local mutation as durable unless the write
// here succeeded.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sqlc-dev/pqtype"

	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/sqlutil"
)

// Repository implements Postgres data access for all club entities
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new persistence repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ReadAllPlayers retrieves every stored player
func (r *Repository) ReadAllPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, jersey_number, position, birth_date, department,
		       documents, achievements, stats, created_at
		FROM players
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var (
			p            models.Player
			documents    pqtype.NullRawMessage
			achievements pqtype.NullRawMessage
			cachedStats  pqtype.NullRawMessage
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.JerseyNumber, &p.Position, &p.BirthDate,
			&p.Department, &documents, &achievements, &cachedStats, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		if err := fromRawMessage(documents, &p.Documents); err != nil {
			return nil, fmt.Errorf("failed to decode player documents: %w", err)
		}
		if err := fromRawMessage(achievements, &p.Achievements); err != nil {
			return nil, fmt.Errorf("failed to decode player achievements: %w", err)
		}
		if err := fromRawMessage(cachedStats, &p.Stats); err != nil {
			return nil, fmt.Errorf("failed to decode player stats: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return players, nil
}

// InsertPlayer stores one player
func (r *Repository) InsertPlayer(ctx context.Context, p models.Player) error {
	documents, err := toRawMessage(p.Documents)
	if err != nil {
		return fmt.Errorf("failed to encode player documents: %w", err)
	}
	achievements, err := toRawMessage(p.Achievements)
	if err != nil {
		return fmt.Errorf("failed to encode player achievements: %w", err)
	}
	cachedStats, err := toRawMessage(p.Stats)
	if err != nil {
		return fmt.Errorf("failed to encode player stats: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO players (id, name, jersey_number, position, birth_date, department,
		                     documents, achievements, stats, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			jersey_number = EXCLUDED.jersey_number,
			position = EXCLUDED.position,
			birth_date = EXCLUDED.birth_date,
			department = EXCLUDED.department,
			documents = EXCLUDED.documents,
			achievements = EXCLUDED.achievements,
			stats = EXCLUDED.stats`,
		p.ID, p.Name, p.JerseyNumber, p.Position, p.BirthDate, p.Department,
		documents, achievements, cachedStats, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// ReadAllStaff retrieves every stored staff member
func (r *Repository) ReadAllStaff(ctx context.Context) ([]models.Staff, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, role, department, documents, created_at
		FROM staff
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to read staff: %w", err)
	}
	defer rows.Close()

	var staff []models.Staff
	for rows.Next() {
		var (
			st        models.Staff
			documents pqtype.NullRawMessage
		)
		if err := rows.Scan(&st.ID, &st.Name, &st.Role, &st.Department, &documents, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		if err := fromRawMessage(documents, &st.Documents); err != nil {
			return nil, fmt.Errorf("failed to decode staff documents: %w", err)
		}
		staff = append(staff, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff: %w", err)
	}
	return staff, nil
}

// InsertStaff stores one staff member
func (r *Repository) InsertStaff(ctx context.Context, st models.Staff) error {
	documents, err := toRawMessage(st.Documents)
	if err != nil {
		return fmt.Errorf("failed to encode staff documents: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO staff (id, name, role, department, documents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			department = EXCLUDED.department,
			documents = EXCLUDED.documents`,
		st.ID, st.Name, st.Role, st.Department, documents, st.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert staff member: %w", err)
	}
	return nil
}

// ReadAllMatches retrieves every stored match
func (r *Repository) ReadAllMatches(ctx context.Context) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, opponent, kickoff_at, venue, competition, department, discipline,
		       events, score_away, finished, finished_at
		FROM matches
		ORDER BY kickoff_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var (
			m          models.Match
			venue      sql.NullString
			events     pqtype.NullRawMessage
			finishedAt sql.NullTime
		)
		if err := rows.Scan(&m.ID, &m.Opponent, &m.KickoffAt, &venue, &m.Competition,
			&m.Department, &m.Discipline, &events, &m.ScoreAway, &m.Finished, &finishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.Venue = sqlutil.FromSqlStringPtr(venue)
		m.FinishedAt = sqlutil.FromSqlTimePtr(finishedAt)
		if err := fromRawMessage(events, &m.Events); err != nil {
			return nil, fmt.Errorf("failed to decode match events: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	return matches, nil
}

// InsertMatch stores one match with its full event log
func (r *Repository) InsertMatch(ctx context.Context, m models.Match) error {
	events, err := toRawMessage(m.Events)
	if err != nil {
		return fmt.Errorf("failed to encode match events: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO matches (id, opponent, kickoff_at, venue, competition, department,
		                     discipline, events, score_away, finished, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			opponent = EXCLUDED.opponent,
			kickoff_at = EXCLUDED.kickoff_at,
			venue = EXCLUDED.venue,
			competition = EXCLUDED.competition,
			department = EXCLUDED.department,
			discipline = EXCLUDED.discipline,
			events = EXCLUDED.events,
			score_away = EXCLUDED.score_away,
			finished = EXCLUDED.finished,
			finished_at = EXCLUDED.finished_at`,
		m.ID, m.Opponent, m.KickoffAt, sqlutil.ToSqlString(m.Venue), m.Competition, m.Department,
		m.Discipline, events, m.ScoreAway, m.Finished, sqlutil.ToSqlTime(m.FinishedAt))
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

// ReadTheme retrieves the club branding record
func (r *Repository) ReadTheme(ctx context.Context) (*models.ClubTheme, error) {
	var theme models.ClubTheme
	err := r.db.QueryRowContext(ctx, `
		SELECT club_name, primary_color, secondary_color, crest_url
		FROM club_theme
		LIMIT 1`).
		Scan(&theme.ClubName, &theme.PrimaryColor, &theme.SecondaryColor, &theme.CrestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to read club theme: %w", err)
	}
	return &theme, nil
}

// UpsertTheme stores the club branding record
func (r *Repository) UpsertTheme(ctx context.Context, theme models.ClubTheme) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO club_theme (id, club_name, primary_color, secondary_color, crest_url)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			club_name = EXCLUDED.club_name,
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			crest_url = EXCLUDED.crest_url`,
		theme.ClubName, theme.PrimaryColor, theme.SecondaryColor, theme.CrestURL)
	if err != nil {
		return fmt.Errorf("failed to upsert club theme: %w", err)
	}
	return nil
}

func toRawMessage(v interface{}) (pqtype.NullRawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: data, Valid: len(data) > 0}, nil
}

func fromRawMessage(raw pqtype.NullRawMessage, dst interface{}) error {
	if !raw.Valid {
		return nil
	}
	return json.Unmarshal(raw.RawMessage, dst)
}
