package player

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/stats"
	"github.com/mcdev12/clubhouse/go/internal/store"
)

// BioFallback is returned whenever the copywriter collaborator fails or
// produces nothing.
const BioFallback = "A proud member of the club."

// PlayerRepository defines what the app layer needs from the entity store
type PlayerRepository interface {
	AddPlayer(p models.Player) (models.Player, error)
	GetPlayer(id uuid.UUID) (*models.Player, error)
	UpdatePlayer(p models.Player) error
	DeletePlayer(id uuid.UUID) error
	Snapshot() store.Snapshot
}

// Copywriter generates a short biography for a player. Implementations call
// an external service and fail independently of the core.
type Copywriter interface {
	PlayerBio(ctx context.Context, p models.Player) (string, error)
}

// App handles player business logic
type App struct {
	repo       PlayerRepository
	copywriter Copywriter
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, copywriter Copywriter) *App {
	return &App{
		repo:       repo,
		copywriter: copywriter,
	}
}

// CreatePlayer registers a new player with validation
func (a *App) CreatePlayer(req CreatePlayerRequest) (*models.Player, error) {
	if err := a.validateCreatePlayerRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created, err := a.repo.AddPlayer(models.Player{
		Name:         req.Name,
		JerseyNumber: req.JerseyNumber,
		Position:     req.Position,
		BirthDate:    req.BirthDate,
		Department:   req.Department,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info().
		Str("player_id", created.ID.String()).
		Str("name", created.Name).
		Str("department", string(created.Department)).
		Msg("player created")
	return &created, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(id uuid.UUID) (*models.Player, error) {
	p, err := a.repo.GetPlayer(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// UpdatePlayer applies the non-nil request fields to an existing player
func (a *App) UpdatePlayer(id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error) {
	if err := a.validateUpdatePlayerRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	p, err := a.repo.GetPlayer(id)
	if err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.JerseyNumber != nil {
		p.JerseyNumber = *req.JerseyNumber
	}
	if req.Position != nil {
		p.Position = *req.Position
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.Achievements != nil {
		p.Achievements = req.Achievements
	}

	if err := a.repo.UpdatePlayer(*p); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info().Str("player_id", p.ID.String()).Msg("player updated")
	return p, nil
}

// DeletePlayer removes a player from the roster
func (a *App) DeletePlayer(id uuid.UUID) error {
	if err := a.repo.DeletePlayer(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	log.Info().Str("player_id", id.String()).Msg("player deleted")
	return nil
}

// CareerStats recomputes a player's totals from the event ledgers of all
// matches and refreshes the cached stats record on the stored player.
func (a *App) CareerStats(id uuid.UUID) (models.PlayerStats, error) {
	p, err := a.repo.GetPlayer(id)
	if err != nil {
		return models.PlayerStats{}, fmt.Errorf("player not found: %w", err)
	}

	snap := a.repo.Snapshot()
	totals := stats.Career(id, snap.Matches)

	if totals != p.Stats {
		p.Stats = totals
		if err := a.repo.UpdatePlayer(*p); err != nil {
			return models.PlayerStats{}, fmt.Errorf("failed to sync player stats: %w", err)
		}
	}

	return totals, nil
}

// Bio asks the copywriter collaborator for a short player biography. Any
// failure or empty response falls back to a fixed string.
func (a *App) Bio(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := a.repo.GetPlayer(id)
	if err != nil {
		return "", fmt.Errorf("failed to get player: %w", err)
	}

	if a.copywriter == nil {
		return BioFallback, nil
	}

	text, err := a.copywriter.PlayerBio(ctx, *p)
	if err != nil || text == "" {
		if err != nil {
			log.Warn().Err(err).Str("player_id", id.String()).Msg("copywriter failed, using fallback")
		}
		return BioFallback, nil
	}
	return text, nil
}

// Validation methods

func (a *App) validateCreatePlayerRequest(req CreatePlayerRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := a.validateDepartment(req.Department); err != nil {
		return err
	}
	return a.validatePosition(req.Position)
}

func (a *App) validateUpdatePlayerRequest(req UpdatePlayerRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if req.Department != nil {
		if err := a.validateDepartment(*req.Department); err != nil {
			return err
		}
	}
	if req.Position != nil {
		return a.validatePosition(*req.Position)
	}
	return nil
}

func (a *App) validateDepartment(department models.Department) error {
	switch department {
	case models.DepartmentMale, models.DepartmentFemale, models.DepartmentYouth:
		return nil
	default:
		return fmt.Errorf("invalid department: %s", department)
	}
}

// validatePosition accepts a position valid in any discipline. Players belong
// to a department, not a discipline, so a futsal position on a player fielded
// in football matches is allowed.
func (a *App) validatePosition(position models.Position) error {
	disciplines := []models.Discipline{
		models.DisciplineFootball, models.DisciplineFutsal, models.DisciplineSevenASide,
	}
	for _, d := range disciplines {
		for _, valid := range models.ValidPositions(d) {
			if position == valid {
				return nil
			}
		}
	}
	return fmt.Errorf("invalid position: %s", position)
}
