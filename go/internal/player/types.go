package player

import (
	"time"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

// CreatePlayerRequest represents the data needed to register a new player
type CreatePlayerRequest struct {
	Name         string            `json:"name"`
	JerseyNumber int               `json:"jersey_number"`
	Position     models.Position   `json:"position"`
	BirthDate    time.Time         `json:"birth_date"`
	Department   models.Department `json:"department"`
}

// UpdatePlayerRequest represents the fields that can be changed on a player.
// Nil fields are left untouched.
type UpdatePlayerRequest struct {
	Name         *string            `json:"name,omitempty"`
	JerseyNumber *int               `json:"jersey_number,omitempty"`
	Position     *models.Position   `json:"position,omitempty"`
	Department   *models.Department `json:"department,omitempty"`
	Achievements []string           `json:"achievements,omitempty"`
}
