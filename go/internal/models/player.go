package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a registered club player
type Player struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	JerseyNumber int            `json:"jersey_number"`
	Position     Position       `json:"position"`
	BirthDate    time.Time      `json:"birth_date"`
	Department   Department     `json:"department"`
	Documents    []TeamDocument `json:"documents"`
	Achievements []string       `json:"achievements,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`

	// Stats is a display cache re-synchronized from event folding.
	// The match event logs are the source of truth, never this field.
	Stats PlayerStats `json:"stats"`
}

// PlayerStats holds derived career totals for a player
type PlayerStats struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
	Matches int `json:"matches"`
}

// Department represents the gender-based roster category. Serialized as its
// display label; filtering code compares these strings directly.
type Department string

const (
	DepartmentMale   Department = "MALE"
	DepartmentFemale Department = "FEMALE"
	DepartmentYouth  Department = "YOUTH"
)

// Discipline represents the sport variant. Players and staff belong to a
// department only; matches are partitioned by department and discipline.
type Discipline string

const (
	DisciplineFootball   Discipline = "FOOTBALL"
	DisciplineFutsal     Discipline = "FUTSAL"
	DisciplineSevenASide Discipline = "SEVEN_A_SIDE"
)

// Position represents a playing position. The valid set depends on the
// discipline the player is fielded in.
type Position string

const (
	PositionGoalkeeper Position = "GOALKEEPER"
	PositionDefender   Position = "DEFENDER"
	PositionMidfielder Position = "MIDFIELDER"
	PositionForward    Position = "FORWARD"
	PositionFixo       Position = "FIXO"
	PositionAla        Position = "ALA"
	PositionPivot      Position = "PIVOT"
)

// ValidPositions returns the allowed positions for a discipline.
func ValidPositions(discipline Discipline) []Position {
	switch discipline {
	case DisciplineFutsal:
		return []Position{PositionGoalkeeper, PositionFixo, PositionAla, PositionPivot}
	default:
		return []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}
	}
}
