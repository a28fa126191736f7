package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff represents a non-playing club member (coach, physio, delegate)
type Staff struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Role       StaffRole      `json:"role"`
	Department Department     `json:"department"`
	Documents  []TeamDocument `json:"documents"`
	CreatedAt  time.Time      `json:"created_at"`
}

// StaffRole represents the function a staff member performs
type StaffRole string

const (
	StaffRoleHeadCoach      StaffRole = "HEAD_COACH"
	StaffRoleAssistantCoach StaffRole = "ASSISTANT_COACH"
	StaffRolePhysio         StaffRole = "PHYSIO"
	StaffRoleDelegate       StaffRole = "DELEGATE"
	StaffRoleManager        StaffRole = "MANAGER"
)
