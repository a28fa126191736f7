package staff

import (
	"github.com/mcdev12/clubhouse/go/internal/models"
)

// CreateStaffRequest represents the data needed to register a staff member
type CreateStaffRequest struct {
	Name       string            `json:"name"`
	Role       models.StaffRole  `json:"role"`
	Department models.Department `json:"department"`
}

// UpdateStaffRequest represents the fields that can be changed on a staff
// member. Nil fields are left untouched.
type UpdateStaffRequest struct {
	Name       *string            `json:"name,omitempty"`
	Role       *models.StaffRole  `json:"role,omitempty"`
	Department *models.Department `json:"department,omitempty"`
}
