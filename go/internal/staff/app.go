package staff

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

// StaffRepository defines what the app layer needs from the entity store
type StaffRepository interface {
	AddStaff(st models.Staff) (models.Staff, error)
	GetStaff(id uuid.UUID) (*models.Staff, error)
	UpdateStaff(st models.Staff) error
	DeleteStaff(id uuid.UUID) error
}

// App handles staff business logic
type App struct {
	repo StaffRepository
}

// NewApp creates a new staff App
func NewApp(repo StaffRepository) *App {
	return &App{repo: repo}
}

// CreateStaff registers a new staff member with validation
func (a *App) CreateStaff(req CreateStaffRequest) (*models.Staff, error) {
	if err := a.validateCreateStaffRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	created, err := a.repo.AddStaff(models.Staff{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	log.Info().
		Str("staff_id", created.ID.String()).
		Str("name", created.Name).
		Str("role", string(created.Role)).
		Msg("staff member created")
	return &created, nil
}

// GetStaff retrieves a staff member by ID
func (a *App) GetStaff(id uuid.UUID) (*models.Staff, error) {
	st, err := a.repo.GetStaff(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return st, nil
}

// UpdateStaff applies the non-nil request fields to an existing staff member
func (a *App) UpdateStaff(id uuid.UUID, req UpdateStaffRequest) (*models.Staff, error) {
	if err := a.validateUpdateStaffRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	st, err := a.repo.GetStaff(id)
	if err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Role != nil {
		st.Role = *req.Role
	}
	if req.Department != nil {
		st.Department = *req.Department
	}

	if err := a.repo.UpdateStaff(*st); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	log.Info().Str("staff_id", st.ID.String()).Msg("staff member updated")
	return st, nil
}

// DeleteStaff removes a staff member
func (a *App) DeleteStaff(id uuid.UUID) error {
	if err := a.repo.DeleteStaff(id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	log.Info().Str("staff_id", id.String()).Msg("staff member deleted")
	return nil
}

// Validation methods

func (a *App) validateCreateStaffRequest(req CreateStaffRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := a.validateRole(req.Role); err != nil {
		return err
	}
	return a.validateDepartment(req.Department)
}

func (a *App) validateUpdateStaffRequest(req UpdateStaffRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if req.Role != nil {
		if err := a.validateRole(*req.Role); err != nil {
			return err
		}
	}
	if req.Department != nil {
		return a.validateDepartment(*req.Department)
	}
	return nil
}

func (a *App) validateRole(role models.StaffRole) error {
	switch role {
	case models.StaffRoleHeadCoach, models.StaffRoleAssistantCoach, models.StaffRolePhysio,
		models.StaffRoleDelegate, models.StaffRoleManager:
		return nil
	default:
		return fmt.Errorf("invalid staff role: %s", role)
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
