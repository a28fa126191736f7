package staff

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return NewApp(store.New(clockwork.NewFakeClock()))
}

func TestCreateStaff(t *testing.T) {
	app := newTestApp(t)

	created, err := app.CreateStaff(CreateStaffRequest{
		Name:       "Carla Mendes",
		Role:       models.StaffRoleHeadCoach,
		Department: models.DepartmentYouth,
	})
	if err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("created staff member has no ID")
	}
}

func TestCreateStaff_Validation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		req  CreateStaffRequest
	}{
		{"missing name", CreateStaffRequest{Role: models.StaffRolePhysio, Department: models.DepartmentMale}},
		{"bad role", CreateStaffRequest{Name: "x", Role: models.StaffRole("JANITOR"), Department: models.DepartmentMale}},
		{"bad department", CreateStaffRequest{Name: "x", Role: models.StaffRolePhysio, Department: models.Department("SENIOR")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := app.CreateStaff(tt.req); err == nil {
				t.Fatal("CreateStaff() error = nil, want validation error")
			}
		})
	}
}

func TestUpdateStaff_RoleChange(t *testing.T) {
	app := newTestApp(t)
	created, err := app.CreateStaff(CreateStaffRequest{
		Name:       "Carla Mendes",
		Role:       models.StaffRoleAssistantCoach,
		Department: models.DepartmentYouth,
	})
	if err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}

	role := models.StaffRoleHeadCoach
	updated, err := app.UpdateStaff(created.ID, UpdateStaffRequest{Role: &role})
	if err != nil {
		t.Fatalf("UpdateStaff() error = %v", err)
	}
	if updated.Role != models.StaffRoleHeadCoach {
		t.Errorf("Role = %s, want HEAD_COACH", updated.Role)
	}
	if updated.Name != "Carla Mendes" {
		t.Errorf("Name = %q, untouched field changed", updated.Name)
	}
}

func TestDeleteStaff_UnknownID(t *testing.T) {
	app := newTestApp(t)
	if err := app.DeleteStaff(uuid.New()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("DeleteStaff() error = %v, want ErrNotFound", err)
	}
}
