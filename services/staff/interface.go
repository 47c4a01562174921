package staff

import (
	"context"

	auditRepo "clinicore/database/repository/audit"
	staffRepo "clinicore/database/repository/staff"
	"clinicore/models"
)

// StaffService manages staff accounts for the scheduling screens.
type StaffService interface {
	Register(ctx context.Context, req models.CreateStaffRequest) (*models.Staff, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	ListByRole(ctx context.Context, roles ...string) ([]models.StaffSummary, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Staff, error)
	Deactivate(ctx context.Context, id, actorID string) error
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo      staffRepo.StaffRepository
	AuditRepo auditRepo.AuditLogRepository
}
