package staff

import (
	"context"
	"fmt"

	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var validRoles = map[string]bool{
	models.RoleDoctor:       true,
	models.RoleNurse:        true,
	models.RoleReceptionist: true,
	models.RoleAdmin:        true,
}

// updatableFields guards Update against patching identity or credential fields.
var updatableFields = map[string]bool{
	"name":      true,
	"phone":     true,
	"specialty": true,
	"active":    true,
}

// Register creates a staff account with a bcrypt-hashed password and an empty
// availability array.
func (s *DefaultStaffService) Register(ctx context.Context, req models.CreateStaffRequest) (*models.Staff, error) {
	if !validRoles[req.Role] {
		return nil, fmt.Errorf("unknown staff role %q", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.Staff{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Specialty:    req.Specialty,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.Repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.audit(ctx, fmt.Sprintf("staff account %s (%s) created", member.ID, member.Role), member.ID)
	return member, nil
}

// GetByID fetches one staff member.
func (s *DefaultStaffService) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListByRole returns summaries of active staff holding any of the given roles.
func (s *DefaultStaffService) ListByRole(ctx context.Context, roles ...string) ([]models.StaffSummary, error) {
	for _, role := range roles {
		if !validRoles[role] {
			return nil, fmt.Errorf("unknown staff role %q", role)
		}
	}
	return s.Repo.ListByRole(ctx, roles...)
}

// Update patches the allowed profile fields and returns the fresh document.
func (s *DefaultStaffService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Staff, error) {
	patch := bson.M{}
	for field, value := range updates {
		if !updatableFields[field] {
			return nil, fmt.Errorf("field %q cannot be updated", field)
		}
		patch[field] = value
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("no updatable fields in request")
	}
	if err := s.Repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

// Deactivate hides the staff member from role listings without deleting the
// document; their availability history and appointments stay intact.
func (s *DefaultStaffService) Deactivate(ctx context.Context, id, actorID string) error {
	if err := s.Repo.Update(ctx, id, bson.M{"active": false}); err != nil {
		return err
	}
	s.audit(ctx, fmt.Sprintf("staff account %s deactivated", id), actorID)
	return nil
}

func (s *DefaultStaffService) audit(ctx context.Context, message, actorID string) {
	if s.AuditRepo == nil {
		return
	}
	if err := s.AuditRepo.Record(ctx, message, actorID, "staff"); err != nil {
		utils.GetLogger().Warn("failed to record audit event", zap.Error(err))
	}
}
