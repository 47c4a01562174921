package schedule

import (
	"context"

	appointmentRepo "clinicore/database/repository/appointment"
	auditRepo "clinicore/database/repository/audit"
	staffRepo "clinicore/database/repository/staff"
	"clinicore/models"
	"clinicore/services/notification"

	"github.com/hibiken/asynq"
)

// ScheduleService is the staff availability and slot-booking engine.
type ScheduleService interface {
	// Availability editing sessions.
	StartEditSession(ctx context.Context, req models.StartEditSessionRequest) (*models.AvailabilityEditSession, error)
	AddDraftSlot(ctx context.Context, sessionID string, req models.DraftSlotRequest) (*models.AvailabilityEditSession, error)
	RemoveDraftSlot(ctx context.Context, sessionID string, index int) (*models.AvailabilityEditSession, error)
	// SaveEditSession expands the session's recurrence policy, merges the draft
	// into every produced date and discards the session. It returns the dates
	// written.
	SaveEditSession(ctx context.Context, sessionID, actorID string) ([]string, error)
	DiscardEditSession(ctx context.Context, sessionID string) error

	// Availability overrides.
	OverrideAvailabilityEntry(ctx context.Context, staffID string, entry models.AvailabilityEntry, actorID string) error
	RemoveAvailabilityEntry(ctx context.Context, staffID, date, actorID string) error

	// Slot reconciliation and appointment lifecycle.
	AvailableSlotsFor(ctx context.Context, staffID, date string) ([]models.AvailableSlot, error)
	BookSlot(ctx context.Context, req models.BookAppointmentRequest) (*models.Appointment, error)
	AcceptAppointment(ctx context.Context, id, actorID string) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, id string, req models.RescheduleRequest, actorID string) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status, actorID string) (*models.Appointment, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	StaffRepo    staffRepo.StaffRepository
	ApptRepo     appointmentRepo.AppointmentRepository
	AuditRepo    auditRepo.AuditLogRepository
	Sessions     SessionStore
	Notification notification.NotificationService
	AsynqClient  *asynq.Client // nil disables reminder scheduling
	SlotSize     int           // minutes; zero falls back to DefaultSlotSize
}

func (s *DefaultScheduleService) slotSize() int {
	if s.SlotSize > 0 {
		return s.SlotSize
	}
	return DefaultSlotSize
}
