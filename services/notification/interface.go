package notification

import "context"

// Template identifiers for the emails the scheduling flows send.
const (
	TemplateAppointmentAccepted    = "appointment_accepted"
	TemplateAppointmentRescheduled = "appointment_rescheduled"
	TemplateAppointmentReminder    = "appointment_reminder"
)

// NotificationService sends templated emails. Callers treat delivery as
// fire-and-forget: a failed send is logged, never retried, and never rolls
// back the state change that triggered it.
type NotificationService interface {
	Send(ctx context.Context, templateID, recipient string, params map[string]string) error
}
