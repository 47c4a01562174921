package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler so route registration takes one
// argument instead of five handler structs.
type HandlerBundle struct {
	// Staff endpoints.
	RegisterStaffHandler        gin.HandlerFunc
	GetStaffHandler             gin.HandlerFunc
	GetStaffAvailabilityHandler gin.HandlerFunc
	ListStaffHandler            gin.HandlerFunc
	UpdateStaffHandler          gin.HandlerFunc
	DeactivateStaffHandler      gin.HandlerFunc
	OverrideAvailabilityHandler gin.HandlerFunc
	RemoveAvailabilityHandler   gin.HandlerFunc
	AvailableSlotsHandler       gin.HandlerFunc

	// Availability editing sessions.
	StartEditSessionHandler   gin.HandlerFunc
	AddDraftSlotHandler       gin.HandlerFunc
	RemoveDraftSlotHandler    gin.HandlerFunc
	SaveEditSessionHandler    gin.HandlerFunc
	DiscardEditSessionHandler gin.HandlerFunc

	// Appointment endpoints.
	BookAppointmentHandler       gin.HandlerFunc
	ListAppointmentsHandler      gin.HandlerFunc
	GetAppointmentHandler        gin.HandlerFunc
	AcceptAppointmentHandler     gin.HandlerFunc
	RescheduleAppointmentHandler gin.HandlerFunc
	UpdateStatusHandler          gin.HandlerFunc

	// Patient endpoints.
	CreatePatientHandler gin.HandlerFunc
	GetPatientHandler    gin.HandlerFunc
	ListPatientsHandler  gin.HandlerFunc
	UpdatePatientHandler gin.HandlerFunc
	DeletePatientHandler gin.HandlerFunc

	// Audit endpoints.
	ListAuditEventsHandler gin.HandlerFunc
}
