package handlers

import (
	"net/http"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/services/schedule"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler drives the appointment lifecycle. Reads go straight to
// the repository; anything that mutates state goes through the schedule
// service so slot reconciliation and status rules apply.
type AppointmentHandler struct {
	Service schedule.ScheduleService
	Repo    appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(svc schedule.ScheduleService, repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Repo: repo}
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	appt, err := h.Service.BookSlot(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/appointments with optional
// staffId, patientId, status and date query filters.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	filter := models.AppointmentFilter{
		StaffID:   c.Query("staffId"),
		PatientID: c.Query("patientId"),
		Status:    c.Query("status"),
		Date:      c.Query("date"),
	}
	appts, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "count": len(appts)})
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", "")
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AcceptAppointmentHandler handles PUT /api/appointments/:id/accept.
func (h *AppointmentHandler) AcceptAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.AcceptAppointment(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleAppointmentHandler handles PUT /api/appointments/:id/reschedule.
func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	appt, err := h.Service.RescheduleAppointment(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatusHandler handles PUT /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	appt, err := h.Service.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), input.Status, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
