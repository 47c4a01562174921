package handlers

import (
	"net/http"
	"strconv"

	"clinicore/models"
	"clinicore/services/schedule"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the availability editor and the slot browser.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// StartEditSessionHandler handles POST /api/availability/sessions.
func (h *ScheduleHandler) StartEditSessionHandler(c *gin.Context) {
	var req models.StartEditSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.StartEditSession(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// AddDraftSlotHandler handles POST /api/availability/sessions/:sessionID/slots.
func (h *ScheduleHandler) AddDraftSlotHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var req models.DraftSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.AddDraftSlot(c.Request.Context(), sessionID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveDraftSlotHandler handles DELETE /api/availability/sessions/:sessionID/slots/:index.
func (h *ScheduleHandler) RemoveDraftSlotHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot index", err.Error())
		return
	}
	session, err := h.Service.RemoveDraftSlot(c.Request.Context(), sessionID, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SaveEditSessionHandler handles POST /api/availability/sessions/:sessionID/save.
func (h *ScheduleHandler) SaveEditSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	dates, err := h.Service.SaveEditSession(c.Request.Context(), sessionID, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability saved", "dates": dates})
}

// DiscardEditSessionHandler handles DELETE /api/availability/sessions/:sessionID.
func (h *ScheduleHandler) DiscardEditSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.DiscardEditSession(c.Request.Context(), sessionID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session discarded"})
}

// OverrideAvailabilityHandler handles PUT /api/staff/:id/availability/:date.
// The request body's slot list replaces whatever the date held before.
func (h *ScheduleHandler) OverrideAvailabilityHandler(c *gin.Context) {
	staffID := c.Param("id")
	var input struct {
		Slots []models.TimeSlot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	entry := models.AvailabilityEntry{
		Date:  c.Param("date"),
		Slots: input.Slots,
	}
	if err := h.Service.OverrideAvailabilityEntry(c.Request.Context(), staffID, entry, actorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated", "date": entry.Date})
}

// RemoveAvailabilityHandler handles DELETE /api/staff/:id/availability/:date.
func (h *ScheduleHandler) RemoveAvailabilityHandler(c *gin.Context) {
	if err := h.Service.RemoveAvailabilityEntry(c.Request.Context(), c.Param("id"), c.Param("date"), actorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability removed"})
}

// AvailableSlotsHandler handles GET /api/staff/:id/slots?date=2006-01-02.
// Every generated slot for the date is returned, with booked ones flagged.
func (h *ScheduleHandler) AvailableSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	staffID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}
	slots, err := h.Service.AvailableSlotsFor(c.Request.Context(), staffID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logger.Debug("Listed slots", zap.String("staffId", staffID), zap.String("date", date), zap.Int("count", len(slots)))
	c.JSON(http.StatusOK, gin.H{"staffId": staffID, "date": date, "slots": slots})
}
