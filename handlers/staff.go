package handlers

import (
	"errors"
	"net/http"
	"strings"

	"clinicore/models"
	"clinicore/services/staff"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StaffHandler exposes staff account management.
type StaffHandler struct {
	Service staff.StaffService
}

func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

// RegisterStaffHandler handles POST /api/staff.
func (h *StaffHandler) RegisterStaffHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	member, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to register staff member", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to register staff member", err.Error())
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetStaffHandler handles GET /api/staff/:id.
func (h *StaffHandler) GetStaffHandler(c *gin.Context) {
	member, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "staff member not found", "")
		return
	}
	c.JSON(http.StatusOK, member)
}

// GetStaffAvailabilityHandler handles GET /api/staff/:id/availability and
// returns the raw per-date entries, recurrence metadata included.
func (h *StaffHandler) GetStaffAvailabilityHandler(c *gin.Context) {
	member, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "staff member not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"staffId": member.ID, "availability": member.Availability})
}

// ListStaffHandler handles GET /api/staff with an optional comma-separated
// roles filter, e.g. ?roles=doctor,nurse.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var roles []string
	if raw := c.Query("roles"); raw != "" {
		for _, r := range strings.Split(raw, ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}
	}
	members, err := h.Service.ListByRole(c.Request.Context(), roles...)
	if err != nil {
		logger.Error("Failed to list staff", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members, "count": len(members)})
}

// UpdateStaffHandler handles PATCH /api/staff/:id.
func (h *StaffHandler) UpdateStaffHandler(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	member, err := h.Service.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "staff member not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeactivateStaffHandler handles DELETE /api/staff/:id. The record is kept
// for historical appointments; the member just stops appearing in listings.
func (h *StaffHandler) DeactivateStaffHandler(c *gin.Context) {
	if err := h.Service.Deactivate(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "staff member not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to deactivate staff member", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deactivated"})
}
