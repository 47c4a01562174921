package handlers

import (
	"net/http"
	"strconv"

	auditRepo "clinicore/database/repository/audit"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditHandler exposes the read side of the audit trail.
type AuditHandler struct {
	Repo auditRepo.AuditLogRepository
}

func NewAuditHandler(repo auditRepo.AuditLogRepository) *AuditHandler {
	return &AuditHandler{Repo: repo}
}

// ListAuditEventsHandler handles GET /api/audit?section=schedule&limit=50.
func (h *AuditHandler) ListAuditEventsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	section := c.Query("section")
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit", "")
			return
		}
		limit = parsed
	}
	events, err := h.Repo.ListBySection(c.Request.Context(), section, limit)
	if err != nil {
		logger.Error("Failed to list audit events", zap.String("section", section), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list audit events", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}
