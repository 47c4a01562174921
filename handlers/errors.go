package handlers

import (
	"errors"
	"net/http"

	"clinicore/services/schedule"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError translates scheduling-engine errors into HTTP statuses.
// Validation problems are the caller's fault, overlaps are conflicts, unknown
// records are 404s and storage failures surface as bad gateways.
func respondServiceError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var ve *schedule.ValidationError
	if errors.As(err, &ve) {
		utils.JSONError(c, http.StatusBadRequest, ve.Message, "")
		return
	}
	var oe *schedule.OverlapError
	if errors.As(err, &oe) {
		utils.JSONError(c, http.StatusConflict, oe.Error(), "")
		return
	}
	var ne *schedule.NotFoundError
	if errors.As(err, &ne) {
		utils.JSONError(c, http.StatusNotFound, ne.Error(), "")
		return
	}
	var se *schedule.StoreError
	if errors.As(err, &se) {
		logger.Error("Storage backend failure", zap.String("op", se.Op), zap.Error(se.Err))
		utils.JSONError(c, http.StatusBadGateway, "storage backend failure", "")
		return
	}
	logger.Error("Unhandled service error", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
}

// actorID identifies the operator performing a request for the audit trail.
// The gateway in front of this service sets the header after authenticating.
func actorID(c *gin.Context) string {
	if id := c.GetHeader("X-Actor-ID"); id != "" {
		return id
	}
	return "anonymous"
}
