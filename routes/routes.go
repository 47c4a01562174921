package routes

import (
	"net/http"
	"time"

	"clinicore/handlers"
	"clinicore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStaffRoutes registers staff account and availability endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("", hb.RegisterStaffHandler)
		api.GET("", hb.ListStaffHandler)
		api.GET("/:id", hb.GetStaffHandler)
		api.PATCH("/:id", hb.UpdateStaffHandler)
		api.DELETE("/:id", hb.DeactivateStaffHandler)

		api.GET("/:id/availability", hb.GetStaffAvailabilityHandler)
		api.PUT("/:id/availability/:date", hb.OverrideAvailabilityHandler)
		api.DELETE("/:id/availability/:date", hb.RemoveAvailabilityHandler)
		api.GET("/:id/slots", hb.AvailableSlotsHandler)
	}
}

// RegisterAvailabilitySessionRoutes sets up the availability editing dialog.
func RegisterAvailabilitySessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability/sessions")
	{
		api.POST("", hb.StartEditSessionHandler)
		api.POST("/:sessionID/slots", hb.AddDraftSlotHandler)
		api.DELETE("/:sessionID/slots/:index", hb.RemoveDraftSlotHandler)
		api.POST("/:sessionID/save", hb.SaveEditSessionHandler)
		api.DELETE("/:sessionID", hb.DiscardEditSessionHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.BookAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id/accept", hb.AcceptAppointmentHandler)
		api.PUT("/:id/reschedule", hb.RescheduleAppointmentHandler)
		api.PUT("/:id/status", hb.UpdateStatusHandler)
	}
}

// RegisterPatientRoutes registers the patient registry endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.POST("", hb.CreatePatientHandler)
		api.GET("", hb.ListPatientsHandler)
		api.GET("/:id", hb.GetPatientHandler)
		api.PATCH("/:id", hb.UpdatePatientHandler)
		api.DELETE("/:id", hb.DeletePatientHandler)
	}
}

// RegisterAuditRoutes registers the audit trail read endpoint.
func RegisterAuditRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/audit", hb.ListAuditEventsHandler)
}

// RegisterHealthRoute registers a health-check endpoint reporting the latest
// store probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "stores": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Actor-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStaffRoutes(r, hb)
	RegisterAvailabilitySessionRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterAuditRoutes(r, hb)
	RegisterHealthRoute(r)
}
