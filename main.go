package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	"clinicore/cron"
	"clinicore/database"
	appointmentRepoPkg "clinicore/database/repository/appointment"
	auditRepoPkg "clinicore/database/repository/audit"
	patientRepoPkg "clinicore/database/repository/patient"
	staffRepoPkg "clinicore/database/repository/staff"
	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/routes"
	"clinicore/services/notification"
	"clinicore/services/schedule"
	"clinicore/services/staff"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	auditRepo := auditRepoPkg.NewMongoAuditRepo()

	// Reminder queue producer. The consumer runs in its own goroutine below.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	notificationService := notification.NewEmailNotificationService()

	scheduleService := &schedule.DefaultScheduleService{
		StaffRepo:    staffRepo,
		ApptRepo:     apptRepo,
		AuditRepo:    auditRepo,
		Sessions:     schedule.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute),
		Notification: notificationService,
		AsynqClient:  asynqClient,
		SlotSize:     config.AppConfig.SlotDurationMinutes,
	}

	staffService := &staff.DefaultStaffService{
		Repo:      staffRepo,
		AuditRepo: auditRepo,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	staffHandler := handlers.NewStaffHandler(staffService)
	appointmentHandler := handlers.NewAppointmentHandler(scheduleService, apptRepo)
	patientHandler := handlers.NewPatientHandler(patientRepo)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Staff endpoints.
		RegisterStaffHandler:        staffHandler.RegisterStaffHandler,
		GetStaffHandler:             staffHandler.GetStaffHandler,
		GetStaffAvailabilityHandler: staffHandler.GetStaffAvailabilityHandler,
		ListStaffHandler:            staffHandler.ListStaffHandler,
		UpdateStaffHandler:          staffHandler.UpdateStaffHandler,
		DeactivateStaffHandler:      staffHandler.DeactivateStaffHandler,
		OverrideAvailabilityHandler: scheduleHandler.OverrideAvailabilityHandler,
		RemoveAvailabilityHandler:   scheduleHandler.RemoveAvailabilityHandler,
		AvailableSlotsHandler:       scheduleHandler.AvailableSlotsHandler,

		// Availability editing sessions.
		StartEditSessionHandler:   scheduleHandler.StartEditSessionHandler,
		AddDraftSlotHandler:       scheduleHandler.AddDraftSlotHandler,
		RemoveDraftSlotHandler:    scheduleHandler.RemoveDraftSlotHandler,
		SaveEditSessionHandler:    scheduleHandler.SaveEditSessionHandler,
		DiscardEditSessionHandler: scheduleHandler.DiscardEditSessionHandler,

		// Appointment endpoints.
		BookAppointmentHandler:       appointmentHandler.BookAppointmentHandler,
		ListAppointmentsHandler:      appointmentHandler.ListAppointmentsHandler,
		GetAppointmentHandler:        appointmentHandler.GetAppointmentHandler,
		AcceptAppointmentHandler:     appointmentHandler.AcceptAppointmentHandler,
		RescheduleAppointmentHandler: appointmentHandler.RescheduleAppointmentHandler,
		UpdateStatusHandler:          appointmentHandler.UpdateStatusHandler,

		// Patient endpoints.
		CreatePatientHandler: patientHandler.CreatePatientHandler,
		GetPatientHandler:    patientHandler.GetPatientHandler,
		ListPatientsHandler:  patientHandler.ListPatientsHandler,
		UpdatePatientHandler: patientHandler.UpdatePatientHandler,
		DeletePatientHandler: patientHandler.DeletePatientHandler,

		// Audit endpoints.
		ListAuditEventsHandler: auditHandler.ListAuditEventsHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Reminder delivery worker.
	go cron.InitReminderWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
