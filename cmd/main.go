package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	allocateSlotsHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/allocate_slots"
	createAppointmentHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/create_appointment"
	deleteAppointmentsHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/delete_appointments"
	exportScheduleHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/export_schedule"
	getScheduleHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/get_schedule"
	getSettingsHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/get_settings"
	updateParticipantsHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/update_participants"
	updateSettingsHandler "github.com/ubagofish/scheduler-service/internal/api/handlers/update_settings"
	"github.com/ubagofish/scheduler-service/internal/api/middleware"
	"github.com/ubagofish/scheduler-service/internal/config"
	scheduleStore "github.com/ubagofish/scheduler-service/internal/infra/storage/schedule"
	scheduleService "github.com/ubagofish/scheduler-service/internal/service/schedule"
	settingsService "github.com/ubagofish/scheduler-service/internal/service/settings"
	allocateSlotsUC "github.com/ubagofish/scheduler-service/internal/usecase/allocate_slots"
	createAppointmentUC "github.com/ubagofish/scheduler-service/internal/usecase/create_appointment"
	exportScheduleUC "github.com/ubagofish/scheduler-service/internal/usecase/export_schedule"
	"github.com/ubagofish/scheduler-service/pkg/logger"
	"github.com/ubagofish/scheduler-service/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting scheduler-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// The store loads the state file at startup; a missing or corrupt
	// file falls back to empty state with defaults.
	store, err := scheduleStore.NewStore(cfg.Storage.File, log)
	if err != nil {
		log.Fatal("Failed to open schedule store: %v", err)
	}

	scheduleSvc := scheduleService.NewService(store, log)
	settingsSvc := settingsService.NewService(store, log)

	allocateSlotsUseCase := allocateSlotsUC.NewUseCase(store, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(store, log)
	exportScheduleUseCase := exportScheduleUC.NewUseCase(store, log)

	var allocMetrics allocateSlotsHandler.Metrics
	if metricsCollector != nil {
		allocMetrics = metricsCollector
	}

	allocateSlots := allocateSlotsHandler.NewHandler(allocateSlotsUseCase, allocMetrics, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	deleteAppointments := deleteAppointmentsHandler.NewHandler(scheduleSvc, log)
	exportSchedule := exportScheduleHandler.NewHandler(exportScheduleUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateParticipants := updateParticipantsHandler.NewHandler(scheduleSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Schedule views and the allocator
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/allocate", allocateSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/export", exportSchedule.Handle).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", deleteAppointments.Handle).Methods(http.MethodDelete)

	// Participants and settings
	api.HandleFunc("/participants", updateParticipants.Handle).Methods(http.MethodPut)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
