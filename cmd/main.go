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

	cancelBookingHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/cancel_booking"
	checkInHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/check_in"
	checkOutHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/check_out"
	createBookingHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/create_booking"
	createRecurringBookingHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/create_recurring_booking"
	getAvailabilityHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/get_availability"
	getCheckinStatusHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/get_checkin_status"
	getDesksHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/get_desks"
	getUsageReportHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/get_usage_report"
	getUserBookingsHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/get_user_bookings"
	previewRecurrenceHandler "github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers/preview_recurrence"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/config"
	identityClient "github.com/bluebird-hq/Bluebird-DeskService/internal/integrations/identity"
	workflowClient "github.com/bluebird-hq/Bluebird-DeskService/internal/integrations/workflow"
	bookingsService "github.com/bluebird-hq/Bluebird-DeskService/internal/service/bookings"
	checkinService "github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin"
	reportsService "github.com/bluebird-hq/Bluebird-DeskService/internal/service/reports"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/store/viewstate"
	cancelBookingUC "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/cancel_booking"
	createBookingUC "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_booking"
	createRecurringBookingUC "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_recurring_booking"
	expandRecurrenceUC "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
	resolveAvailabilityUC "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/resolve_availability"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/logger"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Bluebird-DeskService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var workflowMetrics workflowClient.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		workflowMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	identity := identityClient.NewClient(
		cfg.Identity.ProfileURL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	workflow := workflowClient.NewClient(cfg.Workflow, log, workflowMetrics)
	log.Info("Integration clients initialized (identity=%s timeout=%ds, workflow timeout=%ds)",
		cfg.Identity.ProfileURL, cfg.Identity.Timeout, cfg.Workflow.Timeout)

	// Локальное состояние доступности с двухфазным обновлением
	store := viewstate.NewStore()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(workflow, log)
	checkinSvc := checkinService.NewService(workflow, log)
	reportsSvc := reportsService.NewService(workflow, log)

	// Инициализируем use cases
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(workflow, store, log)
	createBookingUseCase := createBookingUC.NewUseCase(workflow, store, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(workflow, store, log)
	expandRecurrenceUseCase := expandRecurrenceUC.NewUseCase(workflow, log)
	createRecurringBookingUseCase := createRecurringBookingUC.NewUseCase(
		expandRecurrenceUseCase,
		createBookingUseCase,
		log,
	)

	// Инициализируем handlers
	getDesks := getDesksHandler.NewHandler(log)
	getAvailability := getAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	previewRecurrence := previewRecurrenceHandler.NewHandler(expandRecurrenceUseCase, log)
	createRecurringBooking := createRecurringBookingHandler.NewHandler(createRecurringBookingUseCase, log)
	getCheckinStatus := getCheckinStatusHandler.NewHandler(checkinSvc, log)
	checkIn := checkInHandler.NewHandler(checkinSvc, log)
	checkOut := checkOutHandler.NewHandler(checkinSvc, log)
	getUsageReport := getUsageReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Статический инвентарь столов и план этажа
	api.HandleFunc("/desks", getDesks.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identity, log))

	// --- Доступность и бронирования ---
	protected.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Повторяющиеся бронирования ---
	protected.HandleFunc("/recurrence/preview", previewRecurrence.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/recurrence/book", createRecurringBooking.Handle).Methods(http.MethodPost)

	// --- Дневной чек-ин ---
	protected.HandleFunc("/checkin/status", getCheckinStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/checkin", checkIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/checkout", checkOut.Handle).Methods(http.MethodPost)

	// --- Отчёты ---
	protected.HandleFunc("/reports/usage", getUsageReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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
