package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createApartmentHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/create_apartment"
	createBookingHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/create_booking"
	deleteApartmentHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/delete_apartment"
	deleteBookingHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/delete_booking"
	getApartmentHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/get_apartment"
	getBookingHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/get_calendar"
	getCleaningScheduleHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/get_cleaning_schedule"
	healthHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/health"
	importCalendarHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/import_calendar"
	listApartmentsHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/list_apartments"
	listBookingsHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/list_bookings"
	updateApartmentHandler "github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers/update_apartment"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningScheduler/internal/config"
	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/infra/ical"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	bookingRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/booking"
	cleaningRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/cleaning"
	"github.com/m04kA/SMC-CleaningScheduler/internal/integrations/cleaningnotifier"
	apartmentsService "github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments"
	bookingsService "github.com/m04kA/SMC-CleaningScheduler/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/create_booking"
	deleteApartmentUC "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/delete_apartment"
	deleteBookingUC "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/delete_booking"
	getCalendarUC "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_calendar"
	getCleaningScheduleUC "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_cleaning_schedule"
	importCalendarUC "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/import_calendar"
	updateCleaningScheduleUC "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/logger"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/metrics"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/txmanager"
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

	log.Info("Starting SMC-CleaningScheduler...")
	log.Info("Configuration loaded from config.toml")

	// Правила заезда и выезда
	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduling.Timezone, err)
	}
	policy := domain.StayPolicy{
		Location:     location,
		CheckInHour:  cfg.Scheduling.CheckInHour,
		CheckOutHour: cfg.Scheduling.CheckOutHour,
	}
	log.Info("Stay policy: check-in %02d:00, check-out %02d:00, timezone %s, padding %d days",
		policy.CheckInHour, policy.CheckOutHour, location, cfg.Scheduling.PaddingDays)

	// Инициализируем метрики (если включены). nil коллектор метрики не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Публикация изменений дат уборки
	var notifier *cleaningnotifier.Client
	if cfg.Notifications.Enabled {
		notifier = cleaningnotifier.NewClient(cfg.Notifications.BrokerList(), cfg.Notifications.Topic, log)
		log.Info("Cleaning notifications enabled (brokers=%s, topic=%s)", cfg.Notifications.Brokers, cfg.Notifications.Topic)
	} else {
		notifier = cleaningnotifier.NewDisabled(log)
		log.Info("Cleaning notifications disabled")
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Error("Failed to close notifier: %v", err)
		}
	}()

	// Инициализируем репозитории
	apartmentRepository := apartmentRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	cleaningRepository := cleaningRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	apartmentSvc := apartmentsService.NewService(apartmentRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, apartmentRepository, cleaningRepository, log)

	// Инициализируем use cases
	scheduler := updateCleaningScheduleUC.NewUseCase(
		bookingRepository,
		cleaningRepository,
		txMgr,
		notifier,
		metricsCollector,
		log,
		cfg.Scheduling.PaddingDays,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		apartmentRepository,
		scheduler,
		txMgr,
		policy,
		log,
	)

	importCalendarUseCase := importCalendarUC.NewUseCase(
		ical.NewParser(policy),
		bookingRepository,
		apartmentRepository,
		scheduler,
		txMgr,
		policy,
		log,
	)

	deleteBookingUseCase := deleteBookingUC.NewUseCase(bookingRepository, apartmentRepository, scheduler, txMgr, log)
	deleteApartmentUseCase := deleteApartmentUC.NewUseCase(apartmentRepository, bookingRepository, scheduler, txMgr, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, policy, log)
	getCleaningScheduleUseCase := getCleaningScheduleUC.NewUseCase(apartmentRepository, bookingRepository, policy, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)
	createApartment := createApartmentHandler.NewHandler(apartmentSvc, log)
	listApartments := listApartmentsHandler.NewHandler(apartmentSvc, log)
	getApartment := getApartmentHandler.NewHandler(apartmentSvc, log)
	updateApartment := updateApartmentHandler.NewHandler(apartmentSvc, log)
	deleteApartment := deleteApartmentHandler.NewHandler(deleteApartmentUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(deleteBookingUseCase, log)
	importCalendar := importCalendarHandler.NewHandler(importCalendarUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getCleaningSchedule := getCleaningScheduleHandler.NewHandler(getCleaningScheduleUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Квартиры ---
	api.HandleFunc("/apartments", createApartment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/apartments", listApartments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{apartmentId}", getApartment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{apartmentId}", updateApartment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/apartments/{apartmentId}", deleteApartment.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/apartments/{apartmentId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/apartments/{apartmentId}/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Календарь и график уборок ---
	api.HandleFunc("/calendar/import", importCalendar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaning-schedule", getCleaningSchedule.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
