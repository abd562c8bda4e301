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
	"github.com/redis/go-redis/v9"

	cancelReservationHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/create_reservation"
	exportScheduleHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/export_schedule"
	getDriverReservationsHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/get_driver_reservations"
	getReservationHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/get_reservation"
	getVehicleReservationsHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/get_vehicle_reservations"
	loginHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/login"
	logoutHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/logout"
	manageDriversHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/manage_drivers"
	manageVehiclesHandler "github.com/fleetops/TFS-ShiftService/internal/api/handlers/manage_vehicles"
	"github.com/fleetops/TFS-ShiftService/internal/api/middleware"
	"github.com/fleetops/TFS-ShiftService/internal/config"
	"github.com/fleetops/TFS-ShiftService/internal/identity"
	driverRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/driver"
	reservationRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/reservation"
	vehicleRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/vehicle"
	"github.com/fleetops/TFS-ShiftService/internal/reports"
	driversService "github.com/fleetops/TFS-ShiftService/internal/service/drivers"
	reservationsService "github.com/fleetops/TFS-ShiftService/internal/service/reservations"
	vehiclesService "github.com/fleetops/TFS-ShiftService/internal/service/vehicles"
	checkAvailabilityUC "github.com/fleetops/TFS-ShiftService/internal/usecase/check_availability"
	createReservationUC "github.com/fleetops/TFS-ShiftService/internal/usecase/create_reservation"
	"github.com/fleetops/TFS-ShiftService/pkg/dbmetrics"
	"github.com/fleetops/TFS-ShiftService/pkg/logger"
	"github.com/fleetops/TFS-ShiftService/pkg/metrics"
	"github.com/fleetops/TFS-ShiftService/pkg/simpletxmanager"
	"github.com/fleetops/TFS-ShiftService/pkg/txmanager"
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

	log.Info("Starting TFS-ShiftService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		metrics.RegisterReservationMetrics()
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

	// Подключаемся к Redis для хранения сессий
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (%s)", cfg.Redis.Address)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		driverRepository      *driverRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		driverRepository = driverRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		driverRepository = driverRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	sessionStore := identity.NewRedisSessionStore(rdb, time.Duration(cfg.Auth.SessionTTL)*time.Second)
	identitySvc := identity.NewService(driverRepository, sessionStore, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	vehiclesSvc := vehiclesService.NewService(vehicleRepository, log)
	driversSvc := driversService.NewService(driverRepository, log)
	scheduleReport := reports.NewScheduleReport(vehicleRepository, reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		vehicleRepository,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		vehicleRepository,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(identitySvc, log)
	logout := logoutHandler.NewHandler(identitySvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getDriverReservations := getDriverReservationsHandler.NewHandler(reservationsSvc, log)
	getVehicleReservations := getVehicleReservationsHandler.NewHandler(reservationsSvc, log)
	manageVehicles := manageVehiclesHandler.NewHandler(vehiclesSvc, log)
	manageDrivers := manageDriversHandler.NewHandler(driversSvc, log)
	exportSchedule := exportScheduleHandler.NewHandler(scheduleReport, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют валидную сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identitySvc, log))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Бронирования смен ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/check", checkAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/drivers/{driverId}/reservations", getDriverReservations.Handle).Methods(http.MethodGet)

	// --- Парк (чтение доступно всем аутентифицированным) ---
	protected.HandleFunc("/vehicles", manageVehicles.HandleList).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	// --- Управление парком ---
	admin.HandleFunc("/vehicles", manageVehicles.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{vehicleId}", manageVehicles.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{vehicleId}", manageVehicles.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/vehicles/{vehicleId}/reservations", getVehicleReservations.Handle).Methods(http.MethodGet)

	// --- Управление водителями ---
	admin.HandleFunc("/drivers", manageDrivers.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/drivers", manageDrivers.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/drivers/{driverId}", manageDrivers.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/drivers/{driverId}", manageDrivers.HandleDelete).Methods(http.MethodDelete)

	// --- Отчеты ---
	admin.HandleFunc("/reports/schedule", exportSchedule.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
