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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/create_booking"
	exportSettlementReportHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/export_settlement_report"
	getApartmentBookingsHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/get_apartment_bookings"
	getBookingHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/get_booking"
	getCommissionConfigHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/get_commission_config"
	getMonthAvailabilityHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/get_month_availability"
	getSettlementReportHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/get_settlement_report"
	selectStayDatesHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/select_stay_dates"
	updateBookingHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/update_booking"
	updateCommissionConfigHandler "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/update_commission_config"
	"github.com/arenda-soft/ARS-SettlementService/internal/api/middleware"
	"github.com/arenda-soft/ARS-SettlementService/internal/config"
	bookingRepo "github.com/arenda-soft/ARS-SettlementService/internal/infra/storage/booking"
	commissionRepo "github.com/arenda-soft/ARS-SettlementService/internal/infra/storage/commission"
	ownerServiceClient "github.com/arenda-soft/ARS-SettlementService/internal/integrations/ownerservice"
	bookingsService "github.com/arenda-soft/ARS-SettlementService/internal/service/bookings"
	commissionService "github.com/arenda-soft/ARS-SettlementService/internal/service/commission"
	createBookingUC "github.com/arenda-soft/ARS-SettlementService/internal/usecase/create_booking"
	getMonthAvailabilityUC "github.com/arenda-soft/ARS-SettlementService/internal/usecase/get_month_availability"
	selectStayDatesUC "github.com/arenda-soft/ARS-SettlementService/internal/usecase/select_stay_dates"
	settlePeriodUC "github.com/arenda-soft/ARS-SettlementService/internal/usecase/settle_period"
	"github.com/arenda-soft/ARS-SettlementService/pkg/dbmetrics"
	"github.com/arenda-soft/ARS-SettlementService/pkg/logger"
	"github.com/arenda-soft/ARS-SettlementService/pkg/metrics"
	"github.com/arenda-soft/ARS-SettlementService/pkg/simpletxmanager"
	"github.com/arenda-soft/ARS-SettlementService/pkg/txmanager"
)

func main() {
	// .env опционален: переменные окружения переопределяют config.toml
	_ = godotenv.Load()

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

	log.Info("Starting ARS-SettlementService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиента OwnerService
	ownerClient := ownerServiceClient.NewClient(
		cfg.OwnerService.URL,
		time.Duration(cfg.OwnerService.Timeout)*time.Second,
		time.Duration(cfg.OwnerService.CacheTTL)*time.Second,
		log,
	)
	log.Info("OwnerService client initialized (url=%s, timeout=%ds, cache_ttl=%ds)",
		cfg.OwnerService.URL, cfg.OwnerService.Timeout, cfg.OwnerService.CacheTTL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		commissionRepository *commissionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		commissionRepository = commissionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		commissionRepository = commissionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	commissionSvc := commissionService.NewService(
		commissionRepository,
		cfg.Settlement.DefaultCommissionRatePercent,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		commissionSvc,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		commissionSvc,
		txMgr,
		log,
	)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(bookingRepository, log)
	selectStayDatesUseCase := selectStayDatesUC.NewUseCase(bookingRepository, log)
	settlePeriodUseCase := settlePeriodUC.NewUseCase(
		bookingRepository,
		commissionSvc,
		ownerClient,
		cfg.Settlement.DefaultCommissionRatePercent,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getApartmentBookings := getApartmentBookingsHandler.NewHandler(bookingSvc, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	selectStayDates := selectStayDatesHandler.NewHandler(selectStayDatesUseCase, log)
	getCommissionConfig := getCommissionConfigHandler.NewHandler(commissionSvc, log)
	updateCommissionConfig := updateCommissionConfigHandler.NewHandler(commissionSvc, log)
	getSettlementReport := getSettlementReportHandler.NewHandler(settlePeriodUseCase, log)
	exportSettlementReport := exportSettlementReportHandler.NewHandler(settlePeriodUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступности апартамента за месяц
	api.HandleFunc("/apartments/{apartmentId}/availability",
		getMonthAvailability.Handle).Methods(http.MethodGet)

	// Выбор дат проживания кликами по календарю
	api.HandleFunc("/apartments/{apartmentId}/selection",
		selectStayDates.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/apartments/{apartmentId}/bookings", getApartmentBookings.Handle).Methods(http.MethodGet)

	// --- Комиссии ---
	protected.HandleFunc("/commissions", getCommissionConfig.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/apartments/{apartmentId}/commission", getCommissionConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/apartments/{apartmentId}/commission", updateCommissionConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/apartments/{apartmentId}/commission", updateCommissionConfig.HandleDelete).Methods(http.MethodDelete)

	// --- Отчёты ---
	protected.HandleFunc("/reports/settlement", getSettlementReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/settlement/export", exportSettlementReport.Handle).Methods(http.MethodGet)

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
