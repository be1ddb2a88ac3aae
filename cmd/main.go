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

	cancelReservationHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/cancel_reservation"
	createBusinessHoursHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/create_business_hours"
	createReservationHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/create_table"
	dayStatsHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/day_stats"
	deleteBusinessHoursHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/delete_business_hours"
	getAvailableSlotsHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/get_available_slots"
	getAvailableTablesHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/get_available_tables"
	getPolicyHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/get_policy"
	getReservationHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/get_reservation"
	listBusinessHoursHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/list_business_hours"
	listReservationsHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/list_tables"
	noShowReservationHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/no_show_reservation"
	updateBusinessHoursHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/update_business_hours"
	updatePolicyHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/update_policy"
	updateReservationHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/update_reservation_status"
	updateTableHandler "github.com/mesaviva/MV-ReservationService/internal/api/handlers/update_table"
	"github.com/mesaviva/MV-ReservationService/internal/api/middleware"
	"github.com/mesaviva/MV-ReservationService/internal/config"
	customerRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/customer"
	hoursRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/hours"
	policyRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/policy"
	reservationRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/table"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	customersService "github.com/mesaviva/MV-ReservationService/internal/service/customers"
	hoursService "github.com/mesaviva/MV-ReservationService/internal/service/hours"
	policyService "github.com/mesaviva/MV-ReservationService/internal/service/policy"
	reservationsService "github.com/mesaviva/MV-ReservationService/internal/service/reservations"
	tablesService "github.com/mesaviva/MV-ReservationService/internal/service/tables"
	createReservationUC "github.com/mesaviva/MV-ReservationService/internal/usecase/create_reservation"
	findTablesUC "github.com/mesaviva/MV-ReservationService/internal/usecase/find_tables"
	suggestSlotsUC "github.com/mesaviva/MV-ReservationService/internal/usecase/suggest_slots"
	updateReservationUC "github.com/mesaviva/MV-ReservationService/internal/usecase/update_reservation"
	"github.com/mesaviva/MV-ReservationService/pkg/dbmetrics"
	"github.com/mesaviva/MV-ReservationService/pkg/logger"
	"github.com/mesaviva/MV-ReservationService/pkg/metrics"
	"github.com/mesaviva/MV-ReservationService/pkg/simpletxmanager"
	"github.com/mesaviva/MV-ReservationService/pkg/txmanager"
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

	log.Info("Starting MV-ReservationService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
		hoursRepository       *hoursRepo.Repository
		customerRepository    *customerRepo.Repository
		policyRepository      *policyRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Контроллер допуска: все проверки возможности брони в одном месте
	admissionController := admission.NewController(
		reservationRepository,
		tableRepository,
		hoursRepository,
		log,
		&admission.RealTimeProvider{},
	)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		policyRepository,
		&reservationsService.RealTimeProvider{},
		log,
	)
	customersSvc := customersService.NewService(customerRepository, log)
	tablesSvc := tablesService.NewService(tableRepository, log)
	hoursSvc := hoursService.NewService(hoursRepository, log)
	policySvc := policyService.NewService(policyRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		policyRepository,
		admissionController,
		customersSvc,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		policyRepository,
		admissionController,
		txMgr,
		log,
	)
	suggestSlotsUseCase := suggestSlotsUC.NewUseCase(policyRepository, admissionController, log)
	findTablesUseCase := findTablesUC.NewUseCase(policyRepository, admissionController, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, suggestSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	noShowReservation := noShowReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	dayStats := dayStatsHandler.NewHandler(reservationsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(suggestSlotsUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(findTablesUseCase, log)
	createTable := createTableHandler.NewHandler(tablesSvc, log)
	listTables := listTablesHandler.NewHandler(tablesSvc, log)
	updateTable := updateTableHandler.NewHandler(tablesSvc, log)
	listBusinessHours := listBusinessHoursHandler.NewHandler(hoursSvc, log)
	createBusinessHours := createBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)
	deleteBusinessHours := deleteBusinessHoursHandler.NewHandler(hoursSvc, log)
	getPolicy := getPolicyHandler.NewHandler(policySvc, log)
	updatePolicy := updatePolicyHandler.NewHandler(policySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix. Auth вешается на весь API: гостевые запросы проходят
	// без заголовков, staff/admin ручки отсекаются ниже по ролям.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// ============================================================
	// PUBLIC ROUTES (гостям доступны без идентификации)
	// ============================================================

	// Создание брони
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена брони (окно отмены для гостей проверяет сервис)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Подбор свободных времен дня
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор свободных столов
	api.HandleFunc("/availability/tables", getAvailableTables.Handle).Methods(http.MethodGet)

	// Расписание работы ресторана
	api.HandleFunc("/business-hours", listBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-User-Role: staff или admin)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)

	// Статистика дня регистрируется раньше {reservationId},
	// иначе mux примет "stats" за идентификатор
	staff.HandleFunc("/reservations/stats", dayStats.Handle).Methods(http.MethodGet)

	// Список броней за день
	staff.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение брони по ID
	staff.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Редактирование брони
	staff.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)

	// Отметка неявки
	staff.HandleFunc("/reservations/{reservationId}/no-show", noShowReservation.Handle).Methods(http.MethodPost)

	// Смена статуса по жизненному циклу
	staff.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Список столов
	staff.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)

	// Текущая конфигурация ресторана
	staff.HandleFunc("/policy", getPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Управление столами
	admin.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPatch)

	// Управление расписанием работы
	admin.HandleFunc("/business-hours", createBusinessHours.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/business-hours/{intervalId}", updateBusinessHours.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/business-hours/{intervalId}", deleteBusinessHours.Handle).Methods(http.MethodDelete)

	// Управление конфигурацией ресторана
	admin.HandleFunc("/policy", updatePolicy.Handle).Methods(http.MethodPatch)

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
